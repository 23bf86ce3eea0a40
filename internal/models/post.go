package models

import (
	"time"

	"gorm.io/gorm"
)

// Post represents a post in the Quill application. Title and Body are stored
// sanitized (HTML stripped, trimmed) by the service layer.
type Post struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Title     string         `gorm:"not null" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	AuthorID  uint           `gorm:"not null;index" json:"author_id"`
	Author    User           `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PostView is the denormalized, per-request projection of a post: the post
// fields joined with author display info plus the visitor ownership flag.
// It is computed on every read and never persisted or cached with a visitor
// attached.
type PostView struct {
	ID             uint        `json:"id"`
	Title          string      `json:"title"`
	Body           string      `json:"body"`
	CreatedAt      time.Time   `json:"created_at"`
	Author         UserSummary `json:"author"`
	IsVisitorOwner bool        `json:"is_visitor_owner"`
}

// View shapes the post into a PostView for the given visitor. A visitorID of
// zero means an anonymous visitor: the ownership flag is false, never an
// error.
func (p *Post) View(visitorID uint) PostView {
	return PostView{
		ID:             p.ID,
		Title:          p.Title,
		Body:           p.Body,
		CreatedAt:      p.CreatedAt,
		Author:         p.Author.Summary(),
		IsVisitorOwner: visitorID != 0 && visitorID == p.AuthorID,
	}
}
