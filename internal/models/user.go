// Package models contains data structures for the application's domain models.
package models

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// User represents a registered author in the Quill application.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"unique;not null" json:"username"`
	Email     string         `gorm:"unique;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	Posts     []Post         `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
}

// Avatar returns the user's derived avatar URL. Avatars are never stored;
// they are computed from the email so they stay stable across lookups.
func (u *User) Avatar() string {
	return GravatarURL(u.Email, 128)
}

// Summary projects the user into the shape used by follower/following lists.
func (u *User) Summary() UserSummary {
	return UserSummary{
		Username: u.Username,
		Avatar:   u.Avatar(),
	}
}

// UserSummary is the minimal author display projection (never persisted).
type UserSummary struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
}

// GravatarURL derives a deterministic avatar URL from an email address
// using the Gravatar scheme: md5 of the normalized (trimmed, lowercased)
// address.
func GravatarURL(email string, size int) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return fmt.Sprintf("https://gravatar.com/avatar/%x?s=%d", md5.Sum([]byte(normalized)), size)
}
