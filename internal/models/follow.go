package models

import "time"

// Follow represents a directed follow edge: FollowerID follows FollowedID.
// The pair is unique; self-follows are rejected by the service layer before
// they ever reach the database.
type Follow struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follow_edge" json:"follower_id"`
	FollowedID uint      `gorm:"not null;index;uniqueIndex:idx_follow_edge" json:"followed_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followed User `gorm:"foreignKey:FollowedID" json:"followed,omitempty"`
}

// TableName specifies the table name for GORM
func (Follow) TableName() string {
	return "follows"
}

// ProfileStats is the aggregate shown on profile screens, assembled from
// independent count queries (never persisted).
type ProfileStats struct {
	PostCount         int64 `json:"post_count"`
	FollowerCount     int64 `json:"follower_count"`
	FollowingCount    int64 `json:"following_count"`
	IsFollowing       bool  `json:"is_following"`
	IsVisitorsProfile bool  `json:"is_visitors_profile"`
}
