package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// FollowUser is the projection returned by the followers/following queries.
type FollowUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// UserSummary is one row of the user discovery listing: a user together
// with their follow counts and whether the caller already follows them.
type UserSummary struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	FollowerCount  int64     `json:"follower_count"`
	FollowingCount int64     `json:"following_count"`
	IsFollowed     bool      `json:"is_followed"`
}
