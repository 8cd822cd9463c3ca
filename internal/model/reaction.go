package model

import "github.com/google/uuid"

// Reaction is one row of the likes table. A (user, post) pair has at most
// one row: is_like true for a like, false for a dislike; no row means the
// user has no reaction.
type Reaction struct {
	UserID uuid.UUID `json:"user_id"`
	PostID int64     `json:"post_id"`
	IsLike bool      `json:"is_like"`
}
