package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID          int64     `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Country     string    `json:"country"`
	DateOfVisit time.Time `json:"date_of_visit"`
	// Country metadata snapshot taken at last write. Not refreshed when the
	// upstream source changes.
	Flag      string    `json:"flag"`
	Currency  string    `json:"currency"`
	Capital   string    `json:"capital"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostWithStats is one row of a post listing: the post, its author's
// username and the engagement aggregates, always zero-defaulted.
type PostWithStats struct {
	Post         Post   `json:"post"`
	Username     string `json:"username"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
	CommentCount int64  `json:"comment_count"`
}
