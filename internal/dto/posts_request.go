package dto

type CreatePostRequest struct {
	Title       string `json:"title" binding:"required,min=2"`
	Content     string `json:"content" binding:"required,min=1"`
	Country     string `json:"country" binding:"required"`
	DateOfVisit string `json:"dateOfVisit" binding:"required"`
}

type EditPostRequest struct {
	PostID      int64  `json:"postId" binding:"required"`
	Title       string `json:"title" binding:"required,min=2"`
	Content     string `json:"content" binding:"required,min=1"`
	Country     string `json:"country" binding:"required"`
	DateOfVisit string `json:"dateOfVisit" binding:"required"`
}

type DeletePostRequest struct {
	PostID int64 `json:"postId" binding:"required"`
}

type LikeRequest struct {
	PostID int64 `json:"postId" binding:"required"`
	IsLike *bool `json:"isLike" binding:"required"`
}

type UnlikeRequest struct {
	PostID int64 `json:"postId" binding:"required"`
}
