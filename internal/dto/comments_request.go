package dto

type CreateCommentRequest struct {
	PostID  int64  `json:"postId" binding:"required"`
	Content string `json:"content" binding:"required,min=1"`
}

type DeleteCommentRequest struct {
	CommentID int64 `json:"commentId" binding:"required"`
}
