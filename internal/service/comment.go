package service

import (
	"context"

	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/TravelTales/blog-service/internal/model"
	"github.com/TravelTales/blog-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type commentService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newCommentService(logger *zap.Logger, repo *repository.Repository) Comment {
	return &commentService{
		logger: logger,
		repo:   repo,
	}
}

func (s *commentService) Create(ctx context.Context, userID uuid.UUID, input dto.CreateCommentRequest) (*model.Comment, error) {
	comment := model.Comment{
		PostID:  input.PostID,
		UserID:  userID,
		Content: input.Content,
	}

	createdComment, err := s.repo.Postgres.Comment.Create(ctx, comment)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to create user(%s) comment on post(%d): %s", userID.String(), input.PostID, err.Error())
		return nil, ErrInternal
	}

	return createdComment, nil
}

func (s *commentService) FindPostComments(ctx context.Context, postID int64, page int, limit int) ([]*model.CommentWithAuthor, error) {
	offset := pageOffset(&page, &limit)

	comments, err := s.repo.Postgres.Comment.FindPostComments(ctx, postID, limit, offset)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) comments: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return comments, nil
}

func (s *commentService) Delete(ctx context.Context, commentID int64, userID uuid.UUID) error {
	if err := s.repo.Postgres.Comment.Delete(ctx, commentID, userID); err != nil {
		if err == pgx.ErrNoRows {
			return ErrCommentNotFoundOrUnauthorized
		}
		s.logger.Sugar().Errorf("failed to delete comment(%d): %s", commentID, err.Error())
		return ErrInternal
	}

	return nil
}
