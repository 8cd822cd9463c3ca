package service

import (
	"context"
	"errors"
	"testing"

	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/TravelTales/blog-service/internal/model"
	"github.com/TravelTales/blog-service/internal/repository"
	"github.com/TravelTales/blog-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type fakeCommentRepo struct {
	createFn func(ctx context.Context, comment model.Comment) (*model.Comment, error)
	findFn   func(ctx context.Context, postID int64, limit int, offset int) ([]*model.CommentWithAuthor, error)
	deleteFn func(ctx context.Context, commentID int64, userID uuid.UUID) error
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment model.Comment) (*model.Comment, error) {
	return f.createFn(ctx, comment)
}

func (f *fakeCommentRepo) FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.CommentWithAuthor, error) {
	return f.findFn(ctx, postID, limit, offset)
}

func (f *fakeCommentRepo) Delete(ctx context.Context, commentID int64, userID uuid.UUID) error {
	return f.deleteFn(ctx, commentID, userID)
}

func newTestCommentService(comments postgres.Comment) Comment {
	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			Comment: comments,
		},
	}
	return newCommentService(zap.NewNop(), repo)
}

func TestCommentCreateOnMissingPost(t *testing.T) {
	comments := &fakeCommentRepo{
		createFn: func(ctx context.Context, comment model.Comment) (*model.Comment, error) {
			return nil, &pgconn.PgError{Code: "23503"}
		},
	}
	svc := newTestCommentService(comments)

	_, err := svc.Create(context.Background(), uuid.New(), dto.CreateCommentRequest{PostID: 42, Content: "hi"})
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestCommentDeleteNotOwned(t *testing.T) {
	comments := &fakeCommentRepo{
		deleteFn: func(ctx context.Context, commentID int64, userID uuid.UUID) error {
			return pgx.ErrNoRows
		},
	}
	svc := newTestCommentService(comments)

	err := svc.Delete(context.Background(), 1, uuid.New())
	if !errors.Is(err, ErrCommentNotFoundOrUnauthorized) {
		t.Fatalf("expected ErrCommentNotFoundOrUnauthorized, got %v", err)
	}
}

func TestCommentListPagination(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		limit      int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, DEFAULT_LIMIT, 0},
		{"second page", 2, 10, 10, 10},
		{"custom limit", 3, 4, 4, 8},
		{"limit above cap", 2, 100, postgres.MAX_LIMIT, postgres.MAX_LIMIT},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var gotLimit, gotOffset int
			comments := &fakeCommentRepo{
				findFn: func(ctx context.Context, postID int64, limit int, offset int) ([]*model.CommentWithAuthor, error) {
					gotLimit, gotOffset = limit, offset
					return nil, nil
				},
			}
			svc := newTestCommentService(comments)

			if _, err := svc.FindPostComments(context.Background(), 1, c.page, c.limit); err != nil {
				t.Fatalf("list error: %v", err)
			}
			if gotLimit != c.wantLimit || gotOffset != c.wantOffset {
				t.Errorf("expected limit/offset %d/%d, got %d/%d", c.wantLimit, c.wantOffset, gotLimit, gotOffset)
			}
		})
	}
}
