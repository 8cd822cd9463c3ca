package postgres

import (
	"context"

	"github.com/TravelTales/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const MAX_LIMIT = 50

func maxLimit(limit *int) {
	if *limit > MAX_LIMIT {
		*limit = MAX_LIMIT
	}
}

type User interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	ListOthers(ctx context.Context, currentID uuid.UUID) ([]*model.UserSummary, error)
}

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	Update(ctx context.Context, post model.Post) error
	Delete(ctx context.Context, postID int64, userID uuid.UUID) error
	FindByID(ctx context.Context, id int64) (*model.PostWithStats, error)
	List(ctx context.Context, filter PostFilter) ([]*model.PostWithStats, error)
}

type Reaction interface {
	Set(ctx context.Context, reaction model.Reaction) error
	Clear(ctx context.Context, userID uuid.UUID, postID int64) error
	FindPostReactions(ctx context.Context, postID int64) ([]*model.Reaction, error)
}

type Comment interface {
	Create(ctx context.Context, comment model.Comment) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, limit int, offset int) ([]*model.CommentWithAuthor, error)
	Delete(ctx context.Context, commentID int64, userID uuid.UUID) error
}

type Follow interface {
	Create(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error
	Delete(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error
	FindFollowers(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error)
	FindFollowing(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error)
}

type PostgresRepository struct {
	User
	Post
	Reaction
	Comment
	Follow
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		User:     newUserRepo(db),
		Post:     newPostRepo(db),
		Reaction: newReactionRepo(db),
		Comment:  newCommentRepo(db),
		Follow:   newFollowRepo(db),
	}
}
