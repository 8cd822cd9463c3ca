package service

import (
	"context"
	"errors"

	"github.com/TravelTales/blog-service/internal/countryapi"
	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/TravelTales/blog-service/internal/model"
	"github.com/TravelTales/blog-service/internal/repository"
	"github.com/TravelTales/blog-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const DEFAULT_LIMIT = 10

// pageOffset normalizes page/limit to their defaults and returns the
// offset of the requested page. The cap is applied here, before the
// offset is computed, so consecutive pages stay contiguous when a
// caller asks for more than the cap allows.
func pageOffset(page *int, limit *int) int {
	if *page < 1 {
		*page = 1
	}
	if *limit < 1 {
		*limit = DEFAULT_LIMIT
	}
	if *limit > postgres.MAX_LIMIT {
		*limit = postgres.MAX_LIMIT
	}
	return (*page - 1) * *limit
}

// Postgres error codes for unique and foreign key constraint violations.
const (
	uniqueViolationCode = "23505"
	fkViolationCode     = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == fkViolationCode
}

type User interface {
	Register(ctx context.Context, input dto.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, input dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	IsTokenRevoked(ctx context.Context, token string) bool
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListOthers(ctx context.Context, currentID uuid.UUID) ([]*model.UserSummary, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input dto.UpdateProfileRequest) (*model.User, error)
	Follow(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error
	Unfollow(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error
	FindFollowers(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error)
	FindFollowing(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error)
}

type Post interface {
	Create(ctx context.Context, userID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error)
	Edit(ctx context.Context, userID uuid.UUID, input dto.EditPostRequest) (*model.Post, error)
	Delete(ctx context.Context, postID int64, userID uuid.UUID) error
	FindByID(ctx context.Context, id int64) (*model.PostWithStats, error)
	Search(ctx context.Context, params SearchParams) ([]*model.PostWithStats, error)
	Feed(ctx context.Context, userID uuid.UUID, page int, limit int) ([]*model.PostWithStats, error)
	SetReaction(ctx context.Context, userID uuid.UUID, postID int64, isLike bool) error
	ClearReaction(ctx context.Context, userID uuid.UUID, postID int64) error
	FindPostReactions(ctx context.Context, postID int64) ([]*model.Reaction, error)
}

type Comment interface {
	Create(ctx context.Context, userID uuid.UUID, input dto.CreateCommentRequest) (*model.Comment, error)
	FindPostComments(ctx context.Context, postID int64, page int, limit int) ([]*model.CommentWithAuthor, error)
	Delete(ctx context.Context, commentID int64, userID uuid.UUID) error
}

type Country interface {
	Find(ctx context.Context, name string) (*model.Country, error)
	AllNames(ctx context.Context) ([]string, error)
}

type Service struct {
	User
	Post
	Comment
	Country
}

func New(logger *zap.Logger, repos *repository.Repository, countries countryapi.Client) *Service {
	return &Service{
		User:    newUserService(logger, repos),
		Post:    newPostService(logger, repos, countries),
		Comment: newCommentService(logger, repos),
		Country: newCountryService(logger, countries),
	}
}
