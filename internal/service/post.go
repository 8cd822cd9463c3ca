package service

import (
	"context"
	"time"

	"github.com/TravelTales/blog-service/internal/countryapi"
	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/TravelTales/blog-service/internal/model"
	"github.com/TravelTales/blog-service/internal/repository"
	"github.com/TravelTales/blog-service/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const dateOfVisitLayout = "2006-01-02"

// SearchParams are the caller-facing listing knobs; unknown sort values
// fall back to newest.
type SearchParams struct {
	Country  string
	Username string
	SortBy   string
	Page     int
	Limit    int
}

type postService struct {
	logger    *zap.Logger
	repo      *repository.Repository
	countries countryapi.Client
}

func newPostService(logger *zap.Logger, repo *repository.Repository, countries countryapi.Client) Post {
	return &postService{
		logger:    logger,
		repo:      repo,
		countries: countries,
	}
}

func (s *postService) Create(ctx context.Context, userID uuid.UUID, input dto.CreatePostRequest) (*model.Post, error) {
	dateOfVisit, err := time.Parse(dateOfVisitLayout, input.DateOfVisit)
	if err != nil {
		return nil, ErrInvalidDate
	}

	// Enrichment failure aborts the write: a post never exists with a
	// partial country snapshot.
	country, err := s.countries.Lookup(ctx, input.Country)
	if err != nil {
		s.logger.Sugar().Errorf("failed to fetch country data for %q: %s", input.Country, err.Error())
		return nil, err
	}

	post := model.Post{
		UserID:      userID,
		Title:       input.Title,
		Content:     input.Content,
		Country:     input.Country,
		DateOfVisit: dateOfVisit,
		Flag:        country.Flag,
		Currency:    country.Currency,
		Capital:     country.Capital,
	}

	createdPost, err := s.repo.Postgres.Post.Create(ctx, post)
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return createdPost, nil
}

func (s *postService) Edit(ctx context.Context, userID uuid.UUID, input dto.EditPostRequest) (*model.Post, error) {
	dateOfVisit, err := time.Parse(dateOfVisitLayout, input.DateOfVisit)
	if err != nil {
		return nil, ErrInvalidDate
	}

	current, err := s.repo.Postgres.Post.FindByID(ctx, input.PostID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFoundOrUnauthorized
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", input.PostID, err.Error())
		return nil, ErrInternal
	}

	post := model.Post{
		ID:          input.PostID,
		UserID:      userID,
		Title:       input.Title,
		Content:     input.Content,
		Country:     input.Country,
		DateOfVisit: dateOfVisit,
		Flag:        current.Post.Flag,
		Currency:    current.Post.Currency,
		Capital:     current.Post.Capital,
	}

	// The snapshot only changes when the country does; an edit that keeps
	// the country keeps the stored flag/currency/capital untouched.
	if input.Country != current.Post.Country {
		country, err := s.countries.Lookup(ctx, input.Country)
		if err != nil {
			s.logger.Sugar().Errorf("failed to fetch country data for %q: %s", input.Country, err.Error())
			return nil, err
		}
		post.Flag = country.Flag
		post.Currency = country.Currency
		post.Capital = country.Capital
	}

	if err := s.repo.Postgres.Post.Update(ctx, post); err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFoundOrUnauthorized
		}
		s.logger.Sugar().Errorf("failed to update post(%d): %s", input.PostID, err.Error())
		return nil, ErrInternal
	}

	return &post, nil
}

func (s *postService) Delete(ctx context.Context, postID int64, userID uuid.UUID) error {
	if err := s.repo.Postgres.Post.Delete(ctx, postID, userID); err != nil {
		if err == pgx.ErrNoRows {
			return ErrPostNotFoundOrUnauthorized
		}
		s.logger.Sugar().Errorf("failed to delete post(%d): %s", postID, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) FindByID(ctx context.Context, id int64) (*model.PostWithStats, error) {
	post, err := s.repo.Postgres.Post.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%d): %s", id, err.Error())
		return nil, ErrInternal
	}

	return post, nil
}

func (s *postService) Search(ctx context.Context, params SearchParams) ([]*model.PostWithStats, error) {
	offset := pageOffset(&params.Page, &params.Limit)

	filter := postgres.PostFilter{
		Country:  params.Country,
		Username: params.Username,
		SortBy:   sortBy(params.SortBy),
		Limit:    params.Limit,
		Offset:   offset,
	}

	posts, err := s.repo.Postgres.Post.List(ctx, filter)
	if err != nil {
		s.logger.Sugar().Errorf("failed to search posts: %s", err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) Feed(ctx context.Context, userID uuid.UUID, page int, limit int) ([]*model.PostWithStats, error) {
	offset := pageOffset(&page, &limit)

	filter := postgres.PostFilter{
		FollowerID: &userID,
		SortBy:     postgres.SortNewest,
		Limit:      limit,
		Offset:     offset,
	}

	posts, err := s.repo.Postgres.Post.List(ctx, filter)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get user(%s) feed: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return posts, nil
}

func (s *postService) SetReaction(ctx context.Context, userID uuid.UUID, postID int64, isLike bool) error {
	reaction := model.Reaction{
		UserID: userID,
		PostID: postID,
		IsLike: isLike,
	}
	if err := s.repo.Postgres.Reaction.Set(ctx, reaction); err != nil {
		if isForeignKeyViolation(err) {
			return ErrPostNotFound
		}
		s.logger.Sugar().Errorf("failed to set user(%s) reaction on post(%d): %s", userID.String(), postID, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) ClearReaction(ctx context.Context, userID uuid.UUID, postID int64) error {
	if err := s.repo.Postgres.Reaction.Clear(ctx, userID, postID); err != nil {
		s.logger.Sugar().Errorf("failed to clear user(%s) reaction on post(%d): %s", userID.String(), postID, err.Error())
		return ErrInternal
	}

	return nil
}

func (s *postService) FindPostReactions(ctx context.Context, postID int64) ([]*model.Reaction, error) {
	reactions, err := s.repo.Postgres.Reaction.FindPostReactions(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find post(%d) reactions: %s", postID, err.Error())
		return nil, ErrInternal
	}

	return reactions, nil
}

func sortBy(value string) postgres.SortBy {
	switch postgres.SortBy(value) {
	case postgres.SortMostLiked:
		return postgres.SortMostLiked
	case postgres.SortMostCommented:
		return postgres.SortMostCommented
	default:
		return postgres.SortNewest
	}
}
