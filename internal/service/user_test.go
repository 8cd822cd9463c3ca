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

type fakeUserRepo struct {
	createFn      func(ctx context.Context, user model.User) (*model.User, error)
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*model.User, error)
	findByEmailFn func(ctx context.Context, email string) (*model.User, error)
	updateFn      func(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	listOthersFn  func(ctx context.Context, currentID uuid.UUID) ([]*model.UserSummary, error)
}

func (f *fakeUserRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	return f.createFn(ctx, user)
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return f.findByIDFn(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return f.findByEmailFn(ctx, email)
}

func (f *fakeUserRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return f.updateFn(ctx, id, updates)
}

func (f *fakeUserRepo) ListOthers(ctx context.Context, currentID uuid.UUID) ([]*model.UserSummary, error) {
	return f.listOthersFn(ctx, currentID)
}

type fakeFollowRepo struct {
	createFn func(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error
	deleteFn func(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error
}

func (f *fakeFollowRepo) Create(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
	return f.createFn(ctx, followerID, followeeID)
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
	return f.deleteFn(ctx, followerID, followeeID)
}

func (f *fakeFollowRepo) FindFollowers(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error) {
	return nil, nil
}

func (f *fakeFollowRepo) FindFollowing(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error) {
	return nil, nil
}

func newTestUserService(users postgres.User, follows postgres.Follow) User {
	repo := &repository.Repository{
		Postgres: &postgres.PostgresRepository{
			User:   users,
			Follow: follows,
		},
	}
	return newUserService(zap.NewNop(), repo)
}

func TestRegisterHashesPassword(t *testing.T) {
	var created model.User
	users := &fakeUserRepo{
		createFn: func(ctx context.Context, user model.User) (*model.User, error) {
			created = user
			user.ID = uuid.New()
			return &user, nil
		},
	}
	svc := newTestUserService(users, nil)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "user@example.com",
		Username: "tester",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register error: %v", err)
	}
	if created.PasswordHash == "" || created.PasswordHash == "secret123" {
		t.Fatalf("password must be stored hashed, got %q", created.PasswordHash)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	users := &fakeUserRepo{
		createFn: func(ctx context.Context, user model.User) (*model.User, error) {
			return nil, &pgconn.PgError{Code: "23505"}
		},
	}
	svc := newTestUserService(users, nil)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email:    "user@example.com",
		Username: "tester",
		Password: "secret123",
	})
	if !errors.Is(err, ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	users := &fakeUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*model.User, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := newTestUserService(users, nil)

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestListOthersScopedToCaller(t *testing.T) {
	callerID := uuid.New()
	other := &model.UserSummary{
		ID:            uuid.New(),
		Username:      "other",
		Email:         "other@example.com",
		FollowerCount: 3,
		IsFollowed:    true,
	}

	var gotCurrentID uuid.UUID
	users := &fakeUserRepo{
		listOthersFn: func(ctx context.Context, currentID uuid.UUID) ([]*model.UserSummary, error) {
			gotCurrentID = currentID
			return []*model.UserSummary{other}, nil
		},
	}
	svc := newTestUserService(users, nil)

	listed, err := svc.ListOthers(context.Background(), callerID)
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if gotCurrentID != callerID {
		t.Errorf("expected listing scoped to caller %s, got %s", callerID, gotCurrentID)
	}
	if len(listed) != 1 || listed[0] != other {
		t.Fatalf("unexpected listing %+v", listed)
	}
}

func TestFollowSelf(t *testing.T) {
	svc := newTestUserService(nil, nil)

	id := uuid.New()
	if err := svc.Follow(context.Background(), id, id); !errors.Is(err, ErrCannotFollowSelf) {
		t.Fatalf("expected ErrCannotFollowSelf, got %v", err)
	}
}

func TestFollowDuplicate(t *testing.T) {
	follows := &fakeFollowRepo{
		createFn: func(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
			return &pgconn.PgError{Code: "23505"}
		},
	}
	svc := newTestUserService(nil, follows)

	if err := svc.Follow(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrAlreadyFollowing) {
		t.Fatalf("expected ErrAlreadyFollowing, got %v", err)
	}
}

func TestUnfollowMissingEdgeIsNoop(t *testing.T) {
	follows := &fakeFollowRepo{
		deleteFn: func(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
			return nil
		},
	}
	svc := newTestUserService(nil, follows)

	if err := svc.Unfollow(context.Background(), uuid.New(), uuid.New()); err != nil {
		t.Fatalf("unfollow must be a no-op on a missing edge, got %v", err)
	}
}
