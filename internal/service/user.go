package service

import (
	"context"
	"os"
	"time"

	"github.com/TravelTales/blog-service/internal/dto"
	"github.com/TravelTales/blog-service/internal/model"
	"github.com/TravelTales/blog-service/internal/repository"
	"github.com/TravelTales/blog-service/internal/repository/redisrepo"
	"github.com/TravelTales/blog-service/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const accessTokenTTL = time.Hour

type userService struct {
	logger *zap.Logger
	repo   *repository.Repository
}

func newUserService(logger *zap.Logger, repo *repository.Repository) User {
	return &userService{
		logger: logger,
		repo:   repo,
	}
}

func (s *userService) Register(ctx context.Context, input dto.RegisterRequest) (*model.User, error) {
	passwordHash, err := utils.HashPassword(input.Password)
	if err != nil {
		s.logger.Sugar().Errorf("failed to hash password: %s", err.Error())
		return nil, ErrInternal
	}

	user := model.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
	}

	createdUser, err := s.repo.Postgres.User.Create(ctx, user)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserExists
		}
		s.logger.Sugar().Errorf("failed to create user: %s", err.Error())
		return nil, ErrInternal
	}

	return createdUser, nil
}

func (s *userService) Login(ctx context.Context, input dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.repo.Postgres.User.FindByEmail(ctx, input.Email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrInvalidCredentials
		}
		s.logger.Sugar().Errorf("failed to find user by email: %s", err.Error())
		return nil, ErrInternal
	}

	if err := utils.CheckPasswordHash(user.PasswordHash, input.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.SignJWT(jwt.MapClaims{
		"id":       user.ID.String(),
		"email":    user.Email,
		"username": user.Username,
	}, []byte(os.Getenv("JWT_SECRET")), accessTokenTTL)
	if err != nil {
		s.logger.Sugar().Errorf("failed to sign access token for user(%s): %s", user.ID.String(), err.Error())
		return nil, ErrInternal
	}

	return &dto.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

// Logout revokes the presented token until its natural expiry.
func (s *userService) Logout(ctx context.Context, token string) error {
	claims, err := utils.DecodeJWT(token, []byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return ErrInvalidCredentials
	}

	ttl := accessTokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl <= 0 {
		return nil
	}

	if err := s.repo.Redis.Default.Set(ctx, redisrepo.RevokedTokenKey(token), "1", ttl); err != nil {
		s.logger.Sugar().Errorf("failed to revoke token: %s", err.Error())
		return ErrInternal
	}

	return nil
}

func (s *userService) IsTokenRevoked(ctx context.Context, token string) bool {
	exists, err := s.repo.Redis.Default.Exists(ctx, redisrepo.RevokedTokenKey(token)).Result()
	if err != nil {
		s.logger.Sugar().Errorf("failed to check token revocation: %s", err.Error())
		// Fail closed: a token that cannot be checked is treated as revoked.
		return true
	}
	return exists > 0
}

func (s *userService) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.repo.Postgres.User.FindByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrUserNotFound
		}
		s.logger.Sugar().Errorf("failed to find user(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return user, nil
}

func (s *userService) ListOthers(ctx context.Context, currentID uuid.UUID) ([]*model.UserSummary, error) {
	users, err := s.repo.Postgres.User.ListOthers(ctx, currentID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to list users for user(%s): %s", currentID.String(), err.Error())
		return nil, ErrInternal
	}

	return users, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, input dto.UpdateProfileRequest) (*model.User, error) {
	updates := make(map[string]interface{})
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Username != nil {
		updates["username"] = *input.Username
	}

	if err := s.repo.Postgres.User.Update(ctx, id, updates); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUserExists
		}
		s.logger.Sugar().Errorf("failed to update user(%s): %s", id.String(), err.Error())
		return nil, ErrInternal
	}

	return s.FindByID(ctx, id)
}

func (s *userService) Follow(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
	if followerID == followeeID {
		return ErrCannotFollowSelf
	}

	if err := s.repo.Postgres.Follow.Create(ctx, followerID, followeeID); err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyFollowing
		}
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		s.logger.Sugar().Errorf("failed to follow user(%s): %s", followeeID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *userService) Unfollow(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
	if err := s.repo.Postgres.Follow.Delete(ctx, followerID, followeeID); err != nil {
		s.logger.Sugar().Errorf("failed to unfollow user(%s): %s", followeeID.String(), err.Error())
		return ErrInternal
	}

	return nil
}

func (s *userService) FindFollowers(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error) {
	users, err := s.repo.Postgres.Follow.FindFollowers(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) followers: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return users, nil
}

func (s *userService) FindFollowing(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error) {
	users, err := s.repo.Postgres.Follow.FindFollowing(ctx, userID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) following: %s", userID.String(), err.Error())
		return nil, ErrInternal
	}

	return users, nil
}
