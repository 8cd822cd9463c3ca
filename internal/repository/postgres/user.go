package postgres

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/TravelTales/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrFieldsNotAllowedToUpdate = errors.New("fields are not allowed to update")

type userRepo struct {
	db *pgxpool.Pool
}

func newUserRepo(db *pgxpool.Pool) User {
	return &userRepo{
		db: db,
	}
}

func (r *userRepo) Create(ctx context.Context, user model.User) (*model.User, error) {
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	if _, err := r.db.Exec(
		ctx,
		"INSERT INTO users(id, email, username, password_hash, created_at) VALUES($1, $2, $3, $4, $5)",
		user.ID,
		user.Email,
		user.Username,
		user.PasswordHash,
		user.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(
		ctx,
		"SELECT u.id, u.email, u.username, u.password_hash, u.created_at FROM users u WHERE u.id = $1",
		id,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.QueryRow(
		ctx,
		"SELECT u.id, u.email, u.username, u.password_hash, u.created_at FROM users u WHERE u.email = $1",
		email,
	).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.PasswordHash,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}

	return &user, nil
}

// ListOthers returns every user except the caller, with follow counts
// and a flag telling whether the caller already follows them.
func (r *userRepo) ListOthers(ctx context.Context, currentID uuid.UUID) ([]*model.UserSummary, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		u.id, u.username, u.email,
		(SELECT COUNT(*) FROM follows f WHERE f.followee_id = u.id) AS follower_count,
		(SELECT COUNT(*) FROM follows f WHERE f.follower_id = u.id) AS following_count,
		EXISTS (SELECT 1 FROM follows f WHERE f.follower_id = $1 AND f.followee_id = u.id) AS is_followed
		FROM users u
		WHERE u.id <> $1
		ORDER BY u.username ASC, u.id`,
		currentID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.UserSummary
	for rows.Next() {
		var user model.UserSummary
		if err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.FollowerCount,
			&user.FollowingCount,
			&user.IsFollowed,
		); err != nil {
			return nil, err
		}

		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (r *userRepo) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}

	allowedFields := []string{"email", "username"}
	allowedFieldsSet := make(map[string]struct{}, len(allowedFields))
	for _, field := range allowedFields {
		allowedFieldsSet[field] = struct{}{}
	}

	for field := range updates {
		if _, ok := allowedFieldsSet[field]; !ok {
			return ErrFieldsNotAllowedToUpdate
		}
	}

	query := "UPDATE users SET "
	args := []interface{}{}
	i := 1

	for column, value := range updates {
		query += (column + " = $" + strconv.Itoa(i) + ", ")
		args = append(args, value)
		i++
	}

	query = query[:len(query)-2] + " WHERE id = $" + strconv.Itoa(i)
	args = append(args, id)

	_, err := r.db.Exec(ctx, query, args...)
	return err
}
