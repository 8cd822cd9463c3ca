package postgres

import (
	"context"

	"github.com/TravelTales/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type followRepo struct {
	db *pgxpool.Pool
}

func newFollowRepo(db *pgxpool.Pool) Follow {
	return &followRepo{
		db: db,
	}
}

// Create surfaces the unique violation for an existing edge; the service
// maps it to a conflict.
func (r *followRepo) Create(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"INSERT INTO follows(follower_id, followee_id) VALUES($1, $2)",
		followerID,
		followeeID,
	)
	return err
}

// Delete is a silent no-op when the edge does not exist.
func (r *followRepo) Delete(ctx context.Context, followerID uuid.UUID, followeeID uuid.UUID) error {
	_, err := r.db.Exec(
		ctx,
		"DELETE FROM follows WHERE follower_id = $1 AND followee_id = $2",
		followerID,
		followeeID,
	)
	return err
}

func (r *followRepo) FindFollowers(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error) {
	return r.findEdgeUsers(
		ctx,
		"SELECT u.id, u.username FROM users u JOIN follows f ON u.id = f.follower_id WHERE f.followee_id = $1",
		userID,
	)
}

func (r *followRepo) FindFollowing(ctx context.Context, userID uuid.UUID) ([]*model.FollowUser, error) {
	return r.findEdgeUsers(
		ctx,
		"SELECT u.id, u.username FROM users u JOIN follows f ON u.id = f.followee_id WHERE f.follower_id = $1",
		userID,
	)
}

func (r *followRepo) findEdgeUsers(ctx context.Context, query string, userID uuid.UUID) ([]*model.FollowUser, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.FollowUser
	for rows.Next() {
		var user model.FollowUser
		if err := rows.Scan(&user.ID, &user.Username); err != nil {
			return nil, err
		}

		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}
