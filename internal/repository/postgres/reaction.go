package postgres

import (
	"context"

	"github.com/TravelTales/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reactionRepo struct {
	db *pgxpool.Pool
}

func newReactionRepo(db *pgxpool.Pool) Reaction {
	return &reactionRepo{
		db: db,
	}
}

// Set upserts on the (user_id, post_id) primary key, so a pair holds at
// most one row at all times and re-asserting the same reaction is a no-op.
func (r *reactionRepo) Set(ctx context.Context, reaction model.Reaction) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO likes(user_id, post_id, is_like)
		VALUES($1, $2, $3)
		ON CONFLICT (user_id, post_id) DO UPDATE SET is_like = EXCLUDED.is_like`,
		reaction.UserID,
		reaction.PostID,
		reaction.IsLike,
	)
	return err
}

// Clear succeeds whether or not a row existed.
func (r *reactionRepo) Clear(ctx context.Context, userID uuid.UUID, postID int64) error {
	_, err := r.db.Exec(ctx, "DELETE FROM likes WHERE user_id = $1 AND post_id = $2", userID, postID)
	return err
}

func (r *reactionRepo) FindPostReactions(ctx context.Context, postID int64) ([]*model.Reaction, error) {
	rows, err := r.db.Query(ctx, "SELECT user_id, post_id, is_like FROM likes WHERE post_id = $1", postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reactions []*model.Reaction
	for rows.Next() {
		var reaction model.Reaction
		if err := rows.Scan(&reaction.UserID, &reaction.PostID, &reaction.IsLike); err != nil {
			return nil, err
		}

		reactions = append(reactions, &reaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return reactions, nil
}
