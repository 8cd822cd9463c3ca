package postgres

import (
	"context"
	"time"

	"github.com/TravelTales/blog-service/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) Post {
	return &postRepo{
		db: db,
	}
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO posts(user_id, title, content, country, date_of_visit, flag, currency, capital, created_at, updated_at)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`,
		post.UserID,
		post.Title,
		post.Content,
		post.Country,
		post.DateOfVisit,
		post.Flag,
		post.Currency,
		post.Capital,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID); err != nil {
		return nil, err
	}

	return &post, nil
}

// Update rewrites the mutable columns including the country snapshot. The
// user_id guard makes ownership part of the statement; zero rows affected
// means the post is missing or owned by someone else, reported uniformly
// as pgx.ErrNoRows.
func (r *postRepo) Update(ctx context.Context, post model.Post) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE posts
		SET title = $1, content = $2, country = $3, date_of_visit = $4, flag = $5, currency = $6, capital = $7, updated_at = $8
		WHERE id = $9 AND user_id = $10`,
		post.Title,
		post.Content,
		post.Country,
		post.DateOfVisit,
		post.Flag,
		post.Currency,
		post.Capital,
		time.Now(),
		post.ID,
		post.UserID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *postRepo) Delete(ctx context.Context, postID int64, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1 AND user_id = $2", postID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return nil
}

func (r *postRepo) FindByID(ctx context.Context, id int64) (*model.PostWithStats, error) {
	var post model.PostWithStats
	if err := r.db.QueryRow(
		ctx,
		`SELECT
		`+postListColumns+`
		FROM posts p
		JOIN users u ON p.user_id = u.id
		LEFT JOIN likes l ON p.id = l.post_id
		WHERE p.id = $1
		GROUP BY p.id, u.username`,
		id,
	).Scan(
		&post.Post.ID,
		&post.Post.UserID,
		&post.Post.Title,
		&post.Post.Content,
		&post.Post.Country,
		&post.Post.DateOfVisit,
		&post.Post.Flag,
		&post.Post.Currency,
		&post.Post.Capital,
		&post.Post.CreatedAt,
		&post.Post.UpdatedAt,
		&post.Username,
		&post.LikeCount,
		&post.DislikeCount,
		&post.CommentCount,
	); err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postRepo) List(ctx context.Context, filter PostFilter) ([]*model.PostWithStats, error) {
	maxLimit(&filter.Limit)

	query, args := buildPostListQuery(filter)
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*model.PostWithStats
	for rows.Next() {
		var post model.PostWithStats
		if err := rows.Scan(
			&post.Post.ID,
			&post.Post.UserID,
			&post.Post.Title,
			&post.Post.Content,
			&post.Post.Country,
			&post.Post.DateOfVisit,
			&post.Post.Flag,
			&post.Post.Currency,
			&post.Post.Capital,
			&post.Post.CreatedAt,
			&post.Post.UpdatedAt,
			&post.Username,
			&post.LikeCount,
			&post.DislikeCount,
			&post.CommentCount,
		); err != nil {
			return nil, err
		}

		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}
