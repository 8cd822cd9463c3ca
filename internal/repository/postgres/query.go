package postgres

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

type SortBy string

const (
	SortNewest        SortBy = "newest"
	SortMostLiked     SortBy = "mostLiked"
	SortMostCommented SortBy = "mostCommented"
)

// PostFilter parameterizes the post listing query. Country and Username are
// mutually exclusive filters; Country wins when both are set. A non-nil
// FollowerID turns the query into the feed variant, restricted to posts by
// authors the given user follows.
type PostFilter struct {
	Country    string
	Username   string
	FollowerID *uuid.UUID
	SortBy     SortBy
	Limit      int
	Offset     int
}

const postListColumns = `p.id, p.user_id, p.title, p.content, p.country, p.date_of_visit, p.flag, p.currency, p.capital, p.created_at, p.updated_at, u.username,
	COALESCE(SUM(CASE WHEN l.is_like THEN 1 ELSE 0 END), 0) AS like_count,
	COALESCE(SUM(CASE WHEN NOT l.is_like THEN 1 ELSE 0 END), 0) AS dislike_count,
	(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count`

// buildPostListQuery renders one shape for every listing variant:
// posts JOIN users LEFT JOIN likes, grouped per post, aggregates
// zero-defaulted, ordered by the sort key with id DESC as tie-break so
// pages stay stable when counts are equal.
func buildPostListQuery(f PostFilter) (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString("SELECT\n\t")
	sb.WriteString(postListColumns)
	sb.WriteString("\n\tFROM posts p")
	sb.WriteString("\n\tJOIN users u ON p.user_id = u.id")
	sb.WriteString("\n\tLEFT JOIN likes l ON p.id = l.post_id")

	if f.FollowerID != nil {
		sb.WriteString("\n\tJOIN follows f ON p.user_id = f.followee_id")
	}

	var conditions []string
	if f.FollowerID != nil {
		args = append(args, *f.FollowerID)
		conditions = append(conditions, "f.follower_id = $"+strconv.Itoa(len(args)))
	}
	if f.Country != "" {
		args = append(args, f.Country)
		conditions = append(conditions, "p.country = $"+strconv.Itoa(len(args)))
	} else if f.Username != "" {
		args = append(args, f.Username)
		conditions = append(conditions, "u.username = $"+strconv.Itoa(len(args)))
	}
	if len(conditions) > 0 {
		sb.WriteString("\n\tWHERE ")
		sb.WriteString(strings.Join(conditions, " AND "))
	}

	sb.WriteString("\n\tGROUP BY p.id, u.username")

	switch f.SortBy {
	case SortMostLiked:
		sb.WriteString("\n\tORDER BY like_count DESC, p.id DESC")
	case SortMostCommented:
		sb.WriteString("\n\tORDER BY comment_count DESC, p.id DESC")
	default:
		sb.WriteString("\n\tORDER BY p.created_at DESC, p.id DESC")
	}

	args = append(args, f.Limit)
	sb.WriteString("\n\tLIMIT $" + strconv.Itoa(len(args)))
	args = append(args, f.Offset)
	sb.WriteString(" OFFSET $" + strconv.Itoa(len(args)))

	return sb.String(), args
}
