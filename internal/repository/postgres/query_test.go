package postgres

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestBuildPostListQueryDefaults(t *testing.T) {
	query, args := buildPostListQuery(PostFilter{SortBy: SortNewest, Limit: 10, Offset: 0})

	if !strings.Contains(query, "FROM posts p") {
		t.Fatalf("missing posts table: %s", query)
	}
	// The comment-count subquery carries its own WHERE; only the
	// top-level clause must be absent.
	if strings.Contains(query, "\n\tWHERE ") {
		t.Errorf("unfiltered query must have no top-level WHERE clause: %s", query)
	}
	if !strings.Contains(query, "ORDER BY p.created_at DESC, p.id DESC") {
		t.Errorf("expected newest ordering with id tie-break: %s", query)
	}
	if !strings.Contains(query, "LIMIT $1 OFFSET $2") {
		t.Errorf("expected limit/offset as first args: %s", query)
	}
	if len(args) != 2 || args[0] != 10 || args[1] != 0 {
		t.Errorf("unexpected args %v", args)
	}
}

func TestBuildPostListQueryZeroDefaults(t *testing.T) {
	query, _ := buildPostListQuery(PostFilter{SortBy: SortNewest, Limit: 10})

	for _, aggregate := range []string{
		"COALESCE(SUM(CASE WHEN l.is_like THEN 1 ELSE 0 END), 0) AS like_count",
		"COALESCE(SUM(CASE WHEN NOT l.is_like THEN 1 ELSE 0 END), 0) AS dislike_count",
		"(SELECT COUNT(*) FROM comments c WHERE c.post_id = p.id) AS comment_count",
	} {
		if !strings.Contains(query, aggregate) {
			t.Errorf("missing zero-defaulted aggregate %q in: %s", aggregate, query)
		}
	}
}

func TestBuildPostListQueryFilters(t *testing.T) {
	cases := []struct {
		name     string
		filter   PostFilter
		wantSQL  []string
		wantArgs []interface{}
	}{
		{
			name:     "country filter",
			filter:   PostFilter{Country: "Japan", SortBy: SortNewest, Limit: 10, Offset: 0},
			wantSQL:  []string{"WHERE p.country = $1", "LIMIT $2 OFFSET $3"},
			wantArgs: []interface{}{"Japan", 10, 0},
		},
		{
			name:     "username filter",
			filter:   PostFilter{Username: "alice", SortBy: SortNewest, Limit: 10, Offset: 20},
			wantSQL:  []string{"WHERE u.username = $1"},
			wantArgs: []interface{}{"alice", 10, 20},
		},
		{
			name:     "country wins over username",
			filter:   PostFilter{Country: "Japan", Username: "alice", SortBy: SortNewest, Limit: 10},
			wantSQL:  []string{"WHERE p.country = $1"},
			wantArgs: []interface{}{"Japan", 10, 0},
		},
		{
			name:    "most liked sort",
			filter:  PostFilter{SortBy: SortMostLiked, Limit: 10},
			wantSQL: []string{"ORDER BY like_count DESC, p.id DESC"},
		},
		{
			name:    "most commented sort",
			filter:  PostFilter{SortBy: SortMostCommented, Limit: 10},
			wantSQL: []string{"ORDER BY comment_count DESC, p.id DESC"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			query, args := buildPostListQuery(c.filter)
			for _, fragment := range c.wantSQL {
				if !strings.Contains(query, fragment) {
					t.Errorf("missing %q in: %s", fragment, query)
				}
			}
			if c.wantArgs != nil {
				if len(args) != len(c.wantArgs) {
					t.Fatalf("expected %d args, got %v", len(c.wantArgs), args)
				}
				for i := range c.wantArgs {
					if args[i] != c.wantArgs[i] {
						t.Errorf("arg %d: expected %v, got %v", i, c.wantArgs[i], args[i])
					}
				}
			}
		})
	}
}

func TestBuildPostListQueryFeed(t *testing.T) {
	followerID := uuid.New()
	query, args := buildPostListQuery(PostFilter{
		FollowerID: &followerID,
		SortBy:     SortNewest,
		Limit:      2,
		Offset:     2,
	})

	if !strings.Contains(query, "JOIN follows f ON p.user_id = f.followee_id") {
		t.Errorf("feed query must join the follow graph: %s", query)
	}
	if !strings.Contains(query, "WHERE f.follower_id = $1") {
		t.Errorf("feed query must filter on the follower: %s", query)
	}
	if len(args) != 3 || args[0] != followerID || args[1] != 2 || args[2] != 2 {
		t.Errorf("unexpected args %v", args)
	}
}

func TestBuildPostListQueryFeedWithCountry(t *testing.T) {
	followerID := uuid.New()
	query, args := buildPostListQuery(PostFilter{
		FollowerID: &followerID,
		Country:    "Japan",
		SortBy:     SortNewest,
		Limit:      10,
	})

	if !strings.Contains(query, "WHERE f.follower_id = $1 AND p.country = $2") {
		t.Errorf("expected combined conditions: %s", query)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %v", args)
	}
}

func TestMaxLimit(t *testing.T) {
	limit := 500
	maxLimit(&limit)
	if limit != MAX_LIMIT {
		t.Errorf("expected limit capped to %d, got %d", MAX_LIMIT, limit)
	}

	limit = 10
	maxLimit(&limit)
	if limit != 10 {
		t.Errorf("expected limit unchanged, got %d", limit)
	}
}
