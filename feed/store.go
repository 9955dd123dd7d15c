package feed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/posts"
)

// Store is the read surface the feeds are built from.
type Store interface {
	// Following returns the ids the user follows; empty for an unknown user.
	Following(ctx context.Context, userID int64) ([]int64, error)
	// PostsByUsers returns every post authored by any of the given ids.
	PostsByUsers(ctx context.Context, userIDs []int64) ([]posts.Post, error)
	// PostsNotByUser returns every post except those authored by userID.
	PostsNotByUser(ctx context.Context, userID int64) ([]posts.Post, error)
	// AllPosts returns every post unfiltered.
	AllPosts(ctx context.Context) ([]posts.Post, error)
}

const postColumns = `id, post_content, post_media, likes, user_id, user_details, created_at, updated_at`

// PGStore implements Store on a pgx connection pool.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a PGStore.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Following reads the user's following list.
func (s *PGStore) Following(ctx context.Context, userID int64) ([]int64, error) {
	var following []int64
	err := s.pool.QueryRow(ctx, `SELECT following FROM users WHERE id = $1`, userID).Scan(&following)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []int64{}, nil
		}
		return nil, apperror.NewDatabaseError("failed to get following list", err)
	}
	return following, nil
}

func (s *PGStore) queryPosts(ctx context.Context, query string, args ...any) ([]posts.Post, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to query posts", err)
	}
	defer rows.Close()

	list := []posts.Post{}
	for rows.Next() {
		var post posts.Post
		err := rows.Scan(
			&post.ID,
			&post.PostContent,
			&post.PostMedia,
			&post.Likes,
			&post.UserID,
			&post.UserDetails,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan post", err)
		}
		list = append(list, post)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to query posts", err)
	}
	return list, nil
}

// PostsByUsers fetches posts authored by any of the given user ids.
func (s *PGStore) PostsByUsers(ctx context.Context, userIDs []int64) ([]posts.Post, error) {
	return s.queryPosts(ctx, `SELECT `+postColumns+` FROM posts WHERE user_id = ANY($1)`, userIDs)
}

// PostsNotByUser fetches posts authored by anyone but userID.
func (s *PGStore) PostsNotByUser(ctx context.Context, userID int64) ([]posts.Post, error) {
	return s.queryPosts(ctx, `SELECT `+postColumns+` FROM posts WHERE user_id <> $1`, userID)
}

// AllPosts fetches every post.
func (s *PGStore) AllPosts(ctx context.Context) ([]posts.Post, error) {
	return s.queryPosts(ctx, `SELECT `+postColumns+` FROM posts`)
}
