package posts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/ripple-go/apperror"
)

// Store is the persistence surface for posts. Absent rows are reported
// as (nil, nil), not as errors.
type Store interface {
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	GetPost(ctx context.Context, id int64) (*Post, error)
	DeletePost(ctx context.Context, id int64) (*Post, error)
	UpdateContent(ctx context.Context, id int64, content string) (*Post, error)
	AddLike(ctx context.Context, postID, userID int64) error
	RemoveLike(ctx context.Context, postID, userID int64) error
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

func scanPost(row pgx.Row) (*Post, error) {
	var post Post
	err := row.Scan(
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
		return nil, err
	}
	return &post, nil
}

// CreatePost inserts a new post and returns it fully populated.
func (s *PGStore) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO posts (post_content, post_media, user_id, user_details)
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+postColumns,
		post.PostContent, post.PostMedia, post.UserID, post.UserDetails)
	created, err := scanPost(row)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to create post", err)
	}
	return created, nil
}

// GetPost fetches a single post by id.
func (s *PGStore) GetPost(ctx context.Context, id int64) (*Post, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+postColumns+` FROM posts WHERE id = $1`, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to get post", err)
	}
	return post, nil
}

// DeletePost removes a post and returns the deleted row, or (nil, nil)
// when there was nothing to delete.
func (s *PGStore) DeletePost(ctx context.Context, id int64) (*Post, error) {
	row := s.pool.QueryRow(ctx, `DELETE FROM posts WHERE id = $1 RETURNING `+postColumns, id)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to delete post", err)
	}
	return post, nil
}

// UpdateContent replaces the post text and returns the updated row.
func (s *PGStore) UpdateContent(ctx context.Context, id int64, content string) (*Post, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE posts SET post_content = $2, updated_at = now() WHERE id = $1 RETURNING `+postColumns,
		id, content)
	post, err := scanPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to update post", err)
	}
	return post, nil
}

// AddLike appends userID to the post's like list.
func (s *PGStore) AddLike(ctx context.Context, postID, userID int64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE posts SET likes = array_append(likes, $2), updated_at = now() WHERE id = $1`,
		postID, userID)
	if err != nil {
		return apperror.NewDatabaseError("failed to like post", err)
	}
	return nil
}

// RemoveLike removes userID from the post's like list.
func (s *PGStore) RemoveLike(ctx context.Context, postID, userID int64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE posts SET likes = array_remove(likes, $2), updated_at = now() WHERE id = $1`,
		postID, userID)
	if err != nil {
		return apperror.NewDatabaseError("failed to remove like", err)
	}
	return nil
}
