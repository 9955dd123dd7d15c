package users

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/auth"
)

// Store is the persistence surface for profiles and the social graph.
// Absent rows are reported as (nil, nil), not as errors. The list
// mutations append or remove single ids; they deliberately do not
// deduplicate, matching the membership-toggle semantics of the service
// layer.
type Store interface {
	GetUser(ctx context.Context, id int64) (*auth.User, error)
	ListUsersExcept(ctx context.Context, id int64) ([]auth.User, error)
	SetProfileImage(ctx context.Context, id int64, imageURL string) (*auth.User, error)
	AddFollower(ctx context.Context, targetID, followerID int64) error
	RemoveFollower(ctx context.Context, targetID, followerID int64) error
	AddFollowing(ctx context.Context, userID, targetID int64) error
	RemoveFollowing(ctx context.Context, userID, targetID int64) error
	AddBookmark(ctx context.Context, userID, postID int64) error
	RemoveBookmark(ctx context.Context, userID, postID int64) error
}

const userColumns = `id, name, username, email, password, profile_image,
	followers, following, bookmarks, created_at, updated_at`

// PGStore implements Store on a pgx connection pool.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a PGStore.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

func scanUser(row pgx.Row) (*auth.User, error) {
	var user auth.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Username,
		&user.Email,
		&user.HashedPassword,
		&user.ProfileImage,
		&user.Followers,
		&user.Following,
		&user.Bookmarks,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUser fetches a single user by id.
func (s *PGStore) GetUser(ctx context.Context, id int64) (*auth.User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return user, nil
}

// ListUsersExcept returns every user except the given id.
func (s *PGStore) ListUsersExcept(ctx context.Context, id int64) ([]auth.User, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id <> $1`, id)
	if err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	defer rows.Close()

	users := []auth.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperror.NewDatabaseError("failed to scan user", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("failed to list users", err)
	}
	return users, nil
}

// SetProfileImage replaces the avatar URL and returns the updated user,
// or (nil, nil) when no such user exists.
func (s *PGStore) SetProfileImage(ctx context.Context, id int64, imageURL string) (*auth.User, error) {
	row := s.pool.QueryRow(ctx,
		`UPDATE users SET profile_image = $2, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id, imageURL)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to update profile image", err)
	}
	return user, nil
}

func (s *PGStore) appendToList(ctx context.Context, column string, userID, value int64) error {
	// column is one of the fixed list columns below, never user input.
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET `+column+` = array_append(`+column+`, $2), updated_at = now() WHERE id = $1`,
		userID, value)
	if err != nil {
		return apperror.NewDatabaseError("failed to update "+column, err)
	}
	return nil
}

func (s *PGStore) removeFromList(ctx context.Context, column string, userID, value int64) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE users SET `+column+` = array_remove(`+column+`, $2), updated_at = now() WHERE id = $1`,
		userID, value)
	if err != nil {
		return apperror.NewDatabaseError("failed to update "+column, err)
	}
	return nil
}

// AddFollower appends followerID to the target's followers list.
func (s *PGStore) AddFollower(ctx context.Context, targetID, followerID int64) error {
	return s.appendToList(ctx, "followers", targetID, followerID)
}

// RemoveFollower removes followerID from the target's followers list.
func (s *PGStore) RemoveFollower(ctx context.Context, targetID, followerID int64) error {
	return s.removeFromList(ctx, "followers", targetID, followerID)
}

// AddFollowing appends targetID to the user's following list.
func (s *PGStore) AddFollowing(ctx context.Context, userID, targetID int64) error {
	return s.appendToList(ctx, "following", userID, targetID)
}

// RemoveFollowing removes targetID from the user's following list.
func (s *PGStore) RemoveFollowing(ctx context.Context, userID, targetID int64) error {
	return s.removeFromList(ctx, "following", userID, targetID)
}

// AddBookmark appends postID to the user's bookmarks.
func (s *PGStore) AddBookmark(ctx context.Context, userID, postID int64) error {
	return s.appendToList(ctx, "bookmarks", userID, postID)
}

// RemoveBookmark removes postID from the user's bookmarks.
func (s *PGStore) RemoveBookmark(ctx context.Context, userID, postID int64) error {
	return s.removeFromList(ctx, "bookmarks", userID, postID)
}
