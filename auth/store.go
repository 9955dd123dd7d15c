package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/user/ripple-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// Store is the persistence surface the auth service needs. Absent rows
// are reported as (nil, nil), not as errors.
type Store interface {
	CreateUser(ctx context.Context, user *User) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
}

// PGStore implements Store on a pgx connection pool.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a PGStore.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// CreateUser inserts a new account. Uniqueness of username and email is
// enforced by the table constraints, not here.
func (s *PGStore) CreateUser(ctx context.Context, user *User) (*User, error) {
	query := `INSERT INTO users (name, username, email, password)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id, profile_image, followers, following, bookmarks, created_at, updated_at`
	err := s.pool.QueryRow(ctx, query, user.Name, user.Username, user.Email, user.HashedPassword).Scan(
		&user.ID,
		&user.ProfileImage,
		&user.Followers,
		&user.Following,
		&user.Bookmarks,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperror.NewConflictError("User already exist.", err)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// GetUserByEmail fetches an account by email, case-insensitively on the
// stored lowercase form.
func (s *PGStore) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	query := `SELECT id, name, username, email, password, profile_image,
	                 followers, following, bookmarks, created_at, updated_at
	          FROM users WHERE email = $1`
	var user User
	err := s.pool.QueryRow(ctx, query, strings.ToLower(email)).Scan(
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
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.NewDatabaseError("failed to get user by email", err)
	}
	return &user, nil
}
