// Package auth handles accounts and sessions: registration, login,
// logout, token issue/verification, and the cookie-identity middleware.
package auth

import "time"

// User is the account entity shared by the feature packages. The bcrypt
// hash is never serialized; every endpoint that returns a user omits it
// through the struct tag rather than per-handler field scrubbing.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	ProfileImage   string    `json:"profileImage"`
	Followers      []int64   `json:"followers"`
	Following      []int64   `json:"following"`
	Bookmarks      []int64   `json:"bookmarks"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
