// Package posts implements post management: creation with optional
// media, deletion, edits, and the like toggle.
package posts

import (
	"time"

	"github.com/user/ripple-go/auth"
)

// AuthorSnapshot is the author's public profile as it looked when the
// post was created. It is embedded in the post so reads need no join;
// later profile edits do not propagate into it.
type AuthorSnapshot struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// SnapshotOf captures the embeddable part of a user profile.
func SnapshotOf(user *auth.User) *AuthorSnapshot {
	if user == nil {
		return nil
	}
	return &AuthorSnapshot{
		ID:           user.ID,
		Name:         user.Name,
		Username:     user.Username,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
	}
}

// Post is the content entity. Likes is a plain list of user ids; the
// toggle in the service layer is the only membership guard, so
// concurrent duplicate likes stay in the list as-is.
type Post struct {
	ID          int64           `json:"id"`
	PostContent string          `json:"postContent"`
	PostMedia   *string         `json:"postMedia,omitempty"`
	Likes       []int64         `json:"like"`
	UserID      int64           `json:"userId"`
	UserDetails *AuthorSnapshot `json:"userDetails"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
