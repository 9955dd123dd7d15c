package users

import "github.com/user/ripple-go/auth"

// FollowRequest carries the acting user's id for the follow toggle.
type FollowRequest struct {
	LoggedInUserID int64 `json:"loggedInUserId" validate:"required" example:"1"`
}

// BookmarkRequest carries the acting user's id for the bookmark toggle.
type BookmarkRequest struct {
	LoggedInUserID int64 `json:"loggedInUserId" validate:"required" example:"1"`
}

// UpdateProfileImageRequest carries the replacement avatar URL.
type UpdateProfileImageRequest struct {
	ProfileImage string `json:"profileImage" validate:"required" example:"https://example.com/avatar.png"`
}

// ProfileResponse wraps a single user; User is null when no such user
// exists.
type ProfileResponse struct {
	User *auth.User `json:"user"`
}

// UserListResponse wraps a user listing under the same key the single
// fetch uses.
type UserListResponse struct {
	User []auth.User `json:"user"`
}

// UpdateProfileImageResponse is returned after a successful avatar
// update.
type UpdateProfileImageResponse struct {
	Success bool       `json:"success" example:"true"`
	Message string     `json:"message" example:"Profile image updated successfully"`
	User    *auth.User `json:"user"`
}
