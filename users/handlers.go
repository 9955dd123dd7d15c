package users

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/user/ripple-go/apperror"
)

var validate = validator.New()

// Handlers exposes the user and social-graph endpoints over HTTP.
type Handlers struct {
	service *UserService
}

// NewHandlers creates user Handlers.
func NewHandlers(service *UserService) *Handlers {
	return &Handlers{service: service}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError("Fields are required.", err)
	}
	return id, nil
}

// HandleGetProfile godoc
// @Summary Fetch a user profile
// @Description Returns the user under the "user" key; null when the id is unknown. The password hash is never serialized.
// @Tags users
// @Produce json
// @Param id path int true "User id"
// @Success 200 {object} users.ProfileResponse
// @Failure 500 {object} apperror.Envelope
// @Router /user/profile/{id} [get]
func (h *Handlers) HandleGetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		user, err := h.service.GetProfile(r.Context(), id)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, ProfileResponse{User: user})
	}
}

// HandleUserDetails godoc
// @Summary Fetch a raw user record
// @Tags users
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} auth.User
// @Failure 500 {object} apperror.Envelope
// @Router /user/userDetails/{userId} [get]
func (h *Handlers) HandleUserDetails() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "userId")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		user, err := h.service.GetProfile(r.Context(), id)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleOtherUsers godoc
// @Summary List all users except one
// @Tags users
// @Produce json
// @Param id path int true "User id to exclude"
// @Success 200 {object} users.UserListResponse
// @Failure 500 {object} apperror.Envelope
// @Router /user/otherUsers/{id} [get]
func (h *Handlers) HandleOtherUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "id")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		list, err := h.service.OtherUsers(r.Context(), id)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, UserListResponse{User: list})
	}
}

// HandleUpdateProfileImage godoc
// @Summary Update a user's avatar
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User id"
// @Param imageBody body users.UpdateProfileImageRequest true "Replacement avatar URL"
// @Success 200 {object} users.UpdateProfileImageResponse
// @Failure 404 {object} apperror.Envelope "User not found"
// @Failure 500 {object} apperror.Envelope
// @Router /user/profile/image/{userId} [put]
func (h *Handlers) HandleUpdateProfileImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "userId")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		var req UpdateProfileImageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}
		defer r.Body.Close()
		if err := validate.Struct(req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}

		user, err := h.service.UpdateProfileImage(r.Context(), id, req.ProfileImage)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, UpdateProfileImageResponse{
			Success: true,
			Message: "Profile image updated successfully",
			User:    user,
		})
	}
}

// HandleFollow godoc
// @Summary Toggle a follow edge
// @Description Follows the target when the acting user is not yet a follower, unfollows otherwise.
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "Target user id"
// @Param followBody body users.FollowRequest true "Acting user id"
// @Success 200 {object} apperror.Envelope
// @Failure 404 {object} apperror.Envelope "User not found"
// @Failure 500 {object} apperror.Envelope
// @Router /user/follow/{userId} [post]
func (h *Handlers) HandleFollow() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		targetID, err := pathID(r, "userId")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		var req FollowRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}
		defer r.Body.Close()
		if err := validate.Struct(req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}

		message, err := h.service.FollowUnfollow(r.Context(), req.LoggedInUserID, targetID)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, apperror.Envelope{Message: message, Success: true})
	}
}

// HandleBookmark godoc
// @Summary Toggle a bookmark
// @Description Saves the post to the acting user's bookmarks, or removes it when already saved.
// @Tags users
// @Accept json
// @Produce json
// @Param postId path int true "Post id"
// @Param bookmarkBody body users.BookmarkRequest true "Acting user id"
// @Success 200 {object} apperror.Envelope
// @Failure 404 {object} apperror.Envelope "User not found"
// @Failure 500 {object} apperror.Envelope
// @Router /post/bookmark/{postId} [put]
func (h *Handlers) HandleBookmark() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "postId")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		var req BookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}
		defer r.Body.Close()
		if err := validate.Struct(req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}

		message, err := h.service.ToggleBookmark(r.Context(), req.LoggedInUserID, postID)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, apperror.Envelope{Message: message, Success: true})
	}
}
