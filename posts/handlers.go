package posts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/user/ripple-go/apperror"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing;
// larger files spill to temp storage.
const maxUploadMemory = 32 << 20

var validate = validator.New()

// EditRequest is the payload for PUT /post/edit/{postId}.
type EditRequest struct {
	UpdatedContent string `json:"updatedContent" validate:"required" example:"edited post text"`
}

// LikeRequest carries the acting user's id for the like toggle.
type LikeRequest struct {
	LoggedInUserID int64 `json:"loggedInUserId" validate:"required" example:"1"`
}

// PostResponse wraps a mutated post with the envelope fields.
type PostResponse struct {
	Message string `json:"message" example:"Post created successfully."`
	Success bool   `json:"success" example:"true"`
	Post    *Post  `json:"post"`
}

// Handlers exposes the post endpoints over HTTP.
type Handlers struct {
	service *PostService
}

// NewHandlers creates post Handlers.
func NewHandlers(service *PostService) *Handlers {
	return &Handlers{service: service}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError("Fields are required.", err)
	}
	return id, nil
}

// HandleCreate godoc
// @Summary Create a post
// @Description Accepts a multipart form with fields postContent, id (author id) and an optional image file. The author's profile is snapshotted into the post.
// @Tags posts
// @Accept multipart/form-data
// @Produce json
// @Param postContent formData string true "Post text"
// @Param id formData int true "Author user id"
// @Param image formData file false "Optional image"
// @Success 201 {object} posts.PostResponse
// @Failure 401 {object} apperror.Envelope "Missing content or author id"
// @Failure 500 {object} apperror.Envelope
// @Router /post [post]
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}

		content := r.FormValue("postContent")
		idValue := r.FormValue("id")
		if content == "" || idValue == "" {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", nil))
			return
		}
		authorID, err := strconv.ParseInt(idValue, 10, 64)
		if err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil && !errors.Is(err, http.ErrMissingFile) {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}
		var filename string
		if file != nil {
			defer file.Close()
			filename = header.Filename
		}

		post, err := h.service.Create(r.Context(), content, authorID, file, filename)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusCreated, PostResponse{
			Message: "Post created successfully.",
			Success: true,
			Post:    post,
		})
	}
}

// HandleDelete godoc
// @Summary Delete a post
// @Description Deletes unconditionally by id. A missing post still answers success with a null post.
// @Tags posts
// @Produce json
// @Param postId path int true "Post id"
// @Success 200 {object} posts.PostResponse
// @Failure 500 {object} apperror.Envelope
// @Router /post/{postId} [delete]
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "postId")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		post, err := h.service.Delete(r.Context(), id)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, PostResponse{
			Message: "Post deleted Successfully",
			Success: true,
			Post:    post,
		})
	}
}

// HandleEdit godoc
// @Summary Edit a post's content
// @Tags posts
// @Accept json
// @Produce json
// @Param postId path int true "Post id"
// @Param editBody body posts.EditRequest true "Replacement content"
// @Success 201 {object} posts.PostResponse
// @Failure 404 {object} apperror.Envelope "Post not found"
// @Failure 500 {object} apperror.Envelope
// @Router /post/edit/{postId} [put]
func (h *Handlers) HandleEdit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r, "postId")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		var req EditRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}
		defer r.Body.Close()
		if err := validate.Struct(req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}

		post, err := h.service.Edit(r.Context(), id, req.UpdatedContent)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusCreated, PostResponse{
			Message: "Post Updated Successfully",
			Success: true,
			Post:    post,
		})
	}
}

// HandleLikeOrDislike godoc
// @Summary Toggle a like
// @Description Likes the post when the acting user is not in the like list, removes the like otherwise.
// @Tags posts
// @Accept json
// @Produce json
// @Param postId path int true "Post id"
// @Param likeBody body posts.LikeRequest true "Acting user id"
// @Success 200 {object} apperror.Envelope
// @Failure 404 {object} apperror.Envelope "Post not found"
// @Failure 500 {object} apperror.Envelope
// @Router /post/likeOrDislike/{postId} [put]
func (h *Handlers) HandleLikeOrDislike() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := pathID(r, "postId")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		var req LikeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}
		defer r.Body.Close()
		if err := validate.Struct(req); err != nil {
			apperror.WriteError(w, apperror.NewValidationError("Fields are required.", err))
			return
		}

		message, err := h.service.LikeOrDislike(r.Context(), postID, req.LoggedInUserID)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, apperror.Envelope{Message: message, Success: true})
	}
}
