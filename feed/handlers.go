package feed

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/posts"
)

// FeedResponse wraps the personalized feed listing.
type FeedResponse struct {
	Posts []posts.Post `json:"posts"`
}

// Handlers exposes the feed endpoints over HTTP.
type Handlers struct {
	service *FeedService
}

// NewHandlers creates feed Handlers.
func NewHandlers(service *FeedService) *Handlers {
	return &Handlers{service: service}
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError("Fields are required.", err)
	}
	return id, nil
}

// HandlePersonalFeed godoc
// @Summary Personalized feed
// @Description Returns the user's own posts plus the posts of everyone they follow.
// @Tags feed
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} feed.FeedResponse
// @Failure 500 {object} apperror.Envelope
// @Router /feed/posts/{userId} [get]
func (h *Handlers) HandlePersonalFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "userId")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		list, err := h.service.Personal(r.Context(), userID)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, FeedResponse{Posts: list})
	}
}

// HandleExplore godoc
// @Summary Explore feed
// @Description Returns every post not authored by the given user, as a bare array.
// @Tags feed
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {array} posts.Post
// @Failure 500 {object} apperror.Envelope
// @Router /explore/posts/{userId} [get]
func (h *Handlers) HandleExplore() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := pathID(r, "userId")
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		list, err := h.service.Explore(r.Context(), userID)
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, list)
	}
}

// HandleAllPosts godoc
// @Summary All posts
// @Description Returns every post unfiltered, as a bare array.
// @Tags feed
// @Produce json
// @Success 200 {array} posts.Post
// @Failure 500 {object} apperror.Envelope
// @Router /allPosts [get]
func (h *Handlers) HandleAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.service.All(r.Context())
		if err != nil {
			apperror.WriteError(w, err)
			return
		}
		apperror.WriteJSON(w, http.StatusOK, list)
	}
}
