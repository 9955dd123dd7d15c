package posts

import (
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/auth"
)

// AuthorStore is the slice of the users store the post service needs to
// snapshot an author's profile at creation time.
type AuthorStore interface {
	GetUser(ctx context.Context, id int64) (*auth.User, error)
}

// MediaUploader pushes an uploaded file to external media hosting and
// returns the public URL.
type MediaUploader interface {
	Upload(ctx context.Context, file multipart.File, filename string) (string, error)
}

// PostService holds post management logic.
type PostService struct {
	store   Store
	authors AuthorStore
	media   MediaUploader
	log     *logrus.Logger
}

// NewPostService creates a PostService. media may be nil when media
// hosting is not configured; creation with an attached image then fails.
func NewPostService(store Store, authors AuthorStore, media MediaUploader, log *logrus.Logger) *PostService {
	return &PostService{store: store, authors: authors, media: media, log: log}
}

// Create stores a new post. When an image accompanies the request it is
// uploaded first and the resulting URL persisted. The author's profile
// is read and embedded as a snapshot; the read and the insert are two
// separate operations, so a concurrent profile edit can land between
// them. The snapshot records whichever state the read saw.
func (s *PostService) Create(ctx context.Context, content string, authorID int64, image multipart.File, imageName string) (*Post, error) {
	var mediaURL *string
	if image != nil {
		if s.media == nil {
			return nil, apperror.NewExternalServiceError("media uploads are not configured", nil)
		}
		url, err := s.media.Upload(ctx, image, imageName)
		if err != nil {
			return nil, err
		}
		mediaURL = &url
	}

	author, err := s.authors.GetUser(ctx, authorID)
	if err != nil {
		return nil, err
	}

	post := &Post{
		PostContent: content,
		PostMedia:   mediaURL,
		UserID:      authorID,
		UserDetails: SnapshotOf(author),
	}
	created, err := s.store.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"postId": created.ID, "userId": authorID}).Info("post created")
	return created, nil
}

// Delete removes a post by id. A missing post is not an error; the
// returned post is nil and the caller reports success either way.
func (s *PostService) Delete(ctx context.Context, id int64) (*Post, error) {
	return s.store.DeletePost(ctx, id)
}

// Edit replaces a post's content.
func (s *PostService) Edit(ctx context.Context, id int64, content string) (*Post, error) {
	post, err := s.store.UpdateContent(ctx, id, content)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NewNotFoundError("Post not found", nil)
	}
	return post, nil
}

// LikeOrDislike toggles userID's membership in the post's like list and
// returns the message describing which direction the toggle took.
func (s *PostService) LikeOrDislike(ctx context.Context, postID, userID int64) (string, error) {
	post, err := s.store.GetPost(ctx, postID)
	if err != nil {
		return "", err
	}
	if post == nil {
		return "", apperror.NewNotFoundError("Post not found", nil)
	}

	for _, id := range post.Likes {
		if id == userID {
			if err := s.store.RemoveLike(ctx, postID, userID); err != nil {
				return "", err
			}
			return "User disliked your tweet", nil
		}
	}
	if err := s.store.AddLike(ctx, postID, userID); err != nil {
		return "", err
	}
	return "User liked your tweet", nil
}
