package posts

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/auth"
)

// fakeStore keeps posts in a map; absent ids answer (nil, nil).
type fakeStore struct {
	posts  map[int64]*Post
	nextID int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{posts: make(map[int64]*Post), nextID: 1}
}

func (f *fakeStore) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	stored := *post
	stored.ID = f.nextID
	stored.Likes = []int64{}
	f.nextID++
	f.posts[stored.ID] = &stored
	copied := stored
	return &copied, nil
}

func (f *fakeStore) GetPost(ctx context.Context, id int64) (*Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	copied := *post
	copied.Likes = append([]int64{}, post.Likes...)
	return &copied, nil
}

func (f *fakeStore) DeletePost(ctx context.Context, id int64) (*Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	delete(f.posts, id)
	return post, nil
}

func (f *fakeStore) UpdateContent(ctx context.Context, id int64, content string) (*Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, nil
	}
	post.PostContent = content
	copied := *post
	return &copied, nil
}

func (f *fakeStore) AddLike(ctx context.Context, postID, userID int64) error {
	f.posts[postID].Likes = append(f.posts[postID].Likes, userID)
	return nil
}

func (f *fakeStore) RemoveLike(ctx context.Context, postID, userID int64) error {
	kept := []int64{}
	for _, id := range f.posts[postID].Likes {
		if id != userID {
			kept = append(kept, id)
		}
	}
	f.posts[postID].Likes = kept
	return nil
}

// fakeAuthors serves author profiles for snapshotting.
type fakeAuthors struct {
	users map[int64]*auth.User
}

func (f *fakeAuthors) GetUser(ctx context.Context, id int64) (*auth.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

// fakeUploader records the upload and hands back a fixed URL.
type fakeUploader struct {
	called   bool
	filename string
}

func (f *fakeUploader) Upload(ctx context.Context, file multipart.File, filename string) (string, error) {
	f.called = true
	f.filename = filename
	return "https://media.example/" + filename, nil
}

// memoryFile adapts a bytes.Reader to multipart.File.
type memoryFile struct {
	*bytes.Reader
}

func (memoryFile) Close() error { return nil }

func testService(store Store, authors AuthorStore, media MediaUploader) *PostService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewPostService(store, authors, media, logger)
}

func testAuthors() *fakeAuthors {
	return &fakeAuthors{users: map[int64]*auth.User{
		1: {ID: 1, Name: "alice", Username: "alice", Email: "alice@x.com", ProfileImage: "https://placehold.co/40"},
	}}
}

func TestCreateSnapshotsAuthor(t *testing.T) {
	authors := testAuthors()
	svc := testService(newFakeStore(), authors, nil)

	created, err := svc.Create(context.Background(), "hello", 1, nil, "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.UserDetails == nil || created.UserDetails.Username != "alice" {
		t.Fatalf("UserDetails = %+v, want alice snapshot", created.UserDetails)
	}
	if created.PostMedia != nil {
		t.Errorf("PostMedia = %v, want nil", *created.PostMedia)
	}

	// The embedded snapshot is a copy taken at creation time. A later
	// profile edit must not show through.
	authors.users[1].Username = "renamed"
	if created.UserDetails.Username != "alice" {
		t.Errorf("snapshot username = %q, want alice", created.UserDetails.Username)
	}
}

func TestCreateWithImage(t *testing.T) {
	uploader := &fakeUploader{}
	svc := testService(newFakeStore(), testAuthors(), uploader)

	file := memoryFile{bytes.NewReader([]byte("png bytes"))}
	created, err := svc.Create(context.Background(), "with image", 1, file, "cat.png")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !uploader.called {
		t.Fatal("uploader was not called")
	}
	if created.PostMedia == nil || *created.PostMedia != "https://media.example/cat.png" {
		t.Errorf("PostMedia = %v, want upload URL", created.PostMedia)
	}
}

func TestCreateWithImageWithoutUploader(t *testing.T) {
	svc := testService(newFakeStore(), testAuthors(), nil)

	file := memoryFile{bytes.NewReader([]byte("png bytes"))}
	_, err := svc.Create(context.Background(), "with image", 1, file, "cat.png")
	if err == nil {
		t.Fatal("Create() with image but no uploader succeeded")
	}
}

func TestLikeToggle(t *testing.T) {
	store := newFakeStore()
	svc := testService(store, testAuthors(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "likeable", 1, nil, "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	msg, err := svc.LikeOrDislike(ctx, created.ID, 2)
	if err != nil {
		t.Fatalf("LikeOrDislike() error = %v", err)
	}
	if msg != "User liked your tweet" {
		t.Errorf("like message = %q", msg)
	}
	if got := store.posts[created.ID].Likes; len(got) != 1 || got[0] != 2 {
		t.Errorf("likes = %v, want [2]", got)
	}

	msg, err = svc.LikeOrDislike(ctx, created.ID, 2)
	if err != nil {
		t.Fatalf("LikeOrDislike() error = %v", err)
	}
	if msg != "User disliked your tweet" {
		t.Errorf("dislike message = %q", msg)
	}
	if got := store.posts[created.ID].Likes; len(got) != 0 {
		t.Errorf("likes = %v, want empty", got)
	}
}

func TestLikeMissingPost(t *testing.T) {
	svc := testService(newFakeStore(), testAuthors(), nil)

	_, err := svc.LikeOrDislike(context.Background(), 42, 1)
	if !apperror.IsNotFound(err) {
		t.Fatalf("LikeOrDislike() error = %v, want not found", err)
	}
}

func TestDeleteMissingPostIsSilent(t *testing.T) {
	svc := testService(newFakeStore(), testAuthors(), nil)

	post, err := svc.Delete(context.Background(), 42)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if post != nil {
		t.Errorf("Delete() = %+v, want nil", post)
	}
}

func TestEditAfterDelete(t *testing.T) {
	store := newFakeStore()
	svc := testService(store, testAuthors(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "ephemeral", 1, nil, "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err = svc.Edit(ctx, created.ID, "too late")
	if !apperror.IsNotFound(err) {
		t.Fatalf("Edit() after delete error = %v, want not found", err)
	}
}

func TestEdit(t *testing.T) {
	store := newFakeStore()
	svc := testService(store, testAuthors(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, "before", 1, nil, "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	updated, err := svc.Edit(ctx, created.ID, "after")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if updated.PostContent != "after" {
		t.Errorf("PostContent = %q, want %q", updated.PostContent, "after")
	}
}
