package users

import (
	"context"
	"io"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/auth"
)

// fakeStore is an in-memory Store keyed by user id. List mutations
// mirror the SQL semantics: append keeps duplicates, remove drops every
// occurrence.
type fakeStore struct {
	users map[int64]*auth.User
}

func newFakeStore(users ...*auth.User) *fakeStore {
	f := &fakeStore{users: make(map[int64]*auth.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeStore) GetUser(ctx context.Context, id int64) (*auth.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	copied.Followers = append([]int64{}, user.Followers...)
	copied.Following = append([]int64{}, user.Following...)
	copied.Bookmarks = append([]int64{}, user.Bookmarks...)
	return &copied, nil
}

func (f *fakeStore) ListUsersExcept(ctx context.Context, id int64) ([]auth.User, error) {
	list := []auth.User{}
	for _, u := range f.users {
		if u.ID != id {
			list = append(list, *u)
		}
	}
	return list, nil
}

func (f *fakeStore) SetProfileImage(ctx context.Context, id int64, imageURL string) (*auth.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	user.ProfileImage = imageURL
	copied := *user
	return &copied, nil
}

func removeAll(ids []int64, id int64) []int64 {
	out := []int64{}
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

func (f *fakeStore) AddFollower(ctx context.Context, targetID, followerID int64) error {
	f.users[targetID].Followers = append(f.users[targetID].Followers, followerID)
	return nil
}

func (f *fakeStore) RemoveFollower(ctx context.Context, targetID, followerID int64) error {
	f.users[targetID].Followers = removeAll(f.users[targetID].Followers, followerID)
	return nil
}

func (f *fakeStore) AddFollowing(ctx context.Context, userID, targetID int64) error {
	f.users[userID].Following = append(f.users[userID].Following, targetID)
	return nil
}

func (f *fakeStore) RemoveFollowing(ctx context.Context, userID, targetID int64) error {
	f.users[userID].Following = removeAll(f.users[userID].Following, targetID)
	return nil
}

func (f *fakeStore) AddBookmark(ctx context.Context, userID, postID int64) error {
	f.users[userID].Bookmarks = append(f.users[userID].Bookmarks, postID)
	return nil
}

func (f *fakeStore) RemoveBookmark(ctx context.Context, userID, postID int64) error {
	f.users[userID].Bookmarks = removeAll(f.users[userID].Bookmarks, postID)
	return nil
}

func testUser(id int64, name string) *auth.User {
	return &auth.User{
		ID:        id,
		Name:      name,
		Username:  name,
		Email:     name + "@x.com",
		Followers: []int64{},
		Following: []int64{},
		Bookmarks: []int64{},
	}
}

func testService(store Store) *UserService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewUserService(store, logger)
}

func TestFollowToggle(t *testing.T) {
	alice := testUser(1, "alice")
	bob := testUser(2, "bob")
	store := newFakeStore(alice, bob)
	svc := testService(store)
	ctx := context.Background()

	msg, err := svc.FollowUnfollow(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("FollowUnfollow() error = %v", err)
	}
	if msg != "alice just followed bob" {
		t.Errorf("follow message = %q", msg)
	}
	if !reflect.DeepEqual(store.users[bob.ID].Followers, []int64{1}) {
		t.Errorf("bob followers = %v, want [1]", store.users[bob.ID].Followers)
	}
	if !reflect.DeepEqual(store.users[alice.ID].Following, []int64{2}) {
		t.Errorf("alice following = %v, want [2]", store.users[alice.ID].Following)
	}

	// Second application restores both sides of the graph.
	msg, err = svc.FollowUnfollow(ctx, alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("FollowUnfollow() error = %v", err)
	}
	if msg != "alice unfollowed bob" {
		t.Errorf("unfollow message = %q", msg)
	}
	if len(store.users[bob.ID].Followers) != 0 {
		t.Errorf("bob followers = %v, want empty", store.users[bob.ID].Followers)
	}
	if len(store.users[alice.ID].Following) != 0 {
		t.Errorf("alice following = %v, want empty", store.users[alice.ID].Following)
	}
}

func TestFollowUnknownUser(t *testing.T) {
	alice := testUser(1, "alice")
	svc := testService(newFakeStore(alice))

	_, err := svc.FollowUnfollow(context.Background(), alice.ID, 99)
	if !apperror.IsNotFound(err) {
		t.Fatalf("FollowUnfollow() error = %v, want not found", err)
	}
}

func TestBookmarkToggle(t *testing.T) {
	alice := testUser(1, "alice")
	store := newFakeStore(alice)
	svc := testService(store)
	ctx := context.Background()

	msg, err := svc.ToggleBookmark(ctx, alice.ID, 7)
	if err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}
	if msg != "User bookmarked your tweet" {
		t.Errorf("bookmark message = %q", msg)
	}
	if !reflect.DeepEqual(store.users[alice.ID].Bookmarks, []int64{7}) {
		t.Errorf("bookmarks = %v, want [7]", store.users[alice.ID].Bookmarks)
	}

	msg, err = svc.ToggleBookmark(ctx, alice.ID, 7)
	if err != nil {
		t.Fatalf("ToggleBookmark() error = %v", err)
	}
	if msg != "User unsaved your tweet" {
		t.Errorf("unsave message = %q", msg)
	}
	if len(store.users[alice.ID].Bookmarks) != 0 {
		t.Errorf("bookmarks = %v, want empty", store.users[alice.ID].Bookmarks)
	}
}

func TestOtherUsersExcludesSelf(t *testing.T) {
	alice := testUser(1, "alice")
	bob := testUser(2, "bob")
	carol := testUser(3, "carol")
	svc := testService(newFakeStore(alice, bob, carol))

	list, err := svc.OtherUsers(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("OtherUsers() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("OtherUsers() returned %d users, want 2", len(list))
	}
	for _, u := range list {
		if u.ID == alice.ID {
			t.Errorf("listing includes the excluded user %d", u.ID)
		}
	}
}

func TestUpdateProfileImage(t *testing.T) {
	alice := testUser(1, "alice")
	store := newFakeStore(alice)
	svc := testService(store)

	user, err := svc.UpdateProfileImage(context.Background(), alice.ID, "https://img.example/new.png")
	if err != nil {
		t.Fatalf("UpdateProfileImage() error = %v", err)
	}
	if user.ProfileImage != "https://img.example/new.png" {
		t.Errorf("profileImage = %q", user.ProfileImage)
	}

	_, err = svc.UpdateProfileImage(context.Background(), 99, "https://img.example/new.png")
	if !apperror.IsNotFound(err) {
		t.Fatalf("UpdateProfileImage() for unknown user error = %v, want not found", err)
	}
}
