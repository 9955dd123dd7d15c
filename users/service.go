// Package users covers profile reads and updates plus the social graph:
// follow/unfollow and bookmark toggles against the users table.
package users

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/user/ripple-go/apperror"
	"github.com/user/ripple-go/auth"
)

// UserService holds the profile and social-graph logic.
type UserService struct {
	store Store
	log   *logrus.Logger
}

// NewUserService creates a UserService.
func NewUserService(store Store, log *logrus.Logger) *UserService {
	return &UserService{store: store, log: log}
}

// GetProfile returns a user by id, or nil when absent. The caller
// serializes nil as a null user rather than answering 404.
func (s *UserService) GetProfile(ctx context.Context, id int64) (*auth.User, error) {
	return s.store.GetUser(ctx, id)
}

// OtherUsers lists every user except the given id.
func (s *UserService) OtherUsers(ctx context.Context, excludeID int64) ([]auth.User, error) {
	return s.store.ListUsersExcept(ctx, excludeID)
}

// UpdateProfileImage replaces the avatar URL.
func (s *UserService) UpdateProfileImage(ctx context.Context, id int64, imageURL string) (*auth.User, error) {
	user, err := s.store.SetProfileImage(ctx, id, imageURL)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User not found", nil)
	}
	return user, nil
}

// FollowUnfollow toggles the follow edge between actor and target.
// Membership in the target's followers list decides the direction. The
// two list updates are independent writes; an interleaved concurrent
// toggle can leave the graph asymmetric. That is the documented contract
// of this operation, not an oversight.
func (s *UserService) FollowUnfollow(ctx context.Context, actorID, targetID int64) (string, error) {
	target, err := s.store.GetUser(ctx, targetID)
	if err != nil {
		return "", err
	}
	actor, err := s.store.GetUser(ctx, actorID)
	if err != nil {
		return "", err
	}
	if target == nil || actor == nil {
		return "", apperror.NewNotFoundError("User not found", nil)
	}

	if containsID(target.Followers, actorID) {
		if err := s.store.RemoveFollower(ctx, targetID, actorID); err != nil {
			return "", err
		}
		if err := s.store.RemoveFollowing(ctx, actorID, targetID); err != nil {
			return "", err
		}
		s.log.WithFields(logrus.Fields{"actor": actorID, "target": targetID}).Info("unfollowed")
		return fmt.Sprintf("%s unfollowed %s", actor.Name, target.Name), nil
	}

	if err := s.store.AddFollower(ctx, targetID, actorID); err != nil {
		return "", err
	}
	if err := s.store.AddFollowing(ctx, actorID, targetID); err != nil {
		return "", err
	}
	s.log.WithFields(logrus.Fields{"actor": actorID, "target": targetID}).Info("followed")
	return fmt.Sprintf("%s just followed %s", actor.Name, target.Name), nil
}

// ToggleBookmark adds or removes a post from the user's bookmarks,
// keyed on current membership.
func (s *UserService) ToggleBookmark(ctx context.Context, userID, postID int64) (string, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", apperror.NewNotFoundError("User not found", nil)
	}

	if containsID(user.Bookmarks, postID) {
		if err := s.store.RemoveBookmark(ctx, userID, postID); err != nil {
			return "", err
		}
		return "User unsaved your tweet", nil
	}
	if err := s.store.AddBookmark(ctx, userID, postID); err != nil {
		return "", err
	}
	return "User bookmarked your tweet", nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
