// Package feed builds the three post listings: the personalized feed,
// the explore feed, and the unfiltered list. Ordering is whatever the
// storage returns; there is no pagination.
package feed

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/user/ripple-go/posts"
)

// FeedService assembles post listings.
type FeedService struct {
	store Store
	log   *logrus.Logger
}

// NewFeedService creates a FeedService.
func NewFeedService(store Store, log *logrus.Logger) *FeedService {
	return &FeedService{store: store, log: log}
}

// Personal returns the user's own posts together with the posts of
// every user they follow.
func (s *FeedService) Personal(ctx context.Context, userID int64) ([]posts.Post, error) {
	following, err := s.store.Following(ctx, userID)
	if err != nil {
		return nil, err
	}
	authorIDs := append([]int64{userID}, following...)
	return s.store.PostsByUsers(ctx, authorIDs)
}

// Explore returns every post not authored by the given user.
func (s *FeedService) Explore(ctx context.Context, userID int64) ([]posts.Post, error) {
	return s.store.PostsNotByUser(ctx, userID)
}

// All returns every post.
func (s *FeedService) All(ctx context.Context) ([]posts.Post, error) {
	return s.store.AllPosts(ctx)
}
