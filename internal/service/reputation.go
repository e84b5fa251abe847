package service

import (
	"context"

	"tickertalk/internal/models"
	"tickertalk/internal/repository"
)

// ReputationAggregator keeps the derived counters on users and posts in step
// with post and like events. Every method runs against the caller's transaction.
type ReputationAggregator struct{}

// PostCreated adds exactly one to the owner's post_count.
func (ReputationAggregator) PostCreated(ctx context.Context, tx repository.Store, post *models.Post) error {
	return tx.Users().IncrementPostCount(ctx, post.UserID)
}

// PostLiked adds exactly one to the post's likes_count. No user aggregate changes.
func (ReputationAggregator) PostLiked(ctx context.Context, tx repository.Store, postID uint) error {
	return tx.Posts().IncrementLikes(ctx, postID)
}

// ApplyScore stores externally computed scores verbatim. Earlier values are
// overwritten, not averaged.
func (ReputationAggregator) ApplyScore(ctx context.Context, tx repository.Store, userID uint, score repository.ScoreUpdate) error {
	return tx.Users().ApplyScore(ctx, userID, score)
}
