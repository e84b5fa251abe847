package service

import (
	"context"

	"tickertalk/internal/models"
	"tickertalk/internal/repository"
)

// CommentTreeBuilder materializes comment threads from parent_id lookups.
type CommentTreeBuilder struct {
	comments repository.CommentRepository
}

func NewCommentTreeBuilder(comments repository.CommentRepository) *CommentTreeBuilder {
	return &CommentTreeBuilder{comments: comments}
}

// ThreadsForPost pairs each root comment of the post with its direct replies.
// Grandchildren are not included.
func (b *CommentTreeBuilder) ThreadsForPost(ctx context.Context, postID uint) ([]*models.CommentThread, error) {
	roots, err := b.comments.ListRootsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	threads := make([]*models.CommentThread, 0, len(roots))
	for _, root := range roots {
		replies, err := b.comments.ListByParent(ctx, root.ID)
		if err != nil {
			return nil, err
		}
		views := make([]*models.CommentView, 0, len(replies))
		for _, reply := range replies {
			views = append(views, reply.View())
		}
		threads = append(threads, &models.CommentThread{Comment: root.View(), Replies: views})
	}
	return threads, nil
}

// RepliesFor returns the replies of a comment, each carrying its own replies
// down to the leaves.
func (b *CommentTreeBuilder) RepliesFor(ctx context.Context, commentID uint) ([]*models.CommentNode, error) {
	return b.replies(ctx, commentID, map[uint]bool{commentID: true})
}

func (b *CommentTreeBuilder) replies(ctx context.Context, parentID uint, seen map[uint]bool) ([]*models.CommentNode, error) {
	children, err := b.comments.ListByParent(ctx, parentID)
	if err != nil {
		return nil, err
	}

	nodes := make([]*models.CommentNode, 0, len(children))
	for _, child := range children {
		// parent_id rows are acyclic when written through AddComment; guard hand-edited data
		if seen[child.ID] {
			continue
		}
		seen[child.ID] = true

		sub, err := b.replies(ctx, child.ID, seen)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, &models.CommentNode{Comment: child.View(), Replies: sub})
	}
	return nodes, nil
}
