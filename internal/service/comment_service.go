package service

import (
	"context"
	"strings"

	"tickertalk/internal/models"
	"tickertalk/internal/observability"
	"tickertalk/internal/repository"
)

type CommentService struct {
	store repository.Store
	tree  *CommentTreeBuilder
}

type AddCommentInput struct {
	PostID   uint
	UserID   uint
	Content  string
	ParentID *uint
}

func NewCommentService(store repository.Store) *CommentService {
	return &CommentService{
		store: store,
		tree:  NewCommentTreeBuilder(store.Comments()),
	}
}

// AddComment stores a comment or reply. Missing posts, users or parents are
// reported by the foreign keys and surface as NOT_FOUND. The parent is not
// required to belong to the same post.
func (s *CommentService) AddComment(ctx context.Context, in AddCommentInput) (comment *models.Comment, err error) {
	ctx, span := observability.StartSpan(ctx, "CommentService.AddComment")
	defer func() { observability.EndSpan(span, err) }()

	content := strings.TrimSpace(in.Content)
	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("userId is required")
	}
	if in.PostID == 0 {
		return nil, models.NewValidationError("post id is required")
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		created := &models.Comment{
			Content:  content,
			PostID:   in.PostID,
			UserID:   in.UserID,
			ParentID: in.ParentID,
			IsActive: true,
		}
		if err := tx.Comments().Create(ctx, created); err != nil {
			return err
		}
		comment, err = tx.Comments().GetByID(ctx, created.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	observability.RecordEngagement(observability.EventCommentAdded)
	return comment, nil
}

// GetCommentsForPost returns the post's root comments with one level of replies.
func (s *CommentService) GetCommentsForPost(ctx context.Context, postID uint) ([]*models.CommentThread, error) {
	if _, err := s.store.Posts().GetByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.tree.ThreadsForPost(ctx, postID)
}

// GetRepliesForComment returns the full reply subtree below the comment.
func (s *CommentService) GetRepliesForComment(ctx context.Context, commentID uint) ([]*models.CommentNode, error) {
	if _, err := s.store.Comments().GetByID(ctx, commentID); err != nil {
		return nil, err
	}
	return s.tree.RepliesFor(ctx, commentID)
}
