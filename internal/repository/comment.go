package repository

import (
	"context"

	"tickertalk/internal/models"
	"tickertalk/internal/observability"

	"gorm.io/gorm"
)

// CommentRepository defines interface for comment operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListRootsByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	ListByParent(ctx context.Context, parentID uint) ([]*models.Comment, error)
}

var commentLog = observability.NewRepoLogger("comments")

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return classify(err, "Comment", comment.ID)
	}
	commentLog.LogCreate(ctx, map[string]interface{}{"id": comment.ID, "post_id": comment.PostID, "parent_id": comment.ParentID})
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error; err != nil {
		return nil, classify(err, "Comment", id)
	}
	return &comment, nil
}

func (r *commentRepository) ListRootsByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	err := r.db.WithContext(ctx).Preload("User").
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("id asc").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) ListByParent(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	comments := make([]*models.Comment, 0)
	err := r.db.WithContext(ctx).Preload("User").
		Where("parent_id = ?", parentID).
		Order("id asc").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}
