package repository

import (
	"context"

	"tickertalk/internal/models"
	"tickertalk/internal/observability"

	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id uint) (*models.Post, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.Post, error)
	ListBySymbolCode(ctx context.Context, code string) ([]*models.Post, error)
	ListWithDetails(ctx context.Context) ([]*models.Post, error)
	IncrementLikes(ctx context.Context, id uint) error
}

var postLog = observability.NewRepoLogger("posts")

// postRepository implements PostRepository
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return classify(err, "Post", post.ID)
	}
	postLog.LogCreate(ctx, map[string]interface{}{"id": post.ID, "user_id": post.UserID, "symbol_id": post.SymbolID})
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		return nil, classify(err, "Post", id)
	}
	return &post, nil
}

func (r *postRepository) ListByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	posts := make([]*models.Post, 0)
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id asc").Find(&posts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListBySymbolCode(ctx context.Context, code string) ([]*models.Post, error) {
	posts := make([]*models.Post, 0)
	err := r.db.WithContext(ctx).
		Joins("JOIN symbols ON symbols.id = posts.symbol_id").
		Where("symbols.code = ?", code).
		Order("posts.id asc").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

func (r *postRepository) ListWithDetails(ctx context.Context) ([]*models.Post, error) {
	posts := make([]*models.Post, 0)
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Symbol").
		Order("id asc").
		Find(&posts).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return posts, nil
}

// IncrementLikes bumps likes_count in a single statement so concurrent likes
// serialize on the row lock instead of racing a read-modify-write.
func (r *postRepository) IncrementLikes(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Post{}).
		Where("id = ?", id).
		UpdateColumn("likes_count", gorm.Expr("likes_count + ?", 1))
	if res.Error != nil {
		return classify(res.Error, "Post", id)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Post", id)
	}
	postLog.LogUpdate(ctx, map[string]interface{}{"id": id, "column": "likes_count"})
	return nil
}
