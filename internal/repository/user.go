package repository

import (
	"context"
	"errors"

	"tickertalk/internal/models"
	"tickertalk/internal/observability"

	"gorm.io/gorm"
)

// ScoreUpdate carries externally computed reputation values.
type ScoreUpdate struct {
	PostQualityAvg  float64
	ReputationScore float64
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	IncrementPostCount(ctx context.Context, id uint) error
	ApplyScore(ctx context.Context, id uint, score ScoreUpdate) error
}

var userLog = observability.NewRepoLogger("users")

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, classify(err, "User", id)
	}
	return &user, nil
}

// FindByUsername returns (nil, nil) when no user has the username.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return classify(err, "User", user.Username)
	}
	userLog.LogCreate(ctx, map[string]interface{}{"id": user.ID, "username": user.Username})
	return nil
}

func (r *userRepository) IncrementPostCount(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		UpdateColumn("post_count", gorm.Expr("post_count + ?", 1))
	if res.Error != nil {
		return classify(res.Error, "User", id)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	userLog.LogUpdate(ctx, map[string]interface{}{"id": id, "column": "post_count"})
	return nil
}

// ApplyScore overwrites both reputation fields with the supplied values.
func (r *userRepository) ApplyScore(ctx context.Context, id uint, score ScoreUpdate) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"post_quality_avg": score.PostQualityAvg,
			"reputation_score": score.ReputationScore,
		})
	if res.Error != nil {
		return classify(res.Error, "User", id)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	userLog.LogUpdate(ctx, map[string]interface{}{"id": id, "columns": "post_quality_avg,reputation_score"})
	return nil
}
