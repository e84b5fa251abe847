package repository

import (
	"context"

	"tickertalk/internal/models"

	"gorm.io/gorm"
)

// SymbolRepository reads ticker and sentiment reference data.
type SymbolRepository interface {
	GetByCode(ctx context.Context, code string) (*models.Symbol, error)
	ListActive(ctx context.Context) ([]*models.Symbol, error)
	ListSentiments(ctx context.Context) ([]*models.Sentiment, error)
}

type symbolRepository struct {
	db *gorm.DB
}

// NewSymbolRepository creates a new SymbolRepository
func NewSymbolRepository(db *gorm.DB) SymbolRepository {
	return &symbolRepository{db: db}
}

func (r *symbolRepository) GetByCode(ctx context.Context, code string) (*models.Symbol, error) {
	var symbol models.Symbol
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&symbol).Error; err != nil {
		return nil, classify(err, "Symbol", code)
	}
	return &symbol, nil
}

func (r *symbolRepository) ListActive(ctx context.Context) ([]*models.Symbol, error) {
	symbols := make([]*models.Symbol, 0)
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("code asc").Find(&symbols).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return symbols, nil
}

func (r *symbolRepository) ListSentiments(ctx context.Context) ([]*models.Sentiment, error) {
	sentiments := make([]*models.Sentiment, 0)
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Order("id asc").Find(&sentiments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return sentiments, nil
}
