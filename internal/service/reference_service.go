package service

import (
	"context"

	"tickertalk/internal/models"
	"tickertalk/internal/repository"
)

// ReferenceService serves the ticker and sentiment lists clients pick from.
type ReferenceService struct {
	store repository.Store
}

func NewReferenceService(store repository.Store) *ReferenceService {
	return &ReferenceService{store: store}
}

func (s *ReferenceService) ListSymbols(ctx context.Context) ([]*models.Symbol, error) {
	return s.store.Symbols().ListActive(ctx)
}

func (s *ReferenceService) ListSentiments(ctx context.Context) ([]*models.Sentiment, error) {
	return s.store.Symbols().ListSentiments(ctx)
}
