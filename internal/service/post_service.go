package service

import (
	"context"
	"strings"
	"unicode/utf8"

	"tickertalk/internal/models"
	"tickertalk/internal/observability"
	"tickertalk/internal/repository"

	"go.opentelemetry.io/otel/attribute"
)

const maxSentimentLen = 10

type PostService struct {
	store      repository.Store
	reputation ReputationAggregator
}

type CreatePostInput struct {
	UserID          uint
	Content         string
	Sentiment       string
	SentimentScore  int
	SymbolCode      string
	ImageAttachment *string
}

func NewPostService(store repository.Store) *PostService {
	return &PostService{store: store}
}

// CreatePost inserts the post and bumps the owner's post_count in one transaction.
// The returned post carries its user and symbol.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (post *models.Post, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService.CreatePost")
	defer func() { observability.EndSpan(span, err) }()

	content := strings.TrimSpace(in.Content)
	code := strings.ToUpper(strings.TrimSpace(in.SymbolCode))
	sentiment := strings.TrimSpace(in.Sentiment)

	if content == "" {
		return nil, models.NewValidationError("Content is required")
	}
	if in.UserID == 0 {
		return nil, models.NewValidationError("userId is required")
	}
	if code == "" {
		return nil, models.NewValidationError("symbol is required")
	}
	if utf8.RuneCountInString(sentiment) > maxSentimentLen {
		return nil, models.NewValidationError("sentiment too long (max 10 characters)")
	}

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		symbol, err := tx.Symbols().GetByCode(ctx, code)
		if err != nil {
			return err
		}
		user, err := tx.Users().GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		post = &models.Post{
			Content:         content,
			Sentiment:       sentiment,
			SentimentScore:  in.SentimentScore,
			ImageAttachment: in.ImageAttachment,
			UserID:          user.ID,
			SymbolID:        symbol.ID,
		}
		if err := tx.Posts().Create(ctx, post); err != nil {
			return err
		}
		if err := s.reputation.PostCreated(ctx, tx, post); err != nil {
			return err
		}
		post.User = user
		post.Symbol = symbol
		return nil
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("post.id", int64(post.ID)))
	observability.RecordEngagement(observability.EventPostCreated)
	return post, nil
}

// ListPostsByUser returns the user's posts. An unknown user yields an empty list.
func (s *PostService) ListPostsByUser(ctx context.Context, userID uint) ([]*models.Post, error) {
	return s.store.Posts().ListByUser(ctx, userID)
}

func (s *PostService) ListPostsBySymbol(ctx context.Context, code string) ([]*models.Post, error) {
	return s.store.Posts().ListBySymbolCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
}

// ListAllPosts returns every post with its author and symbol.
func (s *PostService) ListAllPosts(ctx context.Context) ([]*models.PostDetail, error) {
	posts, err := s.store.Posts().ListWithDetails(ctx)
	if err != nil {
		return nil, err
	}
	details := make([]*models.PostDetail, 0, len(posts))
	for _, p := range posts {
		details = append(details, p.Detail())
	}
	return details, nil
}

// LikePost increments likes_count atomically and returns the post as read in
// the same transaction, so a failed read rolls the like back.
func (s *PostService) LikePost(ctx context.Context, postID uint) (post *models.Post, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService.LikePost",
		attribute.Int64("post.id", int64(postID)))
	defer func() { observability.EndSpan(span, err) }()

	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := s.reputation.PostLiked(ctx, tx, postID); err != nil {
			return err
		}
		post, err = tx.Posts().GetByID(ctx, postID)
		return err
	})
	if err != nil {
		return nil, err
	}
	observability.RecordEngagement(observability.EventPostLiked)
	return post, nil
}
