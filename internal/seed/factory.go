package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"tickertalk/internal/models"
	"tickertalk/internal/repository"
	"tickertalk/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DemoPassword is the password every generated user gets.
const DemoPassword = "password123"

var demoSentiments = []string{"Bullish", "Bearish", "Neutral"}

// ErrNoSymbols is returned when demo content is requested before reference data exists.
var ErrNoSymbols = errors.New("no active symbols; seed reference data first")

// Options controls how much demo content Demo generates.
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	NumLikes    int
}

// Summary counts what Demo created.
type Summary struct {
	Users    int
	Posts    int
	Comments int
	Likes    int
}

// Factory creates demo entities through the service layer so that derived
// counters stay consistent with the rows they count.
type Factory struct {
	users     *service.UserService
	posts     *service.PostService
	comments  *service.CommentService
	reference *service.ReferenceService
	faker     *gofakeit.Faker
}

// NewFactory creates a Factory bound to store. A zero seed draws a random one.
func NewFactory(store repository.Store, seed int64) *Factory {
	return &Factory{
		users:     service.NewUserService(store),
		posts:     service.NewPostService(store),
		comments:  service.NewCommentService(store),
		reference: service.NewReferenceService(store),
		faker:     gofakeit.New(seed),
	}
}

// User registers a user with a generated profile.
func (f *Factory) User(ctx context.Context) (*models.User, error) {
	first, last := f.faker.FirstName(), f.faker.LastName()
	handle := strings.ToLower(first + "_" + last)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	username := fmt.Sprintf("%s_%s", handle, suffix)
	if len(username) > 64 {
		username = username[len(username)-64:]
	}
	picture := fmt.Sprintf("https://i.pravatar.cc/150?u=%s", username)

	return f.users.CreateUser(ctx, service.CreateUserInput{
		Username:       username,
		Password:       DemoPassword,
		FirstName:      first,
		LastName:       last,
		Email:          username + "@example.com",
		ProfilePicture: &picture,
	})
}

// Post creates a post by user about the symbol with a random sentiment.
func (f *Factory) Post(ctx context.Context, user *models.User, symbolCode string) (*models.Post, error) {
	in := service.CreatePostInput{
		UserID:         user.ID,
		Content:        fmt.Sprintf("$%s %s", symbolCode, f.faker.Sentence(12)),
		Sentiment:      f.faker.RandomString(demoSentiments),
		SentimentScore: f.faker.IntRange(0, 100),
		SymbolCode:     symbolCode,
	}
	if f.faker.Float32Range(0, 1) < 0.3 {
		image := fmt.Sprintf("https://picsum.photos/seed/%s/800/600", f.faker.UUID())
		in.ImageAttachment = &image
	}
	return f.posts.CreatePost(ctx, in)
}

// Comment adds a comment by user to post; parent may be nil for a root comment.
func (f *Factory) Comment(ctx context.Context, post *models.Post, user *models.User, parent *models.Comment) (*models.Comment, error) {
	in := service.AddCommentInput{
		PostID:  post.ID,
		UserID:  user.ID,
		Content: f.faker.Sentence(8),
	}
	if parent != nil {
		in.ParentID = &parent.ID
	}
	return f.comments.AddComment(ctx, in)
}

// Like records one like on post.
func (f *Factory) Like(ctx context.Context, post *models.Post) error {
	_, err := f.posts.LikePost(ctx, post.ID)
	return err
}

// Demo generates users, posts, threaded comments and likes. Reference data
// must already be present.
func (f *Factory) Demo(ctx context.Context, opts Options) (*Summary, error) {
	symbols, err := f.reference.ListSymbols(ctx)
	if err != nil {
		return nil, err
	}
	if len(symbols) == 0 {
		return nil, ErrNoSymbols
	}

	summary := &Summary{}
	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		u, err := f.User(ctx)
		if err != nil {
			return summary, fmt.Errorf("create user: %w", err)
		}
		users = append(users, u)
		summary.Users++
	}
	if len(users) == 0 {
		return summary, nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[f.faker.IntRange(0, len(users)-1)]
		symbol := symbols[f.faker.IntRange(0, len(symbols)-1)]
		p, err := f.Post(ctx, author, symbol.Code)
		if err != nil {
			return summary, fmt.Errorf("create post: %w", err)
		}
		posts = append(posts, p)
		summary.Posts++
	}
	if len(posts) == 0 {
		return summary, nil
	}

	// Roughly half of the comments reply to an earlier comment on the same post.
	byPost := make(map[uint][]*models.Comment)
	for i := 0; i < opts.NumComments; i++ {
		post := posts[f.faker.IntRange(0, len(posts)-1)]
		author := users[f.faker.IntRange(0, len(users)-1)]
		var parent *models.Comment
		if existing := byPost[post.ID]; len(existing) > 0 && f.faker.Bool() {
			parent = existing[f.faker.IntRange(0, len(existing)-1)]
		}
		c, err := f.Comment(ctx, post, author, parent)
		if err != nil {
			return summary, fmt.Errorf("create comment: %w", err)
		}
		byPost[post.ID] = append(byPost[post.ID], c)
		summary.Comments++
	}

	for i := 0; i < opts.NumLikes; i++ {
		if err := f.Like(ctx, posts[f.faker.IntRange(0, len(posts)-1)]); err != nil {
			return summary, fmt.Errorf("like post: %w", err)
		}
		summary.Likes++
	}

	slog.InfoContext(ctx, "demo data generated",
		slog.Int("users", summary.Users),
		slog.Int("posts", summary.Posts),
		slog.Int("comments", summary.Comments),
		slog.Int("likes", summary.Likes),
	)
	return summary, nil
}

// Clear deletes all users, posts and comments. Reference data is kept.
func Clear(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
			if err := tx.Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
