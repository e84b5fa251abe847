package service

import (
	"context"
	"errors"
	"testing"

	"tickertalk/internal/models"
	"tickertalk/internal/repository"
	"tickertalk/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errReadBack = errors.New("read after write: connection reset by peer")

// readFailingStore delegates to the real store but fails every GetByID,
// including those made through a transaction handle.
type readFailingStore struct {
	repository.Store
}

func (s readFailingStore) Posts() repository.PostRepository {
	return readFailingPosts{s.Store.Posts()}
}

func (s readFailingStore) Comments() repository.CommentRepository {
	return readFailingComments{s.Store.Comments()}
}

func (s readFailingStore) Users() repository.UserRepository {
	return readFailingUsers{s.Store.Users()}
}

func (s readFailingStore) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	return s.Store.Transaction(ctx, func(tx repository.Store) error {
		return fn(readFailingStore{tx})
	})
}

type readFailingPosts struct{ repository.PostRepository }

func (readFailingPosts) GetByID(context.Context, uint) (*models.Post, error) {
	return nil, errReadBack
}

type readFailingComments struct{ repository.CommentRepository }

func (readFailingComments) GetByID(context.Context, uint) (*models.Comment, error) {
	return nil, errReadBack
}

type readFailingUsers struct{ repository.UserRepository }

func (readFailingUsers) GetByID(context.Context, uint) (*models.User, error) {
	return nil, errReadBack
}

func TestLikePost_FailedReadBackRollsBackTheLike(t *testing.T) {
	t.Parallel()

	db, store := newTestStore(t)
	post := testutil.CreatePost(t, db, testutil.CreateUser(t, db, "flaky"), testutil.CreateSymbol(t, db, "NVDA"), "gpu")
	svc := NewPostService(readFailingStore{store})

	liked, err := svc.LikePost(context.Background(), post.ID)
	require.ErrorIs(t, err, errReadBack)
	assert.Nil(t, liked)

	var stored models.Post
	require.NoError(t, db.First(&stored, post.ID).Error)
	assert.Equal(t, 0, stored.LikesCount)
}

func TestAddComment_FailedReadBackStoresNothing(t *testing.T) {
	t.Parallel()

	db, store := newTestStore(t)
	user := testutil.CreateUser(t, db, "flaky")
	post := testutil.CreatePost(t, db, user, testutil.CreateSymbol(t, db, "META"), "vr")
	svc := NewCommentService(readFailingStore{store})

	comment, err := svc.AddComment(context.Background(), AddCommentInput{PostID: post.ID, UserID: user.ID, Content: "first"})
	require.ErrorIs(t, err, errReadBack)
	assert.Nil(t, comment)
	assert.Equal(t, int64(0), countRows(t, db, &models.Comment{}))
}

func TestUpdateScore_FailedReadBackKeepsPreviousScores(t *testing.T) {
	t.Parallel()

	db, store := newTestStore(t)
	user := testutil.CreateUser(t, db, "flaky")
	svc := NewUserService(readFailingStore{store})

	quality, reputation := 4.0, 90.0
	updated, err := svc.UpdateScore(context.Background(), user.ID, ScoreInput{PostQualityAvg: &quality, ReputationScore: &reputation})
	require.ErrorIs(t, err, errReadBack)
	assert.Nil(t, updated)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, models.DefaultReputationScore, stored.ReputationScore)
	assert.Equal(t, 0.0, stored.PostQualityAvg)
}
