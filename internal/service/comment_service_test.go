package service

import (
	"context"
	"testing"

	"tickertalk/internal/models"
	"tickertalk/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService_AddComment_Validation(t *testing.T) {
	t.Parallel()

	db, store := newTestStore(t)
	svc := NewCommentService(store)
	ctx := context.Background()

	t.Run("empty content", func(t *testing.T) {
		_, err := svc.AddComment(ctx, AddCommentInput{PostID: 1, UserID: 1, Content: " "})
		assertValidationError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := svc.AddComment(ctx, AddCommentInput{PostID: 1, Content: "hi"})
		assertValidationError(t, err)
	})

	assert.Zero(t, countRows(t, db, &models.Comment{}))
}

func TestCommentService_AddComment_ForeignKeysSurfaceAsNotFound(t *testing.T) {
	t.Parallel()

	db, store := newTestStore(t)
	user := testutil.CreateUser(t, db, "fk")
	post := testutil.CreatePost(t, db, user, testutil.CreateSymbol(t, db, "AAPL"), "p")
	svc := NewCommentService(store)
	ctx := context.Background()

	_, err := svc.AddComment(ctx, AddCommentInput{PostID: 5555, UserID: user.ID, Content: "hi"})
	assertNotFoundError(t, err)

	_, err = svc.AddComment(ctx, AddCommentInput{PostID: post.ID, UserID: 5555, Content: "hi"})
	assertNotFoundError(t, err)

	missingParent := uint(5555)
	_, err = svc.AddComment(ctx, AddCommentInput{PostID: post.ID, UserID: user.ID, Content: "hi", ParentID: &missingParent})
	assertNotFoundError(t, err)

	assert.Zero(t, countRows(t, db, &models.Comment{}))
}

func TestCommentService_AddComment_AllowsParentFromAnotherPost(t *testing.T) {
	t.Parallel()

	db, store := newTestStore(t)
	user := testutil.CreateUser(t, db, "xpost")
	symbol := testutil.CreateSymbol(t, db, "MSFT")
	first := testutil.CreatePost(t, db, user, symbol, "first")
	second := testutil.CreatePost(t, db, user, symbol, "second")
	parent := testutil.CreateComment(t, db, first, user, nil, "on first")
	svc := NewCommentService(store)

	reply, err := svc.AddComment(context.Background(), AddCommentInput{
		PostID:   second.ID,
		UserID:   user.ID,
		Content:  "on second, replying to first",
		ParentID: &parent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, second.ID, reply.PostID)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
}

func TestCommentService_GetCommentsForPost_OneLevelOnly(t *testing.T) {
	t.Parallel()

	db, store := newTestStore(t)
	user := testutil.CreateUser(t, db, "threads")
	post := testutil.CreatePost(t, db, user, testutil.CreateSymbol(t, db, "TSLA"), "p")
	svc := NewCommentService(store)
	ctx := context.Background()

	a, err := svc.AddComment(ctx, AddCommentInput{PostID: post.ID, UserID: user.ID, Content: "A"})
	require.NoError(t, err)
	b, err := svc.AddComment(ctx, AddCommentInput{PostID: post.ID, UserID: user.ID, Content: "B"})
	require.NoError(t, err)
	c, err := svc.AddComment(ctx, AddCommentInput{PostID: post.ID, UserID: user.ID, Content: "C", ParentID: &a.ID})
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, AddCommentInput{PostID: post.ID, UserID: user.ID, Content: "D", ParentID: &c.ID})
	require.NoError(t, err)

	threads, err := svc.GetCommentsForPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, threads, 2)

	assert.Equal(t, a.ID, threads[0].Comment.ID)
	require.Len(t, threads[0].Replies, 1)
	assert.Equal(t, c.ID, threads[0].Replies[0].ID)

	assert.Equal(t, b.ID, threads[1].Comment.ID)
	assert.NotNil(t, threads[1].Replies)
	assert.Empty(t, threads[1].Replies)
}

func TestCommentService_GetCommentsForPost_EmptyAndMissing(t *testing.T) {
	t.Parallel()

	db, store := newTestStore(t)
	post := testutil.CreatePost(t, db, testutil.CreateUser(t, db, "quiet"), testutil.CreateSymbol(t, db, "AMZN"), "p")
	svc := NewCommentService(store)
	ctx := context.Background()

	threads, err := svc.GetCommentsForPost(ctx, post.ID)
	require.NoError(t, err)
	assert.NotNil(t, threads)
	assert.Empty(t, threads)

	_, err = svc.GetCommentsForPost(ctx, 777)
	assertNotFoundError(t, err)
}

func TestCommentService_GetRepliesForComment_FullDepth(t *testing.T) {
	t.Parallel()

	db, store := newTestStore(t)
	user := testutil.CreateUser(t, db, "deep")
	post := testutil.CreatePost(t, db, user, testutil.CreateSymbol(t, db, "NVDA"), "p")
	a := testutil.CreateComment(t, db, post, user, nil, "A")
	c := testutil.CreateComment(t, db, post, user, a, "C")
	d := testutil.CreateComment(t, db, post, user, c, "D")
	svc := NewCommentService(store)
	ctx := context.Background()

	nodes, err := svc.GetRepliesForComment(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, c.ID, nodes[0].Comment.ID)
	require.Len(t, nodes[0].Replies, 1)
	assert.Equal(t, d.ID, nodes[0].Replies[0].Comment.ID)
	assert.NotNil(t, nodes[0].Replies[0].Replies)
	assert.Empty(t, nodes[0].Replies[0].Replies)

	leaf, err := svc.GetRepliesForComment(ctx, d.ID)
	require.NoError(t, err)
	assert.NotNil(t, leaf)
	assert.Empty(t, leaf)

	_, err = svc.GetRepliesForComment(ctx, 31337)
	assertNotFoundError(t, err)
}
