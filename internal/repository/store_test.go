package repository

import (
	"context"
	"errors"
	"testing"

	"tickertalk/internal/models"
	"tickertalk/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_TransactionRollsBackEveryWrite(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	store := NewStore(db)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "alice")
	symbol := testutil.CreateSymbol(t, db, "AAPL")

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx Store) error {
		post := &models.Post{Content: "to the moon", UserID: user.ID, SymbolID: symbol.ID}
		require.NoError(t, tx.Posts().Create(ctx, post))
		require.NoError(t, tx.Users().IncrementPostCount(ctx, user.ID))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	posts, err := store.Posts().ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, posts)

	reloaded, err := store.Users().GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, reloaded.PostCount)
}

func TestStore_ForeignKeysRejectDanglingReferences(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	store := NewStore(db)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "bob")

	err := store.Comments().Create(ctx, &models.Comment{Content: "orphan", PostID: 999, UserID: user.ID})
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	err = store.Posts().Create(ctx, &models.Post{Content: "no symbol", UserID: user.ID, SymbolID: 999})
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestUserRepository_UniqueUsername(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	testutil.CreateUser(t, db, "carol")

	err := repo.Create(ctx, &models.User{Username: "carol", Password: "hash"})
	assert.Equal(t, models.CodeConflict, models.ErrorCode(err))
}

func TestUserRepository_FindByUsername(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	created := testutil.CreateUser(t, db, "dave")

	found, err := repo.FindByUsername(ctx, "dave")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, models.DefaultReputationScore, found.ReputationScore)

	missing, err := repo.FindByUsername(ctx, "nobody")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPostRepository_Listings(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	erin := testutil.CreateUser(t, db, "erin")
	frank := testutil.CreateUser(t, db, "frank")
	aapl := testutil.CreateSymbol(t, db, "AAPL")
	tsla := testutil.CreateSymbol(t, db, "TSLA")

	p1 := testutil.CreatePost(t, db, erin, aapl, "first")
	p2 := testutil.CreatePost(t, db, frank, tsla, "second")
	p3 := testutil.CreatePost(t, db, erin, tsla, "third")

	byUser, err := repo.ListByUser(ctx, erin.ID)
	require.NoError(t, err)
	require.Len(t, byUser, 2)
	assert.Equal(t, []uint{p1.ID, p3.ID}, []uint{byUser[0].ID, byUser[1].ID})

	bySymbol, err := repo.ListBySymbolCode(ctx, "TSLA")
	require.NoError(t, err)
	require.Len(t, bySymbol, 2)
	assert.Equal(t, []uint{p2.ID, p3.ID}, []uint{bySymbol[0].ID, bySymbol[1].ID})

	none, err := repo.ListBySymbolCode(ctx, "NOPE")
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	all, err := repo.ListWithDetails(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.NotNil(t, all[1].User)
	require.NotNil(t, all[1].Symbol)
	assert.Equal(t, "frank", all[1].User.Username)
	assert.Equal(t, "TSLA", all[1].Symbol.Code)
}

func TestCommentRepository_RootsAndReplies(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()
	user := testutil.CreateUser(t, db, "gina")
	post := testutil.CreatePost(t, db, user, testutil.CreateSymbol(t, db, "NVDA"), "chips")

	root1 := testutil.CreateComment(t, db, post, user, nil, "root one")
	reply := testutil.CreateComment(t, db, post, user, root1, "reply")
	root2 := testutil.CreateComment(t, db, post, user, nil, "root two")

	roots, err := repo.ListRootsByPost(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, roots, 2)
	assert.Equal(t, root1.ID, roots[0].ID)
	assert.Equal(t, root2.ID, roots[1].ID)
	require.NotNil(t, roots[0].User)
	assert.Equal(t, "gina", roots[0].User.Username)

	replies, err := repo.ListByParent(ctx, root1.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)

	_, err = repo.GetByID(ctx, 12345)
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))
}

func TestSymbolRepository_ReferenceData(t *testing.T) {
	db := testutil.NewSQLiteDB(t)
	repo := NewSymbolRepository(db)
	ctx := context.Background()
	testutil.CreateSymbol(t, db, "MSFT")
	testutil.CreateSymbol(t, db, "AMZN")
	require.NoError(t, db.Create(&models.Sentiment{Code: "Bullish", Name: "Bullish", IsActive: true}).Error)

	symbol, err := repo.GetByCode(ctx, "MSFT")
	require.NoError(t, err)
	assert.Equal(t, "MSFT", symbol.Code)

	_, err = repo.GetByCode(ctx, "ZZZZ")
	assert.Equal(t, models.CodeNotFound, models.ErrorCode(err))

	symbols, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, symbols, 2)
	assert.Equal(t, "AMZN", symbols[0].Code)

	sentiments, err := repo.ListSentiments(ctx)
	require.NoError(t, err)
	require.Len(t, sentiments, 1)
}
