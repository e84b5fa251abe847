// Package testutil provides shared fixtures for tests that need a real store.
package testutil

import (
	"context"
	"fmt"
	"testing"

	"tickertalk/internal/database"
	"tickertalk/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLiteDB opens an isolated in-memory SQLite database with foreign keys
// enforced and the schema migrated. A single connection serializes access.
func NewSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(context.Background(), db))
	return db
}

// CreateUser inserts a user with default reputation fields.
func CreateUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username:        username,
		Password:        "not-a-real-hash",
		FirstName:       "Test",
		LastName:        "User",
		IsActive:        true,
		ReputationScore: models.DefaultReputationScore,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

// CreateSymbol inserts an active ticker symbol.
func CreateSymbol(t *testing.T, db *gorm.DB, code string) *models.Symbol {
	t.Helper()
	s := &models.Symbol{Code: code, Name: code + " Inc.", IsActive: true}
	require.NoError(t, db.Create(s).Error)
	return s
}

// CreatePost inserts a post directly, bypassing the post_count bookkeeping.
func CreatePost(t *testing.T, db *gorm.DB, user *models.User, symbol *models.Symbol, content string) *models.Post {
	t.Helper()
	p := &models.Post{Content: content, UserID: user.ID, SymbolID: symbol.ID, Sentiment: "Neutral"}
	require.NoError(t, db.Create(p).Error)
	return p
}

// CreateComment inserts a comment; parent may be nil for a root comment.
func CreateComment(t *testing.T, db *gorm.DB, post *models.Post, user *models.User, parent *models.Comment, content string) *models.Comment {
	t.Helper()
	c := &models.Comment{Content: content, PostID: post.ID, UserID: user.ID, IsActive: true}
	if parent != nil {
		c.ParentID = &parent.ID
	}
	require.NoError(t, db.Create(c).Error)
	return c
}
