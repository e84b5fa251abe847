// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store is the handle every service receives. Repositories obtained from a
// Store passed to Transaction's callback share that transaction.
type Store interface {
	Users() UserRepository
	Posts() PostRepository
	Comments() CommentRepository
	Symbols() SymbolRepository
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore wraps a gorm connection (or an open transaction) as a Store.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Users() UserRepository       { return NewUserRepository(s.db) }
func (s *gormStore) Posts() PostRepository       { return NewPostRepository(s.db) }
func (s *gormStore) Comments() CommentRepository { return NewCommentRepository(s.db) }
func (s *gormStore) Symbols() SymbolRepository   { return NewSymbolRepository(s.db) }

// Transaction runs fn in a single database transaction. Any error returned by
// fn rolls back every write made through tx.
func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}
