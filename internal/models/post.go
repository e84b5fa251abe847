// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Post represents a ticker-tagged post.
// LikesCount is a derived counter; only the like action mutates it.
type Post struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Content         string    `gorm:"type:text;not null" json:"content"`
	CreatedAt       time.Time `gorm:"index" json:"created_at"`
	Processed       bool      `gorm:"not null;default:false" json:"processed"`
	Sentiment       string    `gorm:"size:10" json:"sentiment"`
	SentimentScore  int       `gorm:"not null;default:0" json:"sentiment_score"`
	LikesCount      int       `gorm:"not null;default:0" json:"likes_count"`
	ImageAttachment *string   `json:"image_attachment"`
	UserID          uint      `gorm:"not null;index" json:"user_id"`
	SymbolID        uint      `gorm:"not null;index" json:"symbol_id"`
	User            *User     `gorm:"foreignKey:UserID" json:"-"`
	Symbol          *Symbol   `gorm:"foreignKey:SymbolID" json:"-"`
}

// PostDetail is the display projection of a post with its author and symbol.
type PostDetail struct {
	ID              uint        `json:"id"`
	Content         string      `json:"content"`
	CreatedAt       time.Time   `json:"created_at"`
	Processed       bool        `json:"processed"`
	Sentiment       string      `json:"sentiment"`
	SentimentScore  int         `json:"sentiment_score"`
	LikesCount      int         `json:"likes_count"`
	ImageAttachment *string     `json:"image_attachment"`
	User            *UserPublic `json:"user"`
	Symbol          *Symbol     `json:"symbol"`
}

// Detail projects the post for display. User and Symbol must be preloaded
// for the nested fields to be populated.
func (p *Post) Detail() *PostDetail {
	d := &PostDetail{
		ID:              p.ID,
		Content:         p.Content,
		CreatedAt:       p.CreatedAt,
		Processed:       p.Processed,
		Sentiment:       p.Sentiment,
		SentimentScore:  p.SentimentScore,
		LikesCount:      p.LikesCount,
		ImageAttachment: p.ImageAttachment,
		Symbol:          p.Symbol,
	}
	if p.User != nil {
		d.User = p.User.Public()
	}
	return d
}
