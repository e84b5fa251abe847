package models

import "time"

// Comment is a comment on a post. ParentID links a reply to the comment it
// answers; nil marks a root comment.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ParentID  *uint     `gorm:"index" json:"parent_id"`
	Post      *Post     `gorm:"foreignKey:PostID" json:"-"`
	User      *User     `gorm:"foreignKey:UserID" json:"-"`
	Parent    *Comment  `gorm:"foreignKey:ParentID" json:"-"`
}

// CommentView is the display projection of a comment and its author.
type CommentView struct {
	ID        uint        `json:"id"`
	Content   string      `json:"content"`
	CreatedAt time.Time   `json:"created_at"`
	IsActive  bool        `json:"is_active"`
	PostID    uint        `json:"post_id"`
	UserID    uint        `json:"user_id"`
	ParentID  *uint       `json:"parent_id"`
	User      *UserPublic `json:"user,omitempty"`
}

// View projects the comment; the author is included when preloaded.
func (c *Comment) View() *CommentView {
	v := &CommentView{
		ID:        c.ID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		IsActive:  c.IsActive,
		PostID:    c.PostID,
		UserID:    c.UserID,
		ParentID:  c.ParentID,
	}
	if c.User != nil {
		v.User = c.User.Public()
	}
	return v
}

// CommentThread is a root comment with its direct replies only.
type CommentThread struct {
	Comment *CommentView   `json:"comment"`
	Replies []*CommentView `json:"replies"`
}

// CommentNode is a comment with its full reply subtree.
type CommentNode struct {
	Comment *CommentView   `json:"comment"`
	Replies []*CommentNode `json:"replies"`
}
