package models

import "time"

// DefaultReputationScore is the reputation every new user starts with.
const DefaultReputationScore = 50.0

// User represents an account. Password holds a bcrypt hash and is never serialized.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email           *string   `gorm:"size:120;uniqueIndex" json:"email,omitempty"`
	Password        string    `gorm:"size:256;not null" json:"-"`
	FirstName       string    `gorm:"size:64" json:"first_name"`
	LastName        string    `gorm:"size:64" json:"last_name"`
	ProfilePicture  *string   `gorm:"size:255" json:"profile_picture"`
	IsActive        bool      `gorm:"not null;default:true" json:"is_active"`
	ReputationScore float64   `gorm:"not null;default:50" json:"reputation_score"`
	PostQualityAvg  float64   `gorm:"not null;default:0" json:"post_quality_avg"`
	PostCount       int       `gorm:"not null;default:0" json:"post_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UserPublic is the externally visible projection of a user.
type UserPublic struct {
	ID             uint    `json:"id"`
	Username       string  `json:"username"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	ProfilePicture *string `json:"profilePicture"`
}

// Public strips credentials, contact details and timestamps.
func (u *User) Public() *UserPublic {
	return &UserPublic{
		ID:             u.ID,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		ProfilePicture: u.ProfilePicture,
	}
}
