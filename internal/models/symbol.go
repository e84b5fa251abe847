package models

// Symbol is a ticker posts are tagged with. Reference data, never mutated by the API.
type Symbol struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Code     string `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Name     string `gorm:"size:255;not null" json:"name"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}

// Sentiment is a reference label. Posts store the label text directly.
type Sentiment struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Code     string `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Name     string `gorm:"size:10;not null" json:"name"`
	IsActive bool   `gorm:"not null;default:true" json:"is_active"`
}
