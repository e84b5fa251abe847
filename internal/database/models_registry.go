package database

import "tickertalk/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.Symbol{},
		&models.Sentiment{},
		&models.Post{},
		&models.Comment{},
	}
}
