// Package seed loads reference data and generates demo content.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"tickertalk/internal/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:embed reference.yml
var referenceYAML []byte

// ReferenceItem is one symbol or sentiment entry of the reference file.
type ReferenceItem struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// ReferenceData is the parsed reference file.
type ReferenceData struct {
	Symbols    []ReferenceItem `yaml:"symbols"`
	Sentiments []ReferenceItem `yaml:"sentiments"`
}

// LoadReferenceData parses the embedded reference file.
func LoadReferenceData() (*ReferenceData, error) {
	return ParseReferenceData(referenceYAML)
}

// ParseReferenceData decodes raw YAML and rejects entries without a code or name.
func ParseReferenceData(raw []byte) (*ReferenceData, error) {
	var data ReferenceData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse reference data: %w", err)
	}
	for _, group := range [][]ReferenceItem{data.Symbols, data.Sentiments} {
		for i, item := range group {
			if item.Code == "" || item.Name == "" {
				return nil, fmt.Errorf("reference entry %d: code and name are required", i)
			}
		}
	}
	return &data, nil
}

// Reference upserts the embedded symbols and sentiments. Running it again
// refreshes names and reactivates rows; it never creates duplicates.
func Reference(ctx context.Context, db *gorm.DB) error {
	data, err := LoadReferenceData()
	if err != nil {
		return err
	}
	return ApplyReference(ctx, db, data)
}

// ApplyReference upserts the given reference data in one transaction.
func ApplyReference(ctx context.Context, db *gorm.DB, data *ReferenceData) error {
	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "is_active"}),
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range data.Symbols {
			symbol := models.Symbol{Code: item.Code, Name: item.Name, IsActive: true}
			if err := tx.Clauses(upsert).Create(&symbol).Error; err != nil {
				return fmt.Errorf("seed symbol %s: %w", item.Code, err)
			}
		}
		for _, item := range data.Sentiments {
			sentiment := models.Sentiment{Code: item.Code, Name: item.Name, IsActive: true}
			if err := tx.Clauses(upsert).Create(&sentiment).Error; err != nil {
				return fmt.Errorf("seed sentiment %s: %w", item.Code, err)
			}
		}
		return nil
	})
}
