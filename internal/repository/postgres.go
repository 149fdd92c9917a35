package repository

import (
	"context"
	"fmt"

	"property-catalog/internal/model"

	"gorm.io/gorm"
)

// PostgresRepository loads the catalog from Postgres, assembling each property
// with its detail record and images in one pass.
type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Load(ctx context.Context) ([]model.Property, error) {
	var properties []model.Property

	result := r.db.WithContext(ctx).
		Preload("Residential").
		Preload("Commercial").
		Preload("Land").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Order("created_at ASC").
		Find(&properties)
	if result.Error != nil {
		return nil, fmt.Errorf("load properties from postgres: %w", result.Error)
	}

	return properties, nil
}
