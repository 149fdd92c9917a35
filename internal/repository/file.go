package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"property-catalog/internal/model"
)

// propertiesDocument is the persisted layout: a single JSON document with a
// top-level "properties" array.
type propertiesDocument struct {
	Properties []model.Property `json:"properties"`
}

// FileRepository loads the catalog from a static JSON file.
type FileRepository struct {
	filePath string
}

func NewFileRepository(filePath string) *FileRepository {
	return &FileRepository{filePath: filePath}
}

func (r *FileRepository) Load(_ context.Context) ([]model.Property, error) {
	data, err := os.ReadFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", r.filePath, err)
	}

	var doc propertiesDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", r.filePath, err)
	}

	return doc.Properties, nil
}
