package repository

import (
	"context"

	"property-catalog/internal/model"
)

// PropertyRepository loads the full property dataset at startup. The catalog
// store never goes back to the source after the initial load, so the origin
// (JSON file, Postgres, anything else) is swappable behind this interface.
type PropertyRepository interface {
	Load(ctx context.Context) ([]model.Property, error)
}
