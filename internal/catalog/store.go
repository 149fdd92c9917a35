package catalog

import (
	"context"
	"fmt"
	"sort"
	"time"

	"property-catalog/internal/model"
	"property-catalog/internal/repository"
)

// PlaceholderImage is returned as the cover for properties without images.
const PlaceholderImage = "/placeholder.png"

// Store holds the complete property catalog in memory. It is built once at
// startup and never mutated afterwards, so concurrent reads need no locking.
type Store struct {
	properties []model.Property
	byID       map[string]int
}

// NewStore validates the loaded records and builds the immutable catalog.
// Any integrity violation fails the whole load: a store that cannot vouch for
// every record serves no queries at all.
func NewStore(properties []model.Property) (*Store, error) {
	byID := make(map[string]int, len(properties))

	for i := range properties {
		p := &properties[i]
		if err := validate(p); err != nil {
			return nil, err
		}
		if _, exists := byID[p.ID]; exists {
			return nil, fmt.Errorf("property %s: duplicate id", p.ID)
		}
		byID[p.ID] = i

		// Images display in non-decreasing sort_order, ties keep their
		// insertion order.
		sort.SliceStable(p.Images, func(a, b int) bool {
			return p.Images[a].SortOrder < p.Images[b].SortOrder
		})
	}

	return &Store{properties: properties, byID: byID}, nil
}

// LoadStore reads the full dataset from the repository and builds the store.
func LoadStore(ctx context.Context, repo repository.PropertyRepository) (*Store, error) {
	properties, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return NewStore(properties)
}

func validate(p *model.Property) error {
	if p.ID == "" {
		return fmt.Errorf("property with code %q: missing id", p.PropertyCode)
	}
	if p.Title == "" {
		return fmt.Errorf("property %s: missing title", p.ID)
	}
	if p.City == "" {
		return fmt.Errorf("property %s: missing city", p.ID)
	}
	if !p.Category.Valid() {
		return fmt.Errorf("property %s: unknown category %q", p.ID, p.Category)
	}
	if !p.ListingType.Valid() {
		return fmt.Errorf("property %s: unknown listing_type %q", p.ID, p.ListingType)
	}
	if p.Price < 0 {
		return fmt.Errorf("property %s: negative price %v", p.ID, p.Price)
	}
	if p.MaintenanceCharges != nil && *p.MaintenanceCharges < 0 {
		return fmt.Errorf("property %s: negative maintenance_charges %v", p.ID, *p.MaintenanceCharges)
	}
	if !p.CreatedAt.IsZero() && !p.UpdatedAt.IsZero() && p.UpdatedAt.Before(p.CreatedAt) {
		return fmt.Errorf("property %s: updated_at before created_at", p.ID)
	}
	return validateDetail(p)
}

// validateDetail enforces the tagged-variant invariant: exactly one detail
// record present, and its tag equals the property's category.
func validateDetail(p *model.Property) error {
	count := 0
	if p.Residential != nil {
		count++
	}
	if p.Commercial != nil {
		count++
	}
	if p.Land != nil {
		count++
	}
	if count == 0 {
		return fmt.Errorf("property %s: no detail record for category %q", p.ID, p.Category)
	}
	if count > 1 {
		return fmt.Errorf("property %s: %d detail records, want exactly one", p.ID, count)
	}
	if p.Detail() == nil {
		return fmt.Errorf("property %s: detail record does not match category %q", p.ID, p.Category)
	}
	return nil
}

// Len returns the number of properties in the catalog.
func (s *Store) Len() int {
	return len(s.properties)
}

// All returns every property in stable insertion order. The returned slice is
// shared with the store and must not be mutated.
func (s *Store) All() []model.Property {
	return s.properties
}

// CountByCategory returns the number of properties per category.
func (s *Store) CountByCategory() map[model.PropertyCategory]int {
	counts := make(map[model.PropertyCategory]int, 3)
	for i := range s.properties {
		counts[s.properties[i].Category]++
	}
	return counts
}

// CoverImage returns the URL of the property's cover image: the first image
// after sorting by sort_order. Properties without images get the placeholder.
func CoverImage(p *model.Property) string {
	if len(p.Images) == 0 {
		return PlaceholderImage
	}
	return p.Images[0].ImageURL
}

// PossessionLabel renders the possession date for display; a missing date
// means the property is available immediately.
func PossessionLabel(p *model.Property) string {
	if p.PossessionDate == nil {
		return "immediate"
	}
	return p.PossessionDate.Format(time.DateOnly)
}
