package catalog

import (
	"property-catalog/internal/model"
)

// Filter narrows a listing query. Zero-value fields leave that axis
// unfiltered. Filters apply conjunctively; unknown values match nothing
// rather than producing an error.
type Filter struct {
	Category    model.PropertyCategory
	ListingType model.ListingType
	Status      string
}

// GetByID returns the property with the given id, or found=false when no such
// record exists. Status is not consulted: a direct lookup surfaces sold and
// inactive properties too.
func (s *Store) GetByID(id string) (*model.Property, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}
	return &s.properties[i], true
}

// List returns the properties matching every set filter axis, in the store's
// stable insertion order. A filter that matches nothing yields an empty
// slice, never an error.
func (s *Store) List(f Filter) []model.Property {
	result := make([]model.Property, 0)
	for i := range s.properties {
		p := &s.properties[i]
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.ListingType != "" && p.ListingType != f.ListingType {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		result = append(result, *p)
	}
	return result
}

// Available returns the properties surfaced on the default, unfiltered
// listing surface: only those with status "available".
func (s *Store) Available() []model.Property {
	return s.List(Filter{Status: model.StatusAvailable})
}

// Featured returns the available properties flagged for promotional
// placement, in store order.
func (s *Store) Featured() []model.Property {
	result := make([]model.Property, 0)
	for _, p := range s.Available() {
		if p.IsFeatured {
			result = append(result, p)
		}
	}
	return result
}
