package catalog

import (
	"strings"

	"property-catalog/internal/model"
)

// Area units derived for display.
const (
	UnitSqft  = "sqft"
	UnitAcres = "acres"
)

// Price display periods derived from the listing type.
const (
	PricePerMonth = "per month"
	PriceTotal    = "total"
)

// AreaInfo is the display area resolved for a property. Available is false
// when the relevant numeric field is absent, in which case callers render
// nothing for the field rather than a zero.
type AreaInfo struct {
	Value     float64
	Unit      string
	Available bool
}

// ResolveArea derives the display area from the property's detail record.
// Agricultural land (subtype contains "agricultural", case-insensitive) is
// reported as plot_area in acres; everything else as built-up area in sqft.
func ResolveArea(p *model.Property) AreaInfo {
	if p.Category == model.CategoryLand && p.Land != nil {
		if isAgricultural(p.Land.LandSubtype) {
			if p.Land.PlotArea <= 0 {
				return AreaInfo{Unit: UnitAcres}
			}
			return AreaInfo{Value: p.Land.PlotArea, Unit: UnitAcres, Available: true}
		}
		if p.Land.PlotArea <= 0 {
			return AreaInfo{Unit: UnitSqft}
		}
		return AreaInfo{Value: p.Land.PlotArea, Unit: UnitSqft, Available: true}
	}

	if p.BuiltUpArea <= 0 {
		return AreaInfo{Unit: UnitSqft}
	}
	return AreaInfo{Value: p.BuiltUpArea, Unit: UnitSqft, Available: true}
}

func isAgricultural(subtype string) bool {
	return strings.Contains(strings.ToLower(subtype), "agricultural")
}

// PricePeriod derives how the price amount should be read: a periodic amount
// for rentals, a total for sales. The listing type is the single source of
// truth here; the stored price_unit text is display-only.
func PricePeriod(p *model.Property) string {
	if p.ListingType == model.ListingRent {
		return PricePerMonth
	}
	return PriceTotal
}
