package model

import (
	"time"
)

// PropertyCategory is the closed set of catalog categories. The category
// decides which detail record a property carries.
type PropertyCategory string

const (
	CategoryResidential PropertyCategory = "residential"
	CategoryCommercial  PropertyCategory = "commercial"
	CategoryLand        PropertyCategory = "land"
)

// Valid reports whether the category is one of the known values.
func (c PropertyCategory) Valid() bool {
	switch c {
	case CategoryResidential, CategoryCommercial, CategoryLand:
		return true
	}
	return false
}

// ListingType distinguishes rental listings from sale listings.
type ListingType string

const (
	ListingRent ListingType = "rent"
	ListingSale ListingType = "sale"
)

// Valid reports whether the listing type is one of the known values.
func (t ListingType) Valid() bool {
	return t == ListingRent || t == ListingSale
}

// FurnishingType is the furnishing level of a residential property.
type FurnishingType string

const (
	Unfurnished    FurnishingType = "unfurnished"
	SemiFurnished  FurnishingType = "semi-furnished"
	FullyFurnished FurnishingType = "fully-furnished"
)

// Conventional status values. Status is stored as free-form text, these are
// the values listing queries and badge styling rely on.
const (
	StatusAvailable = "available"
	StatusSold      = "sold"
	StatusRented    = "rented"
	StatusInactive  = "inactive"
)

// Property is one catalog listing together with its category-specific detail
// record and images. Exactly one of Residential/Commercial/Land is set, and it
// must match Category.
type Property struct {
	ID                 string           `json:"id" gorm:"type:uuid;primarykey"`
	PropertyCode       string           `json:"property_code" gorm:"type:varchar(50);unique"`
	Category           PropertyCategory `json:"category" gorm:"type:varchar(20);not null;index"`
	ListingType        ListingType      `json:"listing_type" gorm:"type:varchar(10);not null;index"`
	Status             string           `json:"status" gorm:"type:varchar(20);index"`
	IsFeatured         bool             `json:"is_featured"`
	Title              string           `json:"title" gorm:"type:varchar(255);not null"`
	Description        string           `json:"description,omitempty" gorm:"type:text"`
	City               string           `json:"city" gorm:"type:varchar(100);not null"`
	Area               string           `json:"area,omitempty" gorm:"type:varchar(100)"`
	Price              float64          `json:"price" gorm:"not null"`
	PriceUnit          string           `json:"price_unit,omitempty" gorm:"type:varchar(30)"`
	MaintenanceCharges *float64         `json:"maintenance_charges,omitempty"`
	BuiltUpArea        float64          `json:"built_up_area"`
	AreaUnit           string           `json:"area_unit,omitempty" gorm:"type:varchar(20)"`
	PossessionDate     *time.Time       `json:"possession_date,omitempty"`
	ViewsCount         *int64           `json:"views_count,omitempty"`
	EnquiriesCount     *int64           `json:"enquiries_count,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`

	Residential *ResidentialDetails `json:"residential,omitempty" gorm:"foreignKey:PropertyID"`
	Commercial  *CommercialDetails  `json:"commercial,omitempty" gorm:"foreignKey:PropertyID"`
	Land        *LandDetails        `json:"land,omitempty" gorm:"foreignKey:PropertyID"`
	Images      []PropertyImage     `json:"images" gorm:"foreignKey:PropertyID"`
}

// ResidentialDetails carries the attributes specific to residential listings.
type ResidentialDetails struct {
	PropertyID     string         `json:"-" gorm:"type:uuid;primarykey"`
	Bedrooms       int            `json:"bedrooms"`
	Bathrooms      int            `json:"bathrooms"`
	Balconies      int            `json:"balconies"`
	FurnishingType FurnishingType `json:"furnishing_type" gorm:"type:varchar(20)"`
	FloorNumber    int            `json:"floor_number"`
	TotalFloors    int            `json:"total_floors"`
	ParkingSpaces  int            `json:"parking_spaces"`
	Lift           bool           `json:"lift"`
	PropertyAge    int            `json:"property_age"`
	CarpetArea     float64        `json:"carpet_area"`
	Amenity        string         `json:"amenity,omitempty" gorm:"type:varchar(100)"`
}

// CommercialDetails carries the attributes specific to commercial listings.
type CommercialDetails struct {
	PropertyID             string   `json:"-" gorm:"type:uuid;primarykey"`
	CommercialSubtype      string   `json:"commercial_subtype" gorm:"type:varchar(50)"`
	FloorNumber            int      `json:"floor_number"`
	TotalFloors            int      `json:"total_floors"`
	Washrooms              int      `json:"washrooms"`
	Pantry                 bool     `json:"pantry"`
	MeetingRooms           int      `json:"meeting_rooms"`
	CentralAirConditioning bool     `json:"central_air_conditioning"`
	PassengerLift          bool     `json:"passenger_lift"`
	ServiceLift            bool     `json:"service_lift"`
	FrontageWidth          *float64 `json:"frontage_width,omitempty"`
}

// LandDetails carries the attributes specific to land listings. The subtype
// text drives the area unit shown to viewers: agricultural land is reported
// in acres, everything else in square feet.
type LandDetails struct {
	PropertyID     string   `json:"-" gorm:"type:uuid;primarykey"`
	LandSubtype    string   `json:"land_subtype" gorm:"type:varchar(50)"`
	PlotArea       float64  `json:"plot_area"`
	PlotDimensions string   `json:"plot_dimensions,omitempty" gorm:"type:varchar(50)"`
	RoadWidth      *float64 `json:"road_width,omitempty"`
	CornerPlot     bool     `json:"corner_plot"`
	LandZoning     string   `json:"land_zoning,omitempty" gorm:"type:varchar(50)"`
	ApprovedUse    string   `json:"approved_use,omitempty" gorm:"type:varchar(100)"`
	BoundaryWall   bool     `json:"boundary_wall"`
}

// PropertyImage belongs to exactly one property. SortOrder defines display
// order ascending, ties broken by insertion order; the first image after
// sorting is the cover image.
type PropertyImage struct {
	ID         string `json:"id" gorm:"type:uuid;primarykey"`
	PropertyID string `json:"-" gorm:"type:uuid;index;not null"`
	ImageURL   string `json:"image_url" gorm:"type:varchar(500);not null"`
	SortOrder  int    `json:"sort_order"`
}

// Detail returns the detail record matching the property's category, or nil
// when it is missing (a store-level integrity violation).
func (p *Property) Detail() interface{} {
	switch p.Category {
	case CategoryResidential:
		if p.Residential != nil {
			return p.Residential
		}
	case CategoryCommercial:
		if p.Commercial != nil {
			return p.Commercial
		}
	case CategoryLand:
		if p.Land != nil {
			return p.Land
		}
	}
	return nil
}
