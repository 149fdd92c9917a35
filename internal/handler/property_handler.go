package handler

import (
	"net/http"

	"property-catalog/internal/catalog"
	"property-catalog/internal/model"
	"property-catalog/pkg/logger"
	"property-catalog/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PropertyHandler serves the catalog query surface.
type PropertyHandler struct {
	store *catalog.Store
}

func NewPropertyHandler(store *catalog.Store) *PropertyHandler {
	return &PropertyHandler{store: store}
}

// Properties handles GET /api/properties. With an id param it is a single
// lookup; otherwise it is a listing query filtered conjunctively by the
// category/type/status params. With no params at all, only available
// properties are surfaced.
func (h *PropertyHandler) Properties(c echo.Context) error {
	if id := c.QueryParam("id"); id != "" {
		return h.getByID(c, id)
	}
	return h.list(c)
}

func (h *PropertyHandler) getByID(c echo.Context, id string) error {
	log := logger.FromContext(c)

	property, found := h.store.GetByID(id)
	if !found {
		log.Info("Property not found", zap.String("property_id", id))
		prometheus.LookupMissesCounter.Inc()
		return c.JSON(http.StatusNotFound, echo.Map{
			"data": nil,
		})
	}

	log.Info("Property retrieved",
		zap.String("property_id", id),
		zap.String("category", string(property.Category)))
	prometheus.RecordPropertyView(string(property.Category))
	return c.JSON(http.StatusOK, echo.Map{
		"data": property,
	})
}

func (h *PropertyHandler) list(c echo.Context) error {
	log := logger.FromContext(c)

	category := c.QueryParam("category")
	listingType := c.QueryParam("type")
	status := c.QueryParam("status")

	// The bare endpoint surfaces available properties only; any explicit
	// filter switches to exactly what the caller asked for. "all" turns the
	// status filter off entirely.
	if category == "" && listingType == "" && status == "" {
		status = model.StatusAvailable
	}
	if status == "all" {
		status = ""
	}

	filter := catalog.Filter{
		Category:    model.PropertyCategory(category),
		ListingType: model.ListingType(listingType),
		Status:      status,
	}

	properties := h.store.List(filter)

	log.Info("Properties listed",
		zap.String("category", category),
		zap.String("listing_type", listingType),
		zap.String("status", status),
		zap.Int("count", len(properties)))
	prometheus.RecordListingQuery(category, listingType)
	return c.JSON(http.StatusOK, echo.Map{
		"data": properties,
	})
}

// Featured handles GET /api/properties/featured: available properties flagged
// for promotional placement on the home page.
func (h *PropertyHandler) Featured(c echo.Context) error {
	log := logger.FromContext(c)

	properties := h.store.Featured()

	log.Info("Featured properties listed", zap.Int("count", len(properties)))
	return c.JSON(http.StatusOK, echo.Map{
		"data": properties,
	})
}
