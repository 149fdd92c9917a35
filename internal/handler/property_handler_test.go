package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"property-catalog/internal/catalog"
	"property-catalog/internal/model"
	"property-catalog/pkg/config"
	"property-catalog/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "catalog_test"},
	})
	os.Exit(m.Run())
}

func buildProperty(id string, category model.PropertyCategory, listingType model.ListingType, status string) model.Property {
	p := model.Property{
		ID:          id,
		Category:    category,
		ListingType: listingType,
		Status:      status,
		Title:       "Test Property " + id,
		City:        "Surat",
		Price:       5000000,
		BuiltUpArea: 1650,
	}
	switch category {
	case model.CategoryResidential:
		p.Residential = &model.ResidentialDetails{Bedrooms: 3, Bathrooms: 2}
	case model.CategoryCommercial:
		p.Commercial = &model.CommercialDetails{CommercialSubtype: "office"}
	case model.CategoryLand:
		p.Land = &model.LandDetails{LandSubtype: "plot", PlotArea: 2400}
	}
	return p
}

func newTestHandler(t *testing.T) *PropertyHandler {
	t.Helper()

	sold := buildProperty("p3", model.CategoryCommercial, model.ListingRent, model.StatusSold)
	store, err := catalog.NewStore([]model.Property{
		buildProperty("p1", model.CategoryResidential, model.ListingSale, model.StatusAvailable),
		buildProperty("p2", model.CategoryResidential, model.ListingRent, model.StatusAvailable),
		sold,
		buildProperty("p4", model.CategoryLand, model.ListingSale, model.StatusAvailable),
	})
	require.NoError(t, err)
	return NewPropertyHandler(store)
}

func doRequest(t *testing.T, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, h(c))
	return rec
}

type singleResponse struct {
	Data *model.Property `json:"data"`
}

type listResponse struct {
	Data []model.Property `json:"data"`
}

func TestProperties_GetByID(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.Properties, "/api/properties?id=p1")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp singleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Data)
	assert.Equal(t, "p1", resp.Data.ID)
	require.NotNil(t, resp.Data.Residential)
}

func TestProperties_GetByID_NotFound(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.Properties, "/api/properties?id=nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp singleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Nil(t, resp.Data)
}

func TestProperties_ListByCategoryAndType(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.Properties, "/api/properties?category=residential&type=rent")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "p2", resp.Data[0].ID)
}

func TestProperties_BareListingIsAvailableOnly(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.Properties, "/api/properties")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
	for _, p := range resp.Data {
		assert.Equal(t, model.StatusAvailable, p.Status)
	}
}

func TestProperties_StatusAllReturnsWholeCatalog(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.Properties, "/api/properties?status=all")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 4)
}

func TestProperties_CategoryFilterIncludesAllStatuses(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.Properties, "/api/properties?category=commercial")
	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, model.StatusSold, resp.Data[0].Status)
}

func TestProperties_UnknownCategoryYieldsEmptyList(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(t, h.Properties, "/api/properties?category=industrial")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}

func TestFeatured(t *testing.T) {
	featured := buildProperty("p9", model.CategoryResidential, model.ListingSale, model.StatusAvailable)
	featured.IsFeatured = true
	store, err := catalog.NewStore([]model.Property{
		buildProperty("p1", model.CategoryResidential, model.ListingSale, model.StatusAvailable),
		featured,
	})
	require.NoError(t, err)
	h := NewPropertyHandler(store)

	rec := doRequest(t, h.Featured, "/api/properties/featured")
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "p9", resp.Data[0].ID)
}
