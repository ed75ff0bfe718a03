package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/service"
)

// --- Mock DestinationService ---

type mockDestinationService struct {
	listFn      func(ctx context.Context) ([]models.Destination, error)
	countriesFn func(ctx context.Context) ([]string, error)
	popularFn   func(ctx context.Context, limit int) ([]models.Destination, error)
	statsFn     func(ctx context.Context, principal service.Principal) (*service.DestinationStats, error)
}

func (m *mockDestinationService) List(ctx context.Context) ([]models.Destination, error) {
	return m.listFn(ctx)
}
func (m *mockDestinationService) Countries(ctx context.Context) ([]string, error) {
	return m.countriesFn(ctx)
}
func (m *mockDestinationService) Popular(ctx context.Context, limit int) ([]models.Destination, error) {
	return m.popularFn(ctx, limit)
}
func (m *mockDestinationService) Stats(ctx context.Context, principal service.Principal) (*service.DestinationStats, error) {
	return m.statsFn(ctx, principal)
}

func TestPopular_Handler_LimitParam(t *testing.T) {
	svc := &mockDestinationService{
		popularFn: func(ctx context.Context, limit int) ([]models.Destination, error) {
			assert.Equal(t, 3, limit)
			return []models.Destination{
				{Name: "Everest", Rating: 4.9},
				{Name: "Annapurna", Rating: 4.8},
				{Name: "Pokhara", Rating: 4.2},
			}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations/popular?limit=3", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewDestinationHandler(svc, "secret", "")
	err := h.Popular(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var destinations []models.Destination
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &destinations))
	assert.Len(t, destinations, 3)
	assert.Equal(t, 4.9, destinations[0].Rating)
	assert.Equal(t, 4.2, destinations[2].Rating)
}

func TestPopular_Handler_DefaultLimit(t *testing.T) {
	svc := &mockDestinationService{
		popularFn: func(ctx context.Context, limit int) ([]models.Destination, error) {
			assert.Equal(t, 5, limit)
			return nil, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations/popular", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewDestinationHandler(svc, "secret", "")
	assert.NoError(t, h.Popular(c))
}

func TestPopular_Handler_MalformedLimit(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations/popular?limit=abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewDestinationHandler(&mockDestinationService{}, "secret", "")
	err := h.Popular(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestStats_Handler_ForbiddenMapsTo403(t *testing.T) {
	svc := &mockDestinationService{
		statsFn: func(ctx context.Context, principal service.Principal) (*service.DestinationStats, error) {
			return nil, service.ErrForbidden
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewDestinationHandler(svc, "secret", "admin@trailnepal.com")
	err := h.Stats(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Code)
}

func TestCountries_Handler(t *testing.T) {
	svc := &mockDestinationService{
		countriesFn: func(ctx context.Context) ([]string, error) {
			return []string{"Bhutan", "Nepal"}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/destinations/countries", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewDestinationHandler(svc, "secret", "")
	err := h.Countries(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
