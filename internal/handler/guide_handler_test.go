package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/service"
)

// --- Mock GuideService ---

type mockGuideService struct {
	listFn           func(ctx context.Context) ([]models.Guide, error)
	topRatedFn       func(ctx context.Context, limit int) ([]models.Guide, error)
	languagesFn      func(ctx context.Context) ([]string, error)
	specialtiesFn    func(ctx context.Context) ([]string, error)
	listSchedulesFn  func(ctx context.Context, guideID uint, status *models.TourStatus) ([]models.Tour, error)
	createScheduleFn func(ctx context.Context, guideID uint, input service.CreateScheduleInput) (*models.Tour, error)
	deleteFn         func(ctx context.Context, guideID uint) error
}

func (m *mockGuideService) List(ctx context.Context) ([]models.Guide, error) {
	return m.listFn(ctx)
}
func (m *mockGuideService) TopRated(ctx context.Context, limit int) ([]models.Guide, error) {
	return m.topRatedFn(ctx, limit)
}
func (m *mockGuideService) Languages(ctx context.Context) ([]string, error) {
	return m.languagesFn(ctx)
}
func (m *mockGuideService) Specialties(ctx context.Context) ([]string, error) {
	return m.specialtiesFn(ctx)
}
func (m *mockGuideService) ListSchedules(ctx context.Context, guideID uint, status *models.TourStatus) ([]models.Tour, error) {
	return m.listSchedulesFn(ctx, guideID, status)
}
func (m *mockGuideService) CreateSchedule(ctx context.Context, guideID uint, input service.CreateScheduleInput) (*models.Tour, error) {
	return m.createScheduleFn(ctx, guideID, input)
}
func (m *mockGuideService) Delete(ctx context.Context, guideID uint) error {
	return m.deleteFn(ctx, guideID)
}

const scheduleBody = `{
	"destination": "Everest",
	"location": "Base Camp",
	"start_date": "2024-05-01",
	"end_date": "2024-05-10",
	"description": "Ten-day trek",
	"max_participants": 8,
	"price": 500,
	"status": "pending",
	"difficulty": "moderate",
	"itinerary": "Day-by-day plan"
}`

func scheduleContext(t *testing.T, body, guideID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/guides/"+guideID+"/schedules", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(guideID)
	return c, rec
}

func TestCreateSchedule_Handler_Created(t *testing.T) {
	svc := &mockGuideService{
		createScheduleFn: func(ctx context.Context, guideID uint, input service.CreateScheduleInput) (*models.Tour, error) {
			assert.Equal(t, "Everest", input.Destination)
			assert.Equal(t, 8, input.MaxParticipants)
			return &models.Tour{
				ID:              42,
				GuideID:         guideID,
				Destination:     input.Destination,
				Location:        input.Location,
				MaxParticipants: input.MaxParticipants,
				Price:           input.Price,
				Status:          models.TourPending,
				Difficulty:      models.DifficultyModerate,
			}, nil
		},
	}
	c, rec := scheduleContext(t, scheduleBody, "3")

	h := NewGuideHandler(svc, "secret", "admin@trailnepal.com")
	err := h.CreateSchedule(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var tour models.Tour
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tour))
	assert.Equal(t, uint(42), tour.ID)
	assert.Equal(t, uint(3), tour.GuideID)
	assert.Equal(t, "Everest", tour.Destination)
}

func TestCreateSchedule_Handler_GuideNotFound(t *testing.T) {
	svc := &mockGuideService{
		createScheduleFn: func(ctx context.Context, guideID uint, input service.CreateScheduleInput) (*models.Tour, error) {
			return nil, service.ErrGuideNotFound
		},
	}
	c, _ := scheduleContext(t, scheduleBody, "999")

	h := NewGuideHandler(svc, "secret", "admin@trailnepal.com")
	err := h.CreateSchedule(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCreateSchedule_Handler_ValidationError(t *testing.T) {
	svc := &mockGuideService{
		createScheduleFn: func(ctx context.Context, guideID uint, input service.CreateScheduleInput) (*models.Tour, error) {
			return nil, &service.ValidationError{Fields: map[string]string{
				"max_participants": "max_participants must be at least 1",
			}}
		},
	}
	c, _ := scheduleContext(t, scheduleBody, "3")

	h := NewGuideHandler(svc, "secret", "admin@trailnepal.com")
	err := h.CreateSchedule(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateSchedule_Handler_InvalidGuideID(t *testing.T) {
	c, _ := scheduleContext(t, scheduleBody, "abc")

	h := NewGuideHandler(&mockGuideService{}, "secret", "admin@trailnepal.com")
	err := h.CreateSchedule(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestListSchedules_Handler_EmptyArrayNotNull(t *testing.T) {
	svc := &mockGuideService{
		listSchedulesFn: func(ctx context.Context, guideID uint, status *models.TourStatus) ([]models.Tour, error) {
			return nil, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/3/schedules", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewGuideHandler(svc, "secret", "admin@trailnepal.com")
	err := h.ListSchedules(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListSchedules_Handler_BadStatusFilter(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/3/schedules?status=bogus", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewGuideHandler(&mockGuideService{}, "secret", "admin@trailnepal.com")
	err := h.ListSchedules(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestDelete_Handler_NoContent(t *testing.T) {
	svc := &mockGuideService{
		deleteFn: func(ctx context.Context, guideID uint) error {
			assert.Equal(t, uint(7), guideID)
			return nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/guides/7", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("7")

	h := NewGuideHandler(svc, "secret", "admin@trailnepal.com")
	err := h.Delete(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDelete_Handler_GuideNotFound(t *testing.T) {
	svc := &mockGuideService{
		deleteFn: func(ctx context.Context, guideID uint) error {
			return service.ErrGuideNotFound
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/guides/999", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewGuideHandler(svc, "secret", "admin@trailnepal.com")
	err := h.Delete(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestLanguages_Handler(t *testing.T) {
	svc := &mockGuideService{
		languagesFn: func(ctx context.Context) ([]string, error) {
			return []string{"English", "Nepali"}, nil
		},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/guides/languages", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewGuideHandler(svc, "secret", "admin@trailnepal.com")
	err := h.Languages(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var languages []string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &languages))
	assert.Equal(t, []string{"English", "Nepali"}, languages)
}
