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

// --- Mock NotificationService ---

type mockNotificationService struct {
	listFn        func(ctx context.Context, recipientID uint) ([]models.Notification, error)
	createFn      func(ctx context.Context, input service.CreateNotificationInput) (*models.Notification, error)
	markReadFn    func(ctx context.Context, id, recipientID uint, read bool) error
	markAllReadFn func(ctx context.Context, recipientID uint) (int64, error)
	unreadCountFn func(ctx context.Context, recipientID uint) (int64, error)
	deleteFn      func(ctx context.Context, id, recipientID uint) error
}

func (m *mockNotificationService) List(ctx context.Context, recipientID uint) ([]models.Notification, error) {
	return m.listFn(ctx, recipientID)
}
func (m *mockNotificationService) Create(ctx context.Context, input service.CreateNotificationInput) (*models.Notification, error) {
	return m.createFn(ctx, input)
}
func (m *mockNotificationService) MarkRead(ctx context.Context, id, recipientID uint, read bool) error {
	return m.markReadFn(ctx, id, recipientID, read)
}
func (m *mockNotificationService) MarkAllRead(ctx context.Context, recipientID uint) (int64, error) {
	return m.markAllReadFn(ctx, recipientID)
}
func (m *mockNotificationService) UnreadCount(ctx context.Context, recipientID uint) (int64, error) {
	return m.unreadCountFn(ctx, recipientID)
}
func (m *mockNotificationService) Delete(ctx context.Context, id, recipientID uint) error {
	return m.deleteFn(ctx, id, recipientID)
}

// sessionContext builds a request context with a resolved principal, the
// way the auth middleware leaves it.
func sessionContext(method, path, body string, principal service.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("principal", principal)
	return c, rec
}

func TestMarkRead_Handler_ScopedToSessionUser(t *testing.T) {
	var gotID, gotRecipient uint
	svc := &mockNotificationService{
		markReadFn: func(ctx context.Context, id, recipientID uint, read bool) error {
			gotID, gotRecipient = id, recipientID
			return nil
		},
	}

	c, rec := sessionContext(http.MethodPatch, "/api/v1/notifications/10/read", `{"read":true}`, service.Principal{ID: 7})
	c.SetParamNames("id")
	c.SetParamValues("10")

	h := NewNotificationHandler(svc, "secret")
	err := h.MarkRead(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, uint(10), gotID)
	assert.Equal(t, uint(7), gotRecipient)
}

func TestMarkRead_Handler_OtherUsersNotificationIs404(t *testing.T) {
	svc := &mockNotificationService{
		markReadFn: func(ctx context.Context, id, recipientID uint, read bool) error {
			return service.ErrNotificationNotFound
		},
	}

	c, _ := sessionContext(http.MethodPatch, "/api/v1/notifications/10/read", `{"read":true}`, service.Principal{ID: 2})
	c.SetParamNames("id")
	c.SetParamValues("10")

	h := NewNotificationHandler(svc, "secret")
	err := h.MarkRead(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestDelete_Handler_OtherUsersNotificationIs404(t *testing.T) {
	svc := &mockNotificationService{
		deleteFn: func(ctx context.Context, id, recipientID uint) error {
			return service.ErrNotificationNotFound
		},
	}

	c, _ := sessionContext(http.MethodDelete, "/api/v1/notifications/10", "", service.Principal{ID: 2})
	c.SetParamNames("id")
	c.SetParamValues("10")

	h := NewNotificationHandler(svc, "secret")
	err := h.Delete(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestUnreadCount_Handler(t *testing.T) {
	svc := &mockNotificationService{
		unreadCountFn: func(ctx context.Context, recipientID uint) (int64, error) {
			assert.Equal(t, uint(7), recipientID)
			return 4, nil
		},
	}

	c, rec := sessionContext(http.MethodGet, "/api/v1/notifications/unread-count", "", service.Principal{ID: 7})

	h := NewNotificationHandler(svc, "secret")
	err := h.UnreadCount(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]int64
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(4), resp["count"])
}

func TestList_Handler_EmptyArrayNotNull(t *testing.T) {
	svc := &mockNotificationService{
		listFn: func(ctx context.Context, recipientID uint) ([]models.Notification, error) {
			return nil, nil
		},
	}

	c, rec := sessionContext(http.MethodGet, "/api/v1/notifications", "", service.Principal{ID: 7})

	h := NewNotificationHandler(svc, "secret")
	err := h.List(c)

	assert.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}
