package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/trailnepal/marketplace/internal/dto"
	"github.com/trailnepal/marketplace/internal/middleware"
	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/service"
)

type NotificationHandler struct {
	svc       service.NotificationService
	jwtSecret string
}

func NewNotificationHandler(svc service.NotificationService, jwtSecret string) *NotificationHandler {
	return &NotificationHandler{svc: svc, jwtSecret: jwtSecret}
}

func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.Use(middleware.Auth(h.jwtSecret))
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/unread-count", h.UnreadCount)
	g.POST("/read-all", h.MarkAllRead)
	g.PATCH("/:id/read", h.MarkRead)
	g.DELETE("/:id", h.Delete)
}

func (h *NotificationHandler) List(c echo.Context) error {
	notifications, err := h.svc.List(c.Request().Context(), middleware.Principal(c).ID)
	if err != nil {
		return toHTTPError(err)
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}
	return c.JSON(http.StatusOK, notifications)
}

func (h *NotificationHandler) Create(c echo.Context) error {
	var input service.CreateNotificationInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	n, err := h.svc.Create(c.Request().Context(), input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.svc.UnreadCount(c.Request().Context(), middleware.Principal(c).ID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.UnreadCountResponse{Count: count})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	updated, err := h.svc.MarkAllRead(c.Request().Context(), middleware.Principal(c).ID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.MarkAllReadResponse{Updated: updated})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}

	read := true
	var req dto.MarkReadRequest
	if err := c.Bind(&req); err == nil && req.Read != nil {
		read = *req.Read
	}

	if err := h.svc.MarkRead(c.Request().Context(), uint(id), middleware.Principal(c).ID, read); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid notification id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(id), middleware.Principal(c).ID); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
