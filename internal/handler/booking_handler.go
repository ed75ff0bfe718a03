package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trailnepal/marketplace/internal/dto"
	"github.com/trailnepal/marketplace/internal/middleware"
	"github.com/trailnepal/marketplace/internal/service"
)

type BookingHandler struct {
	svc       service.BookingService
	jwtSecret string
}

func NewBookingHandler(svc service.BookingService, jwtSecret string) *BookingHandler {
	return &BookingHandler{svc: svc, jwtSecret: jwtSecret}
}

func (h *BookingHandler) RegisterRoutes(g *echo.Group) {
	auth := middleware.Auth(h.jwtSecret)
	g.POST("", h.Create, auth)
	g.GET("/recent", h.Recent, auth)
}

func (h *BookingHandler) Create(c echo.Context) error {
	var input service.CreateBookingInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.Create(c.Request().Context(), middleware.Principal(c).ID, input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, booking)
}

func (h *BookingHandler) Recent(c echo.Context) error {
	limit, err := limitParam(c, 5)
	if err != nil {
		return err
	}

	bookings, err := h.svc.Recent(c.Request().Context(), limit)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.RecentBookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToRecentBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}
