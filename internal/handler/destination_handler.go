package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/trailnepal/marketplace/internal/middleware"
	"github.com/trailnepal/marketplace/internal/service"
)

type DestinationHandler struct {
	svc        service.DestinationService
	jwtSecret  string
	adminEmail string
}

func NewDestinationHandler(svc service.DestinationService, jwtSecret, adminEmail string) *DestinationHandler {
	return &DestinationHandler{svc: svc, jwtSecret: jwtSecret, adminEmail: adminEmail}
}

func (h *DestinationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/countries", h.Countries)
	g.GET("/popular", h.Popular)
	g.GET("/stats", h.Stats, middleware.AdminOnly(h.jwtSecret, h.adminEmail))
}

func (h *DestinationHandler) List(c echo.Context) error {
	destinations, err := h.svc.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, destinations)
}

func (h *DestinationHandler) Countries(c echo.Context) error {
	countries, err := h.svc.Countries(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, countries)
}

func (h *DestinationHandler) Popular(c echo.Context) error {
	limit, err := limitParam(c, 5)
	if err != nil {
		return err
	}

	destinations, err := h.svc.Popular(c.Request().Context(), limit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, destinations)
}

func (h *DestinationHandler) Stats(c echo.Context) error {
	stats, err := h.svc.Stats(c.Request().Context(), middleware.Principal(c))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// limitParam parses ?limit= with a default; a malformed value is a 400,
// range checks belong to the service.
func limitParam(c echo.Context, def int) (int, error) {
	raw := c.QueryParam("limit")
	if raw == "" {
		return def, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "limit must be an integer")
	}
	return limit, nil
}
