package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/trailnepal/marketplace/internal/middleware"
	"github.com/trailnepal/marketplace/internal/models"
	"github.com/trailnepal/marketplace/internal/service"
)

type GuideHandler struct {
	svc        service.GuideService
	jwtSecret  string
	adminEmail string
}

func NewGuideHandler(svc service.GuideService, jwtSecret, adminEmail string) *GuideHandler {
	return &GuideHandler{svc: svc, jwtSecret: jwtSecret, adminEmail: adminEmail}
}

func (h *GuideHandler) RegisterRoutes(g *echo.Group) {
	auth := middleware.Auth(h.jwtSecret)
	g.GET("", h.List, auth)
	g.GET("/top-rated", h.TopRated, auth)
	g.GET("/languages", h.Languages, auth)
	g.GET("/specialties", h.Specialties, auth)
	g.GET("/:id/schedules", h.ListSchedules, auth)
	g.POST("/:id/schedules", h.CreateSchedule, auth)
	g.DELETE("/:id", h.Delete, middleware.AdminOnly(h.jwtSecret, h.adminEmail))
}

func (h *GuideHandler) List(c echo.Context) error {
	guides, err := h.svc.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, guides)
}

func (h *GuideHandler) TopRated(c echo.Context) error {
	limit, err := limitParam(c, 5)
	if err != nil {
		return err
	}

	guides, err := h.svc.TopRated(c.Request().Context(), limit)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, guides)
}

func (h *GuideHandler) Languages(c echo.Context) error {
	languages, err := h.svc.Languages(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, languages)
}

func (h *GuideHandler) Specialties(c echo.Context) error {
	specialties, err := h.svc.Specialties(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, specialties)
}

func (h *GuideHandler) ListSchedules(c echo.Context) error {
	guideID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid guide id")
	}

	var status *models.TourStatus
	if s := c.QueryParam("status"); s != "" {
		ts := models.TourStatus(s)
		if !ts.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unrecognized status filter")
		}
		status = &ts
	}

	tours, err := h.svc.ListSchedules(c.Request().Context(), uint(guideID), status)
	if err != nil {
		return toHTTPError(err)
	}
	if tours == nil {
		tours = []models.Tour{}
	}
	return c.JSON(http.StatusOK, tours)
}

func (h *GuideHandler) CreateSchedule(c echo.Context) error {
	guideID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid guide id")
	}

	var input service.CreateScheduleInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	tour, err := h.svc.CreateSchedule(c.Request().Context(), uint(guideID), input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, tour)
}

func (h *GuideHandler) Delete(c echo.Context) error {
	guideID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid guide id")
	}

	if err := h.svc.Delete(c.Request().Context(), uint(guideID)); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
