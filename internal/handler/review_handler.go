package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/trailnepal/marketplace/internal/dto"
	"github.com/trailnepal/marketplace/internal/middleware"
	"github.com/trailnepal/marketplace/internal/repository"
	"github.com/trailnepal/marketplace/internal/service"
)

type ReviewHandler struct {
	svc       service.ReviewService
	jwtSecret string
}

func NewReviewHandler(svc service.ReviewService, jwtSecret string) *ReviewHandler {
	return &ReviewHandler{svc: svc, jwtSecret: jwtSecret}
}

func (h *ReviewHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create, middleware.Auth(h.jwtSecret))
}

func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid review id")
	}

	review, err := h.svc.Get(c.Request().Context(), uint(id))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReviewDetailResponse(review))
}

func (h *ReviewHandler) List(c echo.Context) error {
	var filter repository.ReviewFilter
	if raw := c.QueryParam("guideId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid guideId")
		}
		guideID := uint(id)
		filter.GuideID = &guideID
	}
	if raw := c.QueryParam("destinationId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid destinationId")
		}
		destinationID := uint(id)
		filter.DestinationID = &destinationID
	}

	reviews, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ReviewDetailResponse, len(reviews))
	for i, r := range reviews {
		resp[i] = dto.ToReviewDetailResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) Create(c echo.Context) error {
	var input service.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review, err := h.svc.Create(c.Request().Context(), middleware.Principal(c).ID, input)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToReviewDetailResponse(review))
}
