package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/trailnepal/marketplace/internal/service"
)

type SearchHandler struct {
	svc service.SearchService
}

func NewSearchHandler(svc service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

func (h *SearchHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Search)
}

func (h *SearchHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	category := service.SearchCategory(c.QueryParam("type"))
	if category == "" {
		category = service.SearchGeneral
	}

	count, _ := strconv.Atoi(c.QueryParam("count"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	payload, err := h.svc.Search(c.Request().Context(), query, category, count, offset)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSONBlob(http.StatusOK, payload)
}
