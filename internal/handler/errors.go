package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trailnepal/marketplace/internal/middleware"
	"github.com/trailnepal/marketplace/internal/service"
)

// toHTTPError maps service errors onto the transport taxonomy:
// 400 validation (with field detail), 403/404 sentinels, opaque 500 rest.
func toHTTPError(err error) *echo.HTTPError {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, middleware.ValidationDetail{
			Message: "validation failed",
			Fields:  ve.Fields,
		})
	}

	switch {
	case errors.Is(err, service.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrGuideNotFound),
		errors.Is(err, service.ErrDestinationNotFound),
		errors.Is(err, service.ErrReviewNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error").SetInternal(err)
	}
}
