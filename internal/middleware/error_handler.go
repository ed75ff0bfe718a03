package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo error handler; every error leaves the
// service as {"message": ...}, with optional field detail for 400s.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()
	var fields map[string]string

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		switch m := he.Message.(type) {
		case string:
			msg = m
		case ValidationDetail:
			msg = m.Message
			fields = m.Fields
		}
		// Upstream/persistence detail stays server-side.
		if code >= http.StatusInternalServerError && he.Internal != nil {
			log.Printf("internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, he.Internal)
		}
	}

	body := map[string]interface{}{"message": msg}
	if len(fields) > 0 {
		body["fields"] = fields
	}
	_ = c.JSON(code, body)
}

// ValidationDetail rides inside an echo.HTTPError for 400 responses.
type ValidationDetail struct {
	Message string
	Fields  map[string]string
}
