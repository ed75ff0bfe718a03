package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/trailnepal/marketplace/internal/dto"
	"github.com/trailnepal/marketplace/internal/middleware"
	"github.com/trailnepal/marketplace/internal/service"
)

type AuthHandler struct {
	svc       service.AuthService
	jwtSecret string
}

func NewAuthHandler(svc service.AuthService, jwtSecret string) *AuthHandler {
	return &AuthHandler{svc: svc, jwtSecret: jwtSecret}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.Register)
	g.POST("/login", h.Login)
	g.GET("/google", h.GoogleRedirect)
	g.GET("/google/callback", h.GoogleCallback)
	g.GET("/me", h.Me, middleware.Auth(h.jwtSecret))
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, user, err := h.svc.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		}
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.TokenResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	token, user, err := h.svc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
		}
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *AuthHandler) GoogleRedirect(c echo.Context) error {
	url := h.svc.GoogleLoginURL(c.QueryParam("state"))
	if url == "" {
		return echo.NewHTTPError(http.StatusNotFound, "google login is not configured")
	}
	return c.Redirect(http.StatusTemporaryRedirect, url)
}

func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "code is required")
	}

	token, user, err := h.svc.GoogleLogin(c.Request().Context(), code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return echo.NewHTTPError(http.StatusUnauthorized, "google login failed")
		}
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.TokenResponse{Token: token, User: dto.ToUserResponse(user)})
}

func (h *AuthHandler) Me(c echo.Context) error {
	p := middleware.Principal(c)
	user, err := h.svc.Me(c.Request().Context(), p.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unknown session user")
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
