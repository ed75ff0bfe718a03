package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/trailnepal/marketplace/config"
	"github.com/trailnepal/marketplace/internal/handler"
	"github.com/trailnepal/marketplace/internal/middleware"
	"github.com/trailnepal/marketplace/internal/repository"
	"github.com/trailnepal/marketplace/internal/service"
	"github.com/trailnepal/marketplace/pkg/database"
	"github.com/trailnepal/marketplace/pkg/searchapi"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// Repositories
	userRepo := repository.NewUserRepository(db)
	guideRepo := repository.NewGuideRepository(db)
	destinationRepo := repository.NewDestinationRepository(db)
	tourRepo := repository.NewTourRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Google login is optional; the service degrades without it.
	var oauthCfg *oauth2.Config
	if cfg.GoogleClientID != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleSecret,
			RedirectURL:  cfg.GoogleRedirect,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		}
	}

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, oauthCfg)
	guideSvc := service.NewGuideService(guideRepo, tourRepo)
	destinationSvc := service.NewDestinationService(destinationRepo, cfg.AdminEmail)
	bookingSvc := service.NewBookingService(bookingRepo, destinationRepo, guideRepo)
	reviewSvc := service.NewReviewService(reviewRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	searchSvc := service.NewSearchService(searchapi.New(cfg.SearchBaseURL, cfg.SearchAPIKey))

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "marketplace"})
	})

	api := e.Group("/api/v1")
	handler.NewAuthHandler(authSvc, cfg.JWTSecret).RegisterRoutes(api.Group("/auth"))
	handler.NewDestinationHandler(destinationSvc, cfg.JWTSecret, cfg.AdminEmail).RegisterRoutes(api.Group("/destinations"))
	handler.NewGuideHandler(guideSvc, cfg.JWTSecret, cfg.AdminEmail).RegisterRoutes(api.Group("/guides"))
	handler.NewBookingHandler(bookingSvc, cfg.JWTSecret).RegisterRoutes(api.Group("/bookings"))
	handler.NewReviewHandler(reviewSvc, cfg.JWTSecret).RegisterRoutes(api.Group("/reviews"))
	handler.NewNotificationHandler(notificationSvc, cfg.JWTSecret).RegisterRoutes(api.Group("/notifications"))
	handler.NewSearchHandler(searchSvc).RegisterRoutes(api.Group("/search"))

	log.Printf("Marketplace API starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
