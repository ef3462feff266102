package httpapi

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewServer builds the echo instance with every route registered.
func NewServer(h *Handler, auth *TenantAuth, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.LogAttrs(c.Request().Context(), slog.LevelDebug, "request",
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", v.RequestID),
			)
			return nil
		},
	}))

	e.GET("/healthz", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api", auth.RequireTenant())
	api.POST("/feeds", h.Subscribe)
	api.GET("/feeds", h.ListFeeds)
	api.DELETE("/feeds/:id", h.DeleteFeed)
	api.POST("/newsletter/prepare", h.PrepareNewsletter)
	api.POST("/newsletter/generate", h.GenerateNewsletter)
	api.GET("/newsletters", h.ListNewsletters)
	api.GET("/newsletters/:id", h.GetNewsletter)
	api.DELETE("/newsletters/:id", h.DeleteNewsletter)

	return e
}
