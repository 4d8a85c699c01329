package api

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"skyline/internal/config"
)

// NewServer builds the echo instance with middleware and routes.
func NewServer(cfg *config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = JSONSerializer{}
	e.Logger.SetLevel(cfg.Logging.Lvl())

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))
	if cfg.Server.RateLimit > 0 {
		e.Use(middleware.RateLimiter(middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Server.RateLimit))))
	}

	h := NewHandler(NewMetrics(), cfg.Engine.Workers, cfg.Engine.MaxBuildings)
	h.RegisterRoutes(e)

	return e
}
