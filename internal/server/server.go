package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"example.com/knoxnights/backend/internal/ai"
	"example.com/knoxnights/backend/internal/campaigns"
	"example.com/knoxnights/backend/internal/config"
	"example.com/knoxnights/backend/internal/handlers"
	"example.com/knoxnights/backend/internal/notifications"
	"example.com/knoxnights/backend/internal/store"
)

// New assembles the echo server with routes and dependencies.
func New(cfg config.Config, logger *slog.Logger, st *store.MemoryStore) *echo.Echo {
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = NewValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(requestLogger(logger))

	var aiClient ai.Client
	switch cfg.AI.Provider {
	case "groq":
		aiClient = ai.NewGroqClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
	default:
		aiClient = ai.NewGeminiClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model, cfg.AI.Timeout, cfg.AI.MaxOutputTokens)
	}
	aiService := ai.NewService(aiClient)

	hub := notifications.NewHub()

	// The demo owner runs the first seed bar.
	ownerBar := st.Bars()[0]
	manager := campaigns.NewManager(aiService, st, hub, ownerBar)

	catalogHandler := handlers.NewCatalogHandler(st)
	walletHandler := handlers.NewWalletHandler(st)
	conciergeHandler := handlers.NewConciergeHandler(aiService, st)
	ownerHandler := handlers.NewOwnerHandler(manager)
	notificationHandler := handlers.NewNotificationHandler(hub)

	registerRoutes(
		e,
		catalogHandler,
		walletHandler,
		conciergeHandler,
		ownerHandler,
		notificationHandler,
		aiRateLimiter(cfg.AI),
	)

	return e
}

// NewHTTPServer creates a net/http server with the configured timeouts.
func NewHTTPServer(cfg config.ServerConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote_ip", v.RemoteIP),
				slog.Duration("latency", v.Latency),
			}

			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}

			msg := "request completed"
			if v.Status >= http.StatusInternalServerError {
				logger.LogAttrs(c.Request().Context(), slog.LevelError, msg, attrs...)
				return nil
			}

			logger.LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
			return nil
		},
	})
}

// aiRateLimiter guards the AI-backed routes at the ingress. It is not a
// quota manager for the upstream API.
func aiRateLimiter(cfg config.AIConfig) echo.MiddlewareFunc {
	limit := rate.Limit(float64(cfg.RateLimitPerMinute) / 60.0)
	limiterStore := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      limit,
		Burst:     cfg.RateLimitBurst,
		ExpiresIn: time.Minute,
	})

	return middleware.RateLimiter(limiterStore)
}
