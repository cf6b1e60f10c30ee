package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendarAPI "google.golang.org/api/calendar/v3"

	"taskpilot/config"
	_ "taskpilot/docs" // Swagger docs
	authHTTP "taskpilot/internal/auth/delivery/http"
	authLRU "taskpilot/internal/auth/repository/lru"
	authUC "taskpilot/internal/auth/usecase"
	"taskpilot/internal/httpserver"
	"taskpilot/internal/middleware"
	"taskpilot/internal/model"
	"taskpilot/internal/task"
	taskHTTP "taskpilot/internal/task/delivery/http"
	taskMemory "taskpilot/internal/task/repository/memory"
	taskUC "taskpilot/internal/task/usecase"
	"taskpilot/internal/timeline"
	timelineHTTP "taskpilot/internal/timeline/delivery/http"
	"taskpilot/pkg/gcalendar"
	"taskpilot/pkg/llmprovider"
	"taskpilot/pkg/log"
)

// dragSessionTTL bounds abandoned drags; an expired drag commits like a
// pointer-capture loss.
const dragSessionTTL = 2 * time.Minute

// @title       TaskPilot API
// @description AI-assisted calendar task manager with LLM extraction, Google Calendar sync, and timeline drag-rescheduling.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting TaskPilot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Calendar.Timezone)

	// 3. Google OAuth
	oauthCfg := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.App.PublicURL + "/api/v1/auth/callback",
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
			calendarAPI.CalendarEventsScope,
		},
		Endpoint: google.Endpoint,
	}

	// 4. Auth domain
	sessionStore := authLRU.New(cfg.Session.MaxSessions, cfg.Session.TTL, logger)
	authUseCase := authUC.New(logger, oauthCfg, sessionStore)
	authHandler := authHTTP.New(logger, authUseCase, authHTTP.CookieConfig{
		Name:   cfg.Session.CookieName,
		MaxAge: int(cfg.Session.TTL / time.Second),
		Secure: cfg.Environment.Name == string(model.EnvironmentProduction),
	}, cfg.App.PublicURL)

	// 5. LLM providers (optional: extraction degrades without them)
	var generator task.Generator
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Warnf(ctx, "LLM providers not available (extraction disabled): %v", err)
	} else {
		names := make([]string, 0, len(providers))
		for _, p := range providers {
			names = append(names, p.Name())
		}
		logger.Infof(ctx, "LLM providers initialized: %s", strings.Join(names, ", "))

		generator = llmprovider.NewManager(providers, &llmprovider.Config{
			FallbackEnabled: cfg.LLM.FallbackEnabled,
			RetryAttempts:   cfg.LLM.RetryAttempts,
			RetryDelay:      cfg.LLM.RetryDelayDuration(),
			MaxTotalTimeout: cfg.LLM.MaxTotalTimeoutDuration(),
		}, logger)
	}

	// 6. Task domain
	calFactory := task.CalendarFactory(func(ctx context.Context, tok *oauth2.Token) (task.Calendar, error) {
		return gcalendar.NewClientFromToken(ctx, oauthCfg, tok)
	})
	taskRepo := taskMemory.New(logger)
	taskUseCase := taskUC.New(logger, generator, taskRepo, calFactory, cfg.Calendar.CalendarID, cfg.Calendar.Timezone)
	taskHandler := taskHTTP.New(logger, taskUseCase)

	// 7. Timeline drag sessions
	dragSessions := timeline.NewSessionManager(logger, cfg.Session.MaxSessions, dragSessionTTL)
	timelineHandler := timelineHTTP.New(logger, dragSessions, taskUseCase)

	// 8. Middleware
	mw := middleware.New(logger, authUseCase, cfg.Session.CookieName)
	extractLimiter := middleware.NewRateLimiter(cfg.RateLimit.ExtractPerMinute, cfg.RateLimit.Burst)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ExtractLimiter:  extractLimiter,
		AuthHandler:     authHandler,
		TaskHandler:     taskHandler,
		TimelineHandler: timelineHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
