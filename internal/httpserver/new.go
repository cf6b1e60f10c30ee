package httpserver

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "taskpilot/internal/auth/delivery/http"
	"taskpilot/internal/middleware"
	taskHTTP "taskpilot/internal/task/delivery/http"
	timelineHTTP "taskpilot/internal/timeline/delivery/http"
	pkgLog "taskpilot/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	mw             middleware.Middleware
	extractLimiter *middleware.RateLimiter

	authHandler     authHTTP.Handler
	taskHandler     taskHTTP.Handler
	timelineHandler timelineHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string

	Middleware     middleware.Middleware
	ExtractLimiter *middleware.RateLimiter

	AuthHandler     authHTTP.Handler
	TaskHandler     taskHTTP.Handler
	TimelineHandler timelineHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		mw:              cfg.Middleware,
		extractLimiter:  cfg.ExtractLimiter,
		authHandler:     cfg.AuthHandler,
		taskHandler:     cfg.TaskHandler,
		timelineHandler: cfg.TimelineHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.authHandler == nil {
		return errors.New("auth handler is required")
	}
	if srv.taskHandler == nil {
		return errors.New("task handler is required")
	}
	if srv.timelineHandler == nil {
		return errors.New("timeline handler is required")
	}
	if srv.extractLimiter == nil {
		return errors.New("extract rate limiter is required")
	}
	return nil
}

// Run blocks serving HTTP until the listener fails.
func (srv *HTTPServer) Run() error {
	addr := fmt.Sprintf(":%d", srv.port)
	if err := srv.gin.Run(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
