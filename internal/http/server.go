package http

import (
	"context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"files-manager/internal/auth"
	"files-manager/internal/config"
	"files-manager/internal/files"
	"files-manager/internal/http/handler"
	"files-manager/internal/http/middleware"
	"files-manager/internal/queue"
	"files-manager/internal/repository/postgres"
	"files-manager/pkg/metrics"
	"files-manager/pkg/profiling"
)

const requestBodyLimit = "16M" // uploads carry base64 content in the JSON body

type ServerDependencies struct {
	Config         *config.Config
	DB             *postgres.DB
	Queue          *queue.Queue
	UserRepo       *postgres.UserRepository
	FileRepo       *postgres.FileRepository
	Files          *files.Service
	Tokens         *auth.TokenService
	AuthMiddleware *auth.Middleware
	Log            zerolog.Logger
}

type Server struct {
	echo *echo.Echo
	deps *ServerDependencies
}

func NewServer(deps *ServerDependencies) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = CustomHTTPErrorHandler

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID first so every downstream log line can carry it.
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))

	requestMetrics := metrics.New()
	e.Use(requestMetrics.Middleware())
	requestMetrics.RegisterRoute(e)

	if deps.Config.Server.EnablePprof {
		profiling.RegisterRoutes(e)
	}

	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	// Credential endpoints get a tighter bucket.
	strictRateLimiter := middleware.NewStrictRateLimiter()

	appHandler := handler.NewAppHandler(deps.DB, deps.Queue, deps.UserRepo, deps.FileRepo)
	userHandler := handler.NewUserHandler(deps.UserRepo, deps.Queue, deps.Log)
	authHandler := handler.NewAuthHandler(deps.UserRepo, deps.Tokens)
	fileHandler := handler.NewFileHandler(deps.Files)

	e.GET("/status", appHandler.GetStatus)
	e.GET("/stats", appHandler.GetStats)

	e.POST("/users", userHandler.PostNew, strictRateLimiter.Middleware())
	e.GET("/connect", authHandler.GetConnect, strictRateLimiter.Middleware())

	authed := e.Group("", deps.AuthMiddleware.RequireToken())
	authed.GET("/users/me", userHandler.GetMe)
	authed.GET("/disconnect", authHandler.GetDisconnect)
	authed.POST("/files", fileHandler.PostUpload)
	authed.GET("/files", fileHandler.GetIndex)
	authed.GET("/files/:id", fileHandler.GetShow)
	authed.PUT("/files/:id/publish", fileHandler.PutPublish)
	authed.PUT("/files/:id/unpublish", fileHandler.PutUnpublish)

	// Content is the one read open to anonymous callers; visibility is
	// decided per file.
	e.GET("/files/:id/data", fileHandler.GetData, deps.AuthMiddleware.OptionalToken())

	return &Server{
		echo: e,
		deps: deps,
	}
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
