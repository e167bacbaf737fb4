// Package server exposes the operational HTTP surface: health probes,
// Prometheus metrics and the build version. The bot itself talks to
// Telegram over long polling, so this server carries no chat traffic.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
)

// postgresPinger is the slice of pgxpool.Pool the health checks need.
type postgresPinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo  *echo.Echo
	port  string
	db    postgresPinger
	redis *goredis.Client
}

// New builds the ops server. redis may be nil; the readiness probe then
// checks postgres only.
func New(port string, db postgresPinger, redis *goredis.Client) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())

	s := &Server{echo: e, port: port, db: db, redis: redis}

	e.GET("/health/live", s.handleLiveness)
	e.GET("/health/ready", s.handleReadiness)
	e.GET("/version", s.handleVersion)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return s
}

func (s *Server) Start() error {
	slog.Info("starting ops server", "port", s.port)
	return s.echo.Start(fmt.Sprintf(":%s", s.port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
