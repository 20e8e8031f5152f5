package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/unicsmcr/hs_activities/controller"
	"github.com/unicsmcr/hs_activities/environment"
	"github.com/unicsmcr/hs_activities/eventloop"
	"github.com/unicsmcr/hs_activities/routers"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPort     = "8080"
	shutdownTimeout = 5 * time.Second
)

// Server hosts the activities page and runs the controller behind it
type Server struct {
	*gin.Engine
	Port       string
	logger     *zap.Logger
	loop       *eventloop.Loop
	controller *controller.Controller
}

func NewServer(logger *zap.Logger, env *environment.Env, mainRouter routers.MainRouter, loop *eventloop.Loop, ctrl *controller.Controller) *Server {
	engine := gin.Default()

	mainRouter.RegisterRoutes(engine.Group("/"))

	return &Server{
		Engine:     engine,
		Port:       env.GetOrDefault(environment.Port, defaultPort),
		logger:     logger,
		loop:       loop,
		controller: ctrl,
	}
}

// Start runs the event loop and the http server until ctx is done or either
// of them fails
func (s *Server) Start(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", s.Port),
		Handler: s.Engine,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		err := s.loop.Run(gctx)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return multierr.Append(err, errors.Wrap(httpServer.Shutdown(shutdownCtx), "could not shut down http server"))
	})

	g.Go(func() error {
		s.logger.Info("server started", zap.String("address", fmt.Sprintf("localhost:%s", s.Port)))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return errors.Wrap(err, "could not start server")
		}
		return nil
	})

	s.controller.Start()

	return g.Wait()
}
