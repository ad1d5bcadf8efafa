package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bigredeye/gradebook/internal/config"
	"github.com/bigredeye/gradebook/internal/records"
)

type server struct {
	config *config.Config
	logger *zap.Logger

	records  *records.Service
	draining *atomic.Bool
}

func newServer(config *config.Config, logger *zap.Logger, records *records.Service) *server {
	return &server{
		config:   config,
		logger:   logger.Named("web"),
		records:  records,
		draining: atomic.NewBool(false),
	}
}

func (s *server) engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(ginzap.Ginzap(s.logger, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(s.logger, true))
	r.Use(requestID)

	setupStudentsService(s, r)
	setupSubjectsService(s, r)
	setupMarksService(s, r)

	r.GET("/ping", func(c *gin.Context) {
		if s.draining.Load() {
			c.String(http.StatusServiceUnavailable, "draining")
			return
		}
		c.String(http.StatusOK, "pong "+fmt.Sprint(time.Now().Unix()))
	})

	return r
}

func (s *server) run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.config.Server.ListenAddress,
		Handler: s.engine(),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Starting server", zap.String("bind_address", s.config.Server.ListenAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		s.draining.Store(true)
		s.logger.Info("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
