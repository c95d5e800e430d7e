package celld

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/danmuck/cellkit/internal/auth"
	"github.com/danmuck/cellkit/internal/config"
	"github.com/danmuck/cellkit/internal/logging"
	"github.com/danmuck/cellkit/internal/registry"
	"github.com/danmuck/cellkit/internal/resources"
	"github.com/danmuck/cellkit/internal/tools"
)

// Service runs the daemon lifecycle as a standalone process.
type Service struct {
	cfg    config.NodeConfig
	runner tools.CommandRunner
	node   *Node
}

// NewService constructs the daemon from a loaded node config.
func NewService(cfg config.NodeConfig) *Service {
	return NewServiceWithRunner(cfg, tools.ExecRunner{})
}

// NewServiceWithRunner allows tests to substitute command execution.
func NewServiceWithRunner(cfg config.NodeConfig, runner tools.CommandRunner) *Service {
	return &Service{cfg: cfg, runner: runner}
}

// Run blocks until process signal shutdown.
func (s *Service) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := s.bootstrap(); err != nil {
		return err
	}
	return s.serve(ctx)
}

// Node returns the running daemon node; nil before bootstrap.
func (s *Service) Node() *Node {
	return s.node
}

func (s *Service) bootstrap() error {
	logging.ConfigureRuntime()

	reg := registry.NewRegistry()
	if err := resources.BindAll(reg, s.cfg.Resources, s.runner); err != nil {
		return err
	}

	var validator auth.Validator
	if strings.TrimSpace(s.cfg.AdminToken) != "" {
		validator = auth.StaticToken{Token: s.cfg.AdminToken}
	}

	s.node = Appear(s.cfg.Name, s.cfg.Addr, s.cfg.CorsOrigins, validator, reg)
	s.node.RegisterRoutes()

	log.Info().
		Str("node", s.cfg.Name).
		Str("addr", s.cfg.Addr).
		Int("resources", len(s.cfg.Resources)).
		Msg("celld ready")
	return nil
}

func (s *Service) serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.node.HTTPRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info().Str("node", s.cfg.Name).Msg("celld shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
