package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JaimeStill/scholar/internal/api"
	"github.com/JaimeStill/scholar/internal/config"
	"github.com/JaimeStill/scholar/internal/infrastructure"
	"github.com/JaimeStill/scholar/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			srv, err := NewServer(cfg)
			if err != nil {
				return err
			}

			if err := srv.Start(); err != nil {
				return err
			}

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig

			return srv.Shutdown(cfg.ShutdownTimeoutDuration())
		},
	}
}

// Server coordinates the lifecycle of all subsystems.
type Server struct {
	infra *infrastructure.Infrastructure
	http  server.System
}

// NewServer creates and initializes the service with all subsystems.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	runtime := api.NewRuntime(cfg, infra)
	handler := api.NewHandler(runtime, cfg.Server.BasePath)
	httpSrv := server.New(&cfg.Server, cfg.ShutdownTimeoutDuration(), handler, infra.Logger)

	infra.Logger.Info(
		"server initialized",
		"addr", httpSrv.Addr(),
		"base_path", cfg.Server.BasePath,
	)

	return &Server{
		infra: infra,
		http:  httpSrv,
	}, nil
}

// Start begins all subsystems and returns without waiting for them to become ready.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown stops all subsystems, waiting at most timeout.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")

	if err := s.infra.Lifecycle.Shutdown(timeout); err != nil {
		return err
	}

	s.infra.Logger.Info("service stopped gracefully")
	return nil
}
