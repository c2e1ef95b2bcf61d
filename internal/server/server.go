// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-autofill/internal/config"
	"github.com/MKhiriev/go-pass-autofill/internal/logger"
)

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(router http.Handler, cfg config.AgentServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errNoListenAddress
	}

	return &server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      router,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()
		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Str("address", s.httpServer.Addr).Msg("launching popup API server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Err(err).Msg("popup API server stopped")
		return
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server shutdown gracefully")
}

func (s *server) Shutdown() {
	if err := s.httpServer.Shutdown(context.Background()); err != nil {
		s.logger.Err(err).Msg("popup API server shutdown")
	}
}
