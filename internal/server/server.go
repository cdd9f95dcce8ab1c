package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/handler"
	"github.com/MKhiriev/go-user-auth/internal/logger"
)

const defaultShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoTransports
	}

	servers.shutdownTimeout = cfg.ShutdownTimeout
	if servers.shutdownTimeout <= 0 {
		servers.shutdownTimeout = defaultShutdownTimeout
	}
	servers.logger = logger

	return servers, nil
}

// RunServer binds every configured transport, serves until ctx is cancelled
// or a transport fails, and then shuts all transports down within the
// configured shutdown timeout.
func (s *server) RunServer(ctx context.Context) error {
	listeners, err := s.listen()
	if err != nil {
		return err
	}

	return s.serve(ctx, listeners)
}

type serveFunc func(net.Listener) error

func (s *server) listen() (map[net.Listener]serveFunc, error) {
	listeners := make(map[net.Listener]serveFunc, 2)

	closeAll := func() {
		for l := range listeners {
			l.Close()
		}
	}

	if s.httpServer != nil {
		l, err := net.Listen("tcp", s.httpServer.server.Addr)
		if err != nil {
			return nil, fmt.Errorf("error listening on HTTP address: %w", err)
		}
		listeners[l] = s.httpServer.Serve
	}
	if s.gRPCServer != nil {
		l, err := net.Listen("tcp", s.gRPCServer.address)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("error listening on gRPC address: %w", err)
		}
		listeners[l] = s.gRPCServer.Serve
	}

	return listeners, nil
}

func (s *server) serve(ctx context.Context, listeners map[net.Listener]serveFunc) error {
	errCh := make(chan error, len(listeners))
	for listener, serve := range listeners {
		go func() {
			errCh <- serve(listener)
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-errCh:
		if runErr != nil {
			s.logger.Err(runErr).Msg("transport failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return runErr
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error

	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}

	return errors.Join(errs...)
}
