package plugin

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

// Handler turns one request payload into one reply payload
type Handler interface {
	Handle(ctx context.Context, payload []byte) ([]byte, error)
}

// HandlerFunc adapts function to Handler
type HandlerFunc func(ctx context.Context, payload []byte) ([]byte, error)

// Handle implements Handler
func (f HandlerFunc) Handle(ctx context.Context, payload []byte) ([]byte, error) {
	return f(ctx, payload)
}

type ServerConfig struct {
	SocketPath     string
	MaxConcurrent  int
	MaxMessageSize uint32
	// Read/write deadline per connection. Zero disables it
	IOTimeout time.Duration
}

// Server listens on a Unix socket. Each connection carries exactly one request and one reply.
type Server struct {
	cfg     ServerConfig
	handler Handler
	logger  *zap.Logger
	sem     *semaphore.Weighted
	wg      sync.WaitGroup
}

func NewServer(cfg ServerConfig, handler Handler, logger *zap.Logger) *Server {
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = 1
	}
	return &Server{
		cfg:     cfg,
		handler: handler,
		logger:  logger,
		sem:     semaphore.NewWeighted(int64(cfg.MaxConcurrent)),
	}
}

// Listen removes stale socket file and starts listening
func (s *Server) Listen() (net.Listener, error) {
	if err := os.Remove(s.cfg.SocketPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("remove stale socket %s: %w", s.cfg.SocketPath, err)
	}
	ln, err := net.Listen("unix", s.cfg.SocketPath)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", s.cfg.SocketPath, err)
	}
	return ln, nil
}

// Serve listens and serves until ctx is cancelled
func (s *Server) Serve(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener accepts connections until ctx is cancelled or Accept fails.
// Listener is closed on every return and in-flight connections are waited for.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("postprocessor listening", zap.String("socket", ln.Addr().String()))

	acceptCtx, cancel := context.WithCancel(ctx)
	defer s.wg.Wait()
	defer cancel()
	go func() {
		<-acceptCtx.Done()
		ln.Close()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				s.logger.Info("postprocessor stopped")
				return nil
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				continue
			}
			return fmt.Errorf("accept: %w", err)
		}
		if err := s.sem.Acquire(ctx, 1); err != nil {
			conn.Close()
			return nil
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.sem.Release(1)
			s.serveConn(ctx, conn)
		}()
	}
}

func (s *Server) serveConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()
	if s.cfg.IOTimeout > 0 {
		if err := conn.SetDeadline(time.Now().Add(s.cfg.IOTimeout)); err != nil {
			s.logger.Warn("set connection deadline", zap.Error(err))
		}
	}

	request, err := ReadMessage(conn, s.cfg.MaxMessageSize)
	if err != nil {
		s.logger.Warn("read request", zap.Error(err))
		return
	}
	reply, err := s.handler.Handle(ctx, request)
	if err != nil {
		s.logger.Error("handle request", zap.Error(err))
		return
	}
	if reply == nil {
		return
	}
	if err := WriteMessage(conn, reply); err != nil {
		s.logger.Warn("write reply", zap.Error(err))
	}
}

// Close removes socket file
func (s *Server) Close() error {
	if err := os.Remove(s.cfg.SocketPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove socket %s: %w", s.cfg.SocketPath, err)
	}
	return nil
}
