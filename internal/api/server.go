package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/whiteelite/ixservice/internal/config"
	"github.com/whiteelite/ixservice/internal/service"
	"go.uber.org/zap"
)

// Server is the HTTP shell around service.Service. It satisfies go-zero's
// service.Service so it can run in a ServiceGroup.
type Server struct {
	httpServer      *http.Server
	listener        net.Listener
	svc             *service.Service
	logger          *zap.Logger
	metrics         *Metrics
	metricsPath     string
	maxBodyBytes    int64
	shutdownTimeout time.Duration
}

func NewServer(cfg config.Config, svc *service.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		svc:             svc,
		logger:          logger,
		metricsPath:     cfg.Metrics.Path,
		maxBodyBytes:    cfg.HTTPConf.MaxBodyBytes,
		shutdownTimeout: cfg.HTTPConf.ShutdownTimeout(),
	}
	if cfg.Metrics.Enabled {
		s.metrics = NewMetrics()
	}

	mux := http.NewServeMux()
	s.routes(mux)

	s.httpServer = &http.Server{
		Addr:              cfg.BindAddr,
		Handler:           withRequestID(withAccessLog(logger, mux)),
		ReadHeaderTimeout: cfg.HTTPConf.ReadHeaderTimeout(),
		ReadTimeout:       cfg.HTTPConf.ReadTimeout(),
		WriteTimeout:      cfg.HTTPConf.WriteTimeout(),
		ErrorLog:          zap.NewStdLog(logger),
	}
	return s
}

func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Listen binds the configured address. It is separate from Start so that a
// bind failure is reported before any service starts.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// Addr returns the bound address, or the configured one before Listen.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Start serves until Stop. It binds first if Listen was not called.
func (s *Server) Start() {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			s.logger.Error("http listen failed", zap.String("addr", s.httpServer.Addr), zap.Error(err))
			return
		}
	}
	s.logger.Info("http server listening", zap.String("addr", s.Addr()))
	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("http server stopped", zap.Error(err))
	}
}

// Stop drains in-flight requests for at most the shutdown timeout.
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn("http shutdown incomplete", zap.Error(err))
		_ = s.httpServer.Close()
	}
}
