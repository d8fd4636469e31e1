package api

import (
	"context"
	"io"
	"net/http"

	"github.com/whiteelite/ixservice/internal/domain/apperrors"
	"github.com/whiteelite/ixservice/internal/service"
	"go.uber.org/zap"
)

func (s *Server) routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleRoot)
	s.handle(mux, "POST /keypair", "keypair", s.handleKeypair)
	s.handle(mux, "POST /token/create", "token_create", jsonHandler(s, s.svc.CreateToken))
	s.handle(mux, "POST /token/mint", "token_mint", jsonHandler(s, s.svc.MintToken))
	s.handle(mux, "POST /message/sign", "message_sign", jsonHandler(s, s.svc.SignMessage))
	s.handle(mux, "POST /message/verify", "message_verify", jsonHandler(s, s.svc.VerifyMessage))
	s.handle(mux, "POST /send/sol", "send_sol", jsonHandler(s, s.svc.SendSOL))
	s.handle(mux, "POST /send/token", "send_token", jsonHandler(s, s.svc.SendToken))
	if s.metrics != nil {
		mux.Handle("GET "+s.metricsPath, s.metrics.Handler())
	}
}

func (s *Server) handle(mux *http.ServeMux, pattern, route string, h http.HandlerFunc) {
	mux.Handle(pattern, s.metrics.instrument(route, h))
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "Hello, world!")
}

func (s *Server) handleKeypair(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.svc.GenerateKeyPair(r.Context()))
}

// jsonHandler adapts a service call taking a decoded request body.
func jsonHandler[Req, Resp any](s *Server, call func(context.Context, Req) (*Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := decode[Req](w, r, s.maxBodyBytes)
		if err != nil {
			s.reject(w, r, err)
			return
		}
		resp, err := call(r.Context(), req)
		if err != nil {
			s.reject(w, r, err)
			return
		}
		writeSuccess(w, resp)
	}
}

// reject writes the error envelope. Internal errors are already logged by the
// service with their cause.
func (s *Server) reject(w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.From(err).Kind == apperrors.KindBadRequest {
		s.logger.Debug("request rejected",
			zap.String("request_id", service.RequestIDFromContext(r.Context())),
			zap.Error(err))
	}
	writeError(w, err)
}
