package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/amidakuji/pkg/errors"
	"github.com/matzehuels/amidakuji/pkg/pipeline"
	"github.com/matzehuels/amidakuji/pkg/render/sink"
)

// Response headers set on every rendered diagram.
const (
	HeaderDiagramID = "X-Diagram-ID"
	HeaderSeed      = "X-Seed"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleDiagram(w http.ResponseWriter, r *http.Request) {
	s.serveDiagram(w, r, "")
}

func (s *Server) handleDiagramJSON(w http.ResponseWriter, r *http.Request) {
	s.serveDiagram(w, r, sink.FormatJSON)
}

func (s *Server) serveDiagram(w http.ResponseWriter, r *http.Request, format string) {
	opts, err := s.parseOptions(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if format != "" {
		opts.Format = format
	}
	opts.Logger = s.logger.With("request_id", middleware.GetReqID(r.Context()))

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", sink.ContentType(res.Format))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Artifact)))
	w.Header().Set(HeaderDiagramID, res.Diagram.ID)
	w.Header().Set(HeaderSeed, strconv.FormatUint(res.Seed, 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifact)
}

// parseOptions reads pipeline options from the query string, falling back to
// the server config for everything but the counts.
func (s *Server) parseOptions(q url.Values) (pipeline.Options, error) {
	opts := pipeline.Options{
		Strategy:    s.cfg.Strategy,
		MarginRatio: s.cfg.Margin(),
		Seed:        s.cfg.Seed,
		Format:      s.cfg.Format,
		Page:        s.cfg.Page,
	}

	var err error
	if opts.Lines, err = requiredInt(q, "lines"); err != nil {
		return opts, err
	}
	if opts.MinRungs, err = requiredInt(q, "min"); err != nil {
		return opts, err
	}
	if opts.MaxRungs, err = requiredInt(q, "max"); err != nil {
		return opts, err
	}
	if opts.Lines > s.cfg.Server.MaxLines {
		return opts, errors.New(errors.ErrCodeInvalidParameter, "lines must be <= %d, got %d", s.cfg.Server.MaxLines, opts.Lines)
	}
	if opts.MaxRungs > s.cfg.Server.MaxRungs {
		return opts, errors.New(errors.ErrCodeInvalidParameter, "max must be <= %d, got %d", s.cfg.Server.MaxRungs, opts.MaxRungs)
	}

	if v := q.Get("format"); v != "" {
		opts.Format = v
	}
	if v := q.Get("strategy"); v != "" {
		opts.Strategy = v
	}
	if v := q.Get("page"); v != "" {
		opts.Page = v
	}
	if v := q.Get("margin"); v != "" {
		m, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidParameter, err, "margin must be a number, got %q", v)
		}
		opts.MarginRatio = m
	}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidParameter, err, "seed must be an unsigned integer, got %q", v)
		}
		opts.Seed = seed
	}
	return opts, nil
}

func requiredInt(q url.Values, name string) (int, error) {
	v := q.Get(name)
	if v == "" {
		return 0, errors.New(errors.ErrCodeInvalidParameter, "%s is required", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidParameter, err, "%s must be an integer, got %q", name, v)
	}
	return n, nil
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidParameter, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeConnectivity:
		return http.StatusUnprocessableEntity
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", middleware.GetReqID(r.Context()), "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Code: code, Message: errors.UserMessage(err)})
}
