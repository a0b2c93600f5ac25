// Package server exposes the renderer over HTTP. A single GET /render
// endpoint mirrors the library API: the same validation runs, the same
// error codes come back, just serialized as JSON instead of error values.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/timoleistner/plotrna/pkg/colormap"
	"github.com/timoleistner/plotrna/pkg/errors"
	"github.com/timoleistner/plotrna/pkg/layout"
	"github.com/timoleistner/plotrna/pkg/plot"
	"github.com/timoleistner/plotrna/pkg/render/sink"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// WithProvider replaces the layout provider, e.g. to add caching.
func WithProvider(p layout.Provider) Option { return func(s *Server) { s.provider = p } }

// Server renders diagrams over HTTP.
type Server struct {
	logger   *log.Logger
	provider layout.Provider
}

// New builds a server with the given options.
func New(opts ...Option) *Server {
	s := &Server{logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.provider == nil {
		s.provider = layout.Default()
	}
	return s
}

// Handler returns the HTTP routing table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/colormaps", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"colormaps": colormap.Names()})
	})
	r.Get("/render", s.handleRender)
	return r
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info("listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	structure := q.Get("structure")
	sequence := q.Get("sequence")
	format := q.Get("format")
	if format == "" {
		format = "png"
	}
	probs := q.Get("probabilities") == "true" || q.Get("probabilities") == "1"

	if format != "png" && format != "svg" {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat,
			"unsupported format %q (png, svg)", format))
		return
	}
	if format == "svg" && !probs {
		writeError(w, errors.New(errors.ErrCodeInvalidFormat,
			"svg output is only available for probability renders"))
		return
	}

	opts := []plot.Option{plot.WithLayoutProvider(s.provider)}
	if l := q.Get("layout"); l != "" {
		opts = append(opts, plot.WithLayout(layout.Scheme(l)))
	}
	if cm := q.Get("colormap"); cm != "" {
		opts = append(opts, plot.WithColormap(cm))
	}

	var svgBuf bytes.Buffer
	if format == "svg" {
		opts = append(opts, plot.WithSVGOutput(&svgBuf))
	}

	ctx := r.Context()
	var err error
	var data []byte
	if probs {
		img, renderErr := plot.RenderStructureProbabilities(ctx, structure, sequence, opts...)
		if renderErr != nil {
			writeError(w, renderErr)
			return
		}
		if format == "svg" {
			data = svgBuf.Bytes()
		} else if data, err = sink.EncodePNG(img); err != nil {
			writeError(w, err)
			return
		}
	} else {
		img, renderErr := plot.RenderStructure(ctx, structure, append(opts, plot.WithSequence(sequence))...)
		if renderErr != nil {
			writeError(w, renderErr)
			return
		}
		if data, err = sink.EncodePNG(img); err != nil {
			writeError(w, err)
			return
		}
	}

	if format == "svg" {
		w.Header().Set("Content-Type", "image/svg+xml")
	} else {
		w.Header().Set("Content-Type", "image/png")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// logRequests logs method, path, status, and duration for every request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}

// statusFor maps error codes to HTTP status codes. Input problems are the
// client's fault; everything else is a server failure.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidLength,
		errors.ErrCodeInvalidValue, errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidColormap, errors.ErrCodeInvalidTheme,
		errors.ErrCodeStructure, errors.ErrCodeFold:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(errors.GetCode(err)), map[string]any{
		"error": err.Error(),
		"code":  string(errors.GetCode(err)),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
