// Package server exposes the engine over HTTP: snapshot reads, model
// switching, re-rolls and simulation stepping, plus Prometheus metrics.
// It is a thin presentation consumer; all sequencing guarantees live in the
// engine.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/skeinlab/skein/engine"
	"github.com/skeinlab/skein/gen"
	"github.com/skeinlab/skein/render"
)

// maxStepsPerRequest bounds how long one step request can hold the engine
// lock; larger relaxation runs are split across requests.
const maxStepsPerRequest = 10000

// Server serves the HTTP API for one engine instance.
type Server struct {
	eng    *engine.Engine
	logger *log.Logger
	svg    *render.Options
}

// New creates a Server. svgOpts may be nil to use the render defaults.
func New(eng *engine.Engine, logger *log.Logger, svgOpts *render.Options) *Server {
	if svgOpts == nil {
		svgOpts = render.DefaultOptions()
	}
	return &Server{eng: eng, logger: logger, svg: svgOpts}
}

// Router builds the route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/graph", s.handleGraph)
		r.Get("/graph.svg", s.handleGraphSVG)
		r.Get("/model", s.handleModelInfo)
		r.Post("/model", s.handleSelectModel)
		r.Post("/reroll", s.handleReroll)
		r.Post("/step", s.handleStep)
	})
	return r
}

// ListenAndServe runs the server until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info("listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// modelInfo is the response body for model state endpoints.
type modelInfo struct {
	Model    string          `json:"model"`
	Tunables engine.Tunables `json:"tunables"`
	GraphID  string          `json:"graph_id"`
	Nodes    int             `json:"nodes"`
	Edges    int             `json:"edges"`
}

func (s *Server) currentInfo() modelInfo {
	g := s.eng.CurrentModel()
	return modelInfo{
		Model:    s.eng.Kind().String(),
		Tunables: s.eng.Tunables(),
		GraphID:  g.ID,
		Nodes:    g.Order(),
		Edges:    g.Size(),
	}
}

func (s *Server) handleGraph(w http.ResponseWriter, _ *http.Request) {
	out, err := render.JSON(s.eng.CurrentModel())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}

func (s *Server) handleGraphSVG(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(render.SVG(s.eng.CurrentModel(), s.svg))
}

func (s *Server) handleModelInfo(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.currentInfo())
}

func (s *Server) handleSelectModel(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Model string `json:"model"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	kind, err := engine.ParseKind(req.Model)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := s.eng.SelectModel(kind); err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.currentInfo())
}

func (s *Server) handleReroll(w http.ResponseWriter, _ *http.Request) {
	if err := s.eng.Reroll(); err != nil {
		s.writeError(w, statusForError(err), err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.currentInfo())
}

func (s *Server) handleStep(w http.ResponseWriter, r *http.Request) {
	var req struct {
		DT    float64 `json:"dt"`
		Steps int     `json:"steps"`
	}
	// An empty body means one step at the configured time step.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decode request: %w", err))
		return
	}
	if req.Steps <= 0 {
		req.Steps = 1
	}
	if req.Steps > maxStepsPerRequest {
		s.writeError(w, http.StatusBadRequest,
			fmt.Errorf("steps %d exceeds the per-request limit of %d", req.Steps, maxStepsPerRequest))
		return
	}
	for i := 0; i < req.Steps; i++ {
		s.eng.Step(req.DT)
	}
	s.writeJSON(w, http.StatusOK, map[string]int{"steps": req.Steps})
}

func statusForError(err error) int {
	if errors.Is(err, gen.ErrInvalidParameter) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Error("request failed", "status", status, "err", err)
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
