// Package web serves the design variable form over HTTP.
package web

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/alexisbeaulieu97/designvars/internal/cssgen"
	"github.com/alexisbeaulieu97/designvars/internal/design"
	"github.com/alexisbeaulieu97/designvars/internal/form"
	"github.com/alexisbeaulieu97/designvars/internal/logger"
)

// ServerOption configures optional Server behavior.
type ServerOption func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *logger.Logger) ServerOption {
	return func(s *Server) { s.log = l }
}

// WithDefaultUnit sets the unit preselected in the font unit field.
func WithDefaultUnit(unit string) ServerOption {
	return func(s *Server) { s.defaultUnit = unit }
}

// Server holds the chi router, the store and the parsed page template.
type Server struct {
	router      chi.Router
	store       *design.Store
	templates   *template.Template
	log         *logger.Logger
	defaultUnit string
}

// NewServer creates a Server with all routes configured.
func NewServer(store *design.Store, opts ...ServerOption) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{store: store, templates: tmpl}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))

	r.Get("/", s.handleIndex)
	r.Post("/", s.handleSubmit)
	r.Post("/reset", s.handleReset)
	r.Get("/variables.css", s.handleCSS)
	r.Get("/api/variables", s.handleAPI)

	return r
}

// controller builds a form controller for one request. Notices raised while
// handling the request are captured in the returned slot.
func (s *Server) controller(notice **form.Notice) *form.Controller {
	opts := []form.Option{
		form.WithLogger(s.log),
		form.WithNotifier(form.NotifierFunc(func(n form.Notice) {
			*notice = &n
		})),
	}
	if s.defaultUnit != "" {
		opts = append(opts, form.WithDefaultUnit(s.defaultUnit))
	}
	return form.New(s.store, opts...)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var notice *form.Notice
	ctrl := s.controller(&notice)
	s.renderPage(w, http.StatusOK, newPageData(ctrl, notice))
}

var formFields = []form.Field{
	form.FieldColorName,
	form.FieldColorValue,
	form.FieldFontName,
	form.FieldFontSize,
	form.FieldFontUnit,
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	var notice *form.Notice
	ctrl := s.controller(&notice)
	for _, f := range formFields {
		if values, ok := r.PostForm[f.String()]; ok && len(values) > 0 {
			ctrl.SetField(f, values[0])
		}
	}

	status := http.StatusOK
	if _, err := ctrl.Submit(r.Context()); err != nil {
		status = statusFor(err)
	}
	s.renderPage(w, status, newPageData(ctrl, notice))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var notice *form.Notice
	ctrl := s.controller(&notice)

	status := http.StatusOK
	if err := ctrl.Reset(r.Context()); err != nil {
		status = statusFor(err)
	}
	s.renderPage(w, status, newPageData(ctrl, notice))
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if err := cssgen.Write(w, s.store.Snapshot()); err != nil {
		s.log.Error(err, "write css response")
	}
}

type variablesResponse struct {
	Colors      design.Group `json:"colors"`
	Fonts       design.Group `json:"fonts"`
	CSS         string       `json:"css"`
	CopyEnabled bool         `json:"copy_enabled"`
}

func (s *Server) handleAPI(w http.ResponseWriter, r *http.Request) {
	vars := s.store.Snapshot()
	resp := variablesResponse{
		Colors:      vars.Colors,
		Fonts:       vars.Fonts,
		CSS:         cssgen.Generate(vars),
		CopyEnabled: s.store.CopyEnabled(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error(err, "encode variables response")
	}
}

func (s *Server) renderPage(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := render(w, s.templates, data); err != nil {
		s.log.Error(err, "render page")
	}
}
