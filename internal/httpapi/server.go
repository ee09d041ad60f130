package httpapi

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"weather-dashboard/internal/dashboard"
	"weather-dashboard/internal/models"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

// DashboardBuilder produces the page model for one request.
// *dashboard.Builder satisfies it.
type DashboardBuilder interface {
	Build(ctx context.Context, submitted string) (models.DisplayContext, dashboard.Outcome)
}

type Server struct {
	builder  DashboardBuilder
	tmpl     *template.Template
	onRender func(outcome string)
}

type Option func(*Server)

// WithRenderHook registers a callback invoked with the outcome of every
// dashboard render.
func WithRenderHook(fn func(outcome string)) Option {
	return func(s *Server) { s.onRender = fn }
}

func NewServer(builder DashboardBuilder, opts ...Option) *Server {
	s := &Server{
		builder: builder,
		tmpl:    template.Must(template.ParseFS(templateFS, "templates/dashboard.html")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handleDashboard)
	r.Post("/", s.handleDashboard)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var submitted string
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			slog.WarnContext(r.Context(), "invalid dashboard form", "error", err)
		}
		submitted = r.PostFormValue("location")
	}

	page, outcome := s.builder.Build(r.Context(), submitted)
	if s.onRender != nil {
		s.onRender(string(outcome))
	}
	slog.DebugContext(r.Context(), "dashboard rendered", "location", page.SelectedLocation, "outcome", outcome)

	var buf bytes.Buffer
	if err := s.tmpl.ExecuteTemplate(&buf, "dashboard.html", page); err != nil {
		slog.ErrorContext(r.Context(), "dashboard template failed", "error", err)
		http.Error(w, "failed to render dashboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
