package ui

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	appbundle "github.com/LESLIE-RG/ProjetTestParam-trique/domain/bundle"
	"github.com/LESLIE-RG/ProjetTestParam-trique/domain/dataset"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/charts"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/config"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/hypotest"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/predict"
	"github.com/LESLIE-RG/ProjetTestParam-trique/internal/session"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	config    *config.Config
	sessions  *session.Manager
	builder   *charts.Builder
	runner    *hypotest.Runner
	predictor *predict.Predictor
	templates *template.Template
	demoTable *dataset.Table
}

// NewApp creates a new UI application over the loaded model bundle
func NewApp(cfg *config.Config, sessions *session.Manager, modelBundle *appbundle.Bundle) (*App, error) {
	funcMap := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"pct": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
		"f3":  func(v float64) string { return fmt.Sprintf("%.3f", v) },
		"f4":  func(v float64) string { return fmt.Sprintf("%.4f", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles,
		"templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		config:    cfg,
		sessions:  sessions,
		builder:   charts.NewBuilder(),
		runner:    hypotest.NewRunner(),
		predictor: predict.New(modelBundle),
		templates: templates,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// EnableDemo seeds every fresh session with the given table, so the
// Visualize and Test screens work before any import.
func (a *App) EnableDemo(table *dataset.Table) {
	a.demoTable = table
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
	a.router.Use(a.sessionMiddleware)

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Screen shells
	a.router.Get("/", a.handleScreen)
	a.router.Get("/{screen}", a.handleScreen)

	// Action endpoints (HTMX fragments)
	a.router.Post("/api/datasets/upload", a.handleDatasetUpload)
	a.router.Post("/api/charts/build", a.handleChartBuild)
	a.router.Post("/api/tests/run", a.handleTestRun)
	a.router.Post("/api/tests/sweep", a.handleTestSweep)
	a.router.Post("/api/predict", a.handlePredict)
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.config.Server.Port
	log.Printf("Starting dashboard server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Handler exposes the router for tests
func (a *App) Handler() http.Handler {
	return a.router
}

// Template helpers
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		log.Printf("Template error for %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// HTMX helpers
func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}
