package ui

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"roadmap/app"
	"roadmap/domain/viewport"
	"roadmap/internal"
	"roadmap/ui/middleware"

	"github.com/gin-gonic/gin"
)

// Server is the roadmap web UI.
type Server struct {
	router        *gin.Engine
	roadmaps      *app.RoadmapService
	sessions      *app.SessionStore
	cookieName    string
	templates     *template.Template
	embeddedFiles fs.FS
	log           *internal.Logger
}

// NewServer creates a server reading templates and static files from files,
// which must contain ui/templates and ui/static.
func NewServer(files fs.FS) *Server {
	return &Server{
		router:        gin.New(),
		embeddedFiles: files,
		log:           internal.DefaultLogger.With("ui"),
	}
}

// Initialize wires dependencies, parses templates and registers routes.
func (s *Server) Initialize(roadmaps *app.RoadmapService, sessions *app.SessionStore, cookieName string) error {
	s.roadmaps = roadmaps
	s.sessions = sessions
	s.cookieName = cookieName

	funcMap := template.FuncMap{
		"legend": viewport.Legend,
	}

	templatesFS, err := fs.Sub(s.embeddedFiles, "ui/templates")
	if err != nil {
		return fmt.Errorf("failed to create templates filesystem: %w", err)
	}
	s.templates, err = template.New("").Funcs(funcMap).ParseFS(templatesFS, "*.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	s.log.Debug("parsed templates: %s", s.templates.DefinedTemplates())

	if err := s.setupMiddleware(); err != nil {
		return err
	}
	s.setupRoutes()
	return nil
}

// setupMiddleware configures Gin middleware
func (s *Server) setupMiddleware() error {
	s.router.Use(gin.Recovery(), s.requestLogger())

	staticFS, err := fs.Sub(s.embeddedFiles, "ui/static")
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}
	s.router.StaticFS("/static", http.FS(staticFS))
	return nil
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	session := middleware.Session(s.sessions, s.cookieName)
	s.router.GET("/", session, s.handleIndex)
	s.router.GET("/roadmap.svg", session, s.handleRoadmapSVG)

	api := s.router.Group("/api", session)
	api.GET("/scene", s.handleScene)
	api.GET("/years", s.handleYears)
	api.POST("/select", s.handleSelect)
	api.GET("/viewport", s.handleViewport)
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	s.log.Info("Starting roadmap UI on http://localhost%s", addr)
	return s.router.Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.log.Debug("%s %s -> %d", c.Request.Method, c.Request.URL.Path, c.Writer.Status())
	}
}
