package http

import (
	"html/template"

	"github.com/gin-gonic/gin"

	"github.com/freewrite-app/freewrite/internal/auth"
	"github.com/freewrite-app/freewrite/internal/database"
	"github.com/freewrite-app/freewrite/internal/library"
)

// RouterConfig bundles the dependencies of the HTTP surface.
type RouterConfig struct {
	Database       *database.Database
	Library        *library.Service
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	CSRFSecret     []byte
	SecureCookies  bool
	TemplatesPath  string
	StaticPath     string
	Version        string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	}

	// Load HTML templates
	if cfg.TemplatesPath != "" {
		tmpl := template.Must(template.New("").ParseGlob(cfg.TemplatesPath + "/*.html"))
		router.SetHTMLTemplate(tmpl)
	}

	// Serve static files
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	// Registration, login, logout
	if cfg.AuthService != nil {
		authController := auth.NewController(cfg.AuthService, cfg.SessionManager)
		authController.RegisterRoutes(router)
	}

	health := NewHealthController(cfg.Database, cfg.Version)
	uiController := NewUIController(cfg.Library)
	booksController := NewBooksController(cfg.Library)
	chaptersController := NewChaptersController(cfg.Library)

	// Health endpoints
	router.GET("/health", health.Status)

	// Reader pages
	router.GET("/", uiController.IndexPage)
	router.GET("/book/:id", uiController.BookPage)
	router.GET("/read/:chapterId", uiController.ReadPage)

	// Author pages
	requireAuth := cfg.AuthMiddleware.RequireAuth()
	router.GET("/dashboard", requireAuth, uiController.DashboardPage)
	router.GET("/write", requireAuth, booksController.WritePage)
	router.POST("/create-book", booksController.CreateBook)
	router.GET("/book/:id/delete", booksController.DeleteBook)
	router.GET("/book/:id/add-chapter", chaptersController.AddChapterPage)
	router.POST("/book/:id/add-chapter", chaptersController.AddChapter)
	router.GET("/chapter/:id/edit", chaptersController.EditChapterPage)
	router.POST("/chapter/:id/edit", chaptersController.EditChapter)

	return router
}
