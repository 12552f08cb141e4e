package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	healthController := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", healthController.Status)

	api := router.Group("/api")

	if cfg.BookStore != nil {
		booksController := NewBooksController(cfg.BookStore)
		api.GET("/books", booksController.ListBooks)
		api.POST("/books", booksController.CreateBook)
		api.GET("/books/stats", booksController.GetStats)
		api.GET("/books/:id", booksController.GetBook)
		api.DELETE("/books/:id", booksController.DeleteBook)
	}

	if cfg.FormStore != nil {
		formsController := NewFormsController(cfg.FormStore)
		api.GET("/books/:id/form", formsController.GetForm)
		api.POST("/books/:id/form/status", formsController.ChangeStatus)
		api.PUT("/books/:id", formsController.SaveForm)
	}

	if cfg.GenreStore != nil {
		genresController := NewGenresController(cfg.GenreStore)
		api.GET("/genres", genresController.ListGenres)
		api.POST("/genres", genresController.CreateGenre)
		api.PUT("/genres/:id", genresController.UpdateGenre)
		api.DELETE("/genres/:id", genresController.DeleteGenre)
		api.GET("/genres/:id/books", genresController.GetGenreBooks)
		api.POST("/books/:id/genres/:genreId/toggle", genresController.ToggleGenre)
	}

	if cfg.QuoteStore != nil {
		quotesController := NewQuotesController(cfg.QuoteStore)
		api.GET("/books/:id/quotes", quotesController.ListQuotes)
		api.POST("/books/:id/quotes", quotesController.AddQuote)
		api.PUT("/quotes/:id", quotesController.UpdateQuote)
		api.DELETE("/quotes/:id", quotesController.DeleteQuote)
	}

	if cfg.AuditLog != nil {
		auditController := NewAuditController(cfg.AuditLog)
		api.GET("/audit", auditController.GetAuditEvents)
	}

	return router
}
