package http

import (
	"github.com/mrlokans/mybooks/internal/database"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies; *library.Library satisfies all four.
	BookStore  BookStore
	FormStore  FormStore
	GenreStore GenreStore
	QuoteStore QuoteStore

	// Audit log listing (optional)
	AuditLog AuditLog

	// Database connection for health checks
	Database *database.Database

	// Application info
	Version string
}
