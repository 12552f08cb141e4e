package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/mybooks/internal/audit"
	"github.com/mrlokans/mybooks/internal/http"
	"github.com/mrlokans/mybooks/internal/library"
)

// =============================================================================
// HTTP Stores
// =============================================================================

var _ http.BookStore = (*library.Library)(nil)
var _ http.FormStore = (*library.Library)(nil)
var _ http.GenreStore = (*library.Library)(nil)
var _ http.QuoteStore = (*library.Library)(nil)

// AuditLog implementations
var _ http.AuditLog = (*audit.Service)(nil)

// =============================================================================
// Library Collaborators
// =============================================================================

// DeleteAuditor implementations
var _ library.DeleteAuditor = (*audit.Service)(nil)
