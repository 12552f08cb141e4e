// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## HTTP Stores
//
// Each controller in internal/http depends on a narrow store interface
// (internal/http/stores.go) rather than on the library directly:
//
//   - BookStore: filtered and sorted book list, creation, deletion, stats
//   - FormStore: the two-phase edit flow (load form, change status, save)
//   - GenreStore: genre management and book membership toggling
//   - QuoteStore: quotes owned by a book
//   - AuditLog: read access to recorded deletions
//
// library.Library implements the four book-facing stores. audit.Service
// implements AuditLog.
//
// ## Library Collaborators
//
//   - DeleteAuditor: records deletions (internal/library/library.go)
//
// # Adding a New Controller
//
//  1. Declare the store interface in internal/http/stores.go
//
//     type ReviewStore interface {
//         ReviewsForBook(bookID uint) ([]entities.Review, error)
//     }
//
//  2. Add the field to RouterConfig and register routes in router.go when
//     the store is non-nil
//
//  3. Add a compile-time check in checks.go:
//
//     var _ http.ReviewStore = (*library.Library)(nil)
//
// # Adding a New Database Domain
//
//  1. Create sub-package: internal/database/reviews/
//
//  2. Define repository:
//
//     type Repository struct { db *gorm.DB }
//
//     func NewRepository(db *gorm.DB) *Repository
//
//  3. Add it to the library's repositories bundle so it joins transactions
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// See checks.go for the current set.
package interfaces
