package http

import (
	"github.com/mrlokans/mybooks/internal/entities"
	"github.com/mrlokans/mybooks/internal/library"
)

// BookStore covers the book list, creation and deletion.
type BookStore interface {
	Query(order library.SortOrder, filterText string) ([]entities.Book, error)
	CreateBook(input library.BookInput) (*entities.Book, error)
	GetBook(id uint) (*entities.Book, error)
	DeleteBook(id uint) error
	Stats() (library.Stats, error)
}

// FormStore covers the two-phase edit flow.
type FormStore interface {
	GetBook(id uint) (*entities.Book, error)
	EditFormFor(bookID uint) (library.EditForm, error)
	ChangeFormStatus(form library.EditForm, status entities.Status) (library.EditForm, error)
	SaveForm(bookID uint, form library.EditForm) (*entities.Book, error)
}

// GenreStore covers genre management and book membership.
type GenreStore interface {
	ListGenres() ([]entities.Genre, error)
	CreateGenre(input library.GenreInput) (*entities.Genre, error)
	UpdateGenre(id uint, input library.GenreInput) (*entities.Genre, error)
	DeleteGenre(id uint) error
	BooksInGenre(genreID uint) ([]entities.Book, error)
	ToggleGenre(bookID, genreID uint) (*entities.Book, error)
}

// QuoteStore covers quotes owned by books.
type QuoteStore interface {
	QuotesForBook(bookID uint) ([]entities.Quote, error)
	AddQuote(bookID uint, text string, page *string) (*entities.Quote, error)
	UpdateQuote(quoteID uint, text string, page *string) (*entities.Quote, error)
	DeleteQuote(quoteID uint) error
}

// AuditLog lists recorded audit events.
type AuditLog interface {
	GetEvents(entityType string, limit, offset int) ([]entities.AuditEvent, int64, error)
}
