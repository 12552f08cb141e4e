// Package library is the core of the application: filtered and sorted views
// of the collection, book/genre/quote relationship maintenance and the
// reading-status lifecycle. Every operation is synchronous and multi-row
// writes run in a single transaction.
package library

import (
	"log"
	"time"

	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/mrlokans/mybooks/internal/database/books"
	"github.com/mrlokans/mybooks/internal/database/genres"
	"github.com/mrlokans/mybooks/internal/database/quotes"
)

// DeleteAuditor records deletions. audit.Service implements it.
type DeleteAuditor interface {
	LogDelete(entityType string, entityID uint, entityName string, err error)
}

type repositories struct {
	books  *books.Repository
	genres *genres.Repository
	quotes *quotes.Repository
}

func newRepositories(db *gorm.DB) repositories {
	return repositories{
		books:  books.NewRepository(db),
		genres: genres.NewRepository(db),
		quotes: quotes.NewRepository(db),
	}
}

type Library struct {
	db        *gorm.DB
	repos     repositories
	auditor   DeleteAuditor
	validator *inputValidator
	locale    language.Tag
	now       func() time.Time
}

func New(db *gorm.DB) *Library {
	return &Library{
		db:        db,
		repos:     newRepositories(db),
		validator: newInputValidator(),
		locale:    language.Und,
		now:       time.Now,
	}
}

// SetAuditor enables recording of deletions.
func (l *Library) SetAuditor(auditor DeleteAuditor) {
	l.auditor = auditor
}

// SetLocale sets the language used for filter matching and sort collation.
func (l *Library) SetLocale(tag language.Tag) {
	l.locale = tag
}

// SetClock replaces the time source used for creation and status dates.
func (l *Library) SetClock(now func() time.Time) {
	l.now = now
}

// Now returns the current time according to the library clock.
func (l *Library) Now() time.Time {
	return l.now()
}

func (l *Library) transaction(fn func(r repositories) error) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		return fn(newRepositories(tx))
	})
}

func (l *Library) logDelete(entityType string, id uint, name string, err error) {
	if err != nil {
		log.Printf("Failed to delete %s %d: %v", entityType, id, err)
	}
	if l.auditor != nil {
		l.auditor.LogDelete(entityType, id, name, err)
	}
}
