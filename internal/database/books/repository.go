// Package books provides database operations for books.
//
// Deleting a book cascades to its quotes and its genre memberships inside a
// single transaction.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	book, err := repo.GetBookByID(123)
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/mybooks/internal/entities"
)

// editableColumns are written by UpdateBook. Zero values are written too, so
// unsetting a date or clearing a rating persists.
var editableColumns = []string{
	"title", "author", "date_added", "date_started", "date_completed",
	"synopsis", "rating", "status", "recommended_by", "updated_at",
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func preloadGenres(db *gorm.DB) *gorm.DB {
	return db.Order("genres.name COLLATE NOCASE ASC, genres.id ASC")
}

func preloadQuotes(db *gorm.DB) *gorm.DB {
	return db.Order("creation_date ASC, id ASC")
}

// CreateBook inserts the book and assigns its ID. Associations are not saved;
// genres and quotes are attached through their own repositories.
func (r *Repository) CreateBook(book *entities.Book) error {
	if err := r.db.Omit("Genres", "Quotes").Create(book).Error; err != nil {
		return entities.PersistenceError("failed to create book", err)
	}
	return nil
}

// UpdateBook writes the editable columns of an existing book.
func (r *Repository) UpdateBook(book *entities.Book) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, book.ID); err != nil {
			return err
		}
		if err := tx.Model(book).Select(editableColumns).Updates(book).Error; err != nil {
			return entities.PersistenceError("failed to update book", err)
		}
		return nil
	})
}

// DeleteBook removes the book, its quotes and its genre memberships.
// Deleting an unknown id is a no-op.
func (r *Repository) DeleteBook(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&entities.Quote{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM "+entities.BookGenresTable+" WHERE book_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Book{}, id).Error
	})
	if err != nil {
		return entities.PersistenceError("failed to delete book", err)
	}
	return nil
}

// GetBookByID retrieves a book with its genres (by name) and quotes (oldest first).
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Genres", preloadGenres).Preload("Quotes", preloadQuotes).First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, entities.PersistenceError("failed to get book", err)
	}
	return &book, nil
}

// GetAllBooks retrieves every book with its genres, ordered by ID.
func (r *Repository) GetAllBooks() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Genres", preloadGenres).Order("id ASC").Find(&books).Error
	if err != nil {
		return nil, entities.PersistenceError("failed to list books", err)
	}
	return books, nil
}

// CountByStatus returns the number of books per status. Statuses with no
// books are present with a zero count.
func (r *Repository) CountByStatus() (map[entities.Status]int64, error) {
	var rows []struct {
		Status entities.Status
		Count  int64
	}
	err := r.db.Model(&entities.Book{}).Select("status, COUNT(*) AS count").Group("status").Scan(&rows).Error
	if err != nil {
		return nil, entities.PersistenceError("failed to count books", err)
	}

	counts := make(map[entities.Status]int64, len(entities.AllStatuses))
	for _, s := range entities.AllStatuses {
		counts[s] = 0
	}
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func exists(tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.Model(&entities.Book{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return entities.PersistenceError("failed to look up book", err)
	}
	if count == 0 {
		return entities.ErrNotFound
	}
	return nil
}
