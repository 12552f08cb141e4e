// Package genres provides database operations for genres and their book
// memberships.
//
// Membership lives in a single join table, so adding or removing a book here
// is visible from both Book.Genres and Genre.Books. DeleteGenre does not
// cascade: callers detach books first (foreign keys reject the delete otherwise).
//
// # Usage
//
//	repo := genres.NewRepository(db)
//	all, err := repo.GetAllGenres()
package genres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/mybooks/internal/entities"
)

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateGenre inserts the genre and assigns its ID.
func (r *Repository) CreateGenre(genre *entities.Genre) error {
	if err := r.db.Omit("Books").Create(genre).Error; err != nil {
		return entities.PersistenceError("failed to create genre", err)
	}
	return nil
}

// UpdateGenre writes the name and color of an existing genre.
func (r *Repository) UpdateGenre(genre *entities.Genre) error {
	result := r.db.Model(&entities.Genre{}).Where("id = ?", genre.ID).
		Updates(map[string]any{"name": genre.Name, "color": genre.Color})
	if result.Error != nil {
		return entities.PersistenceError("failed to update genre", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

// DeleteGenre removes the genre row. Unknown ids are a no-op.
func (r *Repository) DeleteGenre(id uint) error {
	if err := r.db.Delete(&entities.Genre{}, id).Error; err != nil {
		return entities.PersistenceError("failed to delete genre", err)
	}
	return nil
}

// GetGenreByID retrieves a genre without its books.
func (r *Repository) GetGenreByID(id uint) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.First(&genre, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, entities.PersistenceError("failed to get genre", err)
	}
	return &genre, nil
}

// GetAllGenres retrieves all genres sorted by name (case-insensitive).
func (r *Repository) GetAllGenres() ([]entities.Genre, error) {
	var genres []entities.Genre
	err := r.db.Order("name COLLATE NOCASE ASC, id ASC").Find(&genres).Error
	if err != nil {
		return nil, entities.PersistenceError("failed to list genres", err)
	}
	return genres, nil
}

// GetBooksForGenre retrieves the books tagged with the genre, ordered by ID.
func (r *Repository) GetBooksForGenre(genreID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.
		Joins("JOIN "+entities.BookGenresTable+" ON "+entities.BookGenresTable+".book_id = books.id").
		Where(entities.BookGenresTable+".genre_id = ?", genreID).
		Order("books.id ASC").
		Find(&books).Error
	if err != nil {
		return nil, entities.PersistenceError("failed to list books for genre", err)
	}
	return books, nil
}

// HasBook reports whether the book is a member of the genre.
func (r *Repository) HasBook(genreID, bookID uint) (bool, error) {
	var count int64
	err := r.db.Table(entities.BookGenresTable).
		Where("genre_id = ? AND book_id = ?", genreID, bookID).
		Count(&count).Error
	if err != nil {
		return false, entities.PersistenceError("failed to check genre membership", err)
	}
	return count > 0, nil
}

// AddBook makes the book a member of the genre. Adding twice is harmless.
func (r *Repository) AddBook(genreID, bookID uint) error {
	err := r.db.Exec("INSERT OR IGNORE INTO "+entities.BookGenresTable+" (book_id, genre_id) VALUES (?, ?)",
		bookID, genreID).Error
	if err != nil {
		return entities.PersistenceError("failed to add book to genre", err)
	}
	return nil
}

// RemoveBook drops the book from the genre.
func (r *Repository) RemoveBook(genreID, bookID uint) error {
	err := r.db.Exec("DELETE FROM "+entities.BookGenresTable+" WHERE book_id = ? AND genre_id = ?",
		bookID, genreID).Error
	if err != nil {
		return entities.PersistenceError("failed to remove book from genre", err)
	}
	return nil
}

// DetachAllBooks removes every membership of the genre and returns how many
// books were detached.
func (r *Repository) DetachAllBooks(genreID uint) (int64, error) {
	result := r.db.Exec("DELETE FROM "+entities.BookGenresTable+" WHERE genre_id = ?", genreID)
	if result.Error != nil {
		return 0, entities.PersistenceError("failed to detach books from genre", result.Error)
	}
	return result.RowsAffected, nil
}
