// Package quotes provides database operations for quotes owned by books.
//
// Quotes are always returned oldest first (creation date, then ID).
package quotes

import (
	"errors"

	"gorm.io/gorm"

	"github.com/mrlokans/mybooks/internal/entities"
)

const quoteOrder = "creation_date ASC, id ASC"

// Repository handles all quote database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new quotes repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateQuote inserts the quote and assigns its ID. The owning book must exist.
func (r *Repository) CreateQuote(quote *entities.Quote) error {
	if err := r.db.Create(quote).Error; err != nil {
		return entities.PersistenceError("failed to create quote", err)
	}
	return nil
}

// UpdateQuote writes the text and page of an existing quote.
func (r *Repository) UpdateQuote(quote *entities.Quote) error {
	result := r.db.Model(&entities.Quote{}).Where("id = ?", quote.ID).
		Updates(map[string]any{"text": quote.Text, "page": quote.Page})
	if result.Error != nil {
		return entities.PersistenceError("failed to update quote", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrNotFound
	}
	return nil
}

// DeleteQuote removes the quote. Unknown ids are a no-op.
func (r *Repository) DeleteQuote(id uint) error {
	if err := r.db.Delete(&entities.Quote{}, id).Error; err != nil {
		return entities.PersistenceError("failed to delete quote", err)
	}
	return nil
}

func (r *Repository) GetQuoteByID(id uint) (*entities.Quote, error) {
	var quote entities.Quote
	err := r.db.First(&quote, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entities.ErrNotFound
	}
	if err != nil {
		return nil, entities.PersistenceError("failed to get quote", err)
	}
	return &quote, nil
}

func (r *Repository) GetQuotesForBook(bookID uint) ([]entities.Quote, error) {
	quotes := []entities.Quote{}
	err := r.db.Where("book_id = ?", bookID).Order(quoteOrder).Find(&quotes).Error
	if err != nil {
		return nil, entities.PersistenceError("failed to list quotes", err)
	}
	return quotes, nil
}

func (r *Repository) GetAllQuotes() ([]entities.Quote, error) {
	quotes := []entities.Quote{}
	err := r.db.Order(quoteOrder).Find(&quotes).Error
	if err != nil {
		return nil, entities.PersistenceError("failed to list quotes", err)
	}
	return quotes, nil
}
