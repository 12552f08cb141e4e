package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type quoteRequest struct {
	Text string  `json:"text" binding:"required"`
	Page *string `json:"page"`
}

type QuotesController struct {
	store QuoteStore
}

func NewQuotesController(store QuoteStore) *QuotesController {
	return &QuotesController{store: store}
}

// ListQuotes returns a book's quotes, oldest first
// GET /api/books/:id/quotes
func (qc *QuotesController) ListQuotes(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	quotes, err := qc.store.QuotesForBook(bookID)
	if err != nil {
		respondLibraryError(c, err, "book", "list quotes")
		return
	}

	c.JSON(http.StatusOK, quotes)
}

// AddQuote attaches a quote to a book
// POST /api/books/:id/quotes
func (qc *QuotesController) AddQuote(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "text is required")
		return
	}

	quote, err := qc.store.AddQuote(bookID, req.Text, req.Page)
	if err != nil {
		respondLibraryError(c, err, "book", "add quote")
		return
	}

	respondCreated(c, quote)
}

// UpdateQuote edits a quote's text and page
// PUT /api/quotes/:id
func (qc *QuotesController) UpdateQuote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "text is required")
		return
	}

	quote, err := qc.store.UpdateQuote(id, req.Text, req.Page)
	if err != nil {
		respondLibraryError(c, err, "quote", "update quote")
		return
	}

	c.JSON(http.StatusOK, quote)
}

// DeleteQuote removes a quote
// DELETE /api/quotes/:id
func (qc *QuotesController) DeleteQuote(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := qc.store.DeleteQuote(id); err != nil {
		respondLibraryError(c, err, "quote", "delete quote")
		return
	}

	respondSuccess(c, "quote deleted")
}
