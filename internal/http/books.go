package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybooks/internal/library"
)

type BooksController struct {
	store BookStore
}

func NewBooksController(store BookStore) *BooksController {
	return &BooksController{store: store}
}

// ListBooks returns the filtered and sorted book list
// GET /api/books?sort=status|title|author&q=text
func (bc *BooksController) ListBooks(c *gin.Context) {
	order, err := library.ParseSortOrder(c.Query("sort"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	books, err := bc.store.Query(order, c.Query("q"))
	if err != nil {
		respondLibraryError(c, err, "book", "list books")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"books": presentBooks(books),
		"count": len(books),
		"sort":  order,
	})
}

// CreateBook adds a book to the shelf
// POST /api/books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var req library.BookInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := bc.store.CreateBook(req)
	if err != nil {
		respondLibraryError(c, err, "genre", "create book")
		return
	}

	respondCreated(c, presentBook(book))
}

// GetBook returns a book with its genres and quotes
// GET /api/books/:id
func (bc *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBook(id)
	if err != nil {
		respondLibraryError(c, err, "book", "get book")
		return
	}

	c.JSON(http.StatusOK, presentBook(book))
}

// DeleteBook removes a book, its quotes and its genre memberships
// DELETE /api/books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := bc.store.DeleteBook(id); err != nil {
		respondLibraryError(c, err, "book", "delete book")
		return
	}

	respondSuccess(c, "book deleted")
}

// GetStats returns book counts per status
// GET /api/books/stats
func (bc *BooksController) GetStats(c *gin.Context) {
	stats, err := bc.store.Stats()
	if err != nil {
		respondInternalError(c, err, "book stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
