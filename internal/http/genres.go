package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybooks/internal/library"
)

type GenresController struct {
	store GenreStore
}

func NewGenresController(store GenreStore) *GenresController {
	return &GenresController{store: store}
}

// ListGenres returns all genres sorted by name
// GET /api/genres
func (gc *GenresController) ListGenres(c *gin.Context) {
	genres, err := gc.store.ListGenres()
	if err != nil {
		respondInternalError(c, err, "list genres")
		return
	}
	c.JSON(http.StatusOK, presentGenres(genres))
}

// CreateGenre creates a new genre
// POST /api/genres
func (gc *GenresController) CreateGenre(c *gin.Context) {
	var req library.GenreInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	genre, err := gc.store.CreateGenre(req)
	if err != nil {
		respondLibraryError(c, err, "genre", "create genre")
		return
	}

	respondCreated(c, genre)
}

// UpdateGenre renames or recolors a genre
// PUT /api/genres/:id
func (gc *GenresController) UpdateGenre(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req library.GenreInput
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	genre, err := gc.store.UpdateGenre(id, req)
	if err != nil {
		respondLibraryError(c, err, "genre", "update genre")
		return
	}

	c.JSON(http.StatusOK, genre)
}

// DeleteGenre removes a genre from every book and deletes it
// DELETE /api/genres/:id
func (gc *GenresController) DeleteGenre(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := gc.store.DeleteGenre(id); err != nil {
		respondLibraryError(c, err, "genre", "delete genre")
		return
	}

	respondSuccess(c, "genre deleted")
}

// GetGenreBooks returns the books in a genre
// GET /api/genres/:id/books
func (gc *GenresController) GetGenreBooks(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	books, err := gc.store.BooksInGenre(id)
	if err != nil {
		respondLibraryError(c, err, "genre", "genre books")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"books": presentBooks(books),
		"count": len(books),
	})
}

// ToggleGenre adds the genre to the book, or removes it if already present
// POST /api/books/:id/genres/:genreId/toggle
func (gc *GenresController) ToggleGenre(c *gin.Context) {
	bookID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	genreID, ok := parseIDParam(c, "genreId")
	if !ok {
		return
	}

	book, err := gc.store.ToggleGenre(bookID, genreID)
	if err != nil {
		respondLibraryError(c, err, "book or genre", "toggle genre")
		return
	}

	c.JSON(http.StatusOK, presentBook(book))
}
