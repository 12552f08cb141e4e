package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/mybooks/internal/entities"
	"github.com/mrlokans/mybooks/internal/library"
)

// FormResponse is an edit form plus whether it differs from the stored book,
// so the client only offers "Update" when something changed.
type FormResponse struct {
	Form    library.EditForm `json:"form"`
	Changed bool             `json:"changed"`
}

type FormsController struct {
	store FormStore
}

func NewFormsController(store FormStore) *FormsController {
	return &FormsController{store: store}
}

// GetForm loads the edit form for a book without changing anything
// GET /api/books/:id/form
func (fc *FormsController) GetForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	form, err := fc.store.EditFormFor(id)
	if err != nil {
		respondLibraryError(c, err, "book", "load form")
		return
	}

	c.JSON(http.StatusOK, FormResponse{Form: form})
}

// ChangeStatus applies a status pick to a submitted form and returns the
// adjusted form. Nothing is stored.
// POST /api/books/:id/form/status
func (fc *FormsController) ChangeStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		Form   library.EditForm `json:"form"`
		Status *entities.Status `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "form and a valid status are required")
		return
	}

	book, err := fc.store.GetBook(id)
	if err != nil {
		respondLibraryError(c, err, "book", "change status")
		return
	}

	form, err := fc.store.ChangeFormStatus(req.Form, *req.Status)
	if err != nil {
		respondLibraryError(c, err, "book", "change status")
		return
	}

	c.JSON(http.StatusOK, FormResponse{Form: form, Changed: form.Changed(book)})
}

// SaveForm validates the form and stores it over the book
// PUT /api/books/:id
func (fc *FormsController) SaveForm(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var form library.EditForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	book, err := fc.store.SaveForm(id, form)
	if err != nil {
		respondLibraryError(c, err, "book", "save form")
		return
	}

	c.JSON(http.StatusOK, presentBook(book))
}
