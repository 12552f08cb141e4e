package library

import (
	"fmt"
	"strings"
	"time"

	"github.com/mrlokans/mybooks/internal/entities"
)

// EditForm is the editable copy of a book shown by the edit screen. Loading
// it has no side effects; status-driven date changes happen only through
// ChangeStatus, and nothing is stored until SaveForm.
type EditForm struct {
	Status        entities.Status `json:"status"`
	Rating        *int            `json:"rating" validate:"omitempty,min=1,max=5"`
	Title         string          `json:"title" validate:"required,max=512"`
	Author        string          `json:"author" validate:"required,max=256"`
	Synopsis      string          `json:"synopsis"`
	DateAdded     time.Time       `json:"date_added"`
	DateStarted   time.Time       `json:"date_started"`
	DateCompleted time.Time       `json:"date_completed"`
	RecommendedBy string          `json:"recommended_by" validate:"max=256"`
}

// LoadForDisplay copies the stored book into a form.
func LoadForDisplay(book *entities.Book) EditForm {
	var rating *int
	if book.Rating != nil {
		r := *book.Rating
		rating = &r
	}
	return EditForm{
		Status:        book.Status,
		Rating:        rating,
		Title:         book.Title,
		Author:        book.Author,
		Synopsis:      book.Synopsis,
		DateAdded:     book.DateAdded,
		DateStarted:   book.DateStarted,
		DateCompleted: book.DateCompleted,
		RecommendedBy: book.RecommendedBy,
	}
}

// ApplyStatusChange adjusts the form's reading dates for a status transition:
//
//	any -> OnShelf            started and completed unset
//	Completed -> InProgress   completed unset
//	OnShelf -> InProgress     started = now
//	OnShelf -> Completed      started = added, completed = now
//	InProgress -> Completed   completed = now
//
// It does nothing when the status does not change. The form's Status field is
// left alone; see EditForm.ChangeStatus.
func ApplyStatusChange(form *EditForm, oldStatus, newStatus entities.Status, now time.Time) {
	if oldStatus == newStatus {
		return
	}

	switch {
	case newStatus == entities.StatusOnShelf:
		form.DateStarted = entities.DateUnset
		form.DateCompleted = entities.DateUnset
	case oldStatus == entities.StatusCompleted && newStatus == entities.StatusInProgress:
		form.DateCompleted = entities.DateUnset
	case oldStatus == entities.StatusOnShelf && newStatus == entities.StatusInProgress:
		form.DateStarted = now
	case oldStatus == entities.StatusOnShelf && newStatus == entities.StatusCompleted:
		form.DateStarted = form.DateAdded
		form.DateCompleted = now
	case oldStatus == entities.StatusInProgress && newStatus == entities.StatusCompleted:
		form.DateCompleted = now
	}
}

// ChangeStatus records a user's status pick on the form and adjusts the dates.
func (f *EditForm) ChangeStatus(newStatus entities.Status, now time.Time) {
	ApplyStatusChange(f, f.Status, newStatus, now)
	f.Status = newStatus
}

// Changed reports whether any field differs from the stored book.
func (f EditForm) Changed(book *entities.Book) bool {
	return f.Status != book.Status ||
		!equalRating(f.Rating, book.Rating) ||
		f.Title != book.Title ||
		f.Author != book.Author ||
		f.Synopsis != book.Synopsis ||
		!f.DateAdded.Equal(book.DateAdded) ||
		!f.DateStarted.Equal(book.DateStarted) ||
		!f.DateCompleted.Equal(book.DateCompleted) ||
		f.RecommendedBy != book.RecommendedBy
}

func equalRating(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (f *EditForm) normalize() {
	f.Title = strings.TrimSpace(f.Title)
	f.Author = strings.TrimSpace(f.Author)
	f.Synopsis = strings.TrimSpace(f.Synopsis)
	f.RecommendedBy = strings.TrimSpace(f.RecommendedBy)
}

// checkDates enforces the ordering and status invariants on reading dates.
func (f EditForm) checkDates() error {
	if !f.Status.IsValid() {
		return entities.InvalidArgument("unknown status %d", int(f.Status))
	}
	if !entities.IsDateSet(f.DateAdded) {
		return entities.InvalidArgument("date_added is required")
	}

	started := entities.IsDateSet(f.DateStarted)
	completed := entities.IsDateSet(f.DateCompleted)

	switch f.Status {
	case entities.StatusOnShelf:
		if started || completed {
			return entities.InvalidArgument("a book on the shelf has no start or completion date")
		}
	case entities.StatusInProgress:
		if completed {
			return entities.InvalidArgument("a book in progress has no completion date")
		}
	}

	if started && f.DateStarted.Before(f.DateAdded) {
		return entities.InvalidArgument("date_started %s is before date_added %s",
			f.DateStarted.Format(time.RFC3339), f.DateAdded.Format(time.RFC3339))
	}
	if completed {
		lowerBound, name := f.DateAdded, "date_added"
		if started {
			lowerBound, name = f.DateStarted, "date_started"
		}
		if f.DateCompleted.Before(lowerBound) {
			return entities.InvalidArgument("date_completed %s is before %s %s",
				f.DateCompleted.Format(time.RFC3339), name, lowerBound.Format(time.RFC3339))
		}
	}
	return nil
}

func (f EditForm) applyTo(book *entities.Book) {
	book.Status = f.Status
	book.Rating = f.Rating
	book.Title = f.Title
	book.Author = f.Author
	book.Synopsis = f.Synopsis
	book.DateAdded = f.DateAdded
	book.DateStarted = f.DateStarted
	book.DateCompleted = f.DateCompleted
	book.RecommendedBy = f.RecommendedBy
}

// EditFormFor loads the stored book into a form.
func (l *Library) EditFormFor(bookID uint) (EditForm, error) {
	book, err := l.repos.books.GetBookByID(bookID)
	if err != nil {
		return EditForm{}, err
	}
	return LoadForDisplay(book), nil
}

// ChangeFormStatus applies a status pick to a form using the library clock.
// Nothing is stored.
func (l *Library) ChangeFormStatus(form EditForm, newStatus entities.Status) (EditForm, error) {
	if !newStatus.IsValid() {
		return form, entities.InvalidArgument("unknown status %d", int(newStatus))
	}
	form.ChangeStatus(newStatus, l.now())
	return form, nil
}

// SaveForm validates the form and writes it over the stored book.
func (l *Library) SaveForm(bookID uint, form EditForm) (*entities.Book, error) {
	form.normalize()
	if err := l.validator.validate(form); err != nil {
		return nil, err
	}
	if err := form.checkDates(); err != nil {
		return nil, err
	}

	err := l.transaction(func(r repositories) error {
		book, err := r.books.GetBookByID(bookID)
		if err != nil {
			return fmt.Errorf("book %d: %w", bookID, err)
		}
		if !form.Changed(book) {
			return nil
		}
		form.applyTo(book)
		return r.books.UpdateBook(book)
	})
	if err != nil {
		return nil, err
	}
	return l.repos.books.GetBookByID(bookID)
}
