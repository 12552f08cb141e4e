package entities

import (
	"strings"
	"time"
)

// Status is a book's reading-progress stage. It is persisted as its ordinal,
// so the declaration order must not change.
type Status int

const (
	StatusOnShelf Status = iota
	StatusInProgress
	StatusCompleted
)

// AllStatuses lists the statuses in ordinal order.
var AllStatuses = []Status{StatusOnShelf, StatusInProgress, StatusCompleted}

var statusNames = map[Status]string{
	StatusOnShelf:    "on_shelf",
	StatusInProgress: "in_progress",
	StatusCompleted:  "completed",
}

var statusDescriptions = map[Status]string{
	StatusOnShelf:    "On Shelf",
	StatusInProgress: "In Progress",
	StatusCompleted:  "Completed",
}

// IsValid reports whether s is one of the known statuses.
func (s Status) IsValid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// Description returns the human-readable label shown in the status picker.
func (s Status) Description() string {
	return statusDescriptions[s]
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, ErrInvalidArgument
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseStatus accepts the snake_case name ("in_progress") or the display
// label ("In Progress"), case-insensitively.
func ParseStatus(value string) (Status, error) {
	v := strings.TrimSpace(value)
	for _, s := range AllStatuses {
		if strings.EqualFold(v, statusNames[s]) || strings.EqualFold(v, statusDescriptions[s]) {
			return s, nil
		}
	}
	return 0, ErrInvalidArgument
}

// DateUnset is the sentinel for a reading date that has not happened yet.
// It is the zero time, which is also the earliest representable instant.
var DateUnset = time.Time{}

// IsDateSet reports whether t holds a real occurrence date.
func IsDateSet(t time.Time) bool {
	return !t.IsZero()
}

// BookGenresTable is the join table backing Book.Genres and Genre.Books.
const BookGenresTable = "book_genres"

type Book struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"index;size:512;not null" json:"title"`
	Author        string    `gorm:"index;size:256;not null" json:"author"`
	DateAdded     time.Time `json:"date_added"`
	DateStarted   time.Time `json:"date_started"`
	DateCompleted time.Time `json:"date_completed"`
	// Synopsis was stored as "summary" by earlier schema versions; see
	// database.migrateLegacyColumns.
	Synopsis string `gorm:"type:text" json:"synopsis"`
	Rating   *int   `json:"rating,omitempty"`
	Status   Status `gorm:"index;not null" json:"status"`
	// Added after the first release, so it carries a column default for
	// rows created before it existed.
	RecommendedBy string    `gorm:"size:256;not null;default:''" json:"recommended_by"`
	Quotes        []Quote   `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"quotes,omitempty"`
	Genres        []Genre   `gorm:"many2many:book_genres;" json:"genres,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewBook returns an on-shelf book added now, with both reading dates unset.
func NewBook(title, author string) *Book {
	return &Book{
		Title:         title,
		Author:        author,
		DateAdded:     time.Now(),
		DateStarted:   DateUnset,
		DateCompleted: DateUnset,
		Status:        StatusOnShelf,
	}
}

// HasGenre reports whether the loaded Genres slice contains genreID.
func (b *Book) HasGenre(genreID uint) bool {
	for _, g := range b.Genres {
		if g.ID == genreID {
			return true
		}
	}
	return false
}

type Genre struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"index;size:100;not null" json:"name"`
	Color     string    `gorm:"size:9;not null" json:"color"` // #RRGGBB
	Books     []Book    `gorm:"many2many:book_genres;" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

func NewGenre(name, color string) *Genre {
	return &Genre{Name: name, Color: color}
}

type Quote struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BookID       uint      `gorm:"index;not null" json:"book_id"`
	CreationDate time.Time `gorm:"index" json:"creation_date"`
	Text         string    `gorm:"type:text;not null" json:"text"`
	Page         *string   `gorm:"size:32" json:"page,omitempty"`
}

// NewQuote returns a quote created now. The caller sets BookID.
func NewQuote(text string, page *string) *Quote {
	return &Quote{
		CreationDate: time.Now(),
		Text:         text,
		Page:         page,
	}
}

func (Book) TableName() string {
	return "books"
}

func (Genre) TableName() string {
	return "genres"
}

func (Quote) TableName() string {
	return "quotes"
}
