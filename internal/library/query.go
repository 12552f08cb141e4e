package library

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/mrlokans/mybooks/internal/entities"
)

type SortOrder string

const (
	SortByStatus SortOrder = "status"
	SortByTitle  SortOrder = "title"
	SortByAuthor SortOrder = "author"
)

// DefaultSortOrder is used when the caller does not pick one.
const DefaultSortOrder = SortByStatus

// ParseSortOrder accepts "status", "title" or "author" in any case. An empty
// value selects DefaultSortOrder.
func ParseSortOrder(value string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(value))) {
	case "":
		return DefaultSortOrder, nil
	case SortByStatus:
		return SortByStatus, nil
	case SortByTitle:
		return SortByTitle, nil
	case SortByAuthor:
		return SortByAuthor, nil
	default:
		return "", entities.InvalidArgument("unknown sort order %q", value)
	}
}

// Query returns the books whose title or author contains filterText
// (case-insensitive, empty matches all), sorted by the given order. Ties are
// broken by ID, so equal inputs always give equal output.
func (l *Library) Query(order SortOrder, filterText string) ([]entities.Book, error) {
	compare, err := bookComparator(order, l.locale)
	if err != nil {
		return nil, err
	}

	all, err := l.repos.books.GetAllBooks()
	if err != nil {
		return nil, err
	}

	result := filterBooks(all, filterText, l.locale)
	slices.SortFunc(result, compare)
	return result, nil
}

// filterBooks returns a new slice with the books matching filterText.
func filterBooks(books []entities.Book, filterText string, tag language.Tag) []entities.Book {
	result := make([]entities.Book, 0, len(books))
	if filterText == "" {
		return append(result, books...)
	}

	matcher := search.New(tag, search.IgnoreCase)
	contains := func(s string) bool {
		start, _ := matcher.IndexString(s, filterText)
		return start >= 0
	}

	for _, book := range books {
		if contains(book.Title) || contains(book.Author) {
			result = append(result, book)
		}
	}
	return result
}

// bookComparator builds the ordering for a sort mode. The collator is not safe
// for concurrent use, so each query gets its own.
func bookComparator(order SortOrder, tag language.Tag) (func(a, b entities.Book) int, error) {
	collator := collate.New(tag, collate.IgnoreCase)

	var primary func(a, b entities.Book) int
	switch order {
	case SortByStatus:
		primary = func(a, b entities.Book) int {
			if c := cmp.Compare(a.Status, b.Status); c != 0 {
				return c
			}
			return collator.CompareString(a.Author, b.Author)
		}
	case SortByTitle:
		primary = func(a, b entities.Book) int {
			return collator.CompareString(a.Title, b.Title)
		}
	case SortByAuthor:
		primary = func(a, b entities.Book) int {
			return collator.CompareString(a.Author, b.Author)
		}
	default:
		return nil, entities.InvalidArgument("unknown sort order %q", string(order))
	}

	return func(a, b entities.Book) int {
		if c := primary(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}, nil
}
