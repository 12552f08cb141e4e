package books

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/mybooks/internal/database"
	"github.com/mrlokans/mybooks/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := filepath.Join(t.TempDir(), "test_books.db")

	db, err := database.NewDatabaseWithLogLevel(dbPath, logger.Silent)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
	}

	return NewRepository(db.DB), db.DB, cleanup
}

func createBook(t *testing.T, repo *Repository, title, author string) *entities.Book {
	t.Helper()
	book := entities.NewBook(title, author)
	require.NoError(t, repo.CreateBook(book))
	return book
}

func TestRepository_CreateBook(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, repo, "Dune", "Frank Herbert")

	assert.NotZero(t, book.ID)

	got, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)
	assert.Equal(t, "Frank Herbert", got.Author)
	assert.Equal(t, entities.StatusOnShelf, got.Status)
	assert.Equal(t, "", got.RecommendedBy)
	assert.Nil(t, got.Rating)
	assert.False(t, entities.IsDateSet(got.DateStarted))
	assert.False(t, entities.IsDateSet(got.DateCompleted))
	assert.Empty(t, got.Genres)
	assert.Empty(t, got.Quotes)
}

func TestRepository_GetBookByID_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetBookByID(999)

	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestRepository_UpdateBook(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, repo, "Dune", "Frank Herbert")
	rating := 5
	started := time.Now()
	book.Status = entities.StatusInProgress
	book.DateStarted = started
	book.Rating = &rating
	book.Synopsis = "Desert planet."
	book.RecommendedBy = "Alice"

	require.NoError(t, repo.UpdateBook(book))

	got, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusInProgress, got.Status)
	assert.True(t, got.DateStarted.Equal(started))
	require.NotNil(t, got.Rating)
	assert.Equal(t, 5, *got.Rating)
	assert.Equal(t, "Desert planet.", got.Synopsis)
	assert.Equal(t, "Alice", got.RecommendedBy)
}

func TestRepository_UpdateBook_WritesZeroValues(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, repo, "Dune", "Frank Herbert")
	rating := 3
	book.Status = entities.StatusInProgress
	book.DateStarted = time.Now()
	book.Rating = &rating
	require.NoError(t, repo.UpdateBook(book))

	book.Status = entities.StatusOnShelf
	book.DateStarted = entities.DateUnset
	book.Rating = nil
	require.NoError(t, repo.UpdateBook(book))

	got, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.StatusOnShelf, got.Status)
	assert.False(t, entities.IsDateSet(got.DateStarted))
	assert.Nil(t, got.Rating)
}

func TestRepository_UpdateBook_NotFound(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	book := entities.NewBook("Ghost", "Nobody")
	book.ID = 42

	err := repo.UpdateBook(book)

	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestRepository_DeleteBook_CascadesQuotesAndGenres(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, repo, "Dune", "Frank Herbert")
	other := createBook(t, repo, "Emma", "Jane Austen")

	genre := entities.NewGenre("Sci-Fi", "#FF0000")
	require.NoError(t, db.Create(genre).Error)
	require.NoError(t, db.Exec("INSERT INTO book_genres (book_id, genre_id) VALUES (?, ?), (?, ?)",
		book.ID, genre.ID, other.ID, genre.ID).Error)

	for _, text := range []string{"Fear is the mind-killer.", "The spice must flow."} {
		quote := entities.NewQuote(text, nil)
		quote.BookID = book.ID
		require.NoError(t, db.Create(quote).Error)
	}

	require.NoError(t, repo.DeleteBook(book.ID))

	_, err := repo.GetBookByID(book.ID)
	assert.ErrorIs(t, err, entities.ErrNotFound)

	var quoteCount int64
	require.NoError(t, db.Model(&entities.Quote{}).Where("book_id = ?", book.ID).Count(&quoteCount).Error)
	assert.Zero(t, quoteCount)

	var joinCount int64
	require.NoError(t, db.Table(entities.BookGenresTable).Where("book_id = ?", book.ID).Count(&joinCount).Error)
	assert.Zero(t, joinCount)

	// The other book keeps its membership and the genre survives.
	survivor, err := repo.GetBookByID(other.ID)
	require.NoError(t, err)
	require.Len(t, survivor.Genres, 1)
	assert.Equal(t, genre.ID, survivor.Genres[0].ID)
}

func TestRepository_DeleteBook_UnknownIDIsNoop(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	createBook(t, repo, "Dune", "Frank Herbert")

	assert.NoError(t, repo.DeleteBook(999))

	all, err := repo.GetAllBooks()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRepository_GetBookByID_OrdersRelations(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	book := createBook(t, repo, "Dune", "Frank Herbert")

	for _, name := range []string{"space opera", "Classic", "adventure"} {
		genre := entities.NewGenre(name, "#00FF00")
		require.NoError(t, db.Create(genre).Error)
		require.NoError(t, db.Exec("INSERT INTO book_genres (book_id, genre_id) VALUES (?, ?)", book.ID, genre.ID).Error)
	}

	base := time.Now()
	for i, text := range []string{"third", "first", "second"} {
		offsets := []time.Duration{2 * time.Minute, 0, time.Minute}
		quote := entities.NewQuote(text, nil)
		quote.BookID = book.ID
		quote.CreationDate = base.Add(offsets[i])
		require.NoError(t, db.Create(quote).Error)
	}

	got, err := repo.GetBookByID(book.ID)
	require.NoError(t, err)

	require.Len(t, got.Genres, 3)
	assert.Equal(t, "adventure", got.Genres[0].Name)
	assert.Equal(t, "Classic", got.Genres[1].Name)
	assert.Equal(t, "space opera", got.Genres[2].Name)

	require.Len(t, got.Quotes, 3)
	assert.Equal(t, "first", got.Quotes[0].Text)
	assert.Equal(t, "second", got.Quotes[1].Text)
	assert.Equal(t, "third", got.Quotes[2].Text)
}

func TestRepository_CountByStatus(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	createBook(t, repo, "A", "X")
	reading := createBook(t, repo, "B", "Y")
	reading.Status = entities.StatusInProgress
	reading.DateStarted = time.Now()
	require.NoError(t, repo.UpdateBook(reading))

	counts, err := repo.CountByStatus()

	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[entities.StatusOnShelf])
	assert.Equal(t, int64(1), counts[entities.StatusInProgress])
	assert.Equal(t, int64(0), counts[entities.StatusCompleted])
}
