package database

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mrlokans/mybooks/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// legacyBook mirrors the books table as it looked before synopsis and
// recommended_by existed.
type legacyBook struct {
	ID            uint      `gorm:"primaryKey"`
	Title         string    `gorm:"index;size:512;not null"`
	Author        string    `gorm:"index;size:256;not null"`
	DateAdded     time.Time
	DateStarted   time.Time
	DateCompleted time.Time
	Summary       string `gorm:"type:text"`
	Rating        *int
	Status        entities.Status `gorm:"index;not null"`
}

func (legacyBook) TableName() string {
	return "books"
}

func TestNewDatabase(t *testing.T) {
	t.Run("creates missing directories and schema", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "mybooks.db")

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		assert.NoError(t, db.Ping())
		for _, table := range []string{"books", "genres", "quotes", entities.BookGenresTable, "audit_events"} {
			assert.True(t, db.DB.Migrator().HasTable(table), "missing table %s", table)
		}
	})

	t.Run("reopening keeps data", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "mybooks.db")

		db, err := NewDatabase(dbPath)
		require.NoError(t, err)
		book := entities.NewBook("Dune", "Frank Herbert")
		require.NoError(t, db.DB.Create(book).Error)
		require.NoError(t, db.Close())

		db, err = NewDatabase(dbPath)
		require.NoError(t, err)
		defer db.Close()

		var got entities.Book
		require.NoError(t, db.DB.First(&got, book.ID).Error)
		assert.Equal(t, "Dune", got.Title)
		assert.Equal(t, entities.StatusOnShelf, got.Status)
		assert.False(t, entities.IsDateSet(got.DateStarted))
	})

	t.Run("unwritable path fails with persistence error", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "file")
		require.NoError(t, os.WriteFile(blocker, []byte("not a directory"), 0o644))

		_, err := NewDatabase(filepath.Join(blocker, "mybooks.db"))
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrPersistence)
	})
}

func TestMigrateLegacyColumns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	legacy, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, legacy.AutoMigrate(&legacyBook{}))
	require.NoError(t, legacy.Create(&legacyBook{
		Title:     "Dune",
		Author:    "Frank Herbert",
		DateAdded: time.Now(),
		Summary:   "Spice must flow.",
	}).Error)
	sqlDB, err := legacy.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	db, err := NewDatabaseWithLogLevel(dbPath, logger.Silent)
	require.NoError(t, err)
	defer db.Close()

	assert.False(t, db.DB.Migrator().HasColumn(&entities.Book{}, "summary"))
	assert.True(t, db.DB.Migrator().HasColumn(&entities.Book{}, "synopsis"))
	assert.True(t, db.DB.Migrator().HasColumn(&entities.Book{}, "recommended_by"))

	var book entities.Book
	require.NoError(t, db.DB.First(&book).Error)
	assert.Equal(t, "Spice must flow.", book.Synopsis)
	assert.Equal(t, "", book.RecommendedBy)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected logger.LogLevel
	}{
		{"silent", logger.Silent},
		{"ERROR", logger.Error},
		{" info ", logger.Info},
		{"warn", logger.Warn},
		{"", logger.Warn},
		{"verbose", logger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLogLevel(tt.input))
		})
	}
}
