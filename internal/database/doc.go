// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, legacy column migration, AutoMigrate
//	├── books/           # Book CRUD, genre/quote preloading, status counts
//	├── genres/          # Genre CRUD and book_genres membership
//	├── quotes/          # Quotes owned by books
//	└── audit/           # Audit event persistence and retention
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type over a *gorm.DB. Passing a
// transaction handle makes the repository join that transaction:
//
//	db, err := database.NewDatabase("./mybooks.db")
//
//	booksRepo := books.NewRepository(db.DB)
//	book, err := booksRepo.GetBookByID(123)
//
//	err = db.DB.Transaction(func(tx *gorm.DB) error {
//		return genres.NewRepository(tx).AddBook(genreID, book.ID)
//	})
//
// Repositories return entities.ErrNotFound for missing rows and wrap driver
// failures with entities.ErrPersistence.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/reviews/
//  2. Define a Repository struct with a *gorm.DB field
//  3. Add NewRepository(db *gorm.DB) constructor
//  4. Register the model in NewDatabaseWithLogLevel's AutoMigrate call
package database
