package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/mybooks/internal/entities"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the sqlite file at dbPath with warn-level query logging.
func NewDatabase(dbPath string) (*Database, error) {
	return NewDatabaseWithLogLevel(dbPath, logger.Warn)
}

// NewDatabaseWithLogLevel opens (creating if needed) the sqlite file at dbPath,
// brings the schema up to date and returns the connection. All failures are
// wrapped with entities.ErrPersistence.
func NewDatabaseWithLogLevel(dbPath string, level logger.LogLevel) (*Database, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, entities.PersistenceError("failed to create database directory", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(dsn(dbPath)), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, entities.PersistenceError("failed to connect to database", err)
	}

	if err := migrateLegacyColumns(db); err != nil {
		return nil, entities.PersistenceError("failed to migrate legacy columns", err)
	}

	err = db.AutoMigrate(
		&entities.Book{},
		&entities.Genre{},
		&entities.Quote{},
		&entities.AuditEvent{},
	)
	if err != nil {
		return nil, entities.PersistenceError("failed to migrate database", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

// dsn enables foreign key enforcement so the join table and quotes can never
// point at a deleted row.
func dsn(dbPath string) string {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_foreign_keys=on"
}

// migrateLegacyColumns renames columns from earlier schema versions before
// AutoMigrate runs, so existing rows keep their values instead of AutoMigrate
// adding an empty column next to the old one.
func migrateLegacyColumns(db *gorm.DB) error {
	m := db.Migrator()
	if !m.HasTable(&entities.Book{}) {
		return nil
	}
	if m.HasColumn(&entities.Book{}, "summary") && !m.HasColumn(&entities.Book{}, "synopsis") {
		log.Printf("Renaming legacy column books.summary to books.synopsis")
		if err := m.RenameColumn(&entities.Book{}, "summary", "synopsis"); err != nil {
			return fmt.Errorf("rename books.summary: %w", err)
		}
	}
	return nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks that the underlying connection is usable.
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// ParseLogLevel maps a config value to a gorm log level, defaulting to warn.
func ParseLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
