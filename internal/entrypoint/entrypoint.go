package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/mrlokans/mybooks/internal/audit"
	"github.com/mrlokans/mybooks/internal/config"
	"github.com/mrlokans/mybooks/internal/database"
	auditRepo "github.com/mrlokans/mybooks/internal/database/audit"
	http_controllers "github.com/mrlokans/mybooks/internal/http"
	"github.com/mrlokans/mybooks/internal/library"
)

func Serve(router *gin.Engine, cfg *config.Config) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// ParseLocale returns the configured collation locale, falling back to the
// root locale when the tag does not parse.
func ParseLocale(raw string) language.Tag {
	tag, err := language.Parse(raw)
	if err != nil {
		log.Printf("WARNING: invalid LOCALE %q, using root collation: %v", raw, err)
		return language.Und
	}
	return tag
}

// NewLibrary opens the database and builds the library with auditing
// enabled. Old audit events are pruned to the configured retention.
func NewLibrary(cfg *config.Config) (*database.Database, *library.Library, *audit.Service, error) {
	db, err := database.NewDatabaseWithLogLevel(cfg.Database.Path, database.ParseLogLevel(cfg.Database.LogLevel))
	if err != nil {
		return nil, nil, nil, err
	}

	auditService := audit.NewService(auditRepo.NewRepository(db.DB))
	if cfg.Audit.RetentionDays > 0 {
		retention := time.Duration(cfg.Audit.RetentionDays) * 24 * time.Hour
		if deleted, err := auditService.DeleteOldEvents(retention); err != nil {
			log.Printf("WARNING: Failed to prune audit events: %v", err)
		} else if deleted > 0 {
			log.Printf("Pruned %d audit events older than %d days", deleted, cfg.Audit.RetentionDays)
		}
	}

	lib := library.New(db.DB)
	lib.SetAuditor(auditService)
	lib.SetLocale(ParseLocale(cfg.Library.Locale))

	return db, lib, auditService, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting MyBooks v%s", version)

	db, lib, auditService, err := NewLibrary(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	log.Printf("Library ready (database %s, locale %s)", cfg.Database.Path, cfg.Library.Locale)

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		BookStore:  lib,
		FormStore:  lib,
		GenreStore: lib,
		QuoteStore: lib,
		AuditLog:   auditService,
		Database:   db,
		Version:    version,
	})

	Serve(router, cfg)
}
