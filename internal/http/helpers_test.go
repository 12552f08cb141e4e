package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	auditService "github.com/mrlokans/mybooks/internal/audit"
	"github.com/mrlokans/mybooks/internal/database"
	auditRepo "github.com/mrlokans/mybooks/internal/database/audit"
	"github.com/mrlokans/mybooks/internal/entities"
	"github.com/mrlokans/mybooks/internal/library"
)

var testNow = time.Date(2024, time.April, 4, 12, 0, 0, 0, time.UTC)

type testServer struct {
	db     *database.Database
	lib    *library.Library
	router *gin.Engine
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test_http.db")
	db, err := database.NewDatabaseWithLogLevel(dbPath, logger.Silent)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	audits := auditService.NewService(auditRepo.NewRepository(db.DB))
	lib := library.New(db.DB)
	lib.SetAuditor(audits)
	lib.SetClock(func() time.Time { return testNow })

	router := NewRouter(RouterConfig{
		BookStore:  lib,
		FormStore:  lib,
		GenreStore: lib,
		QuoteStore: lib,
		AuditLog:   audits,
		Database:   db,
		Version:    "test",
	})

	return &testServer{db: db, lib: lib, router: router}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRespondLibraryError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"not found", entities.ErrNotFound, http.StatusNotFound, "book not found"},
		{"invalid argument", entities.InvalidArgument("title is required"), http.StatusBadRequest, "title is required"},
		{"persistence", entities.PersistenceError("write", errors.New("disk I/O error")), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			respondLibraryError(c, tt.err, "book", "test")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "disk I/O")
		})
	}
}

func TestParseIDParam(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		value  string
		wantID uint
		wantOK bool
	}{
		{"42", 42, true},
		{"0", 0, true},
		{"-1", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Params = gin.Params{{Key: "id", Value: tt.value}}

			id, ok := parseIDParam(c, "id")

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
			if !ok {
				assert.Equal(t, http.StatusBadRequest, w.Code)
			}
		})
	}
}

func TestPresentGenres_FallsBackToRed(t *testing.T) {
	genres := presentGenres([]entities.Genre{
		{Name: "Sci-Fi", Color: "#00ff00"},
		{Name: "Legacy", Color: "not-a-color"},
	})

	assert.Equal(t, "#00FF00", genres[0].Color)
	assert.Equal(t, "#FF0000", genres[1].Color)
}
