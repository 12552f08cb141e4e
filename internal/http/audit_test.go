package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type auditListResponse struct {
	Data []struct {
		Action     string `json:"action"`
		EntityType string `json:"entity_type"`
		Status     string `json:"status"`
	} `json:"data"`
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	HasMore bool  `json:"has_more"`
}

func TestAuditController_GetAuditEvents(t *testing.T) {
	s := setupTestServer(t)
	for _, title := range []string{"Dune", "Emma", "Hyperion"} {
		book := createBook(t, s, title, "Author")
		w := s.do(t, http.MethodDelete, fmt.Sprintf("/api/books/%d", book.ID), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
	genre := createGenre(t, s, "Sci-Fi", "#FF0000")
	require.NoError(t, s.lib.DeleteGenre(genre.ID))

	t.Run("all events", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/audit", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[auditListResponse](t, w)
		assert.Equal(t, int64(4), resp.Total)
		assert.Len(t, resp.Data, 4)
		assert.False(t, resp.HasMore)
	})

	t.Run("filtered and paginated", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/audit?entity=book&limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decode[auditListResponse](t, w)
		assert.Equal(t, int64(3), resp.Total)
		assert.Len(t, resp.Data, 2)
		assert.True(t, resp.HasMore)
		for _, event := range resp.Data {
			assert.Equal(t, "book_delete", event.Action)
			assert.Equal(t, "success", event.Status)
		}
	})

	t.Run("limit out of range falls back to default", func(t *testing.T) {
		w := s.do(t, http.MethodGet, "/api/audit?limit=1000", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, defaultAuditPageSize, decode[auditListResponse](t, w).Limit)
	})
}
