package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	defaultAuditPageSize = 25
	maxAuditPageSize     = 100
)

type AuditController struct {
	log AuditLog
}

func NewAuditController(log AuditLog) *AuditController {
	return &AuditController{log: log}
}

// GetAuditEvents returns paginated audit events as JSON
// GET /api/audit?entity=book&page=1&limit=25
func (ac *AuditController) GetAuditEvents(c *gin.Context) {
	_, limit, offset := parsePagination(c, defaultAuditPageSize, maxAuditPageSize)

	events, total, err := ac.log.GetEvents(c.Query("entity"), limit, offset)
	if err != nil {
		respondInternalError(c, err, "list audit events")
		return
	}

	totalPages := (int(total) + limit - 1) / limit
	if totalPages < 1 {
		totalPages = 1
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:       events,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
		HasMore:    int64(offset+len(events)) < total,
		TotalPages: totalPages,
	})
}
