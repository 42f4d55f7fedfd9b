package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/learning-journal/internal/adapters/http/dto"
	"github.com/jsamuelsen/learning-journal/internal/app"
	"github.com/jsamuelsen/learning-journal/internal/domain"
)

// BackupHandler serves the export and import endpoints.
type BackupHandler struct {
	service  *app.JournalService
	location *time.Location
}

// NewBackupHandler creates a new backup handler. Download names are dated
// in loc, the journal's time zone.
func NewBackupHandler(service *app.JournalService, loc *time.Location) *BackupHandler {
	return &BackupHandler{service: service, location: loc}
}

// Export handles GET /api/export as a JSON download.
func (h *BackupHandler) Export(c *gin.Context) {
	exp, err := h.service.Export(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", domain.ExportFileName(exp.ExportDate, h.location)))
	c.JSON(http.StatusOK, exp)
}

// Import handles POST /api/import. The body is an export document.
func (h *BackupHandler) Import(c *gin.Context) {
	var doc domain.Export
	if !bind(c, &doc) {
		return
	}

	n, err := h.service.Import(c.Request.Context(), &doc)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ImportResponse{Imported: n})
}

// RegisterRoutes mounts the backup routes on rg.
func (h *BackupHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/export", h.Export)
	rg.POST("/import", h.Import)
}
