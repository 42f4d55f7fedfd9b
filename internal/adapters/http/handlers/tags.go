package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/learning-journal/internal/adapters/http/dto"
	"github.com/jsamuelsen/learning-journal/internal/app"
)

// TagHandler serves /api/tags.
type TagHandler struct {
	service *app.JournalService
}

// NewTagHandler creates a new tag handler.
func NewTagHandler(service *app.JournalService) *TagHandler {
	return &TagHandler{service: service}
}

// List handles GET /api/tags.
func (h *TagHandler) List(c *gin.Context) {
	tags, err := h.service.ListTags(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagResponses(tags))
}

// Summary handles GET /api/tags/summary.
func (h *TagHandler) Summary(c *gin.Context) {
	counts, err := h.service.TagSummary(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagCountResponses(counts))
}

// Entries handles GET /api/tags/:name/entries.
func (h *TagHandler) Entries(c *gin.Context) {
	group, err := h.service.EntriesTagged(c.Request.Context(), c.Param("name"))
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTagGroupResponse(group))
}

// RegisterRoutes mounts the tag routes on rg.
func (h *TagHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tags := rg.Group("/tags")
	tags.GET("", h.List)
	tags.GET("/summary", h.Summary)
	tags.GET("/:name/entries", h.Entries)
}
