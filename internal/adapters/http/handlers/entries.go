package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/learning-journal/internal/adapters/http/dto"
	"github.com/jsamuelsen/learning-journal/internal/app"
)

// EntryHandler serves /api/entries.
type EntryHandler struct {
	service *app.JournalService
}

// NewEntryHandler creates a new entry handler.
func NewEntryHandler(service *app.JournalService) *EntryHandler {
	return &EntryHandler{service: service}
}

// List handles GET /api/entries. Entries are newest first.
func (h *EntryHandler) List(c *gin.Context) {
	entries, err := h.service.ListEntries(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// Search handles GET /api/entries/search?q=.
func (h *EntryHandler) Search(c *gin.Context) {
	var q dto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid query string")
		return
	}

	if err := dto.Validate(&q); err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "search query is required")
		return
	}

	entries, err := h.service.SearchEntries(c.Request.Context(), q.Q)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponses(entries))
}

// Get handles GET /api/entries/:id.
func (h *EntryHandler) Get(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	entry, err := h.service.GetEntry(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// Create handles POST /api/entries.
func (h *EntryHandler) Create(c *gin.Context) {
	var req dto.CreateEntryRequest
	if !bind(c, &req) {
		return
	}

	entry, err := h.service.CreateEntry(c.Request.Context(), req.NewEntry(), req.TagNames())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

// Update handles PUT /api/entries/:id.
func (h *EntryHandler) Update(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	var req dto.UpdateEntryRequest
	if !bind(c, &req) {
		return
	}

	entry, err := h.service.UpdateEntry(c.Request.Context(), id, req.Patch(), req.TagNames())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEntryResponse(entry))
}

// Delete handles DELETE /api/entries/:id. Unknown ids also get 204.
func (h *EntryHandler) Delete(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), id); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterRoutes mounts the entry routes on rg.
func (h *EntryHandler) RegisterRoutes(rg *gin.RouterGroup) {
	entries := rg.Group("/entries")
	entries.GET("", h.List)
	entries.GET("/search", h.Search)
	entries.GET("/:id", h.Get)
	entries.POST("", h.Create)
	entries.PUT("/:id", h.Update)
	entries.DELETE("/:id", h.Delete)
}

// entryID parses the :id parameter, writing a 400 when it is not a
// positive integer.
func entryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid entry ID")
		return 0, false
	}

	return id, true
}

// bind decodes and validates the body, writing the 400 itself on failure.
func bind(c *gin.Context, v any) bool {
	err := dto.BindAndValidate(c, v)
	if err == nil {
		return true
	}

	if details := dto.ValidationErrors(err); len(details) > 0 {
		dto.RespondWithValidationErrors(c, details)
		return false
	}

	dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, dto.BindingMessage(err))

	return false
}
