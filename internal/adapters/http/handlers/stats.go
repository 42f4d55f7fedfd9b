package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/learning-journal/internal/adapters/http/dto"
	"github.com/jsamuelsen/learning-journal/internal/app"
)

// StatsHandler serves GET /api/stats.
type StatsHandler struct {
	service *app.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(service *app.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

// Get returns the streak summary and the entries of ?date= (default today).
func (h *StatsHandler) Get(c *gin.Context) {
	var q dto.StatsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		dto.RespondWithErrorCode(c, dto.ErrorCodeBadRequest, "invalid query string")
		return
	}

	day, err := q.Day()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), day)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// RegisterRoutes mounts the stats route on rg.
func (h *StatsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Get)
}
