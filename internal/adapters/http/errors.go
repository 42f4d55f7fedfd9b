package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/learning-journal/internal/adapters/http/dto"
)

// noRoute answers unknown paths with the JSON error envelope instead of
// gin's plain text 404.
func noRoute(c *gin.Context) {
	dto.RespondWithErrorCode(c, dto.ErrorCodeNotFound, "route "+c.Request.URL.Path+" not found")
}

func noMethod(c *gin.Context) {
	dto.RespondWithErrorCode(c, dto.ErrorCodeMethodNotAllowed,
		"method "+c.Request.Method+" not allowed on "+c.Request.URL.Path)
}
