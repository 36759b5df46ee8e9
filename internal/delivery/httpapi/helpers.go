package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, entities.ErrTopicNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "topic not found"})
	case errors.Is(err, entities.ErrQuestionNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "question not found"})
	case errors.Is(err, entities.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: "user not found"})
	case errors.Is(err, entities.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: entities.ErrInvalidCredentials.Error()})
	case errors.Is(err, entities.ErrUsernameTaken):
		c.JSON(http.StatusConflict, errorResponse{Error: "username already taken"})
	case errors.Is(err, entities.ErrTopicNotEmpty):
		c.JSON(http.StatusConflict, errorResponse{Error: "topic still has questions"})
	default:
		h.logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", requestID(c)),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "request failed"})
	}
}

// parseID reads a positive integer path parameter. On failure it writes a 400
// response and returns false.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorResponse{Error: name + " must be a positive integer"})
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}

func questionLocation(id int64) string {
	return "/api/questions/" + strconv.FormatInt(id, 10)
}
