package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) ListTopics(c *gin.Context) {
	topics, err := h.topics.List(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, topics)
}

func (h *Handler) GetTopic(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	topic, err := h.topics.Get(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, topic)
}

func (h *Handler) CreateTopic(c *gin.Context) {
	var req createTopicRequest
	if !bindJSON(c, &req) {
		return
	}

	topic, err := h.topics.Create(c.Request.Context(), req.Name)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Info("topic created",
		zap.Int64("topic_id", topic.ID),
		zap.Int64("user_id", currentUserID(c)),
	)
	c.JSON(http.StatusCreated, topic)
}

func (h *Handler) DeleteTopic(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.topics.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Info("topic deleted",
		zap.Int64("topic_id", id),
		zap.Int64("user_id", currentUserID(c)),
	)
	c.Status(http.StatusNoContent)
}
