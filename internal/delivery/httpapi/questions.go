package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListQuestions(c *gin.Context) {
	topicID, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.topics.Get(ctx, topicID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	questions, err := h.questions.ListByTopic(ctx, topicID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

func (h *Handler) CreateQuestion(c *gin.Context) {
	topicID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req questionRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.questions.Create(c.Request.Context(), req.draft(topicID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Location", questionLocation(id))
	c.JSON(http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) GetQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	q, err := h.questions.Get(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

// EditQuestion replaces the question; the response carries the new id.
func (h *Handler) EditQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req questionRequest
	if !bindJSON(c, &req) {
		return
	}

	newID, err := h.questions.Edit(c.Request.Context(), id, req.draft(0))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Location", questionLocation(newID))
	c.JSON(http.StatusOK, editResponse{ID: newID, PreviousID: id})
}

func (h *Handler) DeleteQuestion(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.questions.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RandomQuestion serves one random question of a topic without revealing the correct answers.
func (h *Handler) RandomQuestion(c *gin.Context) {
	topicID, ok := parseID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := h.topics.Get(ctx, topicID); err != nil {
		h.writeServiceError(c, err)
		return
	}

	q, err := h.questions.Random(ctx, topicID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, toQuizQuestion(q))
}

func (h *Handler) SubmitAnswer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req submitAnswerRequest
	if !bindJSON(c, &req) {
		return
	}

	verdict, err := h.questions.CheckAnswer(c.Request.Context(), id, req.AnswerIDs)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, verdict)
}
