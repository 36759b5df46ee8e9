package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (h *Handler) SignUp(c *gin.Context) {
	var req credentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.users.SignUp(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.logger.Info("user signed up", zap.Int64("user_id", id))
	c.JSON(http.StatusCreated, idResponse{ID: id})
}

func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.users.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.sessions.Issue(c, id); err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, idResponse{ID: id})
}

func (h *Handler) Logout(c *gin.Context) {
	h.sessions.Clear(c)
	c.Status(http.StatusNoContent)
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.users.Get(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}
