package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// RouterOptions carries the optional cross-cutting pieces of the router.
// Nil fields are skipped.
type RouterOptions struct {
	Health      HealthChecker
	Metrics     *Metrics
	AuthLimiter *IPRateLimiter
}

func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(h.logger))
	if opts.Metrics != nil {
		router.Use(opts.Metrics.Middleware())
		router.GET("/metrics", opts.Metrics.Handler())
	}

	router.GET("/healthz", healthz(opts.Health))

	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		limited := auth.Group("")
		if opts.AuthLimiter != nil {
			limited.Use(opts.AuthLimiter.Middleware())
		}
		limited.POST("/signup", h.SignUp)
		limited.POST("/login", h.Login)

		auth.POST("/logout", h.Logout)
		auth.GET("/me", h.sessions.RequireSession(), h.Me)
	}

	api.GET("/topics", h.ListTopics)
	api.GET("/topics/:id", h.GetTopic)
	api.GET("/topics/:id/questions", h.ListQuestions)
	api.GET("/topics/:id/quiz", h.RandomQuestion)
	api.GET("/questions/:id", h.GetQuestion)
	api.POST("/questions/:id/answer", h.SubmitAnswer)

	authorized := api.Group("")
	authorized.Use(h.sessions.RequireSession())
	{
		authorized.POST("/topics", h.CreateTopic)
		authorized.DELETE("/topics/:id", h.DeleteTopic)
		authorized.POST("/topics/:id/questions", h.CreateQuestion)
		authorized.PUT("/questions/:id", h.EditQuestion)
		authorized.DELETE("/questions/:id", h.DeleteQuestion)
	}

	return router
}

func healthz(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := checker.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
