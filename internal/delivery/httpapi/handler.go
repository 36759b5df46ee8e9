package httpapi

import (
	"go.uber.org/zap"
)

type Handler struct {
	logger    *zap.Logger
	sessions  *SessionManager
	topics    TopicService
	questions QuestionService
	users     UserService
}

func NewHandler(
	logger *zap.Logger,
	sessions *SessionManager,
	topics TopicService,
	questions QuestionService,
	users UserService,
) *Handler {
	return &Handler{
		logger:    logger,
		sessions:  sessions,
		topics:    topics,
		questions: questions,
		users:     users,
	}
}
