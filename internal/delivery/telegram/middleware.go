package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs the error and tells the user something went wrong.
// Not-found errors get their own message and are not logged as failures.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		switch {
		case err == nil:
		case errors.Is(err, entities.ErrTopicNotFound):
			h.sendError(chatID, msgTopicNotFound)
		case errors.Is(err, entities.ErrQuestionNotFound):
			h.sendError(chatID, msgQuestionGone)
		default:
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
