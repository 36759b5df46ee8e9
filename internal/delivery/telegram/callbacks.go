package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	// Remove the user's "clock".
	defer func() {
		if _, err := h.bot.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
			h.logger.Warn("callback answer error", zap.Error(err))
		}
	}()

	if cb.Message == nil {
		return
	}
	chatID := cb.Message.Chat.ID
	messageID := cb.Message.MessageID

	data := decodeCallback(cb.Data)

	var fn HandlerFunc
	switch data.Action {
	case actionTopics:
		fn = h.handleTopics()

	case actionQuiz:
		topicID, err := data.int64Param(0)
		if err != nil {
			h.logBadCallback(cb)
			return
		}
		fn = h.handleQuiz(topicID)

	case actionAnswer:
		questionID, err1 := data.int64Param(0)
		answerID, err2 := data.int64Param(1)
		if err1 != nil || err2 != nil {
			h.logBadCallback(cb)
			return
		}
		fn = h.handleAnswer(messageID, questionID, answerID)

	case actionPick:
		questionID, err1 := data.int64Param(0)
		mask, err2 := data.maskParam(1)
		if err1 != nil || err2 != nil {
			h.logBadCallback(cb)
			return
		}
		fn = h.handlePick(messageID, questionID, mask)

	case actionCheck:
		questionID, err1 := data.int64Param(0)
		mask, err2 := data.maskParam(1)
		if err1 != nil || err2 != nil {
			h.logBadCallback(cb)
			return
		}
		fn = h.handleCheck(messageID, questionID, mask)

	default:
		h.logBadCallback(cb)
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) logBadCallback(cb *tgbotapi.CallbackQuery) {
	h.logger.Warn("invalid callback data",
		zap.Int64("user_id", cb.From.ID),
		zap.String("data", cb.Data),
	)
}

// handleAnswer checks a single-choice answer.
func (h *Handler) handleAnswer(messageID int, questionID, answerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		q, err := h.questionService.Get(ctx, questionID)
		if err != nil {
			return err
		}
		return h.replyVerdict(ctx, chatID, messageID, q, []int64{answerID})
	}
}

// handlePick redraws a multi-select keyboard with the new selection.
func (h *Handler) handlePick(messageID int, questionID int64, mask uint64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		q, err := h.questionService.Get(ctx, questionID)
		if err != nil {
			return err
		}

		h.send(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, buildQuestionKeyboard(q, mask)))
		return nil
	}
}

// handleCheck checks a multi-select answer.
func (h *Handler) handleCheck(messageID int, questionID int64, mask uint64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		q, err := h.questionService.Get(ctx, questionID)
		if err != nil {
			return err
		}
		return h.replyVerdict(ctx, chatID, messageID, q, selectedIDs(q, mask))
	}
}

// replyVerdict replaces the question message with the verdict.
func (h *Handler) replyVerdict(ctx context.Context, chatID int64, messageID int, q *entities.Question, selected []int64) error {
	verdict, err := h.questionService.CheckAnswer(ctx, q.ID, selected)
	if err != nil {
		return err
	}

	kb := buildVerdictKeyboard(q.TopicID)
	h.send(newHTMLEdit(chatID, messageID, renderVerdict(q, verdict, selected), &kb))
	return nil
}
