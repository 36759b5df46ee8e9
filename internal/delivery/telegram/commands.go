package telegram

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

// handleTopics sends the list of topics as a keyboard.
func (h *Handler) handleTopics() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		topics, err := h.topicService.List(ctx)
		if err != nil {
			return err
		}

		if len(topics) == 0 {
			h.send(newHTMLMessage(chatID, msgNoTopics))
			return nil
		}

		msg := newHTMLMessage(chatID, msgChooseTopic)
		msg.ReplyMarkup = buildTopicsKeyboard(topics)
		h.send(msg)
		return nil
	}
}

// handleQuiz sends a random question of the topic.
func (h *Handler) handleQuiz(topicID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if _, err := h.topicService.Get(ctx, topicID); err != nil {
			return err
		}

		q, err := h.questionService.Random(ctx, topicID)
		if errors.Is(err, entities.ErrQuestionNotFound) {
			msg := newHTMLMessage(chatID, msgEmptyTopic)
			msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
				tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData(btnTopics, buildTopicsCallback()),
				),
			)
			h.send(msg)
			return nil
		}
		if err != nil {
			return err
		}
		if selectMany(q) && len(q.Answers) > maxSelectable {
			h.send(newHTMLMessage(chatID, msgTooManyAnswers))
			return nil
		}

		msg := newHTMLMessage(chatID, renderQuestion(q))
		msg.ReplyMarkup = buildQuestionKeyboard(q, 0)
		h.send(msg)
		return nil
	}
}
