package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

// buildTopicsKeyboard builds one row per topic.
func buildTopicsKeyboard(topics []entities.Topic) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(t.Name, buildQuizCallback(t.ID)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildQuestionKeyboard builds the answer buttons of a question. Single-choice
// questions answer on press; multi-select questions toggle the pressed answer
// in mask and submit with a separate Check button.
func buildQuestionKeyboard(q *entities.Question, mask uint64) tgbotapi.InlineKeyboardMarkup {
	many := selectMany(q)

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Answers)+1)
	for i, a := range q.Answers {
		if !many {
			rows = append(rows, tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData(a.Text, buildAnswerCallback(q.ID, a.ID)),
			))
			continue
		}

		bit := uint64(1) << uint(i)
		label := "⬜ " + a.Text
		if mask&bit != 0 {
			label = "☑️ " + a.Text
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildPickCallback(q.ID, mask^bit)),
		))
	}

	if many {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnCheck, buildCheckCallback(q.ID, mask)),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildVerdictKeyboard offers the next question of the same topic.
func buildVerdictKeyboard(topicID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(btnNext, buildQuizCallback(topicID)),
			tgbotapi.NewInlineKeyboardButtonData(btnTopics, buildTopicsCallback()),
		),
	)
}
