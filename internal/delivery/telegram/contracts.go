package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

type TopicService interface {
	List(ctx context.Context) ([]entities.Topic, error)
	Get(ctx context.Context, id int64) (*entities.Topic, error)
}

type QuestionService interface {
	Get(ctx context.Context, id int64) (*entities.Question, error)
	Random(ctx context.Context, topicID int64) (*entities.Question, error)
	CheckAnswer(ctx context.Context, questionID int64, selected []int64) (*entities.Verdict, error)
}

// BotAPI is the part of *tgbotapi.BotAPI the handler uses.
type BotAPI interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	StopReceivingUpdates()
}
