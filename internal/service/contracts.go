package service

import (
	"context"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

// Transactor scopes a unit of work. Repositories called with the ctx handed to fn
// take part in the same transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type TopicRepository interface {
	List(ctx context.Context) ([]entities.Topic, error)
	Create(ctx context.Context, name string) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Topic, error)
	Delete(ctx context.Context, id int64) error
}

type QuestionRepository interface {
	ListByTopic(ctx context.Context, topicID int64) ([]entities.QuestionSummary, error)
	Create(ctx context.Context, topicID int64, text string, contextualInfo *string) (int64, error)
	CreateAnswer(ctx context.Context, questionID int64, text string, isCorrect bool) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Question, error)
	ListAnswers(ctx context.Context, questionID int64) ([]entities.Answer, error)
	TopicID(ctx context.Context, questionID int64) (int64, error)
	RandomID(ctx context.Context, topicID int64) (int64, error)
	CountByTopic(ctx context.Context, topicID int64) (int, error)
	Delete(ctx context.Context, id int64) error
	DeleteByTopic(ctx context.Context, topicID int64) error
}

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	GetByID(ctx context.Context, id int64) (*entities.User, error)
}
