package httpapi

import (
	"context"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

type TopicService interface {
	List(ctx context.Context) ([]entities.Topic, error)
	Get(ctx context.Context, id int64) (*entities.Topic, error)
	Create(ctx context.Context, name string) (*entities.Topic, error)
	Delete(ctx context.Context, id int64) error
}

type QuestionService interface {
	ListByTopic(ctx context.Context, topicID int64) ([]entities.QuestionSummary, error)
	Create(ctx context.Context, d entities.Draft) (int64, error)
	Get(ctx context.Context, id int64) (*entities.Question, error)
	Delete(ctx context.Context, id int64) error
	Random(ctx context.Context, topicID int64) (*entities.Question, error)
	Edit(ctx context.Context, questionID int64, d entities.Draft) (int64, error)
	CheckAnswer(ctx context.Context, questionID int64, selected []int64) (*entities.Verdict, error)
}

type UserService interface {
	SignUp(ctx context.Context, username, password string) (int64, error)
	Authenticate(ctx context.Context, username, password string) (int64, error)
	Get(ctx context.Context, id int64) (*entities.User, error)
}

// HealthChecker is satisfied by *pgxpool.Pool.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
