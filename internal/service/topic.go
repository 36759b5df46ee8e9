package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

// DeletePolicy decides what happens to a topic's questions when the topic is deleted.
type DeletePolicy string

const (
	// DeleteCascade removes the topic's questions and answers along with it.
	DeleteCascade DeletePolicy = "cascade"
	// DeleteRestrict refuses to delete a topic that still has questions.
	DeleteRestrict DeletePolicy = "restrict"
)

// ParseDeletePolicy converts a configuration value into a DeletePolicy.
// An empty value selects DeleteCascade.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch DeletePolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", DeleteCascade:
		return DeleteCascade, nil
	case DeleteRestrict:
		return DeleteRestrict, nil
	default:
		return "", fmt.Errorf("unknown topic delete policy %q", s)
	}
}

type TopicService struct {
	tr        Transactor
	topics    TopicRepository
	questions QuestionRepository
	policy    DeletePolicy
}

func NewTopicService(
	tr Transactor,
	topics TopicRepository,
	questions QuestionRepository,
	policy DeletePolicy,
) *TopicService {
	if policy == "" {
		policy = DeleteCascade
	}
	return &TopicService{
		tr:        tr,
		topics:    topics,
		questions: questions,
		policy:    policy,
	}
}

func (s *TopicService) List(ctx context.Context) ([]entities.Topic, error) {
	return s.topics.List(ctx)
}

func (s *TopicService) Get(ctx context.Context, id int64) (*entities.Topic, error) {
	return s.topics.GetByID(ctx, id)
}

func (s *TopicService) Create(ctx context.Context, name string) (*entities.Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: topic name is required", entities.ErrInvalidInput)
	}

	id, err := s.topics.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	return &entities.Topic{ID: id, Name: name}, nil
}

// Delete removes a topic according to the configured policy.
// Deleting a missing topic is not an error.
func (s *TopicService) Delete(ctx context.Context, id int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context) error {
		switch s.policy {
		case DeleteRestrict:
			n, err := s.questions.CountByTopic(ctx, id)
			if err != nil {
				return err
			}
			if n > 0 {
				return entities.ErrTopicNotEmpty
			}
		default:
			if err := s.questions.DeleteByTopic(ctx, id); err != nil {
				return err
			}
		}

		return s.topics.Delete(ctx, id)
	})
}
