package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

type QuestionService struct {
	tr        Transactor
	topics    TopicRepository
	questions QuestionRepository
	logger    *zap.Logger
}

func NewQuestionService(
	tr Transactor,
	topics TopicRepository,
	questions QuestionRepository,
	logger *zap.Logger,
) *QuestionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionService{
		tr:        tr,
		topics:    topics,
		questions: questions,
		logger:    logger,
	}
}

// ListByTopic returns the questions of a topic, newest first.
func (s *QuestionService) ListByTopic(ctx context.Context, topicID int64) ([]entities.QuestionSummary, error) {
	return s.questions.ListByTopic(ctx, topicID)
}

// Create stores a question with its answers as one unit and returns the new question id.
func (s *QuestionService) Create(ctx context.Context, d entities.Draft) (int64, error) {
	if err := validateDraft(d); err != nil {
		return 0, err
	}

	var id int64
	err := s.tr.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		id, err = s.create(ctx, d)
		return err
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (s *QuestionService) create(ctx context.Context, d entities.Draft) (int64, error) {
	if _, err := s.topics.GetByID(ctx, d.TopicID); err != nil {
		return 0, err
	}

	id, err := s.questions.Create(ctx, d.TopicID, strings.TrimSpace(d.Text), d.ContextualInfo())
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, entities.ErrNoQuestionID
	}

	for i, text := range d.Answers {
		if _, err := s.questions.CreateAnswer(ctx, id, strings.TrimSpace(text), d.IsCorrectAt(i)); err != nil {
			return 0, err
		}
	}

	return id, nil
}

// Get returns a question together with its answers.
func (s *QuestionService) Get(ctx context.Context, id int64) (*entities.Question, error) {
	q, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	answers, err := s.questions.ListAnswers(ctx, id)
	if err != nil {
		return nil, err
	}
	q.Answers = answers

	return q, nil
}

// TopicIDForQuestion returns the id of the topic a question belongs to.
func (s *QuestionService) TopicIDForQuestion(ctx context.Context, questionID int64) (int64, error) {
	return s.questions.TopicID(ctx, questionID)
}

// Delete removes a question and its answers. Missing ids are not an error.
func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	return s.tr.WithinTx(ctx, func(ctx context.Context) error {
		return s.questions.Delete(ctx, id)
	})
}

// Random picks one question of the topic at random.
// It returns entities.ErrQuestionNotFound when the topic has no questions.
func (s *QuestionService) Random(ctx context.Context, topicID int64) (*entities.Question, error) {
	id, err := s.questions.RandomID(ctx, topicID)
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Edit replaces a question with a new one built from d, keeping its topic.
// The old question and its answers are deleted and the new id is returned;
// the old id is gone for good.
func (s *QuestionService) Edit(ctx context.Context, questionID int64, d entities.Draft) (int64, error) {
	var newID int64
	err := s.tr.WithinTx(ctx, func(ctx context.Context) error {
		topicID, err := s.questions.TopicID(ctx, questionID)
		if err != nil {
			return err
		}

		d.TopicID = topicID
		if err := validateDraft(d); err != nil {
			return err
		}

		if err := s.questions.Delete(ctx, questionID); err != nil {
			return err
		}

		newID, err = s.create(ctx, d)
		return err
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("question replaced",
		zap.Int64("previous_id", questionID),
		zap.Int64("id", newID),
		zap.Int64("topic_id", d.TopicID),
	)

	return newID, nil
}

// CheckAnswer compares the selected answer ids with the correct ones.
// Order and duplicates in selected are ignored; the selection is correct only
// when it matches the full set of correct answers.
func (s *QuestionService) CheckAnswer(ctx context.Context, questionID int64, selected []int64) (*entities.Verdict, error) {
	q, err := s.Get(ctx, questionID)
	if err != nil {
		return nil, err
	}

	picked := make(map[int64]struct{}, len(selected))
	for _, id := range selected {
		if !q.HasAnswer(id) {
			return nil, fmt.Errorf("%w: answer %d does not belong to question %d", entities.ErrInvalidInput, id, questionID)
		}
		picked[id] = struct{}{}
	}

	correctIDs := q.CorrectAnswerIDs()
	correct := len(picked) == len(correctIDs)
	for _, id := range correctIDs {
		if _, ok := picked[id]; !ok {
			correct = false
			break
		}
	}

	return &entities.Verdict{
		QuestionID:       q.ID,
		Correct:          correct,
		CorrectAnswerIDs: correctIDs,
	}, nil
}

func validateDraft(d entities.Draft) error {
	if strings.TrimSpace(d.Text) == "" {
		return fmt.Errorf("%w: question text is required", entities.ErrInvalidInput)
	}
	if len(d.Answers) > entities.MaxAnswers {
		return fmt.Errorf("%w: at most %d answers are allowed", entities.ErrInvalidInput, entities.MaxAnswers)
	}
	for i := range d.CorrectIndices {
		if i < 0 || i >= len(d.Answers) {
			return fmt.Errorf("%w: correct answer index %d out of range", entities.ErrInvalidInput, i)
		}
	}
	for i, a := range d.Answers {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: answer %d is empty", entities.ErrInvalidInput, i)
		}
	}
	return nil
}
