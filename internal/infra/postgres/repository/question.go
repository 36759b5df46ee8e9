package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/revisor/internal/domain/entities"
	"github.com/aliskhannn/revisor/internal/infra/postgres"
)

// QuestionRepository provides access to question and answer rows.
// Multi-statement operations are expected to run inside Transactor.WithinTx.
type QuestionRepository struct {
	db postgres.DBTX
}

// NewQuestionRepository creates a new QuestionRepository with the provided database pool.
func NewQuestionRepository(db postgres.DBTX) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// ListByTopic returns the questions of a topic, newest first.
func (r *QuestionRepository) ListByTopic(ctx context.Context, topicID int64) ([]entities.QuestionSummary, error) {
	query := `
		SELECT question_id, question_text
		FROM question
		WHERE topic_id = $1
		ORDER BY question_id DESC
	`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, topicID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	questions := make([]entities.QuestionSummary, 0)
	for rows.Next() {
		var q entities.QuestionSummary
		if err := rows.Scan(&q.ID, &q.Text); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	return questions, nil
}

// Create inserts a question row and returns its generated id.
func (r *QuestionRepository) Create(ctx context.Context, topicID int64, text string, contextualInfo *string) (int64, error) {
	query := `
		INSERT INTO question (topic_id, question_text, contextual_info)
		VALUES ($1, $2, $3)
		RETURNING question_id
	`

	var id int64
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, topicID, text, contextualInfo).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entities.ErrNoQuestionID
		}
		if hasPgCode(err, foreignKeyViolation) {
			return 0, entities.ErrTopicNotFound
		}
		return 0, fmt.Errorf("create question: %w", err)
	}

	if id == 0 {
		return 0, entities.ErrNoQuestionID
	}

	return id, nil
}

// CreateAnswer inserts an answer row for a question.
func (r *QuestionRepository) CreateAnswer(ctx context.Context, questionID int64, text string, isCorrect bool) (int64, error) {
	query := `
		INSERT INTO answer (question_id, answer_text, is_correct)
		VALUES ($1, $2, $3)
		RETURNING answer_id
	`

	var id int64
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, questionID, text, isCorrect).Scan(&id); err != nil {
		if hasPgCode(err, foreignKeyViolation) {
			return 0, entities.ErrQuestionNotFound
		}
		return 0, fmt.Errorf("create answer: %w", err)
	}

	return id, nil
}

// GetByID retrieves the question row without its answers.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*entities.Question, error) {
	query := `
		SELECT question_id, topic_id, question_text, contextual_info
		FROM question
		WHERE question_id = $1
	`

	var q entities.Question
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&q.ID,
		&q.TopicID,
		&q.Text,
		&q.ContextualInfo,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("get question: %w", err)
	}

	return &q, nil
}

// ListAnswers returns the answers of a question ordered by id.
func (r *QuestionRepository) ListAnswers(ctx context.Context, questionID int64) ([]entities.Answer, error) {
	query := `
		SELECT answer_id, question_id, answer_text, is_correct
		FROM answer
		WHERE question_id = $1
		ORDER BY answer_id
	`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}
	defer rows.Close()

	answers := make([]entities.Answer, 0)
	for rows.Next() {
		var a entities.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.Text, &a.IsCorrect); err != nil {
			return nil, fmt.Errorf("scan answer: %w", err)
		}
		answers = append(answers, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list answers: %w", err)
	}

	return answers, nil
}

// TopicID returns the topic a question belongs to.
func (r *QuestionRepository) TopicID(ctx context.Context, questionID int64) (int64, error) {
	var topicID int64
	err := postgres.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT topic_id FROM question WHERE question_id = $1`,
		questionID,
	).Scan(&topicID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entities.ErrQuestionNotFound
		}
		return 0, fmt.Errorf("get question topic: %w", err)
	}

	return topicID, nil
}

// RandomID picks one question id of the topic using the database random order.
func (r *QuestionRepository) RandomID(ctx context.Context, topicID int64) (int64, error) {
	query := `
		SELECT question_id
		FROM question
		WHERE topic_id = $1
		ORDER BY RANDOM()
		LIMIT 1
	`

	var id int64
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, topicID).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entities.ErrQuestionNotFound
		}
		return 0, fmt.Errorf("pick random question: %w", err)
	}

	return id, nil
}

// CountByTopic returns the number of questions in a topic.
func (r *QuestionRepository) CountByTopic(ctx context.Context, topicID int64) (int, error) {
	var n int
	err := postgres.Conn(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*) FROM question WHERE topic_id = $1`,
		topicID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}

	return n, nil
}

// Delete removes a question and its answers. Missing ids are not an error.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	db := postgres.Conn(ctx, r.db)

	if _, err := db.Exec(ctx, `DELETE FROM answer WHERE question_id = $1`, id); err != nil {
		return fmt.Errorf("delete answers: %w", err)
	}
	if _, err := db.Exec(ctx, `DELETE FROM question WHERE question_id = $1`, id); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	return nil
}

// DeleteByTopic removes every question of a topic together with their answers.
func (r *QuestionRepository) DeleteByTopic(ctx context.Context, topicID int64) error {
	db := postgres.Conn(ctx, r.db)

	// Order follows the foreign keys.
	if _, err := db.Exec(ctx, `
		DELETE FROM answer
		WHERE question_id IN (SELECT question_id FROM question WHERE topic_id = $1)
	`, topicID); err != nil {
		return fmt.Errorf("delete topic answers: %w", err)
	}
	if _, err := db.Exec(ctx, `DELETE FROM question WHERE topic_id = $1`, topicID); err != nil {
		return fmt.Errorf("delete topic questions: %w", err)
	}

	return nil
}
