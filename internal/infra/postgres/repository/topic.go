package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/revisor/internal/domain/entities"
	"github.com/aliskhannn/revisor/internal/infra/postgres"
)

// TopicRepository provides access to topic data in the database.
type TopicRepository struct {
	db postgres.DBTX
}

// NewTopicRepository creates a new TopicRepository with the provided database pool.
func NewTopicRepository(db postgres.DBTX) *TopicRepository {
	return &TopicRepository{db: db}
}

// List returns all topics ordered by id.
func (r *TopicRepository) List(ctx context.Context) ([]entities.Topic, error) {
	query := `SELECT topic_id, topic_name FROM topic ORDER BY topic_id`

	rows, err := postgres.Conn(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	topics := make([]entities.Topic, 0)
	for rows.Next() {
		var t entities.Topic
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return topics, nil
}

// Create inserts a new topic and returns its generated id.
func (r *TopicRepository) Create(ctx context.Context, name string) (int64, error) {
	query := `INSERT INTO topic (topic_name) VALUES ($1) RETURNING topic_id`

	var id int64
	if err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, name).Scan(&id); err != nil {
		return 0, fmt.Errorf("create topic: %w", err)
	}

	return id, nil
}

// GetByID retrieves a topic by id.
func (r *TopicRepository) GetByID(ctx context.Context, id int64) (*entities.Topic, error) {
	query := `SELECT topic_id, topic_name FROM topic WHERE topic_id = $1`

	var t entities.Topic
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrTopicNotFound
		}
		return nil, fmt.Errorf("get topic: %w", err)
	}

	return &t, nil
}

// Delete removes a topic by id. Deleting a missing id is not an error.
// A topic still referenced by questions yields entities.ErrTopicNotEmpty.
func (r *TopicRepository) Delete(ctx context.Context, id int64) error {
	if _, err := postgres.Conn(ctx, r.db).Exec(ctx, `DELETE FROM topic WHERE topic_id = $1`, id); err != nil {
		if hasPgCode(err, foreignKeyViolation) {
			return entities.ErrTopicNotEmpty
		}
		return fmt.Errorf("delete topic: %w", err)
	}

	return nil
}
