package postgres

import (
	"context"
	"fmt"
)

// Foreign keys restrict deletes; cascading is done by the application so the
// topic delete policy stays explicit.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS topic (
		topic_id   BIGSERIAL PRIMARY KEY,
		topic_name TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS question (
		question_id     BIGSERIAL PRIMARY KEY,
		topic_id        BIGINT NOT NULL REFERENCES topic (topic_id) ON DELETE RESTRICT,
		question_text   TEXT NOT NULL,
		contextual_info TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS answer (
		answer_id   BIGSERIAL PRIMARY KEY,
		question_id BIGINT NOT NULL REFERENCES question (question_id) ON DELETE RESTRICT,
		answer_text TEXT NOT NULL,
		is_correct  BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		user_id       BIGSERIAL PRIMARY KEY,
		username      TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_question_topic ON question (topic_id)`,
	`CREATE INDEX IF NOT EXISTS idx_answer_question ON answer (question_id)`,
}

// Migrate creates the tables and indexes if they do not exist yet.
func Migrate(ctx context.Context, db DBTX) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
