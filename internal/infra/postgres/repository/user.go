package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/aliskhannn/revisor/internal/domain/entities"
	"github.com/aliskhannn/revisor/internal/infra/postgres"
)

// UserRepository provides access to user data in the database.
type UserRepository struct {
	db postgres.DBTX
}

// NewUserRepository creates a new UserRepository with the provided database pool.
func NewUserRepository(db postgres.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user with an already hashed password.
func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (int64, error) {
	query := `
		INSERT INTO users (username, password_hash)
		VALUES ($1, $2)
		RETURNING user_id
	`

	var id int64
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, username, passwordHash).Scan(&id)
	if err != nil {
		if hasPgCode(err, uniqueViolation) {
			return 0, entities.ErrUsernameTaken
		}
		return 0, fmt.Errorf("create user: %w", err)
	}

	return id, nil
}

// GetByUsername retrieves a user by login name.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	query := `
		SELECT user_id, username, password_hash
		FROM users
		WHERE username = $1
	`

	return r.get(ctx, query, username)
}

// GetByID retrieves a user by id.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `
		SELECT user_id, username, password_hash
		FROM users
		WHERE user_id = $1
	`

	return r.get(ctx, query, id)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*entities.User, error) {
	var user entities.User
	err := postgres.Conn(ctx, r.db).QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}
