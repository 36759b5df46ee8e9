package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/aliskhannn/revisor/internal/domain/entities"
)

const (
	minPasswordLength = 8
	// bcrypt rejects longer inputs.
	maxPasswordBytes = 72
)

// dummyHash is compared against when the username does not exist so both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("revisor-dummy-password"), bcrypt.DefaultCost)

type UserService struct {
	repository UserRepository
	cost       int
}

func NewUserService(repository UserRepository) *UserService {
	return &UserService{repository: repository, cost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost. Tests use bcrypt.MinCost.
func (s *UserService) WithHashCost(cost int) *UserService {
	s.cost = cost
	return s
}

// SignUp hashes the password and stores a new user.
func (s *UserService) SignUp(ctx context.Context, username, password string) (int64, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return 0, fmt.Errorf("%w: username is required", entities.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return 0, fmt.Errorf("%w: password must be at least %d characters", entities.ErrInvalidInput, minPasswordLength)
	}
	if len(password) > maxPasswordBytes {
		return 0, fmt.Errorf("%w: password must be at most %d bytes", entities.ErrInvalidInput, maxPasswordBytes)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return 0, fmt.Errorf("hash password: %w", err)
	}

	return s.repository.Create(ctx, username, string(hash))
}

// Authenticate returns the user id when the credentials match.
// Unknown users and wrong passwords both yield entities.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (int64, error) {
	user, err := s.repository.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return 0, entities.ErrInvalidCredentials
		}
		return 0, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, entities.ErrInvalidCredentials
	}

	return user.ID, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*entities.User, error) {
	return s.repository.GetByID(ctx, id)
}
