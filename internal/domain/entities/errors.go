package entities

import "errors"

var (
	ErrTopicNotFound      = errors.New("topic not found")
	ErrTopicNotEmpty      = errors.New("topic still has questions")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidInput       = errors.New("invalid input")

	// ErrNoQuestionID signals that inserting a question returned no generated id.
	ErrNoQuestionID = errors.New("question insert returned no id")
)
