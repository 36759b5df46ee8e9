package entities

// User represents an account able to author topics and questions.
type User struct {
	ID           int64  // generated user_id
	Username     string // unique login name
	PasswordHash string // bcrypt hash, never the plaintext
}
