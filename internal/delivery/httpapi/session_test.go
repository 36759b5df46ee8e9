package httpapi

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestSessionRoundTrip(t *testing.T) {
	m := NewSessionManager("secret", "revisor_session", time.Hour, false)

	token, err := m.Token(42)
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}

	id, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if id != 42 {
		t.Fatalf("user id = %d, want 42", id)
	}
}

func TestSessionRejects(t *testing.T) {
	m := NewSessionManager("secret", "revisor_session", time.Hour, false)
	valid, err := m.Token(7)
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}

	expired, err := NewSessionManager("secret", "revisor_session", -time.Minute, false).Token(7)
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}

	otherKey, err := NewSessionManager("other", "revisor_session", time.Hour, false).Token(7)
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}

	parts := strings.Split(valid, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "abc"},
		{"expired", expired},
		{"wrong key", otherKey},
		{"tampered", tampered},
		{"zero user", mustToken(t, m, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Parse(tt.token); !errors.Is(err, errInvalidSession) {
				t.Fatalf("Parse error = %v, want errInvalidSession", err)
			}
		})
	}
}

func mustToken(t *testing.T, m *SessionManager, userID int64) string {
	t.Helper()

	token, err := m.Token(userID)
	if err != nil {
		t.Fatalf("Token failed: %v", err)
	}
	return token
}
