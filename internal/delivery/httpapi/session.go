package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ctxUserID = "user_id"

var errInvalidSession = errors.New("invalid session")

type sessionClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// SessionManager keeps the logged-in user id in a signed, HTTP-only cookie.
type SessionManager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
}

func NewSessionManager(secret, cookieName string, ttl time.Duration, secure bool) *SessionManager {
	return &SessionManager{
		secret:     []byte(secret),
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// Token signs a session token for userID.
func (m *SessionManager) Token(userID int64) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Parse validates a session token and returns the user id it carries.
func (m *SessionManager) Parse(token string) (int64, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidSession, err)
	}
	if !parsed.Valid || claims.UserID <= 0 {
		return 0, errInvalidSession
	}
	return claims.UserID, nil
}

// Issue sets the session cookie for userID.
func (m *SessionManager) Issue(c *gin.Context, userID int64) error {
	token, err := m.Token(userID)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, token, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

// Clear expires the session cookie.
func (m *SessionManager) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(m.cookieName, "", -1, "/", "", m.secure, true)
}

// RequireSession rejects requests without a valid session cookie and stores
// the user id in the gin context.
func (m *SessionManager) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "login required"})
			return
		}

		userID, err := m.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "login required"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}
