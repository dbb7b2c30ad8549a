package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"techblog/internal/models"
)

// ErrInvalidToken covers malformed, tampered and expired session tokens.
// Callers treat any of these as an anonymous request.
var ErrInvalidToken = errors.New("invalid token")

// DefaultSessionTTL is the absolute session lifetime when config leaves it
// unset. There is no refresh on activity.
const DefaultSessionTTL = 30 * time.Minute

// SessionService issues and parses the signed session token stored in the
// client cookie.
type SessionService struct {
	signingKey []byte
	ttl        time.Duration
}

func NewSessionService(cfg SessionConfig) *SessionService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{signingKey: []byte(cfg.SigningKey), ttl: ttl}
}

var _ Sessions = (*SessionService)(nil)

// Claims defines the session token payload.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
}

// Issue signs a token for the user with an absolute expiry of now+TTL.
func (s *SessionService) Issue(user *models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   user.ID,
		Username: user.Username,
	})
	return token.SignedString(s.signingKey)
}

// Parse validates a token and returns the identity it carries. Expiry is
// checked here, lazily, at the next request that presents the token.
func (s *SessionService) Parse(tokenStr string) (models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Identity{}, ErrInvalidToken
	}
	return models.Identity{UserID: claims.UserID, Username: claims.Username}, nil
}

// TTL returns the absolute session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}
