// Package session issues and verifies the opaque tokens handed to the
// dashboard on login. Tokens are signed JWTs whose ids are tracked in a
// revocable store, so logout actually invalidates the token instead of
// waiting for expiry.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"contractdesk/models"
)

// ErrInvalidToken covers expired, revoked, malformed and forged tokens
// alike.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenStore tracks live token ids. Delete of an unknown id is a no-op.
type TokenStore interface {
	Save(ctx context.Context, jti string, userID int64, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
	Delete(ctx context.Context, jti string) error
}

// Claims is the verified identity carried by a session token.
type Claims struct {
	UserID   int64
	Username string
	Name     string
	JTI      string
}

// Manager signs, verifies and revokes session tokens.
type Manager struct {
	secret []byte
	ttl    time.Duration
	tokens TokenStore
}

func NewManager(secret string, ttl time.Duration, tokens TokenStore) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl, tokens: tokens}
}

// Issue signs a token for the user and registers its id in the store.
func (m *Manager) Issue(ctx context.Context, user models.SessionUser) (string, error) {
	jti := uuid.NewString()
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"name":     user.Name,
		"jti":      jti,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	if err := m.tokens.Save(ctx, jti, user.ID, m.ttl); err != nil {
		return "", fmt.Errorf("register token: %w", err)
	}
	return signed, nil
}

// Verify parses the token, checks the signature and expiry, and confirms
// the token id has not been revoked.
func (m *Manager) Verify(ctx context.Context, tokenStr string) (*Claims, error) {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	alive, err := m.tokens.Exists(ctx, claims.JTI)
	if err != nil {
		return nil, err
	}
	if !alive {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Revoke drops the token id from the store; the token is dead from then on
// even though its signature is still valid.
func (m *Manager) Revoke(ctx context.Context, tokenStr string) error {
	claims, err := m.parse(tokenStr)
	if err != nil {
		return err
	}
	return m.tokens.Delete(ctx, claims.JTI)
}

func (m *Manager) parse(tokenStr string) (*Claims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, ok := mc["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	jti, _ := mc["jti"].(string)
	if jti == "" {
		return nil, ErrInvalidToken
	}
	username, _ := mc["username"].(string)
	name, _ := mc["name"].(string)
	return &Claims{UserID: int64(userID), Username: username, Name: name, JTI: jti}, nil
}
