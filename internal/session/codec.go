package session

import (
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
)

// CookieName is the cookie carrying the session identifier.
const CookieName = "userId"

// TTL is how long an issued session stays valid.
const TTL = 7 * 24 * time.Hour

// Codec translates between a user id and the session cookie value. Handlers
// never touch the cookie format directly, so the plain identifier scheme can
// be swapped for a signed one without touching them.
type Codec interface {
	// Issue produces the cookie value for a freshly created user.
	Issue(userID string) (string, error)
	// Decode extracts the user id from a cookie value, or fails if the
	// value is empty or does not verify.
	Decode(cookieValue string) (string, error)
}

// PlainCodec treats the cookie value as the raw user id. No verification is
// performed; the identifier is trusted at face value. This matches the
// original behavior and is a known security gap.
type PlainCodec struct{}

// NewPlainCodec creates a PlainCodec.
func NewPlainCodec() *PlainCodec {
	return &PlainCodec{}
}

// Issue returns the user id unchanged.
func (c *PlainCodec) Issue(userID string) (string, error) {
	return userID, nil
}

// Decode returns the cookie value unchanged, failing only on empty input.
func (c *PlainCodec) Decode(cookieValue string) (string, error) {
	if cookieValue == "" {
		return "", fmt.Errorf("empty session identifier")
	}
	return cookieValue, nil
}

// SignedCodec issues HS256-signed tokens carrying the user id, so a tampered
// or forged cookie fails verification instead of impersonating a user.
type SignedCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewSignedCodec creates a SignedCodec with the given signing secret.
func NewSignedCodec(secret string) *SignedCodec {
	return &SignedCodec{
		secret: []byte(secret),
		ttl:    TTL,
	}
}

// Issue signs a token embedding the user id, expiring after the session TTL.
func (c *SignedCodec) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(c.ttl).Unix(),
		"iat":     time.Now().Unix(),
	})

	tokenString, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return tokenString, nil
}

// Decode parses and verifies a token, returning the embedded user id.
func (c *SignedCodec) Decode(cookieValue string) (string, error) {
	token, err := jwt.Parse(cookieValue, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid session token")
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("session token has no user id")
	}
	return userID, nil
}
