package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims carried by every issued token. OrigIat records when the first
// token of a refresh chain was issued, so refreshing cannot extend a
// session past the refresh window.
type Claims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	OrigIat  int64  `json:"orig_iat"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed JWTs.
type TokenManager struct {
	secret        []byte
	ttl           time.Duration
	refreshWindow time.Duration
}

// NewTokenManager creates a TokenManager. ttl is the lifetime of a single
// token, refreshWindow the maximum age of a refresh chain.
func NewTokenManager(secret string, ttl, refreshWindow time.Duration) *TokenManager {
	return &TokenManager{
		secret:        []byte(secret),
		ttl:           ttl,
		refreshWindow: refreshWindow,
	}
}

// Issue creates a fresh token for the given user.
func (tm *TokenManager) Issue(userID int, username string) (string, error) {
	now := time.Now()
	return tm.sign(userID, username, now.Unix(), now)
}

// Verify parses and validates a token, returning its claims.
func (tm *TokenManager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Refresh verifies a token and issues a replacement with a new expiry.
// The original issue time is carried over; once the refresh window has
// passed the chain cannot be extended further.
func (tm *TokenManager) Refresh(tokenString string) (string, error) {
	claims, err := tm.Verify(tokenString)
	if err != nil {
		return "", err
	}
	if time.Since(time.Unix(claims.OrigIat, 0)) > tm.refreshWindow {
		return "", ErrTokenExpired
	}
	return tm.sign(claims.UserID, claims.Username, claims.OrigIat, time.Now())
}

func (tm *TokenManager) sign(userID int, username string, origIat int64, now time.Time) (string, error) {
	claims := Claims{
		UserID:   userID,
		Username: username,
		OrigIat:  origIat,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secret)
}
