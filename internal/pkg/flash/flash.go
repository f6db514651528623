// Package flash carries one-time user notices between requests.
//
// A notice survives exactly one redirect: Set writes it into a signed cookie
// and Take drains it on the next rendered page. Tampered, expired or absent
// cookies drain to nothing.
package flash

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	cookieName = "flash"
	cookieTTL  = 5 * time.Minute
)

// Notice is a single transient user-visible message.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Store signs and verifies flash cookies with a shared session secret.
type Store struct {
	secret []byte
}

// NewStore creates a flash store keyed by the session secret.
func NewStore(secret string) *Store {
	return &Store{secret: []byte(secret)}
}

type noticeClaims struct {
	Level   string `json:"lvl"`
	Message string `json:"msg"`
	jwt.RegisteredClaims
}

// Set queues a notice for the caller's next rendered page.
func (s *Store) Set(c *gin.Context, level, message string) {
	claims := noticeClaims{
		Level:   level,
		Message: message,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cookieTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		// A notice is best-effort UI state, never worth failing the request.
		return
	}

	c.SetCookie(cookieName, signed, int(cookieTTL.Seconds()), "/", "", false, true)
}

// Take returns the pending notice, if any, and clears it so it is shown once.
func (s *Store) Take(c *gin.Context) (Notice, bool) {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return Notice{}, false
	}

	// Drain regardless of whether the cookie verifies.
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	claims := &noticeClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, http.ErrNoCookie
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Notice{}, false
	}

	return Notice{Level: claims.Level, Message: claims.Message}, true
}
