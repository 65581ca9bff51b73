// Package auth parses and validates the session tokens issued by the
// grievance backend. The backend signs HS256 tokens; the portal only verifies
// and reads them, it never mints one.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenEmpty   = errors.New("token is required")
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// Role values reported by the backend inside session tokens.
const (
	RoleUser  = "user"
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// SessionClaims captures the validated claims of a backend session token.
type SessionClaims struct {
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
	IssuedAt  time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Verifier validates session tokens against a shared secret.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret), now: time.Now}
}

// NewVerifierAt allows tests to pin the clock.
func NewVerifierAt(secret string, now func() time.Time) *Verifier {
	if now == nil {
		now = time.Now
	}
	return &Verifier{secret: []byte(secret), now: now}
}

// Verify parses the token, checks the signature and expiry, and returns the
// session claims.
func (v *Verifier) Verify(token string) (*SessionClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrTokenEmpty
	}

	var parsed sessionClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims := &SessionClaims{
		UserID: parsed.Subject,
		Email:  parsed.Email,
		Role:   parsed.Role,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Time
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time
	}
	if claims.Role == "" {
		claims.Role = RoleUser
	}
	return claims, nil
}

// IsStaff reports whether the role may access staff surfaces.
func IsStaff(role string) bool {
	return role == RoleStaff || role == RoleAdmin
}
