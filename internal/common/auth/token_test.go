package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "unit-test-secret"

func sign(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestVerifyValidToken(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub":   "usr-42",
		"email": "priya@example.com",
		"role":  RoleStaff,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := NewVerifier(secret).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "usr-42", claims.UserID)
	assert.Equal(t, "priya@example.com", claims.Email)
	assert.Equal(t, RoleStaff, claims.Role)
	assert.False(t, claims.ExpiresAt.IsZero())
}

func TestVerifyEmptyToken(t *testing.T) {
	_, err := NewVerifier(secret).Verify("   ")
	assert.ErrorIs(t, err, ErrTokenEmpty)
}

func TestVerifyExpiredToken(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": "usr-42",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})

	_, err := NewVerifier(secret).Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, []byte("other-secret"), jwt.MapClaims{
		"sub": "usr-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewVerifier(secret).Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsUnexpectedAlgorithm(t *testing.T) {
	// "none" and non-HMAC algorithms must not slip through.
	token := sign(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, jwt.MapClaims{
		"sub": "usr-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := NewVerifier(secret).Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyDefaultsRoleToUser(t *testing.T) {
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": "usr-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	claims, err := NewVerifier(secret).Verify(token)
	require.NoError(t, err)
	assert.Equal(t, RoleUser, claims.Role)
}

func TestVerifyAtPinnedClock(t *testing.T) {
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": "usr-42",
		"iat": issued.Unix(),
		"exp": issued.Add(time.Hour).Unix(),
	})

	within := NewVerifierAt(secret, func() time.Time { return issued.Add(30 * time.Minute) })
	_, err := within.Verify(token)
	assert.NoError(t, err)

	after := NewVerifierAt(secret, func() time.Time { return issued.Add(2 * time.Hour) })
	_, err = after.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestIsStaff(t *testing.T) {
	assert.True(t, IsStaff(RoleStaff))
	assert.True(t, IsStaff(RoleAdmin))
	assert.False(t, IsStaff(RoleUser))
	assert.False(t, IsStaff(""))
}
