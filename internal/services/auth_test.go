package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grievance-desk/internal/common/auth"
	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/logger"
)

const testJWTSecret = "test-secret"

func signToken(t *testing.T, userID, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": userID + "@example.com",
		"role":  role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

func newAuthService(t *testing.T, handler http.Handler) (*AuthService, *SessionStore) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store, _ := newMiniredisStore(t, time.Hour)
	return NewAuthService(
		newTestClient(t, srv.URL),
		auth.NewVerifier(testJWTSecret),
		store,
		logger.NewNoOpLogger(),
	), store
}

func TestLoginCachesVerifiedSession(t *testing.T) {
	token := signToken(t, "usr-42", auth.RoleStaff, time.Hour)
	svc, store := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/login", r.URL.Path)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "priya@example.com", creds["email"])

		fmt.Fprintf(w, `{"token": %q, "user": {"id": "usr-42"}}`, token)
	}))

	session, err := svc.Login(context.Background(), "priya@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "usr-42", session.UserID)
	assert.Equal(t, auth.RoleStaff, session.Role)
	assert.Equal(t, token, session.Token)

	cached, err := store.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, session.ID, cached.ID)
}

func TestLoginRejectedByBackend(t *testing.T) {
	svc, _ := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := svc.Login(context.Background(), "priya@example.com", "wrong")
	assert.Equal(t, stderrors.ErrCodeUnauthorized, stderrors.CodeOf(err))
}

func TestLoginRejectsUnverifiableToken(t *testing.T) {
	svc, _ := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token": "not-a-jwt", "user": {"id": "usr-42"}}`))
	}))

	_, err := svc.Login(context.Background(), "priya@example.com", "s3cret")
	assert.Equal(t, stderrors.ErrCodeUnauthorized, stderrors.CodeOf(err))
}

func TestRegisterReturnsPasswordStrength(t *testing.T) {
	svc, _ := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/auth/register", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "usr-43", "email": "new@example.com"}`))
	}))

	result, err := svc.Register(context.Background(), RegisterInput{
		FullName: "New User",
		Email:    "new@example.com",
		Password: "Str0ng#Passw0rd",
	})
	require.NoError(t, err)
	assert.Equal(t, "usr-43", result.User.ID)
	assert.Equal(t, 100, result.PasswordScore)
	assert.Equal(t, "Strong", result.PasswordStrength)
}

func TestLogoutDropsCacheEvenWhenBackendFails(t *testing.T) {
	token := signToken(t, "usr-42", auth.RoleUser, time.Hour)
	svc, store := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	session := testSession(token)
	require.NoError(t, store.Save(context.Background(), session))

	require.NoError(t, svc.Logout(context.Background(), session))

	_, err := store.Get(context.Background(), token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRestoreRefusesExpiredToken(t *testing.T) {
	expired := signToken(t, "usr-42", auth.RoleUser, -time.Minute)
	svc, store := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	// Cache entry still present, but the token inside it has expired.
	session := testSession(expired)
	require.NoError(t, store.Save(context.Background(), session))

	_, err := svc.Restore(context.Background(), expired)
	assert.Equal(t, stderrors.ErrCodeSessionExpired, stderrors.CodeOf(err))

	_, err = store.Get(context.Background(), expired)
	assert.ErrorIs(t, err, ErrSessionNotFound, "expired session is evicted on restore")
}

func TestRestoreValidToken(t *testing.T) {
	token := signToken(t, "usr-42", auth.RoleUser, time.Hour)
	svc, store := newAuthService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	require.NoError(t, store.Save(context.Background(), testSession(token)))

	session, err := svc.Restore(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "usr-42", session.UserID)
	assert.False(t, session.LastActivity.IsZero())
}
