package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"grievance-desk/internal/common/auth"
	stderrors "grievance-desk/internal/common/errors"
	"grievance-desk/internal/common/logger"
	"grievance-desk/internal/models"
	"grievance-desk/internal/password"
)

// AuthService wraps the authentication endpoints and maintains the session
// cache. Password hashing and account state live server-side; the portal
// forwards credentials over the transport and caches the issued session.
type AuthService struct {
	client   *Client
	verifier *auth.Verifier
	store    *SessionStore
	logger   logger.Logger
}

func NewAuthService(client *Client, verifier *auth.Verifier, store *SessionStore, log logger.Logger) *AuthService {
	return &AuthService{
		client:   client,
		verifier: verifier,
		store:    store,
		logger:   log.WithFields(map[string]interface{}{"service": "auth"}),
	}
}

type loginResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// RegisterInput is the sign-up payload.
type RegisterInput struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// RegisterResult echoes the created account plus the client-side password
// strength so the view can render the meter alongside the outcome.
type RegisterResult struct {
	User             models.User
	PasswordScore    int
	PasswordStrength string
}

// Login authenticates, verifies the issued token, and caches the session.
func (s *AuthService) Login(ctx context.Context, email, pw string) (*models.Session, error) {
	var resp loginResponse
	err := s.client.post(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": pw,
	}, &resp, "auth", "login")
	if err != nil {
		if httpErr, ok := err.(*HTTPError); ok {
			return nil, stderrors.NewUnauthorizedError(httpErr.Error())
		}
		return nil, err
	}

	claims, err := s.verifier.Verify(resp.Token)
	if err != nil {
		return nil, stderrors.NewUnauthorizedError("backend issued an unusable token: " + err.Error())
	}

	session := &models.Session{
		ID:           uuid.NewString(),
		UserID:       claims.UserID,
		Token:        resp.Token,
		Role:         claims.Role,
		CreatedAt:    time.Now(),
		ExpiresAt:    claims.ExpiresAt,
		LastActivity: time.Now(),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", map[string]interface{}{
		"userId": claims.UserID,
		"role":   claims.Role,
	})
	return session, nil
}

// Register creates an account. The password strength score is computed
// locally for display only; the backend applies its own policy.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegisterResult, error) {
	score := password.Score(input.Password)

	var user models.User
	err := s.client.post(ctx, "/api/auth/register", input, &user, "auth", "register")
	if err != nil {
		if httpErr, ok := err.(*HTTPError); ok {
			return nil, stderrors.NewUnauthorizedError(httpErr.Error())
		}
		return nil, err
	}

	return &RegisterResult{
		User:             user,
		PasswordScore:    score,
		PasswordStrength: password.Classify(score),
	}, nil
}

// Logout revokes the backend session and drops the cached one. The cache is
// cleared even when the backend call fails.
func (s *AuthService) Logout(ctx context.Context, session *models.Session) error {
	err := s.client.WithSession(session).post(ctx, "/api/auth/logout", nil, nil, "auth", "logout")
	if dropErr := s.store.Delete(ctx, session.Token); dropErr != nil {
		s.logger.Warn("failed to drop cached session", map[string]interface{}{
			"error": dropErr.Error(),
		})
	}
	if err != nil {
		if _, ok := err.(*HTTPError); ok {
			// Server already considers the session gone; treat as success.
			return nil
		}
		return err
	}
	return nil
}

// Restore resolves a cached session by token, refusing expired tokens.
func (s *AuthService) Restore(ctx context.Context, token string) (*models.Session, error) {
	session, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if _, err := s.verifier.Verify(session.Token); err != nil {
		_ = s.store.Delete(ctx, token)
		return nil, stderrors.NewSessionExpiredError(session.UserID)
	}
	session.UpdateActivity()
	_ = s.store.Save(ctx, session)
	return session, nil
}
