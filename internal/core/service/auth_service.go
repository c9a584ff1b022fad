package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/niverapp/event-system/internal/core/domain"
	"github.com/niverapp/event-system/internal/core/ports"
	"github.com/niverapp/event-system/internal/metrics"
)

// SessionStore abstracts the server-side session registry (Redis). A token is
// only honoured while its session id is still present in the store, so the
// server, not the client, owns expiry and revocation.
type SessionStore interface {
	Save(ctx context.Context, sid, username string, ttl time.Duration) error
	Revoke(ctx context.Context, sid string) error
}

// AuthService implements login, logout, and user registration.
type AuthService struct {
	repo      ports.UserRepository
	sessions  SessionStore
	activity  ports.ActivityRecorder
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	sessions SessionStore,
	activity ports.ActivityRecorder,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		sessions:  sessions,
		activity:  activity,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login verifies the password hash, records the login timestamp, and issues a
// session token. Unknown usernames and wrong passwords are indistinguishable
// to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	if err := s.repo.UpdateLastLogin(ctx, username); err != nil {
		s.logger.Warn().Err(err).Str("username", username).Msg("failed to update last login")
	}

	sid := newSessionID()
	token, err := s.generateToken(user, sid)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, sid, username, s.tokenTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.activity.Enqueue(ports.ActivityInput{
		Actor:     username,
		Action:    domain.ActionLogin,
		Timestamp: time.Now().UTC(),
	})
	s.logger.Info().Str("username", username).Str("role", user.Role).Msg("login successful")

	return &ports.LoginResult{Token: token, Username: user.Username, Role: user.Role}, nil
}

func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, sid)
}

func (s *AuthService) Register(ctx context.Context, username, password, role string) (*domain.User, error) {
	if username == "" || password == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	})
}

// SeedAdmin makes sure the "admin" user exists, creating it with the given
// password when absent. Called once at startup, before the listener opens, so
// no request can race the bootstrap.
func (s *AuthService) SeedAdmin(ctx context.Context, password string) error {
	_, err := s.repo.FindByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed admin: %w", err)
	}

	if _, err := s.Register(ctx, "admin", password, domain.RoleAdmin); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	s.logger.Info().Msg("seeded default admin user")
	return nil
}

func (s *AuthService) generateToken(user *domain.User, sid string) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"role":     user.Role,
		"sid":      sid,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newSessionID returns a random 16-byte hex session identifier.
func newSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%032x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
