package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/younivent/platform/internal/core/domain"
	"github.com/younivent/platform/internal/core/ports"
)

// sessionKeyPrefix matches the "younivent_user" key the web client uses in
// local storage.
const sessionKeyPrefix = "younivent_user"

// AuthService implements login, logout and session resumption over a static
// user table and a KV session store.
type AuthService struct {
	users      ports.UserRepository
	kv         ports.KVStore
	clock      ports.Clock
	log        zerolog.Logger
	jwtSecret  string
	tokenTTL   time.Duration
	loginDelay time.Duration
}

func NewAuthService(users ports.UserRepository, kv ports.KVStore, clock ports.Clock, log zerolog.Logger, jwtSecret string, tokenTTL, loginDelay time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		kv:         kv,
		clock:      clock,
		log:        log,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		loginDelay: loginDelay,
	}
}

// Login authenticates by normalised email and password. The configurable
// delay simulates a slow upstream for demo purposes.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.loginDelay > 0 {
		t := time.NewTimer(s.loginDelay)
		select {
		case <-ctx.Done():
			t.Stop()
			return "", nil, ctx.Err()
		case <-t.C:
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := s.clock.Now()
	user.LastLogin = &now

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	if err := s.persist(ctx, user); err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Msg("login succeeded")
	return token, user, nil
}

// Logout discards the persisted identity.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.kv.Delete(ctx, sessionKey(userID))
}

// Resume re-hydrates the persisted identity. The stored record is accepted
// only if the account still resolves in the user table; anything stale or
// unparsable is discarded silently.
func (s *AuthService) Resume(ctx context.Context, userID string) (*domain.User, error) {
	raw, err := s.kv.Get(ctx, sessionKey(userID))
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	var stored domain.User
	if err := json.Unmarshal(raw, &stored); err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("corrupt stored session, discarding")
		_ = s.kv.Delete(ctx, sessionKey(userID))
		return nil, domain.ErrUserNotFound
	}

	current, err := s.users.FindByEmail(ctx, stored.Email)
	if err != nil || current.ID != stored.ID {
		_ = s.kv.Delete(ctx, sessionKey(userID))
		return nil, domain.ErrUserNotFound
	}

	current.LastLogin = stored.LastLogin
	return current, nil
}

func (s *AuthService) persist(ctx context.Context, user *domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, sessionKey(user.ID), raw, s.tokenTTL)
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":    user.ID,
		"email":  user.Email,
		"role":   string(user.Role),
		"tenant": user.TenantID,
		"exp":    s.clock.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func sessionKey(userID string) string {
	return sessionKeyPrefix + ":" + userID
}
