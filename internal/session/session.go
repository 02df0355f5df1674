package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"poshan-board/internal/domain"
	"poshan-board/internal/store"
)

// ErrNotLoggedIn is the logged-out state. Expiry is silent: an expired
// session surfaces as this same error, never as a distinct failure.
var ErrNotLoggedIn = errors.New("not logged in")

// Session the identity loaded for a request.
type Session struct {
	Token     string
	User      domain.User
	Role      domain.Role
	LoginTime time.Time
}

// Store persists sessions in a KV backend. Exactly three keys are written
// per session token: the user JSON, the role string, and the login timestamp
// in epoch milliseconds.
type Store struct {
	kv     store.KV
	maxAge time.Duration
	logger *zap.Logger

	now func() time.Time // test hook
}

func NewStore(kv store.KV, maxAge time.Duration, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		maxAge: maxAge,
		logger: logger,
		now:    time.Now,
	}
}

func userKey(token string) string  { return "session:" + token + ":user" }
func roleKey(token string) string  { return "session:" + token + ":role" }
func loginKey(token string) string { return "session:" + token + ":login_time" }

// Login persists identity, role and login timestamp and returns the session
// token handed to the view layer.
func (s *Store) Login(ctx context.Context, user domain.User) (string, error) {
	token := uuid.NewString()

	userJSON, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("failed to encode session user: %w", err)
	}

	loginTime := s.now()
	millis := strconv.FormatInt(loginTime.UnixMilli(), 10)

	if err := s.kv.Set(ctx, userKey(token), string(userJSON), s.maxAge); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}
	if err := s.kv.Set(ctx, roleKey(token), string(user.Role), s.maxAge); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}
	if err := s.kv.Set(ctx, loginKey(token), millis, s.maxAge); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	s.logger.Info("Session created",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
		zap.Time("login_time", loginTime),
	)
	return token, nil
}

// Current loads the session for a token. A session whose login timestamp is
// older than the max age is discarded (keys cleared) and treated as logged
// out; no error beyond ErrNotLoggedIn.
func (s *Store) Current(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrNotLoggedIn
	}

	millis, err := s.kv.Get(ctx, loginKey(token))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	ms, err := strconv.ParseInt(millis, 10, 64)
	if err != nil {
		// Corrupt timestamp: treat as logged out and clear the leftovers.
		_ = s.clear(ctx, token)
		return nil, ErrNotLoggedIn
	}
	loginTime := time.UnixMilli(ms)

	if s.now().Sub(loginTime) > s.maxAge {
		if err := s.clear(ctx, token); err != nil {
			s.logger.Warn("Failed to clear expired session", zap.Error(err))
		}
		return nil, ErrNotLoggedIn
	}

	userJSON, err := s.kv.Get(ctx, userKey(token))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	var user domain.User
	if err := json.Unmarshal([]byte(userJSON), &user); err != nil {
		_ = s.clear(ctx, token)
		return nil, ErrNotLoggedIn
	}

	role, err := s.kv.Get(ctx, roleKey(token))
	if err != nil {
		if errors.Is(err, store.ErrMiss) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &Session{
		Token:     token,
		User:      user,
		Role:      domain.Role(role),
		LoginTime: loginTime,
	}, nil
}

// Logout clears the stored identity.
func (s *Store) Logout(ctx context.Context, token string) error {
	return s.clear(ctx, token)
}

func (s *Store) clear(ctx context.Context, token string) error {
	return s.kv.Del(ctx, userKey(token), roleKey(token), loginKey(token))
}
