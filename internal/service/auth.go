package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"poshan-board/internal/access"
	"poshan-board/internal/domain"
	"poshan-board/internal/session"
)

// LoginResult handed to the view layer after a successful login.
type LoginResult struct {
	Token    string      `json:"token"`
	User     domain.User `json:"user"`
	Features []string    `json:"features"`
	HomePath string      `json:"homePath"`
}

// Login proxies credentials to the remote auth service and creates a local
// session on success.
func (c *Controller) Login(ctx context.Context, username, password, employeeID string) (*LoginResult, error) {
	user, err := c.remote.Login(ctx, username, password, employeeID)
	if err != nil {
		c.logger.Warn("Login failed",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, err
	}
	if !user.Active {
		c.logger.Warn("Login rejected: account deactivated",
			zap.String("user_id", user.ID),
		)
		return nil, fmt.Errorf("account is deactivated")
	}
	if !domain.KnownRole(string(user.Role)) {
		// Unknown roles get an empty menu rather than an error; access
		// control treats them as having no permissions.
		c.logger.Warn("Login with unknown role",
			zap.String("user_id", user.ID),
			zap.String("role", string(user.Role)),
		)
	}

	token, err := c.sessions.Login(ctx, *user)
	if err != nil {
		return nil, err
	}
	c.idle.Track(token)

	c.logger.Info("User login successful",
		zap.String("user_id", user.ID),
		zap.String("employee_id", user.EmployeeID),
		zap.String("role", string(user.Role)),
	)

	return &LoginResult{
		Token:    token,
		User:     *user,
		Features: access.Features(user.Role),
		HomePath: "/dashboard",
	}, nil
}

// Logout clears the session and stops idle tracking.
func (c *Controller) Logout(ctx context.Context, token string) error {
	c.idle.Forget(token)
	return c.sessions.Logout(ctx, token)
}

// CurrentSession resolves a token, applying the 24-hour hard expiry. A
// valid session the monitor has never seen (restored from Redis after a
// restart) gets its idle timer started; already-watched sessions are left
// alone so resolution never counts as activity.
func (c *Controller) CurrentSession(ctx context.Context, token string) (*session.Session, error) {
	sess, err := c.sessions.Current(ctx, token)
	if err != nil {
		c.idle.Forget(token)
		return nil, err
	}
	c.idle.Track(token)
	return sess, nil
}
