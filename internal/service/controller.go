package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"poshan-board/internal/alerts"
	"poshan-board/internal/gateway"
	"poshan-board/internal/session"
)

// Controller owns all dashboard state: the remote gateway, the session
// store, the idle monitor and the alert publisher. Every mutation the view
// layer can trigger goes through a command method on this struct; there are
// no ambient setters.
type Controller struct {
	remote   *gateway.Client
	sessions *session.Store
	idle     *session.Monitor
	alerts   alerts.Publisher
	logger   *zap.Logger

	now func() time.Time // test hook
}

func NewController(remote *gateway.Client, sessions *session.Store, idle *session.Monitor, publisher alerts.Publisher, logger *zap.Logger) *Controller {
	c := &Controller{
		remote:   remote,
		sessions: sessions,
		idle:     idle,
		alerts:   publisher,
		logger:   logger,
		now:      time.Now,
	}
	// Idle expiry behaves exactly like logout: identity cleared, no error.
	idle.SetExpireFunc(func(token string) {
		if err := sessions.Logout(context.Background(), token); err != nil {
			logger.Warn("Failed to clear idle session", zap.Error(err))
		}
	})
	return c
}

// Remote exposes the gateway for plain list/create/update passthrough
// handlers that add no workflow logic of their own.
func (c *Controller) Remote() *gateway.Client { return c.remote }

// Sessions exposes the session store for middleware.
func (c *Controller) Sessions() *session.Store { return c.sessions }

// Idle exposes the inactivity monitor for middleware.
func (c *Controller) Idle() *session.Monitor { return c.idle }

func (c *Controller) today() string {
	return c.now().Format("2006-01-02")
}
