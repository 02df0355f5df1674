package service

import (
	"context"

	"go.uber.org/zap"

	"poshan-board/internal/alerts"
	"poshan-board/internal/domain"
)

// notifyRole creates a role-targeted notification through the remote
// service. Best effort: a failed notification is logged, never fails the
// command that triggered it.
func (c *Controller) notifyRole(ctx context.Context, role domain.Role, title, message, kind, entityID string) {
	n := domain.Notification{
		Role:     role,
		Title:    title,
		Message:  message,
		Kind:     kind,
		EntityID: entityID,
	}
	if err := c.remote.CreateNotification(ctx, n); err != nil {
		c.logger.Warn("Failed to create notification",
			zap.String("role", string(role)),
			zap.String("title", title),
			zap.Error(err),
		)
	}
}

// publishAlert pushes a critical event to the MQTT channel. Best effort.
func (c *Controller) publishAlert(alert alerts.Alert) {
	if err := c.alerts.Publish(alert); err != nil {
		c.logger.Warn("Failed to publish alert",
			zap.String("kind", alert.Kind),
			zap.String("entity_id", alert.EntityID),
			zap.Error(err),
		)
	}
}
