package worker

import (
	"go.uber.org/zap"

	"github.com/firmdesk/practice-service/internal/service"
)

// StartNotificationWorker wires the notification service into the event
// dispatcher at startup so account, document, billing, calendar, and
// timesheet events reach the notification sinks. A nil service disables
// notifications entirely.
func StartNotificationWorker(notifications *service.NotificationService, logger *zap.Logger) {
	if notifications == nil {
		logger.Warn("notification service not configured; domain events will not be delivered")
		return
	}
	notifications.RegisterHandlers()
	logger.Info("notification handlers registered")
}
