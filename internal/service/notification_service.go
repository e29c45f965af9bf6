package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/firmdesk/practice-service/internal/config"
	"github.com/firmdesk/practice-service/internal/events"
)

// NotificationService handles emitting notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventAccountRegistered, n.handleAccountRegistered)
	n.dispatcher.Subscribe(events.EventAccountApproved, n.handleAccountResolved(events.SeveritySuccess))
	n.dispatcher.Subscribe(events.EventAccountRejected, n.handleAccountResolved(events.SeverityError))
	n.dispatcher.Subscribe(events.EventDocumentVerified, n.handleDocumentVerified)
	n.dispatcher.Subscribe(events.EventDocumentVerificationFailed, n.handleVerificationFailed)
	n.dispatcher.Subscribe(events.EventInvoiceIssued, n.handleInvoiceIssued)
	n.dispatcher.Subscribe(events.EventCalendarEventScheduled, n.handleEventScheduled)
	n.dispatcher.Subscribe(events.EventTimesheetSubmitted, n.handleTimesheetSubmitted)
	n.dispatcher.Subscribe(events.EventTimesheetResolved, n.handleTimesheetResolved)
}

func (n *NotificationService) handleAccountRegistered(ctx context.Context, event events.Event) error {
	n.logger.Info("AccountRegistered", zap.String("account_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleAccountResolved(severity events.Severity) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logger.Info("AccountResolved",
			zap.String("account_id", event.EntityID),
			zap.String("severity", string(severity)),
			zap.Any("payload", event.Payload))
		n.sendEmailNotificationStub(ctx, event)
		return nil
	}
}

func (n *NotificationService) handleDocumentVerified(ctx context.Context, event events.Event) error {
	n.logger.Info("DocumentVerified", zap.String("document_id", event.EntityID), zap.Any("payload", event.Payload))
	return nil
}

// handleVerificationFailed surfaces failed verifications loudly; the
// discrepancy list rides along in the payload.
func (n *NotificationService) handleVerificationFailed(ctx context.Context, event events.Event) error {
	n.logger.Warn("DocumentVerificationFailed",
		zap.String("document_id", event.EntityID),
		zap.String("severity", string(events.SeverityError)),
		zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleInvoiceIssued(ctx context.Context, event events.Event) error {
	n.logger.Info("InvoiceIssued", zap.String("invoice_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleEventScheduled(ctx context.Context, event events.Event) error {
	n.logger.Info("CalendarEventScheduled", zap.String("event_id", event.EntityID), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleTimesheetSubmitted(ctx context.Context, event events.Event) error {
	n.logger.Info("TimesheetSubmitted", zap.String("timesheet_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) handleTimesheetResolved(ctx context.Context, event events.Event) error {
	n.logger.Info("TimesheetResolved", zap.String("timesheet_id", event.EntityID), zap.Any("payload", event.Payload))
	n.sendEmailNotificationStub(ctx, event)
	return nil
}

func (n *NotificationService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.EmailFrom) == "" {
		return
	}
	n.logger.Debug("sendEmailNotificationStub",
		zap.String("from", n.cfg.EmailFrom),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}

func (n *NotificationService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(n.cfg.WebhookURL) == "" {
		return
	}
	n.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", n.cfg.WebhookURL),
		zap.String("entity_id", event.EntityID),
		zap.String("event_type", string(event.Type)))
}
