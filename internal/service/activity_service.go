package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/ticketflow/ticketflow/internal/events"
)

// ActivityService writes an activity log entry for every state event.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger) *ActivityService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ActivityService{
		dispatcher: dispatcher,
		logger:     logger.Named("activity"),
	}
}

// RegisterHandlers subscribes to every state event.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.SubscribeAll(a.record)
}

func (a *ActivityService) record(_ context.Context, event events.Event) error {
	switch payload := event.Payload.(type) {
	case events.RouteChangedPayload:
		a.logger.Debug("RouteChanged",
			zap.String("from", string(payload.From)),
			zap.String("to", string(payload.To)))
	case events.AuthChangedPayload:
		a.logger.Info("AuthChanged", zap.Bool("authenticated", payload.Authenticated))
	default:
		a.recordTicketChange(event)
	}
	return nil
}

func (a *ActivityService) recordTicketChange(event events.Event) {
	if !event.Applied {
		a.logger.Debug("TicketChangeIgnored",
			zap.String("event_type", string(event.Type)),
			zap.String("ticket_id", event.TicketID))
		return
	}
	a.logger.Info("TicketChanged",
		zap.String("event_type", string(event.Type)),
		zap.String("ticket_id", event.TicketID),
		zap.Any("payload", event.Payload))
}
