package gateway

import (
	"context"

	"github.com/austcms/clubpay/internal/pkg/constants"
	"github.com/austcms/clubpay/internal/pkg/models"
	nsqpkg "github.com/austcms/clubpay/internal/pkg/nsq"
)

// EventPublisher publishes payment lifecycle events to NSQ
type EventPublisher struct {
	producer *nsqpkg.Producer
}

// NewEventPublisher creates a new NSQ-backed event publisher
func NewEventPublisher(producer *nsqpkg.Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishPaymentCompleted announces a committed payment to downstream consumers
func (p *EventPublisher) PublishPaymentCompleted(_ context.Context, event *models.PaymentCompletedEvent) error {
	return p.producer.Publish(constants.TopicPaymentCompleted, event)
}
