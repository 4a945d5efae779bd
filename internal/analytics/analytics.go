package analytics

import (
	"context"
	"encoding/json"
	"time"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/CreatorKit/api-service/internal/mq"
	"go.uber.org/zap"
)

const EventsQueue = "analytics-events"

// Publisher hands an event off for delivery. Implementations must never
// block the caller and must swallow delivery failures.
type Publisher interface {
	Publish(event model.AnalyticsEvent)
}

// Tracker delivers events to the analytics sink.
type Tracker interface {
	Track(ctx context.Context, event model.AnalyticsEvent) error
}

type MQPublisher struct {
	mq     *mq.Conn
	logger *zap.Logger
}

func NewMQPublisher(conn *mq.Conn, logger *zap.Logger) *MQPublisher {
	return &MQPublisher{mq: conn, logger: logger}
}

func (p *MQPublisher) Publish(event model.AnalyticsEvent) {
	go func() {
		body, err := json.Marshal(event)
		if err != nil {
			p.logger.Sugar().Errorf("failed to marshal analytics event %s: %s", event.EventName, err.Error())
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()

		if err := p.mq.Publish(ctx, EventsQueue, body); err != nil {
			p.logger.Sugar().Warnf("failed to publish analytics event %s: %s", event.EventName, err.Error())
		}
	}()
}
