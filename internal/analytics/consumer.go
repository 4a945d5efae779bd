package analytics

import (
	"context"
	"encoding/json"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/CreatorKit/api-service/internal/mq"
	"github.com/sirupsen/logrus"
)

// StartConsumer drains the events queue and delivers to the sink. Delivery
// failures are logged and dropped, the sink is best-effort by contract.
func StartConsumer(conn *mq.Conn, tracker Tracker) {
	msgs, err := conn.Consume(EventsQueue)
	if err != nil {
		logrus.Fatalf("failed to start analytics consumer: %s", err.Error())
	}

	go func() {
		for msg := range msgs {
			var event model.AnalyticsEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				logrus.Errorf("failed to unmarshal analytics event: %s", err.Error())
				msg.Ack(false)
				continue
			}

			if err := tracker.Track(context.Background(), event); err != nil {
				logrus.Errorf("failed to deliver analytics event %s: %s", event.EventName, err.Error())
			}

			msg.Ack(false)
		}
	}()
}
