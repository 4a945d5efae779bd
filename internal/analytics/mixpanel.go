package analytics

import (
	"context"

	"github.com/CreatorKit/api-service/internal/model"
	"github.com/mixpanel/mixpanel-go"
)

type MixpanelTracker struct {
	client *mixpanel.ApiClient
}

func NewMixpanelTracker(token string) *MixpanelTracker {
	return &MixpanelTracker{client: mixpanel.NewApiClient(token)}
}

func (t *MixpanelTracker) Track(ctx context.Context, event model.AnalyticsEvent) error {
	properties := event.Properties
	if properties == nil {
		properties = map[string]interface{}{}
	}

	e := t.client.NewEvent(event.EventName, event.UserID, properties)
	return t.client.Track(ctx, []*mixpanel.Event{e})
}
