package model

// AnalyticsEvent is published to the events queue after a flow reaches its
// terminal state and delivered to the sink by a background consumer.
type AnalyticsEvent struct {
	UserID     string                 `json:"userId"`
	EventName  string                 `json:"eventName"`
	Properties map[string]interface{} `json:"properties"`
}
