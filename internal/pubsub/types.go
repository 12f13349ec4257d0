package pubsub

import "cloud.google.com/go/pubsub"

type client struct {
	client *pubsub.Client
}

// disabled is used when no Google Cloud project is configured.
type disabled struct{}

// EventType represents the type of event/message sent via pubsub.
type EventType string

const (
	EventOverlayUpdated EventType = "overlay-updated"
)
