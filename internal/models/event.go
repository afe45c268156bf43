package models

import (
	"strings"
	"time"
)

// EventType categorizes playground events.
type EventType string

const (
	EventTypeSetCreated      EventType = "set.created"
	EventTypeSetColorChanged EventType = "set.color_changed"
)

// Event represents one entry in the in-memory edit history.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// SetName is the color set the event relates to.
	SetName string `json:"set_name"`

	// Slot is the role that changed. Empty for set.created.
	Slot Role `json:"slot,omitempty"`

	// Value is the new color. Empty for set.created.
	Value Color `json:"value,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	validation := &ValidationErrors{}
	if strings.TrimSpace(string(e.Type)) == "" {
		validation.AddMessage("type", "event type is required")
	}
	if strings.TrimSpace(e.SetName) == "" {
		validation.AddMessage("set_name", "set_name is required")
	}
	if e.Type == EventTypeSetColorChanged {
		if e.Slot == "" {
			validation.AddMessage("slot", "slot is required")
		}
		if strings.TrimSpace(string(e.Value)) == "" {
			validation.AddMessage("value", "value is required")
		}
	}
	return validation.Err()
}
