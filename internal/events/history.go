package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/opencode-ai/swatch/internal/models"
)

// DefaultHistorySize is the number of events the playground keeps.
const DefaultHistorySize = 8

// History is an in-memory Repository holding the last N events.
type History struct {
	size   int
	events []models.Event
	next   int
	full   bool
	now    func() time.Time
}

// NewHistory returns a history sized for the provided event count.
func NewHistory(size int) *History {
	if size <= 0 {
		size = 1
	}
	return &History{
		size:   size,
		events: make([]models.Event, size),
		now:    time.Now,
	}
}

// Create implements Repository. It assigns an ID and timestamp when missing.
func (h *History) Create(ctx context.Context, event *models.Event) error {
	if err := event.Validate(); err != nil {
		return err
	}
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = h.now()
	}

	h.events[h.next] = *event
	h.next++
	if h.next >= h.size {
		h.next = 0
		h.full = true
	}
	return nil
}

// Snapshot returns the buffered events in chronological order.
func (h *History) Snapshot() []models.Event {
	if h == nil {
		return nil
	}
	if !h.full {
		out := make([]models.Event, h.next)
		copy(out, h.events[:h.next])
		return out
	}

	out := make([]models.Event, h.size)
	copy(out, h.events[h.next:])
	copy(out[h.size-h.next:], h.events[:h.next])
	return out
}
