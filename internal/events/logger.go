// Package events records the edit history of the playground.
package events

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/opencode-ai/swatch/internal/colorset"
	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogSetCreated records the creation of a color set.
func LogSetCreated(ctx context.Context, repo Repository, name string) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if name == "" {
		return fmt.Errorf("set name is required")
	}

	return repo.Create(ctx, &models.Event{
		Type:    models.EventTypeSetCreated,
		SetName: name,
	})
}

// LogColorChanged records a change notification emitted by an editor.
func LogColorChanged(ctx context.Context, repo Repository, change colorset.Change) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}

	event := &models.Event{
		Type:    models.EventTypeSetColorChanged,
		SetName: change.Name,
		Slot:    change.Slot,
		Value:   change.Value,
	}
	if err := event.Validate(); err != nil {
		return fmt.Errorf("invalid color change: %w", err)
	}

	return repo.Create(ctx, event)
}

// Recorder adapts a Repository to colorset.Notifier.
type Recorder struct {
	repo   Repository
	logger zerolog.Logger
}

// NewRecorder returns a notifier writing every change to repo.
func NewRecorder(repo Repository) *Recorder {
	return &Recorder{repo: repo, logger: logging.Component("events")}
}

// OnColorChange implements colorset.Notifier.
func (r *Recorder) OnColorChange(change colorset.Change) {
	if err := LogColorChanged(context.Background(), r.repo, change); err != nil {
		r.logger.Warn().Err(err).Str("set", change.Name).Msg("failed to record color change")
	}
}

// OnSetCreated records a new set. It matches palette.Store's OnCreate hook.
func (r *Recorder) OnSetCreated(name string) {
	if err := LogSetCreated(context.Background(), r.repo, name); err != nil {
		r.logger.Warn().Err(err).Str("set", name).Msg("failed to record set creation")
	}
}
