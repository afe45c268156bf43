package events

import (
	"context"
	"testing"

	"github.com/opencode-ai/swatch/internal/colorset"
	"github.com/opencode-ai/swatch/internal/models"
)

type fakeRepo struct {
	last  *models.Event
	count int
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	r.last = event
	r.count++
	return nil
}

func TestLogSetCreated(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogSetCreated(context.Background(), repo, "brand"); err != nil {
		t.Fatalf("LogSetCreated failed: %v", err)
	}

	if repo.last == nil {
		t.Fatal("expected event to be created")
	}
	if repo.last.Type != models.EventTypeSetCreated {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
	if repo.last.SetName != "brand" {
		t.Fatalf("unexpected set name: %q", repo.last.SetName)
	}
}

func TestLogSetCreatedRequiresName(t *testing.T) {
	if err := LogSetCreated(context.Background(), &fakeRepo{}, ""); err == nil {
		t.Fatal("expected error for empty set name")
	}
	if err := LogSetCreated(context.Background(), nil, "brand"); err == nil {
		t.Fatal("expected error for nil repository")
	}
}

func TestLogColorChanged(t *testing.T) {
	repo := &fakeRepo{}
	change := colorset.Change{Name: "brand", Slot: models.RoleAccent, Value: "#ff0000"}

	if err := LogColorChanged(context.Background(), repo, change); err != nil {
		t.Fatalf("LogColorChanged failed: %v", err)
	}

	if repo.last.Type != models.EventTypeSetColorChanged {
		t.Fatalf("unexpected event type: %q", repo.last.Type)
	}
	if repo.last.Slot != models.RoleAccent || repo.last.Value != "#ff0000" {
		t.Fatalf("unexpected slot/value: %q %q", repo.last.Slot, repo.last.Value)
	}
}

func TestLogColorChangedRejectsIncompleteChange(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogColorChanged(context.Background(), repo, colorset.Change{Name: "brand"}); err == nil {
		t.Fatal("expected error for change without slot")
	}
	if repo.count != 0 {
		t.Fatalf("expected no events, got %d", repo.count)
	}
}
