package colorset

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/opencode-ai/swatch/internal/logging"
	"github.com/opencode-ai/swatch/internal/models"
)

// Change is emitted after every successful mutation so the host can fold the
// edit into its own collection of named sets.
type Change struct {
	Name  string       `json:"name"`
	Slot  models.Role  `json:"slot"`
	Value models.Color `json:"value"`
}

// Notifier receives change notifications. Delivery is synchronous and
// fire-and-forget.
type Notifier interface {
	OnColorChange(change Change)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(change Change)

// OnColorChange implements Notifier.
func (f NotifierFunc) OnColorChange(change Change) {
	f(change)
}

// Editor is one editing session over a named color set.
type Editor struct {
	id       string
	name     string
	state    State
	notifier Notifier
	logger   zerolog.Logger
}

// NewEditor starts a session for the named set. notifier may be nil.
func NewEditor(name string, set models.ColorSet, notifier Notifier) *Editor {
	id := uuid.New().String()
	return &Editor{
		id:       id,
		name:     name,
		state:    NewState(set),
		notifier: notifier,
		logger:   logging.Component("colorset").With().Str("session", id).Str("set", name).Logger(),
	}
}

// ID returns the session identifier.
func (e *Editor) ID() string {
	return e.id
}

// Name returns the name of the set being edited.
func (e *Editor) Name() string {
	return e.name
}

// State returns the current state.
func (e *Editor) State() State {
	return e.state
}

// Dispatch reduces action into the session state and notifies the host.
func (e *Editor) Dispatch(action Action) State {
	e.state = Reduce(e.state, action)

	change := Change{Name: e.name}
	switch a := action.(type) {
	case EditContainerColor:
		change.Slot, change.Value = models.RoleContainer, a.Value
	case EditOnColor:
		change.Slot, change.Value = a.Role, a.Value
	}

	e.logger.Debug().
		Str("slot", string(change.Slot)).
		Str("value", string(change.Value)).
		Msg("color edited")

	if e.notifier != nil {
		e.notifier.OnColorChange(change)
	}
	return e.state
}

// EditContainerColor sets the container color and recomputes every ratio.
func (e *Editor) EditContainerColor(value models.Color) State {
	return e.Dispatch(EditContainerColor{Value: value})
}

// EditOnColor sets one on-color and recomputes its ratio. The container has
// its own action and is rejected here along with unknown roles.
func (e *Editor) EditOnColor(role models.Role, value models.Color) (State, error) {
	if !role.IsOnRole() {
		return e.state, fmt.Errorf("%w: %q is not an on-color role", models.ErrUnknownRole, role)
	}
	return e.Dispatch(EditOnColor{Role: role, Value: value}), nil
}

// Edit routes a picker result for any role to the matching action.
func (e *Editor) Edit(role models.Role, value models.Color) (State, error) {
	if role == models.RoleContainer {
		return e.EditContainerColor(value), nil
	}
	return e.EditOnColor(role, value)
}
