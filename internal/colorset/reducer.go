package colorset

import (
	"fmt"

	"github.com/opencode-ai/swatch/internal/contrast"
	"github.com/opencode-ai/swatch/internal/models"
)

// Action is a mutation applied to a State by Reduce.
type Action interface {
	isAction()
}

// EditContainerColor replaces the container color.
type EditContainerColor struct {
	Value models.Color
}

// EditOnColor replaces one of the four on-colors.
type EditOnColor struct {
	Role  models.Role
	Value models.Color
}

func (EditContainerColor) isAction() {}
func (EditOnColor) isAction()        {}

// Reduce applies action to prev and returns the new state. prev is not
// modified. Unknown actions and EditOnColor with a role that is not an
// on-role are integration bugs and panic.
func Reduce(prev State, action Action) State {
	switch a := action.(type) {
	case EditContainerColor:
		return editContainerColor(prev, a)
	case EditOnColor:
		return editOnColor(prev, a)
	default:
		panic(fmt.Sprintf("colorset: unhandled action %T", action))
	}
}

// editContainerColor recomputes all four ratios against the new container.
func editContainerColor(prev State, action EditContainerColor) State {
	next := prev
	next.Container = action.Value
	for _, role := range models.OnRoles {
		next = next.withRatio(role, contrast.Ratio(action.Value, prev.Get(role)))
	}
	return next
}

// editOnColor recomputes only the edited role's ratio.
func editOnColor(prev State, action EditOnColor) State {
	if !action.Role.IsOnRole() {
		panic(fmt.Sprintf("colorset: %q is not an on-color role", action.Role))
	}
	next := prev
	next.ColorSet = prev.With(action.Role, action.Value)
	return next.withRatio(action.Role, contrast.Ratio(prev.Container, action.Value))
}
