// Package palette holds the host's collection of named color sets.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/opencode-ai/swatch/internal/models"
)

// Collection errors.
var (
	ErrEmptyName     = errors.New("color set name is required")
	ErrDuplicateName = errors.New("color set already exists")
	ErrSetNotFound   = errors.New("color set not found")
)

// Collection is an immutable, insertion-ordered mapping of set names to
// color sets.
type Collection struct {
	names []string
	sets  map[string]models.ColorSet
}

// Action is a mutation applied to a Collection by Reduce.
type Action interface {
	isAction()
}

// NewSet adds a named set.
type NewSet struct {
	Name string
	Set  models.ColorSet
}

// EditSet replaces one slot of an existing set.
type EditSet struct {
	Name  string
	Slot  models.Role
	Value models.Color
}

func (NewSet) isAction()  {}
func (EditSet) isAction() {}

// Reduce applies action to prev and returns the new collection. Unknown
// actions panic.
func Reduce(prev Collection, action Action) Collection {
	switch a := action.(type) {
	case NewSet:
		return prev.withSet(a.Name, a.Set)
	case EditSet:
		return prev.withSet(a.Name, prev.sets[a.Name].With(a.Slot, a.Value))
	default:
		panic(fmt.Sprintf("palette: unhandled action %T", action))
	}
}

func (c Collection) withSet(name string, set models.ColorSet) Collection {
	next := Collection{
		names: c.names,
		sets:  make(map[string]models.ColorSet, len(c.sets)+1),
	}
	for key, value := range c.sets {
		next.sets[key] = value
	}
	if _, exists := c.sets[name]; !exists {
		next.names = append(append([]string(nil), c.names...), name)
	}
	next.sets[name] = set
	return next
}

// Names returns set names in insertion order.
func (c Collection) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of sets.
func (c Collection) Len() int {
	return len(c.names)
}

// Get returns the named set.
func (c Collection) Get(name string) (models.ColorSet, bool) {
	set, ok := c.sets[name]
	return set, ok
}

// CanAdd reports whether name is non-blank and not yet taken.
func (c Collection) CanAdd(name string) bool {
	return c.checkName(name) == nil
}

func (c Collection) checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if _, exists := c.sets[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	return nil
}
