package palette

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/models"
)

func TestReduceNewSetKeepsOrder(t *testing.T) {
	var c Collection
	c = Reduce(c, NewSet{Name: "brand", Set: models.DefaultColorSet})
	c = Reduce(c, NewSet{Name: "dark", Set: models.DefaultColorSet})

	require.Equal(t, []string{"brand", "dark"}, c.Names())
	require.Equal(t, 2, c.Len())
}

func TestReduceEditSetIsImmutable(t *testing.T) {
	prev := Reduce(Collection{}, NewSet{Name: "brand", Set: models.DefaultColorSet})
	next := Reduce(prev, EditSet{Name: "brand", Slot: models.RoleAccent, Value: "#ff0000"})

	before, _ := prev.Get("brand")
	after, _ := next.Get("brand")
	require.Equal(t, models.Color("#6200ee"), before.Accent)
	require.Equal(t, models.Color("#ff0000"), after.Accent)
	require.Equal(t, []string{"brand"}, next.Names())
}

type unknownAction struct{}

func (unknownAction) isAction() {}

func TestReducePanicsOnUnknownAction(t *testing.T) {
	require.Panics(t, func() {
		Reduce(Collection{}, unknownAction{})
	})
}

func TestCanAdd(t *testing.T) {
	c := Reduce(Collection{}, NewSet{Name: "brand", Set: models.DefaultColorSet})

	require.True(t, c.CanAdd("dark"))
	require.False(t, c.CanAdd(""))
	require.False(t, c.CanAdd("   "))
	require.False(t, c.CanAdd("brand"))
}

func TestNamesReturnsCopy(t *testing.T) {
	c := Reduce(Collection{}, NewSet{Name: "brand", Set: models.DefaultColorSet})
	names := c.Names()
	names[0] = "mutated"
	require.Equal(t, []string{"brand"}, c.Names())
}

func TestCheckNameErrors(t *testing.T) {
	c := Reduce(Collection{}, NewSet{Name: "brand", Set: models.DefaultColorSet})
	require.True(t, errors.Is(c.checkName(""), ErrEmptyName))
	require.True(t, errors.Is(c.checkName("brand"), ErrDuplicateName))
}
