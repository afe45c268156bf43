package colorset

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/swatch/internal/models"
)

func TestNewStateComputesAllRatios(t *testing.T) {
	state := NewState(models.DefaultColorSet)

	require.Equal(t, models.DefaultColorSet, state.Set())
	require.Equal(t, "7.63", state.AccentRatio)
	require.Equal(t, "16.10", state.HighRatio)
	require.Equal(t, "10.05", state.MediumRatio)
	require.Equal(t, "14.01", state.LowRatio)
}

func TestReduceEditContainerColor(t *testing.T) {
	prev := NewState(models.DefaultColorSet)

	next := Reduce(prev, EditContainerColor{Value: "#000000"})

	require.Equal(t, models.Color("#000000"), next.Container)
	for _, role := range models.OnRoles {
		require.Equal(t, prev.Get(role), next.Get(role), "role %s color", role)
		require.NotEqual(t, prev.Ratio(role), next.Ratio(role), "role %s ratio", role)
	}
	require.Equal(t, "2.75", next.AccentRatio)

	// prev is a value and stays untouched.
	require.Equal(t, models.Color("#ffffff"), prev.Container)
}

func TestReduceEditOnColor(t *testing.T) {
	prev := NewState(models.DefaultColorSet)

	next := Reduce(prev, EditOnColor{Role: models.RoleAccent, Value: "#ff0000"})

	require.Equal(t, models.Color("#ff0000"), next.Accent)
	require.Equal(t, "4.00", next.AccentRatio)
	require.Equal(t, prev.Container, next.Container)
	for _, role := range []models.Role{models.RoleHigh, models.RoleMedium, models.RoleLow} {
		require.Equal(t, prev.Get(role), next.Get(role), "role %s color", role)
		require.Equal(t, prev.Ratio(role), next.Ratio(role), "role %s ratio", role)
	}
}

func TestReduceRatiosFollowLatestPair(t *testing.T) {
	state := NewState(models.DefaultColorSet)
	state = Reduce(state, EditOnColor{Role: models.RoleLow, Value: "#000000"})
	state = Reduce(state, EditContainerColor{Value: "#000000"})

	require.Equal(t, "1.00", state.LowRatio)

	state = Reduce(state, EditOnColor{Role: models.RoleLow, Value: "#ffffff"})
	require.Equal(t, "21.00", state.LowRatio)
}

type bogusAction struct{}

func (bogusAction) isAction() {}

func TestReducePanicsOnUnknownAction(t *testing.T) {
	require.Panics(t, func() {
		Reduce(NewState(models.DefaultColorSet), bogusAction{})
	})
	require.Panics(t, func() {
		Reduce(NewState(models.DefaultColorSet), nil)
	})
}

func TestReducePanicsOnContainerAsOnColor(t *testing.T) {
	require.Panics(t, func() {
		Reduce(NewState(models.DefaultColorSet), EditOnColor{Role: models.RoleContainer, Value: "#000000"})
	})
	require.Panics(t, func() {
		Reduce(NewState(models.DefaultColorSet), EditOnColor{Role: "border", Value: "#000000"})
	})
}
