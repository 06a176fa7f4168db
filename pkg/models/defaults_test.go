package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAutomationState_Defaults(t *testing.T) {
	state := NewAutomationState("profile-1")

	assert.Equal(t, "profile-1", state.ProfileID)
	assert.True(t, state.IsGlobalActive)
	assert.Len(t, state.BestSellers, 4)
	assert.Empty(t, state.Targets)

	assert.Equal(t, []int{100, 100, 82, 116}, []int{
		state.BestSellers[0].Delay,
		state.BestSellers[1].Delay,
		state.BestSellers[2].Delay,
		state.BestSellers[3].Delay,
	})

	rm := state.Runemaker
	assert.Nil(t, rm.PotionHotkey)
	assert.Equal(t, DefaultSpellHotkey, rm.SpellHotkey)
	assert.Equal(t, DefaultPauseHotkey, rm.PauseHotkey)
	assert.Equal(t, DefaultRunemakerDelay, rm.Delay)
	assert.Equal(t, DefaultPotionsPerCycle, rm.PotionsPerCycle)
	assert.Equal(t, DefaultCastsPerCycle, rm.CastsPerCycle)

	assert.False(t, state.HyperGrab.Enabled)
	assert.False(t, state.HyperGrab.IsActive)
}

func TestNewAutomationState_FreshIDsPerCall(t *testing.T) {
	a := NewAutomationState("a")
	b := NewAutomationState("b")

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, a.Runemaker.ID, b.Runemaker.ID)
	assert.NotEqual(t, a.HyperGrab.ID, b.HyperGrab.ID)

	for i := range a.BestSellers {
		assert.NotEqual(t, a.BestSellers[i].ID, b.BestSellers[i].ID)
		assert.Equal(t, a.BestSellers[i].Name, b.BestSellers[i].Name)
	}
}

func TestAutomationStatePatch_ReplacesNestedWholesale(t *testing.T) {
	state := NewAutomationState("p")
	hotkey := "F3"
	state.Runemaker.PotionHotkey = &hotkey

	replacement := RunemakerSettings{ID: "new", Delay: 200, PotionsPerCycle: 1, CastsPerCycle: 1}
	got := AutomationStatePatch{Runemaker: &replacement}.Apply(state)

	assert.Equal(t, replacement, got.Runemaker)
	assert.Equal(t, state.BestSellers, got.BestSellers)
	assert.Equal(t, "F3", *state.Runemaker.PotionHotkey)
}
