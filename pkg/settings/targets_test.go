package settings

import (
	"testing"

	"github.com/emberhq/ember/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func targetNames(targets []models.Target) []string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.Name)
	}

	return names
}

func TestStore_Targets(t *testing.T) {
	store := NewStore()

	assert.Empty(t, store.ListTargets(DefaultProfileID))

	demon, err := store.AddTarget(DefaultProfileID, "Demon")
	require.NoError(t, err)
	assert.True(t, demon.Enabled)
	assert.Equal(t, 1, demon.Priority)

	dragon, err := store.AddTarget(DefaultProfileID, "Dragon Lord")
	require.NoError(t, err)
	assert.Equal(t, 2, dragon.Priority)

	hydra, err := store.AddTarget(DefaultProfileID, "Hydra")
	require.NoError(t, err)
	assert.Equal(t, 3, hydra.Priority)

	updated, err := store.UpdateTarget(DefaultProfileID, hydra.ID, models.TargetPatch{Enabled: ptr(false), Priority: ptr(0)})
	require.NoError(t, err)
	assert.False(t, updated.Enabled)

	assert.Equal(t, []string{"Hydra", "Demon", "Dragon Lord"}, targetNames(store.ListTargets(DefaultProfileID)))

	require.NoError(t, store.RemoveTarget(DefaultProfileID, demon.ID))

	remaining := store.ListTargets(DefaultProfileID)
	assert.Equal(t, []string{"Hydra", "Dragon Lord"}, targetNames(remaining))
	assert.Equal(t, 1, remaining[0].Priority)
	assert.Equal(t, 2, remaining[1].Priority)
}

func TestStore_AddTarget_AfterReprioritize(t *testing.T) {
	store := NewStore()

	first, err := store.AddTarget(DefaultProfileID, "Demon")
	require.NoError(t, err)

	_, err = store.AddTarget(DefaultProfileID, "Hydra")
	require.NoError(t, err)

	_, err = store.UpdateTarget(DefaultProfileID, first.ID, models.TargetPatch{Priority: ptr(3)})
	require.NoError(t, err)

	added, err := store.AddTarget(DefaultProfileID, "Dragon Lord")
	require.NoError(t, err)
	assert.Equal(t, 4, added.Priority)

	seen := map[int]bool{}
	for _, target := range store.ListTargets(DefaultProfileID) {
		assert.False(t, seen[target.Priority], "duplicate priority %d", target.Priority)
		seen[target.Priority] = true
	}
}

func TestStore_Targets_NotFound(t *testing.T) {
	store := NewStore()

	_, err := store.AddTarget("missing", "Demon")
	require.ErrorIs(t, err, ErrAutomationStateNotFound)

	_, err = store.UpdateTarget(DefaultProfileID, "missing", models.TargetPatch{Enabled: ptr(true)})
	require.ErrorIs(t, err, ErrTargetNotFound)

	err = store.RemoveTarget(DefaultProfileID, "missing")
	require.ErrorIs(t, err, ErrTargetNotFound)
	assert.True(t, IsNotFound(err))

	assert.Empty(t, store.ListTargets("missing"))
}

func TestStore_Targets_PerProfile(t *testing.T) {
	store := NewStore()
	other := store.CreateProfile("Other", false)

	_, err := store.AddTarget(other.ID, "Demon")
	require.NoError(t, err)

	assert.Empty(t, store.ListTargets(DefaultProfileID))
	assert.Len(t, store.ListTargets(other.ID), 1)
}
