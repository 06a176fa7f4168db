package settings

import (
	"cmp"
	"slices"

	"github.com/emberhq/ember/pkg/models"
	"github.com/google/uuid"
)

func sortTargets(targets []models.Target) {
	slices.SortStableFunc(targets, func(a, b models.Target) int {
		return cmp.Compare(a.Priority, b.Priority)
	})
}

// ListTargets returns the profile's targets ordered by priority, or an empty slice for an unknown profile.
func (s *Store) ListTargets(profileID string) []models.Target {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[profileID]
	if !ok {
		return []models.Target{}
	}

	targets := slices.Clone(state.Targets)
	if targets == nil {
		return []models.Target{}
	}

	sortTargets(targets)

	return targets
}

// AddTarget appends an enabled target with the lowest priority.
func (s *Store) AddTarget(profileID, name string) (models.Target, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[profileID]
	if !ok {
		return models.Target{}, newError("AddTarget", profileID, ErrAutomationStateNotFound)
	}

	priority := 0
	for _, t := range state.Targets {
		priority = max(priority, t.Priority)
	}

	target := models.Target{
		ID:       uuid.New().String(),
		Name:     name,
		Enabled:  true,
		Priority: priority + 1,
	}

	state.Targets = append(slices.Clone(state.Targets), target)
	s.states[profileID] = state

	return target, nil
}

func (s *Store) UpdateTarget(profileID, targetID string, patch models.TargetPatch) (models.Target, error) {
	const op = "UpdateTarget"

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[profileID]
	if !ok {
		return models.Target{}, newItemError(op, profileID, targetID, ErrAutomationStateNotFound)
	}

	idx := slices.IndexFunc(state.Targets, func(t models.Target) bool { return t.ID == targetID })
	if idx == -1 {
		return models.Target{}, newItemError(op, profileID, targetID, ErrTargetNotFound)
	}

	target := patch.Apply(state.Targets[idx])

	state.Targets = slices.Clone(state.Targets)
	state.Targets[idx] = target
	s.states[profileID] = state

	return target, nil
}

// RemoveTarget deletes a target and renumbers the rest 1..n in priority order.
func (s *Store) RemoveTarget(profileID, targetID string) error {
	const op = "RemoveTarget"

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[profileID]
	if !ok {
		return newItemError(op, profileID, targetID, ErrAutomationStateNotFound)
	}

	if !slices.ContainsFunc(state.Targets, func(t models.Target) bool { return t.ID == targetID }) {
		return newItemError(op, profileID, targetID, ErrTargetNotFound)
	}

	remaining := slices.DeleteFunc(slices.Clone(state.Targets), func(t models.Target) bool { return t.ID == targetID })
	sortTargets(remaining)

	for i := range remaining {
		remaining[i].Priority = i + 1
	}

	state.Targets = remaining
	s.states[profileID] = state

	return nil
}
