// Package settings holds the in-memory profile and automation settings store.
//
// The Store is the single source of truth: it owns every Profile and its
// paired AutomationState and is the only code that mutates them. A single
// lock guards the whole store and every value handed out is a copy.
package settings

import (
	"slices"
	"sync"

	"github.com/emberhq/ember/pkg/models"
	"github.com/google/uuid"
)

const (
	DefaultProfileID   = "default"
	DefaultProfileName = "Padrão"
)

type Store struct {
	mu           sync.RWMutex
	profiles     map[string]models.Profile
	order        []string // profile ids in creation order
	states       map[string]models.AutomationState
	globalActive bool
}

// NewStore returns a store seeded with the default profile.
func NewStore() *Store {
	s := &Store{
		profiles:     make(map[string]models.Profile),
		states:       make(map[string]models.AutomationState),
		globalActive: true,
	}

	state := models.NewAutomationState(DefaultProfileID)
	state.ID = DefaultProfileID

	s.insert(models.Profile{ID: DefaultProfileID, Name: DefaultProfileName, IsActive: true}, state)

	return s
}

func (s *Store) insert(profile models.Profile, state models.AutomationState) {
	s.profiles[profile.ID] = profile
	s.states[profile.ID] = state
	s.order = append(s.order, profile.ID)
}

func (s *Store) ListProfiles() []models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profiles := make([]models.Profile, 0, len(s.order))
	for _, id := range s.order {
		profiles = append(profiles, s.profiles[id])
	}

	return profiles
}

func (s *Store) CountProfiles() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.profiles)
}

func (s *Store) GetProfile(id string) (models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[id]
	if !ok {
		return models.Profile{}, newError("GetProfile", id, ErrProfileNotFound)
	}

	return profile, nil
}

// CreateProfile stores a new profile together with a freshly seeded automation state.
func (s *Store) CreateProfile(name string, isActive bool) models.Profile {
	profile := models.Profile{
		ID:       uuid.New().String(),
		Name:     name,
		IsActive: isActive,
	}
	state := models.NewAutomationState(profile.ID)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.insert(profile, state)

	return profile
}

func (s *Store) UpdateProfile(id string, patch models.ProfilePatch) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.profiles[id]
	if !ok {
		return models.Profile{}, newError("UpdateProfile", id, ErrProfileNotFound)
	}

	profile = patch.Apply(profile)
	s.profiles[id] = profile

	return profile, nil
}

// DeleteProfile removes a profile and its automation state. The last
// remaining profile can never be deleted.
func (s *Store) DeleteProfile(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.profiles) <= 1 {
		return newError("DeleteProfile", id, ErrCannotDeleteLastProfile)
	}

	if _, ok := s.profiles[id]; !ok {
		return newError("DeleteProfile", id, ErrProfileNotFound)
	}

	delete(s.profiles, id)
	delete(s.states, id)
	s.order = slices.DeleteFunc(s.order, func(existing string) bool { return existing == id })

	return nil
}

func (s *Store) GetAutomationState(profileID string) (models.AutomationState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[profileID]
	if !ok {
		return models.AutomationState{}, newError("GetAutomationState", profileID, ErrAutomationStateNotFound)
	}

	return state.Clone(), nil
}

// UpdateAutomationState replaces the top-level fields present in patch.
func (s *Store) UpdateAutomationState(profileID string, patch models.AutomationStatePatch) (models.AutomationState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[profileID]
	if !ok {
		return models.AutomationState{}, newError("UpdateAutomationState", profileID, ErrAutomationStateNotFound)
	}

	state = patch.Apply(state)
	s.states[profileID] = state

	return state.Clone(), nil
}

// GetBestSellers returns the profile's items in order, or an empty slice for an unknown profile.
func (s *Store) GetBestSellers(profileID string) []models.BestSellerItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[profileID]
	if !ok || state.BestSellers == nil {
		return []models.BestSellerItem{}
	}

	return slices.Clone(state.BestSellers)
}

// UpdateBestSellerItem merges patch into the item in place, keeping its position.
func (s *Store) UpdateBestSellerItem(profileID, itemID string, patch models.BestSellerPatch) (models.BestSellerItem, error) {
	const op = "UpdateBestSellerItem"

	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[profileID]
	if !ok {
		return models.BestSellerItem{}, newItemError(op, profileID, itemID, ErrAutomationStateNotFound)
	}

	idx := slices.IndexFunc(state.BestSellers, func(item models.BestSellerItem) bool { return item.ID == itemID })
	if idx == -1 {
		return models.BestSellerItem{}, newItemError(op, profileID, itemID, ErrBestSellerNotFound)
	}

	item := patch.Apply(state.BestSellers[idx])

	// Copy before writing so slices handed out earlier never change underneath their holders.
	state.BestSellers = slices.Clone(state.BestSellers)
	state.BestSellers[idx] = item
	s.states[profileID] = state

	return item, nil
}

func (s *Store) GetRunemakerSettings(profileID string) (models.RunemakerSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[profileID]
	if !ok {
		return models.RunemakerSettings{}, newError("GetRunemakerSettings", profileID, ErrAutomationStateNotFound)
	}

	return state.Runemaker.Clone(), nil
}

func (s *Store) UpdateRunemakerSettings(profileID string, patch models.RunemakerPatch) (models.RunemakerSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[profileID]
	if !ok {
		return models.RunemakerSettings{}, newError("UpdateRunemakerSettings", profileID, ErrAutomationStateNotFound)
	}

	state.Runemaker = patch.Apply(state.Runemaker)
	s.states[profileID] = state

	return state.Runemaker.Clone(), nil
}

func (s *Store) GetHyperGrabSettings(profileID string) (models.HyperGrabSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[profileID]
	if !ok {
		return models.HyperGrabSettings{}, newError("GetHyperGrabSettings", profileID, ErrAutomationStateNotFound)
	}

	return state.HyperGrab, nil
}

func (s *Store) UpdateHyperGrabSettings(profileID string, patch models.HyperGrabPatch) (models.HyperGrabSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.states[profileID]
	if !ok {
		return models.HyperGrabSettings{}, newError("UpdateHyperGrabSettings", profileID, ErrAutomationStateNotFound)
	}

	state.HyperGrab = patch.Apply(state.HyperGrab)
	s.states[profileID] = state

	return state.HyperGrab, nil
}

// GetGlobalActive returns the process-wide active flag. It is not tied to
// any profile's IsGlobalActive.
func (s *Store) GetGlobalActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.globalActive
}

// SetGlobalActive stores the process-wide active flag and returns the stored value.
func (s *Store) SetGlobalActive(active bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.globalActive = active

	return s.globalActive
}
