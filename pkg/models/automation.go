package models

import "slices"

// AutomationState is the full automation configuration bound to one profile.
type AutomationState struct {
	ID        string `json:"id"`
	ProfileID string `json:"profileId"`
	// IsGlobalActive is the per-profile master switch. It is independent of
	// the process-wide global active flag.
	IsGlobalActive bool              `json:"isGlobalActive"`
	BestSellers    []BestSellerItem  `json:"bestSellers"`
	Runemaker      RunemakerSettings `json:"runemaker"`
	HyperGrab      HyperGrabSettings `json:"hyperGrab"`
	Targets        []Target          `json:"targets"`
}

// Clone returns a deep copy of the state.
func (s AutomationState) Clone() AutomationState {
	s.BestSellers = slices.Clone(s.BestSellers)
	s.Runemaker = s.Runemaker.Clone()
	s.Targets = slices.Clone(s.Targets)

	if s.BestSellers == nil {
		s.BestSellers = []BestSellerItem{}
	}

	if s.Targets == nil {
		s.Targets = []Target{}
	}

	return s
}

// AutomationStatePatch replaces top-level fields of an AutomationState.
// Nested records are replaced wholesale, never merged field by field.
type AutomationStatePatch struct {
	IsGlobalActive *bool              `json:"isGlobalActive,omitempty"`
	BestSellers    []BestSellerItem   `json:"bestSellers,omitempty"    validate:"omitempty,unique=ID,dive"`
	Runemaker      *RunemakerSettings `json:"runemaker,omitempty"`
	HyperGrab      *HyperGrabSettings `json:"hyperGrab,omitempty"`
	Targets        []Target           `json:"targets,omitempty"        validate:"omitempty,unique=ID,dive"`
}

// Apply merges the patch into a copy of s.
func (patch AutomationStatePatch) Apply(s AutomationState) AutomationState {
	s = s.Clone()

	if patch.IsGlobalActive != nil {
		s.IsGlobalActive = *patch.IsGlobalActive
	}

	if patch.BestSellers != nil {
		s.BestSellers = slices.Clone(patch.BestSellers)
	}

	if patch.Runemaker != nil {
		s.Runemaker = patch.Runemaker.Clone()
	}

	if patch.HyperGrab != nil {
		s.HyperGrab = *patch.HyperGrab
	}

	if patch.Targets != nil {
		s.Targets = slices.Clone(patch.Targets)
	}

	return s
}

// BestSellerItem is one toggleable automated action bound to a hotkey.
type BestSellerItem struct {
	ID          string `json:"id"          validate:"required"`
	Name        string `json:"name"`
	Hotkey      string `json:"hotkey"`
	Enabled     bool   `json:"enabled"`
	HasLocation bool   `json:"hasLocation"`
	Delay       int    `json:"delay"       validate:"min=0,max=1000"` // milliseconds
}

// BestSellerPatch carries the fields of a partial best seller update.
type BestSellerPatch struct {
	Name        *string `json:"name,omitempty"`
	Hotkey      *string `json:"hotkey,omitempty"`
	Enabled     *bool   `json:"enabled,omitempty"`
	HasLocation *bool   `json:"hasLocation,omitempty"`
	Delay       *int    `json:"delay,omitempty"       validate:"omitnil,min=0,max=1000"`
}

// Apply merges the patch into a copy of item.
func (patch BestSellerPatch) Apply(item BestSellerItem) BestSellerItem {
	if patch.Name != nil {
		item.Name = *patch.Name
	}

	if patch.Hotkey != nil {
		item.Hotkey = *patch.Hotkey
	}

	if patch.Enabled != nil {
		item.Enabled = *patch.Enabled
	}

	if patch.HasLocation != nil {
		item.HasLocation = *patch.HasLocation
	}

	if patch.Delay != nil {
		item.Delay = *patch.Delay
	}

	return item
}

// RunemakerSettings configures the potion/spell cycle.
type RunemakerSettings struct {
	ID       string `json:"id"       validate:"required"`
	IsActive bool   `json:"isActive"`
	// PotionHotkey stays nil until the UI records one.
	PotionHotkey    *string `json:"potionHotkey"`
	PotionRecorded  bool    `json:"potionRecorded"`
	SpellHotkey     string  `json:"spellHotkey"`
	Delay           int     `json:"delay"           validate:"min=100,max=5000"`
	PotionsPerCycle int     `json:"potionsPerCycle" validate:"min=1,max=10"`
	CastsPerCycle   int     `json:"castsPerCycle"   validate:"min=1,max=10"`
	PauseHotkey     string  `json:"pauseHotkey"`
}

// Clone returns a copy that shares no pointers with r.
func (r RunemakerSettings) Clone() RunemakerSettings {
	if r.PotionHotkey != nil {
		hotkey := *r.PotionHotkey
		r.PotionHotkey = &hotkey
	}

	return r
}

// RunemakerPatch carries the fields of a partial runemaker update.
type RunemakerPatch struct {
	IsActive        *bool          `json:"isActive,omitempty"`
	PotionHotkey    NullableString `json:"potionHotkey,omitzero"`
	PotionRecorded  *bool          `json:"potionRecorded,omitempty"`
	SpellHotkey     *string        `json:"spellHotkey,omitempty"`
	Delay           *int           `json:"delay,omitempty"           validate:"omitnil,min=100,max=5000"`
	PotionsPerCycle *int           `json:"potionsPerCycle,omitempty" validate:"omitnil,min=1,max=10"`
	CastsPerCycle   *int           `json:"castsPerCycle,omitempty"   validate:"omitnil,min=1,max=10"`
	PauseHotkey     *string        `json:"pauseHotkey,omitempty"`
}

// Apply merges the patch into a copy of r.
func (patch RunemakerPatch) Apply(r RunemakerSettings) RunemakerSettings {
	r = r.Clone()

	if patch.IsActive != nil {
		r.IsActive = *patch.IsActive
	}

	if patch.PotionHotkey.Set {
		r.PotionHotkey = patch.PotionHotkey.Ptr()
	}

	if patch.PotionRecorded != nil {
		r.PotionRecorded = *patch.PotionRecorded
	}

	if patch.SpellHotkey != nil {
		r.SpellHotkey = *patch.SpellHotkey
	}

	if patch.Delay != nil {
		r.Delay = *patch.Delay
	}

	if patch.PotionsPerCycle != nil {
		r.PotionsPerCycle = *patch.PotionsPerCycle
	}

	if patch.CastsPerCycle != nil {
		r.CastsPerCycle = *patch.CastsPerCycle
	}

	if patch.PauseHotkey != nil {
		r.PauseHotkey = *patch.PauseHotkey
	}

	return r
}

// HyperGrabSettings is the on/off automated pickup behavior.
type HyperGrabSettings struct {
	ID       string `json:"id"       validate:"required"`
	IsActive bool   `json:"isActive"`
	Enabled  bool   `json:"enabled"`
}

// HyperGrabPatch carries the fields of a partial hyper grab update.
type HyperGrabPatch struct {
	IsActive *bool `json:"isActive,omitempty"`
	Enabled  *bool `json:"enabled,omitempty"`
}

// Apply merges the patch into a copy of h.
func (patch HyperGrabPatch) Apply(h HyperGrabSettings) HyperGrabSettings {
	if patch.IsActive != nil {
		h.IsActive = *patch.IsActive
	}

	if patch.Enabled != nil {
		h.Enabled = *patch.Enabled
	}

	return h
}

// Target is a creature the agent attacks, ordered by priority (1 attacks first).
type Target struct {
	ID       string `json:"id"       validate:"required"`
	Name     string `json:"name"     validate:"required,min=1"`
	Enabled  bool   `json:"enabled"`
	Priority int    `json:"priority" validate:"min=1"`
}

// TargetPatch carries the fields of a partial target update.
type TargetPatch struct {
	Name     *string `json:"name,omitempty"     validate:"omitnil,min=1"`
	Enabled  *bool   `json:"enabled,omitempty"`
	Priority *int    `json:"priority,omitempty" validate:"omitnil,min=1"`
}

// Apply merges the patch into a copy of t.
func (patch TargetPatch) Apply(t Target) Target {
	if patch.Name != nil {
		t.Name = *patch.Name
	}

	if patch.Enabled != nil {
		t.Enabled = *patch.Enabled
	}

	if patch.Priority != nil {
		t.Priority = *patch.Priority
	}

	return t
}
