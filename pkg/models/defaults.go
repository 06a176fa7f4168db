package models

import "github.com/google/uuid"

const (
	DefaultSpellHotkey     = "F6"
	DefaultPauseHotkey     = "F9"
	DefaultRunemakerDelay  = 500
	DefaultPotionsPerCycle = 3
	DefaultCastsPerCycle   = 1
)

type bestSellerSeed struct {
	name   string
	hotkey string
	delay  int
}

var bestSellerSeeds = [...]bestSellerSeed{
	{name: "Auto SD", hotkey: "F12", delay: 100},
	{name: "Auto EXPLO", hotkey: "F4", delay: 100},
	{name: "Auto UH", hotkey: "F1", delay: 82},
	{name: "Auto Mana", hotkey: "F2", delay: 116},
}

func newID() string {
	return uuid.New().String()
}

// NewBestSellers returns the default best seller items, each with a fresh id.
func NewBestSellers() []BestSellerItem {
	items := make([]BestSellerItem, 0, len(bestSellerSeeds))
	for _, seed := range bestSellerSeeds {
		items = append(items, BestSellerItem{
			ID:     newID(),
			Name:   seed.name,
			Hotkey: seed.hotkey,
			Delay:  seed.delay,
		})
	}

	return items
}

// NewRunemakerSettings returns the default runemaker settings with a fresh id.
func NewRunemakerSettings() RunemakerSettings {
	return RunemakerSettings{
		ID:              newID(),
		SpellHotkey:     DefaultSpellHotkey,
		Delay:           DefaultRunemakerDelay,
		PotionsPerCycle: DefaultPotionsPerCycle,
		CastsPerCycle:   DefaultCastsPerCycle,
		PauseHotkey:     DefaultPauseHotkey,
	}
}

// NewHyperGrabSettings returns the default hyper grab settings with a fresh id.
func NewHyperGrabSettings() HyperGrabSettings {
	return HyperGrabSettings{ID: newID()}
}

// NewAutomationState builds a default state for profileID. Every call yields
// new ids for the state and all nested records.
func NewAutomationState(profileID string) AutomationState {
	return AutomationState{
		ID:             newID(),
		ProfileID:      profileID,
		IsGlobalActive: true,
		BestSellers:    NewBestSellers(),
		Runemaker:      NewRunemakerSettings(),
		HyperGrab:      NewHyperGrabSettings(),
		Targets:        []Target{},
	}
}
