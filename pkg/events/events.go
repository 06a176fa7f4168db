// Package events defines the change notifications published when settings are mutated.
package events

import (
	"time"

	"github.com/emberhq/ember/pkg/models"
	"github.com/google/uuid"
)

type EventType string

// Topic all settings events are published on.
const Topic = "ember.settings"

const EventMetadataKey = "key"
const EventTypeMetadataKey = "event_type"

const (
	// Profile lifecycle events.
	ProfileCreatedEvent EventType = "profile.created"
	ProfileUpdatedEvent EventType = "profile.updated"
	ProfileDeletedEvent EventType = "profile.deleted"

	// Automation settings events.
	AutomationStateUpdatedEvent EventType = "automation_state.updated"
	BestSellerUpdatedEvent      EventType = "best_seller.updated"
	RunemakerUpdatedEvent       EventType = "runemaker.updated"
	HyperGrabUpdatedEvent       EventType = "hyper_grab.updated"

	// Targeting events.
	TargetAddedEvent   EventType = "target.added"
	TargetUpdatedEvent EventType = "target.updated"
	TargetRemovedEvent EventType = "target.removed"

	// Process-wide events, ProfileID is empty.
	GlobalActiveChangedEvent EventType = "global_active.changed"
)

// AllEventTypes lists every event type published on Topic.
var AllEventTypes = []EventType{
	ProfileCreatedEvent,
	ProfileUpdatedEvent,
	ProfileDeletedEvent,
	AutomationStateUpdatedEvent,
	BestSellerUpdatedEvent,
	RunemakerUpdatedEvent,
	HyperGrabUpdatedEvent,
	TargetAddedEvent,
	TargetUpdatedEvent,
	TargetRemovedEvent,
	GlobalActiveChangedEvent,
}

type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	ProfileID string    `json:"profile_id,omitempty"`
}

func NewBaseEvent(eventType EventType, profileID string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		ProfileID: profileID,
	}
}

type ProfileCreated struct {
	BaseEvent

	Profile models.Profile `json:"profile"`
}

func (e ProfileCreated) GetType() EventType {
	return ProfileCreatedEvent
}

type ProfileUpdated struct {
	BaseEvent

	Profile models.Profile `json:"profile"`
}

func (e ProfileUpdated) GetType() EventType {
	return ProfileUpdatedEvent
}

type ProfileDeleted struct {
	BaseEvent
}

func (e ProfileDeleted) GetType() EventType {
	return ProfileDeletedEvent
}

type AutomationStateUpdated struct {
	BaseEvent

	State models.AutomationState `json:"state"`
}

func (e AutomationStateUpdated) GetType() EventType {
	return AutomationStateUpdatedEvent
}

type BestSellerUpdated struct {
	BaseEvent

	Item models.BestSellerItem `json:"item"`
}

func (e BestSellerUpdated) GetType() EventType {
	return BestSellerUpdatedEvent
}

type RunemakerUpdated struct {
	BaseEvent

	Runemaker models.RunemakerSettings `json:"runemaker"`
}

func (e RunemakerUpdated) GetType() EventType {
	return RunemakerUpdatedEvent
}

type HyperGrabUpdated struct {
	BaseEvent

	HyperGrab models.HyperGrabSettings `json:"hyper_grab"`
}

func (e HyperGrabUpdated) GetType() EventType {
	return HyperGrabUpdatedEvent
}

type TargetAdded struct {
	BaseEvent

	Target models.Target `json:"target"`
}

func (e TargetAdded) GetType() EventType {
	return TargetAddedEvent
}

type TargetUpdated struct {
	BaseEvent

	Target models.Target `json:"target"`
}

func (e TargetUpdated) GetType() EventType {
	return TargetUpdatedEvent
}

type TargetRemoved struct {
	BaseEvent

	TargetID string `json:"target_id"`
}

func (e TargetRemoved) GetType() EventType {
	return TargetRemovedEvent
}

type GlobalActiveChanged struct {
	BaseEvent

	Active bool `json:"active"`
}

func (e GlobalActiveChanged) GetType() EventType {
	return GlobalActiveChangedEvent
}
