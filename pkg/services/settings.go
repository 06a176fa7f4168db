package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/emberhq/ember/pkg/eventbus"
	"github.com/emberhq/ember/pkg/events"
	"github.com/emberhq/ember/pkg/metrics"
	"github.com/emberhq/ember/pkg/models"
	"github.com/emberhq/ember/pkg/otelhelper"
	"github.com/emberhq/ember/pkg/settings"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Settings exposes the settings store to transports. Every successful
// mutation is followed by a change event on the event bus.
type Settings struct {
	store     *settings.Store
	publisher eventbus.EventPublisher
	tracer    trace.Tracer
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewSettings creates a settings service. publisher may be nil, in which
// case no events are emitted.
func NewSettings(
	store *settings.Store,
	publisher eventbus.EventPublisher,
	tracer trace.Tracer,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Settings {
	if tracer == nil {
		tracer = otelhelper.NoopTracer()
	}

	if m == nil {
		m = metrics.New()
	}

	if logger == nil {
		logger = slog.Default()
	}

	m.SetProfiles(store.CountProfiles())
	m.SetGlobalActive(store.GetGlobalActive())

	return &Settings{
		store:     store,
		publisher: publisher,
		tracer:    tracer,
		metrics:   m,
		logger:    logger,
	}
}

// HealthCheck checks the event bus wiring.
func (s *Settings) HealthCheck(_ context.Context) (string, bool) {
	if s.publisher == nil {
		return "Settings store is healthy, event publishing disabled", true
	}

	return "Settings store is healthy", true
}

func blank(name string) bool {
	return strings.TrimSpace(name) == ""
}

func (s *Settings) start(ctx context.Context, op, profileID string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if profileID != "" {
		attrs = append(attrs, attribute.String(otelhelper.ProfileIDKey, profileID))
	}

	return otelhelper.StartSpan(ctx, s.tracer, "settings."+op, attrs...)
}

func (s *Settings) finish(span trace.Span, op string, err error) {
	defer span.End()

	if err == nil {
		s.metrics.ObserveOperation(op, metrics.ResultOK)

		return
	}

	otelhelper.SetError(span, err)

	switch {
	case settings.IsNotFound(err):
		s.metrics.ObserveOperation(op, metrics.ResultNotFound)
	case settings.IsPreconditionFailed(err):
		s.metrics.ObserveOperation(op, metrics.ResultPreconditionFailed)
	case IsValidationError(err):
		s.metrics.ObserveOperation(op, metrics.ResultInvalid)
	default:
		s.metrics.ObserveOperation(op, metrics.ResultError)
	}
}

// publish hands event to the bus. The store is already updated, so a failed
// publish is logged and counted but never reported to the caller.
func (s *Settings) publish(ctx context.Context, key string, event eventbus.Event) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.Publish(ctx, key, event)
	s.metrics.ObserveEvent(string(event.GetType()), err)

	trace.SpanFromContext(ctx).AddEvent("event_published", trace.WithAttributes(
		attribute.String(otelhelper.EventTypeKey, string(event.GetType())),
		attribute.Bool("ember.event.delivered", err == nil),
	))

	if err != nil {
		s.logger.WarnContext(ctx, "Failed to publish settings event",
			"event_type", event.GetType(),
			"key", key,
			"error", err,
		)
	}
}

func (s *Settings) ListProfiles(ctx context.Context) []models.Profile {
	_, span := s.start(ctx, "ListProfiles", "")
	defer s.finish(span, "ListProfiles", nil)

	return s.store.ListProfiles()
}

func (s *Settings) GetProfile(ctx context.Context, id string) (profile models.Profile, err error) {
	_, span := s.start(ctx, "GetProfile", id)
	defer func() { s.finish(span, "GetProfile", err) }()

	return s.store.GetProfile(id)
}

func (s *Settings) CreateProfile(ctx context.Context, name string, isActive bool) (profile models.Profile, err error) {
	ctx, span := s.start(ctx, "CreateProfile", "")
	defer func() { s.finish(span, "CreateProfile", err) }()

	if blank(name) {
		return models.Profile{}, NewValidationError("CreateProfile", "validation_error", "name is required", ErrProfileNameRequired)
	}

	profile = s.store.CreateProfile(name, isActive)
	span.SetAttributes(attribute.String(otelhelper.ProfileIDKey, profile.ID))
	s.metrics.SetProfiles(s.store.CountProfiles())

	s.logger.DebugContext(ctx, "Created profile", "profile_id", profile.ID, "name", profile.Name)

	s.publish(ctx, profile.ID, events.ProfileCreated{
		BaseEvent: events.NewBaseEvent(events.ProfileCreatedEvent, profile.ID),
		Profile:   profile,
	})

	return profile, nil
}

func (s *Settings) UpdateProfile(ctx context.Context, id string, patch models.ProfilePatch) (profile models.Profile, err error) {
	ctx, span := s.start(ctx, "UpdateProfile", id)
	defer func() { s.finish(span, "UpdateProfile", err) }()

	if patch.Name != nil && blank(*patch.Name) {
		return models.Profile{}, NewValidationError("UpdateProfile", "validation_error", "name is required", ErrProfileNameRequired)
	}

	profile, err = s.store.UpdateProfile(id, patch)
	if err != nil {
		return models.Profile{}, err
	}

	s.publish(ctx, id, events.ProfileUpdated{
		BaseEvent: events.NewBaseEvent(events.ProfileUpdatedEvent, id),
		Profile:   profile,
	})

	return profile, nil
}

func (s *Settings) DeleteProfile(ctx context.Context, id string) (err error) {
	ctx, span := s.start(ctx, "DeleteProfile", id)
	defer func() { s.finish(span, "DeleteProfile", err) }()

	err = s.store.DeleteProfile(id)
	if err != nil {
		return err
	}

	s.metrics.SetProfiles(s.store.CountProfiles())
	s.logger.DebugContext(ctx, "Deleted profile", "profile_id", id)

	s.publish(ctx, id, events.ProfileDeleted{
		BaseEvent: events.NewBaseEvent(events.ProfileDeletedEvent, id),
	})

	return nil
}

func (s *Settings) GetAutomationState(ctx context.Context, profileID string) (state models.AutomationState, err error) {
	_, span := s.start(ctx, "GetAutomationState", profileID)
	defer func() { s.finish(span, "GetAutomationState", err) }()

	return s.store.GetAutomationState(profileID)
}

func (s *Settings) UpdateAutomationState(
	ctx context.Context,
	profileID string,
	patch models.AutomationStatePatch,
) (state models.AutomationState, err error) {
	ctx, span := s.start(ctx, "UpdateAutomationState", profileID)
	defer func() { s.finish(span, "UpdateAutomationState", err) }()

	for _, target := range patch.Targets {
		if blank(target.Name) {
			return models.AutomationState{}, NewValidationError(
				"UpdateAutomationState", "validation_error", "target name is required", ErrTargetNameRequired,
			)
		}
	}

	state, err = s.store.UpdateAutomationState(profileID, patch)
	if err != nil {
		return models.AutomationState{}, err
	}

	s.publish(ctx, profileID, events.AutomationStateUpdated{
		BaseEvent: events.NewBaseEvent(events.AutomationStateUpdatedEvent, profileID),
		State:     state,
	})

	return state, nil
}

func (s *Settings) GetBestSellers(ctx context.Context, profileID string) []models.BestSellerItem {
	_, span := s.start(ctx, "GetBestSellers", profileID)
	defer s.finish(span, "GetBestSellers", nil)

	return s.store.GetBestSellers(profileID)
}

func (s *Settings) UpdateBestSellerItem(
	ctx context.Context,
	profileID, itemID string,
	patch models.BestSellerPatch,
) (item models.BestSellerItem, err error) {
	ctx, span := s.start(ctx, "UpdateBestSellerItem", profileID, attribute.String(otelhelper.ItemIDKey, itemID))
	defer func() { s.finish(span, "UpdateBestSellerItem", err) }()

	item, err = s.store.UpdateBestSellerItem(profileID, itemID, patch)
	if err != nil {
		return models.BestSellerItem{}, err
	}

	s.publish(ctx, profileID, events.BestSellerUpdated{
		BaseEvent: events.NewBaseEvent(events.BestSellerUpdatedEvent, profileID),
		Item:      item,
	})

	return item, nil
}

func (s *Settings) GetRunemakerSettings(ctx context.Context, profileID string) (rm models.RunemakerSettings, err error) {
	_, span := s.start(ctx, "GetRunemakerSettings", profileID)
	defer func() { s.finish(span, "GetRunemakerSettings", err) }()

	return s.store.GetRunemakerSettings(profileID)
}

func (s *Settings) UpdateRunemakerSettings(
	ctx context.Context,
	profileID string,
	patch models.RunemakerPatch,
) (rm models.RunemakerSettings, err error) {
	ctx, span := s.start(ctx, "UpdateRunemakerSettings", profileID)
	defer func() { s.finish(span, "UpdateRunemakerSettings", err) }()

	rm, err = s.store.UpdateRunemakerSettings(profileID, patch)
	if err != nil {
		return models.RunemakerSettings{}, err
	}

	s.publish(ctx, profileID, events.RunemakerUpdated{
		BaseEvent: events.NewBaseEvent(events.RunemakerUpdatedEvent, profileID),
		Runemaker: rm,
	})

	return rm, nil
}

func (s *Settings) GetHyperGrabSettings(ctx context.Context, profileID string) (hg models.HyperGrabSettings, err error) {
	_, span := s.start(ctx, "GetHyperGrabSettings", profileID)
	defer func() { s.finish(span, "GetHyperGrabSettings", err) }()

	return s.store.GetHyperGrabSettings(profileID)
}

func (s *Settings) UpdateHyperGrabSettings(
	ctx context.Context,
	profileID string,
	patch models.HyperGrabPatch,
) (hg models.HyperGrabSettings, err error) {
	ctx, span := s.start(ctx, "UpdateHyperGrabSettings", profileID)
	defer func() { s.finish(span, "UpdateHyperGrabSettings", err) }()

	hg, err = s.store.UpdateHyperGrabSettings(profileID, patch)
	if err != nil {
		return models.HyperGrabSettings{}, err
	}

	s.publish(ctx, profileID, events.HyperGrabUpdated{
		BaseEvent: events.NewBaseEvent(events.HyperGrabUpdatedEvent, profileID),
		HyperGrab: hg,
	})

	return hg, nil
}

func (s *Settings) ListTargets(ctx context.Context, profileID string) []models.Target {
	_, span := s.start(ctx, "ListTargets", profileID)
	defer s.finish(span, "ListTargets", nil)

	return s.store.ListTargets(profileID)
}

func (s *Settings) AddTarget(ctx context.Context, profileID, name string) (target models.Target, err error) {
	ctx, span := s.start(ctx, "AddTarget", profileID)
	defer func() { s.finish(span, "AddTarget", err) }()

	if blank(name) {
		return models.Target{}, NewValidationError("AddTarget", "validation_error", "name is required", ErrTargetNameRequired)
	}

	target, err = s.store.AddTarget(profileID, name)
	if err != nil {
		return models.Target{}, err
	}

	s.publish(ctx, profileID, events.TargetAdded{
		BaseEvent: events.NewBaseEvent(events.TargetAddedEvent, profileID),
		Target:    target,
	})

	return target, nil
}

func (s *Settings) UpdateTarget(
	ctx context.Context,
	profileID, targetID string,
	patch models.TargetPatch,
) (target models.Target, err error) {
	ctx, span := s.start(ctx, "UpdateTarget", profileID, attribute.String(otelhelper.ItemIDKey, targetID))
	defer func() { s.finish(span, "UpdateTarget", err) }()

	if patch.Name != nil && blank(*patch.Name) {
		return models.Target{}, NewValidationError("UpdateTarget", "validation_error", "name is required", ErrTargetNameRequired)
	}

	target, err = s.store.UpdateTarget(profileID, targetID, patch)
	if err != nil {
		return models.Target{}, err
	}

	s.publish(ctx, profileID, events.TargetUpdated{
		BaseEvent: events.NewBaseEvent(events.TargetUpdatedEvent, profileID),
		Target:    target,
	})

	return target, nil
}

func (s *Settings) RemoveTarget(ctx context.Context, profileID, targetID string) (err error) {
	ctx, span := s.start(ctx, "RemoveTarget", profileID, attribute.String(otelhelper.ItemIDKey, targetID))
	defer func() { s.finish(span, "RemoveTarget", err) }()

	err = s.store.RemoveTarget(profileID, targetID)
	if err != nil {
		return err
	}

	s.publish(ctx, profileID, events.TargetRemoved{
		BaseEvent: events.NewBaseEvent(events.TargetRemovedEvent, profileID),
		TargetID:  targetID,
	})

	return nil
}

func (s *Settings) GetGlobalActive(ctx context.Context) bool {
	_, span := s.start(ctx, "GetGlobalActive", "")
	defer s.finish(span, "GetGlobalActive", nil)

	return s.store.GetGlobalActive()
}

func (s *Settings) SetGlobalActive(ctx context.Context, active bool) bool {
	ctx, span := s.start(ctx, "SetGlobalActive", "")
	defer s.finish(span, "SetGlobalActive", nil)

	result := s.store.SetGlobalActive(active)
	s.metrics.SetGlobalActive(result)

	s.publish(ctx, "", events.GlobalActiveChanged{
		BaseEvent: events.NewBaseEvent(events.GlobalActiveChangedEvent, ""),
		Active:    result,
	})

	return result
}
