package eventbus

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/emberhq/ember/pkg/events"
)

type WatermillEventBus struct {
	publisher  message.Publisher
	subscriber message.Subscriber

	mu            sync.RWMutex
	subscriptions map[events.EventType]EventHandler
}

func NewWatermillEventBus(pub message.Publisher, sub message.Subscriber) EventBus {
	return &WatermillEventBus{
		publisher:     pub,
		subscriber:    sub,
		subscriptions: make(map[events.EventType]EventHandler),
	}
}

func (eb *WatermillEventBus) GenerateID() string {
	return watermill.NewULID()
}

func (eb *WatermillEventBus) Publish(ctx context.Context, key string, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := message.NewMessage("msg-"+eb.GenerateID(), payload)
	msg.SetContext(ctx)
	msg.Metadata.Set(events.EventMetadataKey, key)
	msg.Metadata.Set(events.EventTypeMetadataKey, string(event.GetType()))

	return eb.publisher.Publish(events.Topic, msg)
}

// newEvent returns an empty event for eventType, or nil when the type is unknown.
func newEvent(eventType events.EventType) any {
	switch eventType {
	case events.ProfileCreatedEvent:
		return &events.ProfileCreated{}
	case events.ProfileUpdatedEvent:
		return &events.ProfileUpdated{}
	case events.ProfileDeletedEvent:
		return &events.ProfileDeleted{}
	case events.AutomationStateUpdatedEvent:
		return &events.AutomationStateUpdated{}
	case events.BestSellerUpdatedEvent:
		return &events.BestSellerUpdated{}
	case events.RunemakerUpdatedEvent:
		return &events.RunemakerUpdated{}
	case events.HyperGrabUpdatedEvent:
		return &events.HyperGrabUpdated{}
	case events.TargetAddedEvent:
		return &events.TargetAdded{}
	case events.TargetUpdatedEvent:
		return &events.TargetUpdated{}
	case events.TargetRemovedEvent:
		return &events.TargetRemoved{}
	case events.GlobalActiveChangedEvent:
		return &events.GlobalActiveChanged{}
	default:
		return nil
	}
}

func (eb *WatermillEventBus) handler(eventType events.EventType) (EventHandler, bool) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	handler, exists := eb.subscriptions[eventType]

	return handler, exists
}

func (eb *WatermillEventBus) Subscribe(ctx context.Context) error {
	messages, err := eb.subscriber.Subscribe(ctx, events.Topic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			eventType := events.EventType(msg.Metadata.Get(events.EventTypeMetadataKey))

			handler, exists := eb.handler(eventType)
			if !exists {
				msg.Ack()

				continue
			}

			event := newEvent(eventType)
			if event == nil {
				msg.Nack()

				continue
			}

			err := json.Unmarshal(msg.Payload, event)
			if err != nil {
				msg.Nack()

				continue
			}

			err = handler(ctx, event)
			if err != nil {
				msg.Nack()

				continue
			}

			msg.Ack()
		}
	}()

	return nil
}

func (eb *WatermillEventBus) Handle(eventType events.EventType, handler EventHandler) error {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscriptions[eventType] = handler

	return nil
}

func (eb *WatermillEventBus) Close() error {
	err := eb.publisher.Close()
	if err != nil {
		return err
	}

	return eb.subscriber.Close()
}
