package application

import (
	"handling/domain"

	"github.com/golang/protobuf/proto"
)

// EventBus publishes integration events to the rest of the platform.
type EventBus interface {
	Publish(proto.Message) error
}

// EventService notifies interested parties that a cargo was handled.
type EventService interface {
	CargoWasHandled(domain.HandlingEvent) error
}

// NewEventService returns an EventService publishing on the given bus.
func NewEventService(eventBus EventBus) EventService {
	return &eventService{eventBus}
}

type eventService struct {
	eventBus EventBus
}

func (es *eventService) CargoWasHandled(e domain.HandlingEvent) error {
	return es.eventBus.Publish(encodeHandlingEvent(e))
}
