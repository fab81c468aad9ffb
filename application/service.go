package application

import (
	"context"
	"errors"
	"time"

	"handling/domain"
)

// ErrInvalidArgument is returned when one or more arguments are invalid.
var ErrInvalidArgument = errors.New("invalid argument")

// Service is the interface that provides handling methods.
type Service interface {
	// RegisterHandlingEvent registers a handling event in the system, and
	// notifies interested parties that a cargo has been handled.
	RegisterHandlingEvent(ctx context.Context, completed time.Time, id domain.TrackingID,
		voyageNumber domain.VoyageNumber, unLocode domain.UNLocode, eventType domain.HandlingEventType) error
}

// NewService creates a handling service with necessary dependencies.
func NewService(
	handlingEvents domain.Repository[domain.TrackingID, domain.HandlingEvent],
	factory *domain.HandlingEventFactory,
	eventService EventService,
) Service {
	return &service{
		handlingEvents: handlingEvents,
		factory:        factory,
		eventService:   eventService,
	}
}

type service struct {
	handlingEvents domain.Repository[domain.TrackingID, domain.HandlingEvent]
	factory        *domain.HandlingEventFactory
	eventService   EventService
}

func (s *service) RegisterHandlingEvent(ctx context.Context, completed time.Time, id domain.TrackingID,
	voyageNumber domain.VoyageNumber, unLocode domain.UNLocode, eventType domain.HandlingEventType) error {

	// An unset event with missing identifiers carries no information and
	// must not be registered as if it were meaningful.
	if eventType == domain.NotHandled && (id == "" || voyageNumber == "" || unLocode == "") {
		return ErrInvalidArgument
	}

	e, err := s.factory.CreateHandlingEvent(time.Now(), completed, id, voyageNumber, unLocode, eventType)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.handlingEvents.Store(id, e); err != nil {
		return err
	}

	// The event is already persisted at this point. A failed publish still
	// surfaces to the caller; there is no transaction spanning both.
	return s.eventService.CargoWasHandled(e)
}
