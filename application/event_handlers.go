package application

import (
	"errors"

	"handling/domain"
	booking "handling/pb/booking"

	"github.com/golang/protobuf/proto"
)

// ErrHandling is returned when an inbound event cannot be processed.
var ErrHandling = errors.New("event processing error")

// EventHandler is the interface that provides inbound integration event
// handling. Handlers may be invoked concurrently for separate deliveries.
type EventHandler interface {
	Handle(event proto.Message) error
}

type newCargoBookedEventHandler struct {
	cargos domain.Repository[domain.TrackingID, domain.Cargo]
}

// NewCargoBookedEventHandler returns a handler for the NewCargoBooked event.
func NewCargoBookedEventHandler(cargos domain.Repository[domain.TrackingID, domain.Cargo]) EventHandler {
	return &newCargoBookedEventHandler{cargos}
}

func (eh *newCargoBookedEventHandler) Handle(event proto.Message) error {
	e, ok := event.(*booking.NewCargoBooked)
	if !ok {
		return ErrHandling
	}

	// Store overwrites, so a re-delivered booking is harmless.
	c := decodeCargo(e)
	return eh.cargos.Store(c.TrackingID, c)
}

type cargoDestinationChangedEventHandler struct {
	cargos domain.Repository[domain.TrackingID, domain.Cargo]
}

// NewCargoDestinationChangedEventHandler returns a handler for the
// CargoDestinationChanged event.
func NewCargoDestinationChangedEventHandler(cargos domain.Repository[domain.TrackingID, domain.Cargo]) EventHandler {
	return &cargoDestinationChangedEventHandler{cargos}
}

func (eh *cargoDestinationChangedEventHandler) Handle(event proto.Message) error {
	e, ok := event.(*booking.CargoDestinationChanged)
	if !ok {
		return ErrHandling
	}

	// A destination change for a cargo that was never booked here cannot
	// be applied; the delivery ends up dead-lettered.
	c, err := eh.cargos.Find(domain.TrackingID(e.GetTrackingId()))
	if err != nil {
		return err
	}

	// Find and Store are individually atomic. Concurrent changes for the
	// same cargo resolve to last write wins.
	c.Destination = domain.UNLocode(e.GetDestination())
	return eh.cargos.Store(c.TrackingID, c)
}
