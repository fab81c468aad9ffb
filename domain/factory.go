package domain

import "time"

// HandlingEventFactory creates handling events validated against the known
// cargos, voyages and locations. It holds read-only references to the
// repositories and never mutates them.
type HandlingEventFactory struct {
	cargos    Repository[TrackingID, Cargo]
	voyages   Repository[VoyageNumber, Voyage]
	locations Repository[UNLocode, Location]
}

// NewHandlingEventFactory returns a factory backed by the given repositories.
func NewHandlingEventFactory(
	cargos Repository[TrackingID, Cargo],
	voyages Repository[VoyageNumber, Voyage],
	locations Repository[UNLocode, Location],
) *HandlingEventFactory {
	return &HandlingEventFactory{
		cargos:    cargos,
		voyages:   voyages,
		locations: locations,
	}
}

// CreateHandlingEvent creates a validated handling event. The registered
// time is accepted for forward compatibility but not embedded in the event.
func (f *HandlingEventFactory) CreateHandlingEvent(registered, completed time.Time, id TrackingID,
	voyageNumber VoyageNumber, unLocode UNLocode, eventType HandlingEventType) (HandlingEvent, error) {

	if _, err := f.cargos.Find(id); err != nil {
		return HandlingEvent{}, err
	}

	// When creating a Receive event, the voyage number is not yet known.
	if voyageNumber != "" {
		if _, err := f.voyages.Find(voyageNumber); err != nil {
			return HandlingEvent{}, err
		}
	}

	if _, err := f.locations.Find(unLocode); err != nil {
		return HandlingEvent{}, err
	}

	return HandlingEvent{
		TrackingID: id,
		Activity: HandlingActivity{
			Type:         eventType,
			Location:     unLocode,
			VoyageNumber: voyageNumber,
		},
	}, nil
}
