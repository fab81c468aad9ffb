package domain

import (
	"errors"
	"time"
)

// ErrParsing is used when a handling event type cannot be parsed.
var ErrParsing = errors.New("parsing error")

// TrackingID uniquely identifies a particular cargo.
type TrackingID string

// HandlingEventType describes the type of a handling event.
type HandlingEventType int

// Valid handling event types.
const (
	NotHandled HandlingEventType = iota
	Load
	Unload
	Receive
	Claim
	Customs
)

func (t HandlingEventType) String() string {
	switch t {
	case NotHandled:
		return "NotHandled"
	case Load:
		return "Load"
	case Unload:
		return "Unload"
	case Receive:
		return "Receive"
	case Claim:
		return "Claim"
	case Customs:
		return "Customs"
	}
	return ""
}

// ParseHandlingEventType parses the textual form of a handling event type.
func ParseHandlingEventType(s string) (HandlingEventType, error) {
	switch s {
	case "NotHandled":
		return NotHandled, nil
	case "Load":
		return Load, nil
	case "Unload":
		return Unload, nil
	case "Receive":
		return Receive, nil
	case "Claim":
		return Claim, nil
	case "Customs":
		return Customs, nil
	}
	return NotHandled, ErrParsing
}

// HandlingActivity represents how and where a cargo can be handled.
type HandlingActivity struct {
	Type         HandlingEventType
	Location     UNLocode
	VoyageNumber VoyageNumber
}

// HandlingEvent is used to register the event when, for instance, a cargo is
// unloaded from a carrier at some location at a given time.
type HandlingEvent struct {
	TrackingID TrackingID
	Activity   HandlingActivity
}

// Cargo is the local read model of a cargo booked by the booking service.
// Its destination may change while in transit.
type Cargo struct {
	TrackingID      TrackingID
	Origin          UNLocode
	Destination     UNLocode
	ArrivalDeadline time.Time
}
