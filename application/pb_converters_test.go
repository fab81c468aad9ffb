package application

import (
	"errors"
	"testing"

	"handling/domain"
	"handling/pb"
	booking "handling/pb/booking"
)

func TestEncodeHandlingEvent(t *testing.T) {
	e := encodeHandlingEvent(domain.HandlingEvent{
		TrackingID: "001",
		Activity: domain.HandlingActivity{
			Type:         domain.Load,
			Location:     domain.SESTO,
			VoyageNumber: "0100S",
		},
	})

	if e.GetTrackingId() != "001" {
		t.Errorf("expected tracking ID 001, got %s", e.GetTrackingId())
	}
	if e.GetActivity().GetType() != pb.HandlingEventType_LOAD {
		t.Errorf("expected LOAD, got %v", e.GetActivity().GetType())
	}
	if e.GetActivity().GetLocation() != "SESTO" {
		t.Errorf("expected SESTO, got %s", e.GetActivity().GetLocation())
	}
	if e.GetActivity().GetVoyageNumber() != "0100S" {
		t.Errorf("expected 0100S, got %s", e.GetActivity().GetVoyageNumber())
	}
}

func TestDecodeHandlingEventType(t *testing.T) {
	for pbType, want := range map[pb.HandlingEventType]domain.HandlingEventType{
		pb.HandlingEventType_NOT_HANDLED: domain.NotHandled,
		pb.HandlingEventType_LOAD:        domain.Load,
		pb.HandlingEventType_UNLOAD:      domain.Unload,
		pb.HandlingEventType_RECEIVE:     domain.Receive,
		pb.HandlingEventType_CLAIM:       domain.Claim,
		pb.HandlingEventType_CUSTOMS:     domain.Customs,
	} {
		got, err := decodeHandlingEventType(pbType)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	if _, err := decodeHandlingEventType(pb.HandlingEventType(42)); !errors.Is(err, domain.ErrParsing) {
		t.Fatalf("expected ErrParsing, got %v", err)
	}
}

func TestDecodeCargoMissingDeadline(t *testing.T) {
	c := decodeCargo(&booking.NewCargoBooked{
		TrackingId:  "001",
		Origin:      "AUMEL",
		Destination: "SESTO",
	})

	if c.TrackingID != "001" || c.Origin != domain.AUMEL || c.Destination != domain.SESTO {
		t.Fatalf("unexpected cargo: %v", c)
	}
	if c.ArrivalDeadline.IsZero() {
		t.Fatal("expected missing arrival deadline to default to now")
	}
}
