package application

import (
	"time"

	"handling/domain"
	"handling/pb"
	booking "handling/pb/booking"

	"github.com/golang/protobuf/ptypes"
)

func encodeHandlingEvent(e domain.HandlingEvent) *pb.HandlingEvent {
	return &pb.HandlingEvent{
		TrackingId: string(e.TrackingID),
		Activity: &pb.Activity{
			Type:         pb.HandlingEventType(e.Activity.Type),
			Location:     string(e.Activity.Location),
			VoyageNumber: string(e.Activity.VoyageNumber),
		},
	}
}

func decodeHandlingEventType(t pb.HandlingEventType) (domain.HandlingEventType, error) {
	switch t {
	case pb.HandlingEventType_NOT_HANDLED:
		return domain.NotHandled, nil
	case pb.HandlingEventType_LOAD:
		return domain.Load, nil
	case pb.HandlingEventType_UNLOAD:
		return domain.Unload, nil
	case pb.HandlingEventType_RECEIVE:
		return domain.Receive, nil
	case pb.HandlingEventType_CLAIM:
		return domain.Claim, nil
	case pb.HandlingEventType_CUSTOMS:
		return domain.Customs, nil
	}
	return domain.NotHandled, domain.ErrParsing
}

func decodeCargo(e *booking.NewCargoBooked) domain.Cargo {
	// The booking service always sets the deadline; if it is still absent,
	// default to now rather than drop the whole booking.
	deadline, err := ptypes.Timestamp(e.GetArrivalDeadline())
	if err != nil {
		deadline = time.Now()
	}

	return domain.Cargo{
		TrackingID:      domain.TrackingID(e.GetTrackingId()),
		Origin:          domain.UNLocode(e.GetOrigin()),
		Destination:     domain.UNLocode(e.GetDestination()),
		ArrivalDeadline: deadline,
	}
}
