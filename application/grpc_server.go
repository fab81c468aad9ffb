package application

import (
	"context"
	"errors"
	"time"

	"handling/domain"
	"handling/pb"

	"github.com/golang/protobuf/ptypes"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type grpcServer struct {
	service Service
	pb.UnimplementedHandlingServiceServer
}

// NewServer returns a gRPC server exposing the handling service.
func NewServer(s Service) pb.HandlingServiceServer {
	return &grpcServer{s, pb.UnimplementedHandlingServiceServer{}}
}

func (s *grpcServer) RegisterHandlingEvent(ctx context.Context, req *pb.RegisterHandlingEventRequest) (*empty.Empty, error) {
	completed := time.Now()
	if ts := req.GetCompleted(); ts != nil {
		t, err := ptypes.Timestamp(ts)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		completed = t
	}

	eventType, err := decodeHandlingEventType(req.GetEventType())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "event type is invalid")
	}

	if err := s.service.RegisterHandlingEvent(
		ctx,
		completed,
		domain.TrackingID(req.GetId()),
		domain.VoyageNumber(req.GetVoyageNumber()),
		domain.UNLocode(req.GetUnLocode()),
		eventType,
	); err != nil {
		return nil, encodeError(err)
	}

	return &empty.Empty{}, nil
}

func encodeError(err error) error {
	switch {
	case errors.Is(err, ErrInvalidArgument) || errors.Is(err, domain.ErrParsing):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
