package application

import (
	"context"
	"time"

	"handling/domain"

	"github.com/go-kit/kit/log"
)

type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service.
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{logger, s}
}

func (s *loggingService) RegisterHandlingEvent(ctx context.Context, completed time.Time, id domain.TrackingID,
	voyageNumber domain.VoyageNumber, unLocode domain.UNLocode, eventType domain.HandlingEventType) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "register_handling_event",
			"tracking_id", id,
			"location", unLocode,
			"voyage", voyageNumber,
			"event_type", eventType,
			"completed", completed,
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RegisterHandlingEvent(ctx, completed, id, voyageNumber, unLocode, eventType)
}
