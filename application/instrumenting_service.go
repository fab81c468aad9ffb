package application

import (
	"context"
	"time"

	"handling/domain"

	"github.com/go-kit/kit/metrics"
)

type instrumentingService struct {
	requestCount   metrics.Counter
	requestLatency metrics.Histogram
	next           Service
}

// NewInstrumentingService returns an instance of an instrumenting Service.
func NewInstrumentingService(counter metrics.Counter, latency metrics.Histogram, s Service) Service {
	return &instrumentingService{
		requestCount:   counter,
		requestLatency: latency,
		next:           s,
	}
}

func (s *instrumentingService) RegisterHandlingEvent(ctx context.Context, completed time.Time, id domain.TrackingID,
	voyageNumber domain.VoyageNumber, unLocode domain.UNLocode, eventType domain.HandlingEventType) error {
	defer func(begin time.Time) {
		s.requestCount.With("method", "register_handling_event").Add(1)
		s.requestLatency.With("method", "register_handling_event").Observe(time.Since(begin).Seconds())
	}(time.Now())

	return s.next.RegisterHandlingEvent(ctx, completed, id, voyageNumber, unLocode, eventType)
}
