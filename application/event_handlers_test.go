package application

import (
	"errors"
	"sync"
	"testing"
	"time"

	"handling/domain"
	"handling/infrastructure"
	booking "handling/pb/booking"

	"github.com/golang/protobuf/ptypes"
)

func TestNewCargoBookedEventHandler(t *testing.T) {
	cargos := infrastructure.NewInmemRepository[domain.TrackingID, domain.Cargo]()
	eh := NewCargoBookedEventHandler(cargos)

	deadline := time.Now().AddDate(0, 1, 0)
	pbDeadline, err := ptypes.TimestampProto(deadline)
	if err != nil {
		t.Fatal(err)
	}
	event := &booking.NewCargoBooked{
		TrackingId:      "001",
		Origin:          "AUMEL",
		Destination:     "SESTO",
		ArrivalDeadline: pbDeadline,
	}

	// Delivering the same event twice must leave the repository in the
	// same state as delivering it once.
	if err := eh.Handle(event); err != nil {
		t.Fatal(err)
	}
	if err := eh.Handle(event); err != nil {
		t.Fatal(err)
	}

	cs, err := cargos.FindAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(cs) != 1 {
		t.Fatalf("expected 1 cargo, got %d", len(cs))
	}

	c, err := cargos.Find("001")
	if err != nil {
		t.Fatal(err)
	}
	if c.Origin != domain.AUMEL || c.Destination != domain.SESTO {
		t.Fatalf("unexpected cargo: %v", c)
	}
	if !c.ArrivalDeadline.Equal(deadline) {
		t.Fatalf("expected deadline %v, got %v", deadline, c.ArrivalDeadline)
	}
}

func TestNewCargoBookedEventHandlerMissingDeadline(t *testing.T) {
	cargos := infrastructure.NewInmemRepository[domain.TrackingID, domain.Cargo]()
	eh := NewCargoBookedEventHandler(cargos)

	if err := eh.Handle(&booking.NewCargoBooked{TrackingId: "001"}); err != nil {
		t.Fatal(err)
	}

	c, err := cargos.Find("001")
	if err != nil {
		t.Fatal(err)
	}
	if c.ArrivalDeadline.IsZero() {
		t.Fatal("expected missing arrival deadline to default to now")
	}
}

func TestCargoDestinationChangedEventHandler(t *testing.T) {
	cargos := infrastructure.NewInmemRepository[domain.TrackingID, domain.Cargo]()
	if err := cargos.Store("001", domain.Cargo{
		TrackingID:  "001",
		Origin:      domain.AUMEL,
		Destination: domain.SESTO,
	}); err != nil {
		t.Fatal(err)
	}
	eh := NewCargoDestinationChangedEventHandler(cargos)

	if err := eh.Handle(&booking.CargoDestinationChanged{TrackingId: "001", Destination: "FIHEL"}); err != nil {
		t.Fatal(err)
	}

	c, err := cargos.Find("001")
	if err != nil {
		t.Fatal(err)
	}
	if c.Destination != domain.FIHEL {
		t.Fatalf("expected FIHEL, got %s", c.Destination)
	}
	if c.Origin != domain.AUMEL {
		t.Fatalf("expected origin to be untouched, got %s", c.Origin)
	}
}

func TestCargoDestinationChangedEventHandlerUnknownCargo(t *testing.T) {
	cargos := infrastructure.NewInmemRepository[domain.TrackingID, domain.Cargo]()
	eh := NewCargoDestinationChangedEventHandler(cargos)

	err := eh.Handle(&booking.CargoDestinationChanged{TrackingId: "666", Destination: "FIHEL"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCargoDestinationChangedEventHandlerConcurrent(t *testing.T) {
	cargos := infrastructure.NewInmemRepository[domain.TrackingID, domain.Cargo]()
	if err := cargos.Store("001", domain.Cargo{TrackingID: "001", Destination: domain.SESTO}); err != nil {
		t.Fatal(err)
	}
	eh := NewCargoDestinationChangedEventHandler(cargos)

	var wg sync.WaitGroup
	for _, dest := range []string{"FIHEL", "NLRTM"} {
		wg.Add(1)
		go func(dest string) {
			defer wg.Done()
			if err := eh.Handle(&booking.CargoDestinationChanged{TrackingId: "001", Destination: dest}); err != nil {
				t.Error(err)
			}
		}(dest)
	}
	wg.Wait()

	// Last write wins; either destination is acceptable, but never a
	// corrupted mix.
	c, err := cargos.Find("001")
	if err != nil {
		t.Fatal(err)
	}
	if c.Destination != domain.FIHEL && c.Destination != domain.NLRTM {
		t.Fatalf("unexpected destination: %s", c.Destination)
	}
}
