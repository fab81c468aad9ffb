package domain

// VoyageNumber uniquely identifies a particular voyage.
type VoyageNumber string

// Voyage is a voyage known to the system. The handling service only checks
// that a reported voyage exists; schedules live in the booking service.
type Voyage struct {
	Number VoyageNumber
}

// PopulateVoyages stores the sample voyages in the given repository.
// These voyages are hard-coded into the current pathfinder. Make sure
// they exist.
func PopulateVoyages(r Repository[VoyageNumber, Voyage]) error {
	for _, n := range []VoyageNumber{"0100S", "0200T", "0300A", "0301S", "0400S"} {
		if err := r.Store(n, Voyage{Number: n}); err != nil {
			return err
		}
	}
	return nil
}
