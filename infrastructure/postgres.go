package infrastructure

import (
	"context"
	"errors"

	"handling/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresHandlingEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresHandlingEventRepository returns a durable implementation of
// the handling event repository, for deployments where the registered
// events must survive a restart.
func NewPostgresHandlingEventRepository(pool *pgxpool.Pool) domain.Repository[domain.TrackingID, domain.HandlingEvent] {
	return &postgresHandlingEventRepository{pool}
}

func (r *postgresHandlingEventRepository) Store(id domain.TrackingID, e domain.HandlingEvent) error {
	_, err := r.pool.Exec(context.Background(), `
INSERT INTO handling_events(tracking_id, event_type, location, voyage_number)
VALUES($1, $2, $3, $4)
ON CONFLICT (tracking_id) DO UPDATE
SET event_type = EXCLUDED.event_type,
    location = EXCLUDED.location,
    voyage_number = EXCLUDED.voyage_number`,
		string(id), int(e.Activity.Type), string(e.Activity.Location), string(e.Activity.VoyageNumber))
	return err
}

func (r *postgresHandlingEventRepository) Find(id domain.TrackingID) (domain.HandlingEvent, error) {
	var (
		trackingID, location, voyageNumber string
		eventType                          int
	)
	err := r.pool.QueryRow(context.Background(), `
SELECT tracking_id, event_type, location, voyage_number
FROM handling_events WHERE tracking_id = $1`, string(id)).
		Scan(&trackingID, &eventType, &location, &voyageNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.HandlingEvent{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.HandlingEvent{}, err
	}
	return assembleHandlingEvent(trackingID, eventType, location, voyageNumber), nil
}

func (r *postgresHandlingEventRepository) FindAll() ([]domain.HandlingEvent, error) {
	rows, err := r.pool.Query(context.Background(), `
SELECT tracking_id, event_type, location, voyage_number FROM handling_events`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var es []domain.HandlingEvent
	for rows.Next() {
		var (
			trackingID, location, voyageNumber string
			eventType                          int
		)
		if err := rows.Scan(&trackingID, &eventType, &location, &voyageNumber); err != nil {
			return nil, err
		}
		es = append(es, assembleHandlingEvent(trackingID, eventType, location, voyageNumber))
	}
	return es, rows.Err()
}

func assembleHandlingEvent(trackingID string, eventType int, location, voyageNumber string) domain.HandlingEvent {
	return domain.HandlingEvent{
		TrackingID: domain.TrackingID(trackingID),
		Activity: domain.HandlingActivity{
			Type:         domain.HandlingEventType(eventType),
			Location:     domain.UNLocode(location),
			VoyageNumber: domain.VoyageNumber(voyageNumber),
		},
	}
}

// EnsureSchema creates the handling_events table if it does not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS handling_events (
  tracking_id text PRIMARY KEY,
  event_type int NOT NULL,
  location text NOT NULL,
  voyage_number text NOT NULL
);`)
	return err
}
