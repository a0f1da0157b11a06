package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amaldanavina3112/chennai-evento-connect/internal/database"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/model"
	"github.com/amaldanavina3112/chennai-evento-connect/internal/sqlerr"
	"github.com/jackc/pgx/v5"
)

const (
	eventColTitle            = "title"
	eventColDescription      = "description"
	eventColDate             = "date"
	eventColTime             = "time"
	eventColLocation         = "location"
	eventColAddress          = "address"
	eventColPrice            = "price"
	eventColImageURL         = "image_url"
	eventColCategory         = "category"
	eventColUserID           = "user_id"
	eventColMaxAttendees     = "max_attendees"
	eventColStatus           = "status"
	eventColCurrentAttendees = "current_attendees"

	// DATE and TIME are returned as text so they keep their postgres format.
	eventColumns = "id, title, description, date::text AS date, time::text AS time, location, address, " +
		"price, image_url, category, user_id, max_attendees, current_attendees, status, created_at"
)

type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

// List returns every event, earliest date first.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	rows, err := r.db.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY date ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Event])
	if err != nil {
		return nil, fmt.Errorf("failed to collect events: %w", err)
	}
	return events, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*model.Event, error) {
	rows, err := r.db.Query(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get event %s: %w", id, err)
	}

	event, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Event])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect event %s: %w", id, err)
	}
	return event, nil
}

// Create inserts only the fields present in params; the others take their
// column defaults. current_attendees cannot be set on create.
func (r *EventRepository) Create(ctx context.Context, params model.CreateEventParams) (*model.Event, error) {
	set := &columnSet{}
	setIfPresent(set, eventColTitle, params.Title)
	setIfPresent(set, eventColDescription, params.Description)
	setIfPresent(set, eventColDate, params.Date)
	setIfPresent(set, eventColTime, params.Time)
	setIfPresent(set, eventColLocation, params.Location)
	setIfPresent(set, eventColAddress, params.Address)
	setIfPresent(set, eventColPrice, params.Price)
	setIfPresent(set, eventColImageURL, params.ImageURL)
	setIfPresent(set, eventColCategory, params.Category)
	setIfPresent(set, eventColUserID, params.UserID)
	setIfPresent(set, eventColMaxAttendees, params.MaxAttendees)
	setIfPresent(set, eventColStatus, params.Status)

	if set.empty() {
		return nil, ErrNoFields
	}

	query := `INSERT INTO events (` + set.names() + `) VALUES (` + set.placeholders() + `) RETURNING ` + eventColumns

	var event *model.Event
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, set.args...)
		if err != nil {
			return err
		}
		event, err = pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Event])
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", sqlerr.WithTable("events", err))
	}
	return event, nil
}

// Update changes only the fields set in params. current_attendees is
// written as given, without any bound check against max_attendees.
func (r *EventRepository) Update(ctx context.Context, id string, params model.UpdateEventParams) (*model.Event, error) {
	set := &columnSet{}
	setIfPresent(set, eventColTitle, params.Title)
	setIfPresent(set, eventColDescription, params.Description)
	setIfPresent(set, eventColDate, params.Date)
	setIfPresent(set, eventColTime, params.Time)
	setIfPresent(set, eventColLocation, params.Location)
	setIfPresent(set, eventColAddress, params.Address)
	setIfPresent(set, eventColPrice, params.Price)
	setIfPresent(set, eventColImageURL, params.ImageURL)
	setIfPresent(set, eventColCategory, params.Category)
	setIfPresent(set, eventColUserID, params.UserID)
	setIfPresent(set, eventColMaxAttendees, params.MaxAttendees)
	setIfPresent(set, eventColStatus, params.Status)
	setIfPresent(set, eventColCurrentAttendees, params.CurrentAttendees)

	if set.empty() {
		return nil, ErrNoFields
	}

	query := `UPDATE events SET ` + set.assignments() +
		` WHERE id = ` + set.nextPlaceholder() +
		` RETURNING ` + eventColumns
	args := append(set.args, id)

	var event *model.Event
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		event, err = pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Event])
		return err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update event %s: %w", id, sqlerr.WithTable("events", err))
	}
	return event, nil
}

// Delete reports whether an event was removed. Its bookings cascade.
func (r *EventRepository) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		deleted, err = deleteByID(ctx, tx, `DELETE FROM events WHERE id = $1 RETURNING id`, id)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to delete event %s: %w", id, err)
	}
	return deleted, nil
}

// Search matches term as a case-insensitive substring of the title or the
// description, restricted to active events dated today or later.
func (r *EventRepository) Search(ctx context.Context, term string) ([]model.Event, error) {
	pattern := "%" + term + "%"

	rows, err := r.db.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE (title ILIKE $1 OR description ILIKE $1)
			AND date >= CURRENT_DATE
			AND status = 'active'
		ORDER BY date ASC`,
		pattern,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search events: %w", err)
	}

	events, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Event])
	if err != nil {
		return nil, fmt.Errorf("failed to collect search results: %w", err)
	}
	return events, nil
}

// Availability returns the seat summary of an event.
func (r *EventRepository) Availability(ctx context.Context, id string) (*model.Availability, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			max_attendees,
			current_attendees,
			(max_attendees - current_attendees) AS available_spots
		FROM events
		WHERE id = $1`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get availability for event %s: %w", id, err)
	}

	availability, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[model.Availability])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect availability for event %s: %w", id, err)
	}
	return availability, nil
}
