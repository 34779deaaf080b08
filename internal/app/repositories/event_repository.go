package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/logger"
)

// EventRepository handles the events collection. The gallery shows newest
// first, which admins control through Order, so List sorts descending.
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *EventRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select("id", "title", "event_date", "location", "description", "category", "featured", "is_upcoming", "live_link", "images", "display_order").
		From("events").
		OrderBy("display_order DESC").
		ToSql()
}

// List retrieves all events ordered for the gallery.
func (r *EventRepository) List(ctx context.Context) ([]*models.Event, error) {
	if r.db == nil {
		logger.Warn().Msg("Database is not configured; events list degrades to empty")
		return []*models.Event{}, nil
	}

	sql, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list events query")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e := &models.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Location, &e.Description, &e.Category, &e.Featured, &e.IsUpcoming, &e.LiveLink, &e.Images, &e.Order); err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		if e.Images == nil {
			e.Images = []string{}
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Create inserts an event and returns the store-assigned id.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (string, error) {
	if r.db == nil {
		return "", ErrNotConfigured
	}

	images := event.Images
	if images == nil {
		images = []string{}
	}

	sql, args, err := r.sb.Insert("events").
		Columns("title", "event_date", "location", "description", "category", "featured", "is_upcoming", "live_link", "images", "display_order").
		Values(event.Title, event.Date, event.Location, event.Description, event.Category, event.Featured, event.IsUpcoming, event.LiveLink, images, event.Order).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create event query: %w", err)
	}

	var id string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return "", fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

// Update applies the non-nil patch fields and stamps updated_at.
func (r *EventRepository) Update(ctx context.Context, id string, patch *models.EventPatch) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	set := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Date != nil {
		set["event_date"] = *patch.Date
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Featured != nil {
		set["featured"] = *patch.Featured
	}
	if patch.IsUpcoming != nil {
		set["is_upcoming"] = *patch.IsUpcoming
	}
	if patch.LiveLink != nil {
		set["live_link"] = *patch.LiveLink
	}
	if patch.Images != nil {
		set["images"] = *patch.Images
	}
	if patch.Order != nil {
		set["display_order"] = *patch.Order
	}

	sql, args, err := r.sb.Update("events").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("eventID", id).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes an event by id.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	sql, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("eventID", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of event records.
func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "events")
}
