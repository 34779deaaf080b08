package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
	"github.com/devang/kalasangam/internal/pkg/metrics"
	"github.com/devang/kalasangam/internal/pkg/validation"
)

// EventRepository is the data access the event service depends on.
type EventRepository interface {
	List(ctx context.Context) ([]*models.Event, error)
	Create(ctx context.Context, event *models.Event) (string, error)
	Update(ctx context.Context, id string, patch *models.EventPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// EventService defines the interface for event content operations
type EventService interface {
	List(ctx context.Context) ([]*models.Event, error)
	Create(ctx context.Context, event *models.Event) (string, error)
	Update(ctx context.Context, id string, patch *models.EventPatch) error
	Delete(ctx context.Context, id string) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	repo EventRepository
}

// NewEventService creates a new event service instance
func NewEventService(repo EventRepository) EventService {
	return &eventServiceImpl{repo: repo}
}

// validateEvent validates event data before store operations
func (s *eventServiceImpl) validateEvent(event *models.Event) error {
	if event == nil {
		return fmt.Errorf("%w: event is nil", apperrors.ErrValidationFailed)
	}

	missing := validation.RequireNonEmpty(map[string]string{
		"title":       event.Title,
		"date":        event.Date,
		"location":    event.Location,
		"description": event.Description,
	})
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing required fields: %s", apperrors.ErrValidationFailed, strings.Join(missing, ", "))
	}

	if !validation.IsValidEventCategory(string(event.Category)) {
		return fmt.Errorf("%w: unknown event category %q", apperrors.ErrValidationFailed, event.Category)
	}

	return nil
}

// List retrieves all events, newest display order first
func (s *eventServiceImpl) List(ctx context.Context) ([]*models.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	return events, nil
}

// Create validates and stores a new event. A missing image list is stored
// as an empty gallery, never null.
func (s *eventServiceImpl) Create(ctx context.Context, event *models.Event) (string, error) {
	if err := s.validateEvent(event); err != nil {
		return "", err
	}

	if event.Images == nil {
		event.Images = []string{}
	}

	id, err := s.repo.Create(ctx, event)
	if err != nil {
		return "", fmt.Errorf("error creating event: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("events", "create").Inc()
	return id, nil
}

// Update applies a partial update to an existing event
func (s *eventServiceImpl) Update(ctx context.Context, id string, patch *models.EventPatch) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid event id", apperrors.ErrValidationFailed)
	}
	if patch == nil {
		return fmt.Errorf("%w: patch is nil", apperrors.ErrValidationFailed)
	}
	if patch.Category != nil && !validation.IsValidEventCategory(string(*patch.Category)) {
		return fmt.Errorf("%w: unknown event category %q", apperrors.ErrValidationFailed, *patch.Category)
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("error updating event: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("events", "update").Inc()
	return nil
}

// Delete removes an event by id
func (s *eventServiceImpl) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid event id", apperrors.ErrValidationFailed)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting event: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("events", "delete").Inc()
	return nil
}
