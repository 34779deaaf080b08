package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
)

type fakeEventRepository struct {
	created []*models.Event
	deleted []string
	store   map[string]*models.Event
}

func newFakeEventRepository() *fakeEventRepository {
	return &fakeEventRepository{store: map[string]*models.Event{}}
}

func (f *fakeEventRepository) List(ctx context.Context) ([]*models.Event, error) {
	events := []*models.Event{}
	for _, e := range f.store {
		events = append(events, e)
	}
	return events, nil
}

func (f *fakeEventRepository) Create(ctx context.Context, event *models.Event) (string, error) {
	id := "evt-1"
	event.ID = id
	f.created = append(f.created, event)
	f.store[id] = event
	return id, nil
}

func (f *fakeEventRepository) Update(ctx context.Context, id string, patch *models.EventPatch) error {
	if _, ok := f.store[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	return nil
}

func (f *fakeEventRepository) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	if _, ok := f.store[id]; !ok {
		return apperrors.ErrResourceNotFound
	}
	delete(f.store, id)
	return nil
}

func (f *fakeEventRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.store)), nil
}

func TestEventCreateStoresExactFields(t *testing.T) {
	repo := newFakeEventRepository()
	svc := NewEventService(repo)

	event := &models.Event{
		Title:       "Spring Fest",
		Date:        "2026-03-14",
		Location:    "Main Auditorium",
		Description: "Annual spring celebration with performances from every wing.",
		Category:    models.CategoryCultural,
		Featured:    true,
		Order:       12,
	}

	id, err := svc.Create(context.Background(), event)

	require.NoError(t, err)
	assert.Equal(t, "evt-1", id)
	require.Len(t, repo.created, 1)
	stored := repo.created[0]
	assert.Equal(t, "Spring Fest", stored.Title)
	assert.Equal(t, models.CategoryCultural, stored.Category)
	assert.True(t, stored.Featured)
	require.NotNil(t, stored.Images, "a missing gallery is stored as empty, not null")
	assert.Empty(t, stored.Images)
}

func TestEventCreateRejectsUnknownCategory(t *testing.T) {
	repo := newFakeEventRepository()
	svc := NewEventService(repo)

	_, err := svc.Create(context.Background(), &models.Event{
		Title:       "Mystery Night",
		Date:        "2026-04-01",
		Location:    "Quad",
		Description: "An event of uncertain genre.",
		Category:    models.EventCategory("circus"),
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repo.created)
}

func TestEventCreateRejectsMissingTitle(t *testing.T) {
	repo := newFakeEventRepository()
	svc := NewEventService(repo)

	_, err := svc.Create(context.Background(), &models.Event{
		Date:        "2026-04-01",
		Location:    "Quad",
		Description: "Untitled.",
		Category:    models.CategoryMusic,
	})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEventUpdateValidatesCategoryPatch(t *testing.T) {
	repo := newFakeEventRepository()
	svc := NewEventService(repo)

	bad := models.EventCategory("circus")
	err := svc.Update(context.Background(), "evt-1", &models.EventPatch{Category: &bad})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestEventDeleteMissingRecord(t *testing.T) {
	repo := newFakeEventRepository()
	svc := NewEventService(repo)

	err := svc.Delete(context.Background(), "evt-404")

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestEventDeleteEmptyID(t *testing.T) {
	repo := newFakeEventRepository()
	svc := NewEventService(repo)

	err := svc.Delete(context.Background(), "  ")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repo.deleted, "no repository call for a blank id")
}
