package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
)

type fakeFacultyRepository struct {
	created []*models.FacultyMember
}

func (f *fakeFacultyRepository) List(ctx context.Context) ([]*models.FacultyMember, error) {
	return []*models.FacultyMember{}, nil
}

func (f *fakeFacultyRepository) Create(ctx context.Context, member *models.FacultyMember) (string, error) {
	f.created = append(f.created, member)
	return "fac-1", nil
}

func (f *fakeFacultyRepository) Update(ctx context.Context, id string, patch *models.FacultyMemberPatch) error {
	return nil
}

func (f *fakeFacultyRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeFacultyRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func validFaculty() *models.FacultyMember {
	return &models.FacultyMember{
		Name:        "Dr. Meera Rao",
		Designation: "Professor",
		Department:  "Performing Arts",
		Role:        "Faculty Coordinator",
		Order:       1,
	}
}

func TestFacultyCreateRoundTrip(t *testing.T) {
	repo := &fakeFacultyRepository{}
	svc := NewFacultyService(repo)

	id, err := svc.Create(context.Background(), validFaculty())

	require.NoError(t, err)
	assert.Equal(t, "fac-1", id)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Dr. Meera Rao", repo.created[0].Name)
}

func TestFacultyCreateMissingRequiredField(t *testing.T) {
	repo := &fakeFacultyRepository{}
	svc := NewFacultyService(repo)

	member := validFaculty()
	member.Designation = "   "

	_, err := svc.Create(context.Background(), member)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repo.created)
}

func TestFacultyCreateInvalidEmail(t *testing.T) {
	repo := &fakeFacultyRepository{}
	svc := NewFacultyService(repo)

	member := validFaculty()
	bad := "not-an-email"
	member.Email = &bad

	_, err := svc.Create(context.Background(), member)

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestFacultyUpdateValidatesEmailPatch(t *testing.T) {
	repo := &fakeFacultyRepository{}
	svc := NewFacultyService(repo)

	bad := "not-an-email"
	err := svc.Update(context.Background(), "fac-1", &models.FacultyMemberPatch{Email: &bad})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
