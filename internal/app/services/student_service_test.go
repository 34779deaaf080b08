package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
)

type fakeStudentRepository struct {
	created []*models.StudentMember
	updates []string
}

func (f *fakeStudentRepository) List(ctx context.Context) ([]*models.StudentMember, error) {
	return []*models.StudentMember{}, nil
}

func (f *fakeStudentRepository) Create(ctx context.Context, student *models.StudentMember) (string, error) {
	f.created = append(f.created, student)
	return "stu-1", nil
}

func (f *fakeStudentRepository) Update(ctx context.Context, id string, patch *models.StudentMemberPatch) error {
	f.updates = append(f.updates, id)
	return nil
}

func (f *fakeStudentRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (f *fakeStudentRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

func TestStudentCreateValid(t *testing.T) {
	repo := &fakeStudentRepository{}
	svc := NewStudentService(repo)

	id, err := svc.Create(context.Background(), &models.StudentMember{
		Name:       "Asha Pillai",
		Role:       "Secretary",
		Department: "Fine Arts",
		Tier:       2,
	})

	require.NoError(t, err)
	assert.Equal(t, "stu-1", id)
	assert.Len(t, repo.created, 1)
}

func TestStudentCreateRejectsTierOutOfRange(t *testing.T) {
	repo := &fakeStudentRepository{}
	svc := NewStudentService(repo)

	for _, tier := range []int{0, 5, -1} {
		_, err := svc.Create(context.Background(), &models.StudentMember{
			Name:       "Asha Pillai",
			Role:       "Secretary",
			Department: "Fine Arts",
			Tier:       tier,
		})
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "tier %d must be rejected", tier)
	}
	assert.Empty(t, repo.created)
}

func TestStudentUpdateRejectsBadTierPatch(t *testing.T) {
	repo := &fakeStudentRepository{}
	svc := NewStudentService(repo)

	tier := 9
	err := svc.Update(context.Background(), "stu-1", &models.StudentMemberPatch{Tier: &tier})

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	assert.Empty(t, repo.updates)
}

func TestStudentUpdatePartialPatchPasses(t *testing.T) {
	repo := &fakeStudentRepository{}
	svc := NewStudentService(repo)

	role := "President"
	err := svc.Update(context.Background(), "stu-1", &models.StudentMemberPatch{Role: &role})

	require.NoError(t, err)
	assert.Equal(t, []string{"stu-1"}, repo.updates)
}
