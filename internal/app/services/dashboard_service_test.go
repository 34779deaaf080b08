package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devang/kalasangam/internal/app/models"
)

type countOnlyRepo struct {
	count int64
	err   error
}

func (r *countOnlyRepo) Count(ctx context.Context) (int64, error) {
	return r.count, r.err
}

type countFacultyRepo struct{ countOnlyRepo }

func (r *countFacultyRepo) List(ctx context.Context) ([]*models.FacultyMember, error) { return nil, nil }
func (r *countFacultyRepo) Create(ctx context.Context, m *models.FacultyMember) (string, error) {
	return "", nil
}
func (r *countFacultyRepo) Update(ctx context.Context, id string, p *models.FacultyMemberPatch) error {
	return nil
}
func (r *countFacultyRepo) Delete(ctx context.Context, id string) error { return nil }

type countStudentRepo struct{ countOnlyRepo }

func (r *countStudentRepo) List(ctx context.Context) ([]*models.StudentMember, error) {
	return nil, nil
}
func (r *countStudentRepo) Create(ctx context.Context, m *models.StudentMember) (string, error) {
	return "", nil
}
func (r *countStudentRepo) Update(ctx context.Context, id string, p *models.StudentMemberPatch) error {
	return nil
}
func (r *countStudentRepo) Delete(ctx context.Context, id string) error { return nil }

type countClubMemberRepo struct{ countOnlyRepo }

func (r *countClubMemberRepo) List(ctx context.Context) ([]*models.ClubMember, error) {
	return nil, nil
}
func (r *countClubMemberRepo) Create(ctx context.Context, m *models.ClubMember) (string, error) {
	return "", nil
}
func (r *countClubMemberRepo) Update(ctx context.Context, id string, p *models.ClubMemberPatch) error {
	return nil
}
func (r *countClubMemberRepo) Delete(ctx context.Context, id string) error { return nil }

type countEventRepo struct{ countOnlyRepo }

func (r *countEventRepo) List(ctx context.Context) ([]*models.Event, error) { return nil, nil }
func (r *countEventRepo) Create(ctx context.Context, m *models.Event) (string, error) {
	return "", nil
}
func (r *countEventRepo) Update(ctx context.Context, id string, p *models.EventPatch) error {
	return nil
}
func (r *countEventRepo) Delete(ctx context.Context, id string) error { return nil }

type countReportRepo struct{ countOnlyRepo }

func (r *countReportRepo) List(ctx context.Context) ([]*models.Report, error) { return nil, nil }
func (r *countReportRepo) Create(ctx context.Context, m *models.Report) (string, error) {
	return "", nil
}
func (r *countReportRepo) Update(ctx context.Context, id string, p *models.ReportPatch) error {
	return nil
}
func (r *countReportRepo) Delete(ctx context.Context, id string) error { return nil }

func TestDashboardStats(t *testing.T) {
	svc := NewDashboardService(
		&countFacultyRepo{countOnlyRepo{count: 4}},
		&countStudentRepo{countOnlyRepo{count: 12}},
		&countClubMemberRepo{countOnlyRepo{count: 30}},
		&countEventRepo{countOnlyRepo{count: 7}},
		&countReportRepo{countOnlyRepo{count: 2}},
	)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.Faculty)
	assert.EqualValues(t, 12, stats.Students)
	assert.EqualValues(t, 30, stats.ClubMembers)
	assert.EqualValues(t, 7, stats.Events)
	assert.EqualValues(t, 2, stats.Reports)
}

func TestDashboardStatsPropagatesFailure(t *testing.T) {
	svc := NewDashboardService(
		&countFacultyRepo{countOnlyRepo{count: 4}},
		&countStudentRepo{countOnlyRepo{err: errors.New("count failed")}},
		&countClubMemberRepo{countOnlyRepo{count: 30}},
		&countEventRepo{countOnlyRepo{count: 7}},
		&countReportRepo{countOnlyRepo{count: 2}},
	)

	_, err := svc.Stats(context.Background())

	assert.Error(t, err, "one failing count fails the whole dashboard")
}
