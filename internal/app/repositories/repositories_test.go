package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
)

// Sort orders are part of the read contract: the public site renders lists
// exactly as the store returns them.

func TestFacultyListOrder(t *testing.T) {
	sql, _, err := NewFacultyRepository(nil).listQuery()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY display_order ASC")
}

func TestStudentListOrder(t *testing.T) {
	sql, _, err := NewStudentRepository(nil).listQuery()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY tier ASC, display_order ASC")
}

func TestEventListOrder(t *testing.T) {
	sql, _, err := NewEventRepository(nil).listQuery()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY display_order DESC")
}

func TestClubMemberListOrder(t *testing.T) {
	sql, _, err := NewClubMemberRepository(nil).listQuery()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY created_at ASC, id ASC")
}

func TestReportListOrder(t *testing.T) {
	sql, _, err := NewReportRepository(nil).listQuery()
	require.NoError(t, err)
	assert.Contains(t, sql, "ORDER BY created_at ASC, id ASC")
}

// With no pool configured, reads degrade to empty results and writes are
// rejected, so the public site stays up against an unconfigured backend.

func TestDegradedReadsReturnEmpty(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(nil)

	faculty, err := repos.FacultyRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, faculty)

	students, err := repos.StudentRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, students)

	members, err := repos.ClubMemberRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)

	events, err := repos.EventRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)

	reports, err := repos.ReportRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestDegradedWritesRejected(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(nil)

	_, err := repos.FacultyRepository.Create(ctx, &models.FacultyMember{Name: "Dr. Rao"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = repos.EventRepository.Create(ctx, &models.Event{Title: "Spring Fest"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	err = repos.ReportRepository.Delete(ctx, "rep-1")
	assert.ErrorIs(t, err, ErrNotConfigured)

	order := 3
	err = repos.StudentRepository.Update(ctx, "stu-1", &models.StudentMemberPatch{Order: &order})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDegradedCountsAreZero(t *testing.T) {
	ctx := context.Background()
	repos := NewRepositories(nil)

	count, err := repos.EventRepository.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// The admin lookup must fail, not report "no", when the store is missing:
// the session guard turns the failure into a denial either way, but a
// silent false would hide the misconfiguration.
func TestDegradedAdminLookupFails(t *testing.T) {
	repos := NewRepositories(nil)

	isAdmin, err := repos.AdminRepository.Exists(context.Background(), "u-1")

	assert.ErrorIs(t, err, apperrors.ErrBackendUnavailable)
	assert.False(t, isAdmin)
}

func TestErrNotConfiguredIsBackendUnavailable(t *testing.T) {
	assert.ErrorIs(t, ErrNotConfigured, apperrors.ErrBackendUnavailable)
}
