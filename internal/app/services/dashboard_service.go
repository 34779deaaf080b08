package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/devang/kalasangam/internal/app/models/dto"
)

// DashboardService aggregates collection counts for the admin overview page.
type DashboardService interface {
	Stats(ctx context.Context) (*dto.DashboardStats, error)
}

type dashboardServiceImpl struct {
	faculty  FacultyRepository
	students StudentRepository
	members  ClubMemberRepository
	events   EventRepository
	reports  ReportRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(
	faculty FacultyRepository,
	students StudentRepository,
	members ClubMemberRepository,
	events EventRepository,
	reports ReportRepository,
) DashboardService {
	return &dashboardServiceImpl{
		faculty:  faculty,
		students: students,
		members:  members,
		events:   events,
		reports:  reports,
	}
}

// Stats counts every collection concurrently. One failing count fails the
// whole call; the dashboard shows either a complete picture or an error.
func (s *dashboardServiceImpl) Stats(ctx context.Context) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.Faculty, err = s.faculty.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Students, err = s.students.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ClubMembers, err = s.members.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Events, err = s.events.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Reports, err = s.reports.Count(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("error aggregating dashboard stats: %w", err)
	}
	return stats, nil
}
