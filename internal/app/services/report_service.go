package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
	"github.com/devang/kalasangam/internal/pkg/metrics"
)

// ReportRepository is the data access the report service depends on.
type ReportRepository interface {
	List(ctx context.Context) ([]*models.Report, error)
	Create(ctx context.Context, report *models.Report) (string, error)
	Update(ctx context.Context, id string, patch *models.ReportPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ReportService defines the interface for annual report operations
type ReportService interface {
	List(ctx context.Context) ([]*models.Report, error)
	Create(ctx context.Context, report *models.Report) (string, error)
	Update(ctx context.Context, id string, patch *models.ReportPatch) error
	Delete(ctx context.Context, id string) error
}

type reportServiceImpl struct {
	repo ReportRepository
}

// NewReportService creates a new report service instance
func NewReportService(repo ReportRepository) ReportService {
	return &reportServiceImpl{repo: repo}
}

// List retrieves all reports in insertion order
func (s *reportServiceImpl) List(ctx context.Context) ([]*models.Report, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reports: %w", err)
	}
	return reports, nil
}

// Create validates and stores a new report
func (s *reportServiceImpl) Create(ctx context.Context, report *models.Report) (string, error) {
	if report == nil {
		return "", fmt.Errorf("%w: report is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(report.Title) == "" {
		return "", fmt.Errorf("%w: title cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(report.URL) == "" {
		return "", fmt.Errorf("%w: url cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.repo.Create(ctx, report)
	if err != nil {
		return "", fmt.Errorf("error creating report: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("reports", "create").Inc()
	return id, nil
}

// Update applies a partial update to an existing report
func (s *reportServiceImpl) Update(ctx context.Context, id string, patch *models.ReportPatch) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid report id", apperrors.ErrValidationFailed)
	}
	if patch == nil {
		return fmt.Errorf("%w: patch is nil", apperrors.ErrValidationFailed)
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("error updating report: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("reports", "update").Inc()
	return nil
}

// Delete removes a report by id
func (s *reportServiceImpl) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid report id", apperrors.ErrValidationFailed)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting report: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("reports", "delete").Inc()
	return nil
}
