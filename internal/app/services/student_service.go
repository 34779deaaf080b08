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

// StudentRepository is the data access the student service depends on.
type StudentRepository interface {
	List(ctx context.Context) ([]*models.StudentMember, error)
	Create(ctx context.Context, student *models.StudentMember) (string, error)
	Update(ctx context.Context, id string, patch *models.StudentMemberPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// StudentService defines the interface for student-body content operations
type StudentService interface {
	List(ctx context.Context) ([]*models.StudentMember, error)
	Create(ctx context.Context, student *models.StudentMember) (string, error)
	Update(ctx context.Context, id string, patch *models.StudentMemberPatch) error
	Delete(ctx context.Context, id string) error
}

type studentServiceImpl struct {
	repo StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(repo StudentRepository) StudentService {
	return &studentServiceImpl{repo: repo}
}

func (s *studentServiceImpl) validateStudentMember(student *models.StudentMember) error {
	if student == nil {
		return fmt.Errorf("%w: student member is nil", apperrors.ErrValidationFailed)
	}

	for _, field := range []struct {
		name, value string
	}{
		{"name", student.Name},
		{"role", student.Role},
		{"department", student.Department},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidationFailed, field.name)
		}
	}

	if !validation.IsValidTier(student.Tier) {
		return fmt.Errorf("%w: tier must be between %d and %d", apperrors.ErrValidationFailed, validation.TierMin, validation.TierMax)
	}

	return nil
}

// List retrieves all student members grouped by tier then order
func (s *studentServiceImpl) List(ctx context.Context) ([]*models.StudentMember, error) {
	students, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	return students, nil
}

// Create validates and stores a new student member
func (s *studentServiceImpl) Create(ctx context.Context, student *models.StudentMember) (string, error) {
	if err := s.validateStudentMember(student); err != nil {
		return "", err
	}

	id, err := s.repo.Create(ctx, student)
	if err != nil {
		return "", fmt.Errorf("error creating student member: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("students", "create").Inc()
	return id, nil
}

// Update applies a partial update to an existing student member
func (s *studentServiceImpl) Update(ctx context.Context, id string, patch *models.StudentMemberPatch) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid student member id", apperrors.ErrValidationFailed)
	}
	if patch == nil {
		return fmt.Errorf("%w: patch is nil", apperrors.ErrValidationFailed)
	}
	if patch.Tier != nil && !validation.IsValidTier(*patch.Tier) {
		return fmt.Errorf("%w: tier must be between %d and %d", apperrors.ErrValidationFailed, validation.TierMin, validation.TierMax)
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("error updating student member: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("students", "update").Inc()
	return nil
}

// Delete removes a student member by id
func (s *studentServiceImpl) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid student member id", apperrors.ErrValidationFailed)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student member: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("students", "delete").Inc()
	return nil
}
