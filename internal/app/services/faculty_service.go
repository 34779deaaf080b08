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

// FacultyRepository is the data access the faculty service depends on.
type FacultyRepository interface {
	List(ctx context.Context) ([]*models.FacultyMember, error)
	Create(ctx context.Context, member *models.FacultyMember) (string, error)
	Update(ctx context.Context, id string, patch *models.FacultyMemberPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// FacultyService defines the interface for faculty content operations
type FacultyService interface {
	List(ctx context.Context) ([]*models.FacultyMember, error)
	Create(ctx context.Context, member *models.FacultyMember) (string, error)
	Update(ctx context.Context, id string, patch *models.FacultyMemberPatch) error
	Delete(ctx context.Context, id string) error
}

// facultyServiceImpl implements the FacultyService interface
type facultyServiceImpl struct {
	repo FacultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(repo FacultyRepository) FacultyService {
	return &facultyServiceImpl{repo: repo}
}

// validateFacultyMember validates faculty data before store operations
func (s *facultyServiceImpl) validateFacultyMember(member *models.FacultyMember) error {
	if member == nil {
		return fmt.Errorf("%w: faculty member is nil", apperrors.ErrValidationFailed)
	}

	for _, field := range []struct {
		name, value string
	}{
		{"name", member.Name},
		{"designation", member.Designation},
		{"department", member.Department},
		{"role", member.Role},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%w: %s cannot be empty", apperrors.ErrValidationFailed, field.name)
		}
	}

	if member.Email != nil && !validation.IsValidEmail(*member.Email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}

	return nil
}

// List retrieves all faculty members ordered for display
func (s *facultyServiceImpl) List(ctx context.Context) ([]*models.FacultyMember, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	return members, nil
}

// Create validates and stores a new faculty member
func (s *facultyServiceImpl) Create(ctx context.Context, member *models.FacultyMember) (string, error) {
	if err := s.validateFacultyMember(member); err != nil {
		return "", err
	}

	id, err := s.repo.Create(ctx, member)
	if err != nil {
		return "", fmt.Errorf("error creating faculty member: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("faculty", "create").Inc()
	return id, nil
}

// Update applies a partial update to an existing faculty member
func (s *facultyServiceImpl) Update(ctx context.Context, id string, patch *models.FacultyMemberPatch) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid faculty member id", apperrors.ErrValidationFailed)
	}
	if patch == nil {
		return fmt.Errorf("%w: patch is nil", apperrors.ErrValidationFailed)
	}
	if patch.Email != nil && !validation.IsValidEmail(*patch.Email) {
		return fmt.Errorf("%w: invalid email format", apperrors.ErrValidationFailed)
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("error updating faculty member: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("faculty", "update").Inc()
	return nil
}

// Delete removes a faculty member by id
func (s *facultyServiceImpl) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid faculty member id", apperrors.ErrValidationFailed)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting faculty member: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("faculty", "delete").Inc()
	return nil
}
