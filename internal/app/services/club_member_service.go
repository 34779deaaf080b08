package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
	"github.com/devang/kalasangam/internal/pkg/metrics"
)

// ClubMemberRepository is the data access the club member service depends on.
type ClubMemberRepository interface {
	List(ctx context.Context) ([]*models.ClubMember, error)
	Create(ctx context.Context, member *models.ClubMember) (string, error)
	Update(ctx context.Context, id string, patch *models.ClubMemberPatch) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// ClubMemberService defines the interface for club member content operations
type ClubMemberService interface {
	List(ctx context.Context) ([]*models.ClubMember, error)
	Create(ctx context.Context, member *models.ClubMember) (string, error)
	Update(ctx context.Context, id string, patch *models.ClubMemberPatch) error
	Delete(ctx context.Context, id string) error
}

type clubMemberServiceImpl struct {
	repo ClubMemberRepository
}

// NewClubMemberService creates a new club member service instance
func NewClubMemberService(repo ClubMemberRepository) ClubMemberService {
	return &clubMemberServiceImpl{repo: repo}
}

// List retrieves all club members in insertion order
func (s *clubMemberServiceImpl) List(ctx context.Context) ([]*models.ClubMember, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving club members: %w", err)
	}
	return members, nil
}

// Create validates and stores a new club member
func (s *clubMemberServiceImpl) Create(ctx context.Context, member *models.ClubMember) (string, error) {
	if member == nil {
		return "", fmt.Errorf("%w: club member is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(member.Name) == "" {
		return "", fmt.Errorf("%w: name cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(member.Role) == "" {
		return "", fmt.Errorf("%w: role cannot be empty", apperrors.ErrValidationFailed)
	}

	id, err := s.repo.Create(ctx, member)
	if err != nil {
		return "", fmt.Errorf("error creating club member: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("members", "create").Inc()
	return id, nil
}

// Update applies a partial update to an existing club member
func (s *clubMemberServiceImpl) Update(ctx context.Context, id string, patch *models.ClubMemberPatch) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid club member id", apperrors.ErrValidationFailed)
	}
	if patch == nil {
		return fmt.Errorf("%w: patch is nil", apperrors.ErrValidationFailed)
	}

	if err := s.repo.Update(ctx, id, patch); err != nil {
		return fmt.Errorf("error updating club member: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("members", "update").Inc()
	return nil
}

// Delete removes a club member by id
func (s *clubMemberServiceImpl) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: invalid club member id", apperrors.ErrValidationFailed)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting club member: %w", err)
	}

	metrics.ContentWrites.WithLabelValues("members", "delete").Inc()
	return nil
}
