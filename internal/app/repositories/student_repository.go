package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/logger"
)

// StudentRepository handles the student-body collection. Display grouping is
// by tier (1 highest) then by Order within the tier, so List sorts by both.
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *StudentRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select("id", "name", "role", "department", "tier", "image", "instagram", "linkedin", "social_email", "display_order").
		From("students").
		OrderBy("tier ASC", "display_order ASC").
		ToSql()
}

// List retrieves all student members sorted by tier then order.
func (r *StudentRepository) List(ctx context.Context) ([]*models.StudentMember, error) {
	if r.db == nil {
		logger.Warn().Msg("Database is not configured; students list degrades to empty")
		return []*models.StudentMember{}, nil
	}

	sql, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.StudentMember{}
	for rows.Next() {
		s := &models.StudentMember{}
		var instagram, linkedin, socialEmail *string
		if err := rows.Scan(&s.ID, &s.Name, &s.Role, &s.Department, &s.Tier, &s.Image, &instagram, &linkedin, &socialEmail, &s.Order); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		s.Socials = assembleSocials(instagram, linkedin, socialEmail)
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// Create inserts a student member and returns the store-assigned id.
func (r *StudentRepository) Create(ctx context.Context, student *models.StudentMember) (string, error) {
	if r.db == nil {
		return "", ErrNotConfigured
	}

	instagram, linkedin, socialEmail := flattenSocials(student.Socials)

	sql, args, err := r.sb.Insert("students").
		Columns("name", "role", "department", "tier", "image", "instagram", "linkedin", "social_email", "display_order").
		Values(student.Name, student.Role, student.Department, student.Tier, student.Image, instagram, linkedin, socialEmail, student.Order).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create student query: %w", err)
	}

	var id string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create student query")
		return "", fmt.Errorf("error creating student member: %w", err)
	}

	return id, nil
}

// Update applies the non-nil patch fields and stamps updated_at.
func (r *StudentRepository) Update(ctx context.Context, id string, patch *models.StudentMemberPatch) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	set := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Department != nil {
		set["department"] = *patch.Department
	}
	if patch.Tier != nil {
		set["tier"] = *patch.Tier
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Socials != nil {
		instagram, linkedin, socialEmail := flattenSocials(patch.Socials)
		set["instagram"] = instagram
		set["linkedin"] = linkedin
		set["social_email"] = socialEmail
	}
	if patch.Order != nil {
		set["display_order"] = *patch.Order
	}

	sql, args, err := r.sb.Update("students").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error executing update student query")
		return fmt.Errorf("error updating student member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a student member by id.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("studentID", id).Msg("Error executing delete student query")
		return fmt.Errorf("error deleting student member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of student records.
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "students")
}

// assembleSocials builds a Socials struct from nullable columns; all-nil yields nil.
func assembleSocials(instagram, linkedin, email *string) *models.Socials {
	if instagram == nil && linkedin == nil && email == nil {
		return nil
	}
	return &models.Socials{Instagram: instagram, LinkedIn: linkedin, Email: email}
}

// flattenSocials splits an optional Socials struct into nullable columns.
func flattenSocials(s *models.Socials) (instagram, linkedin, email *string) {
	if s == nil {
		return nil, nil, nil
	}
	return s.Instagram, s.LinkedIn, s.Email
}
