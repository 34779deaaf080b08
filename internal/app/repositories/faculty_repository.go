package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/logger"
)

// FacultyRepository handles the faculty collection. The public page displays
// records in ascending Order, so List always applies that sort key.
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *FacultyRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select("id", "name", "designation", "department", "role", "image", "email", "display_order").
		From("faculty").
		OrderBy("display_order ASC").
		ToSql()
}

// List retrieves all faculty members ordered for display. With no database
// configured it degrades to an empty collection.
func (r *FacultyRepository) List(ctx context.Context) ([]*models.FacultyMember, error) {
	if r.db == nil {
		logger.Warn().Msg("Database is not configured; faculty list degrades to empty")
		return []*models.FacultyMember{}, nil
	}

	sql, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build list faculty query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list faculty query")
		return nil, fmt.Errorf("error querying faculty: %w", err)
	}
	defer rows.Close()

	members := []*models.FacultyMember{}
	for rows.Next() {
		m := &models.FacultyMember{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Designation, &m.Department, &m.Role, &m.Image, &m.Email, &m.Order); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return members, nil
}

// Create inserts a faculty member and returns the store-assigned id.
// created_at is stamped server-side.
func (r *FacultyRepository) Create(ctx context.Context, member *models.FacultyMember) (string, error) {
	if r.db == nil {
		return "", ErrNotConfigured
	}

	sql, args, err := r.sb.Insert("faculty").
		Columns("name", "designation", "department", "role", "image", "email", "display_order").
		Values(member.Name, member.Designation, member.Department, member.Role, member.Image, member.Email, member.Order).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create faculty query: %w", err)
	}

	var id string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return "", fmt.Errorf("error creating faculty member: %w", err)
	}

	return id, nil
}

// Update applies the non-nil patch fields and stamps updated_at.
func (r *FacultyRepository) Update(ctx context.Context, id string, patch *models.FacultyMemberPatch) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	set := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Designation != nil {
		set["designation"] = *patch.Designation
	}
	if patch.Department != nil {
		set["department"] = *patch.Department
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Email != nil {
		set["email"] = *patch.Email
	}
	if patch.Order != nil {
		set["display_order"] = *patch.Order
	}

	sql, args, err := r.sb.Update("faculty").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id).Msg("Error executing update faculty query")
		return fmt.Errorf("error updating faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a faculty member by id.
func (r *FacultyRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	sql, args, err := r.sb.Delete("faculty").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of faculty records.
func (r *FacultyRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "faculty")
}

// countRows is shared by the content repositories for dashboard stats.
func countRows(ctx context.Context, db *pgxpool.Pool, sb squirrel.StatementBuilderType, table string) (int64, error) {
	if db == nil {
		return 0, nil
	}

	sql, args, err := sb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build count query for %s: %w", table, err)
	}

	var count int64
	if err := db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error counting %s rows: %w", table, err)
	}
	return count, nil
}
