package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/logger"
)

// ReportRepository handles the reports collection, served in insertion order.
type ReportRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewReportRepository creates a new ReportRepository
func NewReportRepository(db *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *ReportRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select("id", "title", "report_date", "url", "display_order").
		From("reports").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

// List retrieves all reports in insertion order.
func (r *ReportRepository) List(ctx context.Context) ([]*models.Report, error) {
	if r.db == nil {
		logger.Warn().Msg("Database is not configured; reports list degrades to empty")
		return []*models.Report{}, nil
	}

	sql, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build list reports query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list reports query")
		return nil, fmt.Errorf("error querying reports: %w", err)
	}
	defer rows.Close()

	reports := []*models.Report{}
	for rows.Next() {
		rep := &models.Report{}
		if err := rows.Scan(&rep.ID, &rep.Title, &rep.Date, &rep.URL, &rep.Order); err != nil {
			return nil, fmt.Errorf("error scanning report row: %w", err)
		}
		reports = append(reports, rep)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report rows: %w", err)
	}

	return reports, nil
}

// Create inserts a report and returns the store-assigned id.
func (r *ReportRepository) Create(ctx context.Context, report *models.Report) (string, error) {
	if r.db == nil {
		return "", ErrNotConfigured
	}

	sql, args, err := r.sb.Insert("reports").
		Columns("title", "report_date", "url", "display_order").
		Values(report.Title, report.Date, report.URL, report.Order).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create report query: %w", err)
	}

	var id string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create report query")
		return "", fmt.Errorf("error creating report: %w", err)
	}

	return id, nil
}

// Update applies the non-nil patch fields and stamps updated_at.
func (r *ReportRepository) Update(ctx context.Context, id string, patch *models.ReportPatch) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	set := map[string]interface{}{"updated_at": squirrel.Expr("NOW()")}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Date != nil {
		set["report_date"] = *patch.Date
	}
	if patch.URL != nil {
		set["url"] = *patch.URL
	}
	if patch.Order != nil {
		set["display_order"] = *patch.Order
	}

	sql, args, err := r.sb.Update("reports").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update report query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("reportID", id).Msg("Error executing update report query")
		return fmt.Errorf("error updating report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a report by id.
func (r *ReportRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	sql, args, err := r.sb.Delete("reports").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete report query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("reportID", id).Msg("Error executing delete report query")
		return fmt.Errorf("error deleting report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of report records.
func (r *ReportRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "reports")
}
