package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devang/kalasangam/internal/pkg/logger"
)

// AdminRepository looks up administrator privilege. A row in the admins table
// keyed by the user's id is the whole privilege model; it carries no payload
// beyond its existence.
type AdminRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{
		db: db,
		sb: statementBuilder(),
	}
}

// Exists reports whether the given user id is marked as an administrator.
// With no database configured the lookup fails, which the session guard
// treats the same as "not an admin".
func (r *AdminRepository) Exists(ctx context.Context, userID string) (bool, error) {
	if r.db == nil {
		return false, ErrNotConfigured
	}

	sql, args, err := r.sb.Select("1").
		From("admins").
		Where(squirrel.Eq{"user_id": userID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build admin existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("userID", userID).Msg("Error checking admin existence")
		return false, fmt.Errorf("error checking admin existence: %w", err)
	}

	return exists, nil
}

// Grant marks a user as an administrator. Granting twice is a no-op.
func (r *AdminRepository) Grant(ctx context.Context, userID string) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	sql, args, err := r.sb.Insert("admins").
		Columns("user_id").
		Values(userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build grant admin query: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error granting admin privilege")
		return fmt.Errorf("error granting admin privilege: %w", err)
	}

	return nil
}
