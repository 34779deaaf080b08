package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/devang/kalasangam/internal/app/models"
	"github.com/devang/kalasangam/internal/pkg/logger"
)

// ClubMemberRepository handles the club-members collection. The store returns
// members in insertion order, made deterministic as created_at then id.
type ClubMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClubMemberRepository creates a new ClubMemberRepository
func NewClubMemberRepository(db *pgxpool.Pool) *ClubMemberRepository {
	return &ClubMemberRepository{
		db: db,
		sb: statementBuilder(),
	}
}

func (r *ClubMemberRepository) listQuery() (string, []interface{}, error) {
	return r.sb.Select("id", "name", "role", "image", "instagram", "linkedin", "social_email", "display_order").
		From("club_members").
		OrderBy("created_at ASC", "id ASC").
		ToSql()
}

// List retrieves all club members in insertion order.
func (r *ClubMemberRepository) List(ctx context.Context) ([]*models.ClubMember, error) {
	if r.db == nil {
		logger.Warn().Msg("Database is not configured; club members list degrades to empty")
		return []*models.ClubMember{}, nil
	}

	sql, args, err := r.listQuery()
	if err != nil {
		return nil, fmt.Errorf("failed to build list club members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list club members query")
		return nil, fmt.Errorf("error querying club members: %w", err)
	}
	defer rows.Close()

	members := []*models.ClubMember{}
	for rows.Next() {
		m := &models.ClubMember{}
		var instagram, linkedin, socialEmail *string
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Image, &instagram, &linkedin, &socialEmail, &m.Order); err != nil {
			return nil, fmt.Errorf("error scanning club member row: %w", err)
		}
		m.Socials = assembleSocials(instagram, linkedin, socialEmail)
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating club member rows: %w", err)
	}

	return members, nil
}

// Create inserts a club member and returns the store-assigned id.
func (r *ClubMemberRepository) Create(ctx context.Context, member *models.ClubMember) (string, error) {
	if r.db == nil {
		return "", ErrNotConfigured
	}

	instagram, linkedin, socialEmail := flattenSocials(member.Socials)

	sql, args, err := r.sb.Insert("club_members").
		Columns("name", "role", "image", "instagram", "linkedin", "social_email", "display_order").
		Values(member.Name, member.Role, member.Image, instagram, linkedin, socialEmail, member.Order).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build create club member query: %w", err)
	}

	var id string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create club member query")
		return "", fmt.Errorf("error creating club member: %w", err)
	}

	return id, nil
}

// Update applies the non-nil patch fields and stamps updated_at.
func (r *ClubMemberRepository) Update(ctx context.Context, id string, patch *models.ClubMemberPatch) error {
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

	sql, args, err := r.sb.Update("club_members").
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update club member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("memberID", id).Msg("Error executing update club member query")
		return fmt.Errorf("error updating club member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a club member by id.
func (r *ClubMemberRepository) Delete(ctx context.Context, id string) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	sql, args, err := r.sb.Delete("club_members").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete club member query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("memberID", id).Msg("Error executing delete club member query")
		return fmt.Errorf("error deleting club member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// Count returns the number of club member records.
func (r *ClubMemberRepository) Count(ctx context.Context) (int64, error) {
	return countRows(ctx, r.db, r.sb, "club_members")
}
