package repositories

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/devang/kalasangam/internal/pkg/apperrors"
)

// Shared repository errors
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = apperrors.ErrResourceNotFound
	// ErrNotConfigured is returned by mutations when no database is configured.
	ErrNotConfigured = apperrors.ErrBackendUnavailable
)

// Repositories bundles all data access objects. The pool may be nil when the
// database is not configured; repositories then serve empty reads and fail
// writes with ErrNotConfigured instead of panicking.
type Repositories struct {
	FacultyRepository    *FacultyRepository
	StudentRepository    *StudentRepository
	ClubMemberRepository *ClubMemberRepository
	EventRepository      *EventRepository
	ReportRepository     *ReportRepository
	AdminRepository      *AdminRepository
	UserRepository       *UserRepository
	TokenRepository      *TokenRepository
}

// NewRepositories creates the repository container for a (possibly nil) pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		FacultyRepository:    NewFacultyRepository(db),
		StudentRepository:    NewStudentRepository(db),
		ClubMemberRepository: NewClubMemberRepository(db),
		EventRepository:      NewEventRepository(db),
		ReportRepository:     NewReportRepository(db),
		AdminRepository:      NewAdminRepository(db),
		UserRepository:       NewUserRepository(db),
		TokenRepository:      NewTokenRepository(db),
	}
}

// statementBuilder returns the squirrel builder with postgres placeholders.
func statementBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation.
func isDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" // unique_violation
}
