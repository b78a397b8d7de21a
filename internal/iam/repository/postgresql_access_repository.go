package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/licentio/licentio/internal/database"
	apperrors "github.com/licentio/licentio/internal/errors"
	iamDomain "github.com/licentio/licentio/internal/iam/domain"
)

// PostgreSQLAccessRepository implements Access persistence for PostgreSQL.
type PostgreSQLAccessRepository struct {
	db *sql.DB
}

// Create inserts a new Access into the PostgreSQL database.
func (p *PostgreSQLAccessRepository) Create(ctx context.Context, access *iamDomain.Access) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO accesses (id, name, created_at) VALUES ($1, $2, $3)`

	_, err := querier.ExecContext(ctx, query, access.ID, access.Name, access.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return iamDomain.ErrAccessExists
		}
		return apperrors.Wrap(err, "failed to create access")
	}
	return nil
}

// Get retrieves an Access by ID from the PostgreSQL database.
func (p *PostgreSQLAccessRepository) Get(ctx context.Context, accessID uuid.UUID) (*iamDomain.Access, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, created_at FROM accesses WHERE id = $1`

	var access iamDomain.Access

	err := querier.QueryRowContext(ctx, query, accessID).Scan(
		&access.ID,
		&access.Name,
		&access.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, iamDomain.ErrAccessNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get access")
	}

	return &access, nil
}

// GetByName retrieves an Access by name from the PostgreSQL database.
func (p *PostgreSQLAccessRepository) GetByName(ctx context.Context, name string) (*iamDomain.Access, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, created_at FROM accesses WHERE name = $1`

	var access iamDomain.Access

	err := querier.QueryRowContext(ctx, query, name).Scan(
		&access.ID,
		&access.Name,
		&access.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, iamDomain.ErrAccessNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get access by name")
	}

	return &access, nil
}

// List retrieves all accesses ordered by name.
func (p *PostgreSQLAccessRepository) List(ctx context.Context) ([]*iamDomain.Access, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, created_at FROM accesses ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list accesses")
	}
	defer rows.Close()

	accesses := make([]*iamDomain.Access, 0)
	for rows.Next() {
		var access iamDomain.Access
		if err := rows.Scan(&access.ID, &access.Name, &access.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan access")
		}
		accesses = append(accesses, &access)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate accesses")
	}

	return accesses, nil
}

// Delete removes an Access by ID from the PostgreSQL database.
func (p *PostgreSQLAccessRepository) Delete(ctx context.Context, accessID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM accesses WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, accessID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete access")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return iamDomain.ErrAccessNotFound
	}

	return nil
}

// NewPostgreSQLAccessRepository creates a new PostgreSQL Access repository.
func NewPostgreSQLAccessRepository(db *sql.DB) *PostgreSQLAccessRepository {
	return &PostgreSQLAccessRepository{db: db}
}
