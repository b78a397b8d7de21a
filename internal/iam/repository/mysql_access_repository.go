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

// MySQLAccessRepository implements Access persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLAccessRepository struct {
	db *sql.DB
}

// Create inserts a new Access into the MySQL database.
func (m *MySQLAccessRepository) Create(ctx context.Context, access *iamDomain.Access) error {
	querier := database.GetTx(ctx, m.db)

	id, err := access.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal access id")
	}

	query := `INSERT INTO accesses (id, name, created_at) VALUES (?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, access.Name, access.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return iamDomain.ErrAccessExists
		}
		return apperrors.Wrap(err, "failed to create access")
	}
	return nil
}

// Get retrieves an Access by ID from the MySQL database.
func (m *MySQLAccessRepository) Get(ctx context.Context, accessID uuid.UUID) (*iamDomain.Access, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := accessID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal access id")
	}

	query := `SELECT id, name, created_at FROM accesses WHERE id = ?`

	return m.scanAccess(querier.QueryRowContext(ctx, query, id))
}

// GetByName retrieves an Access by name from the MySQL database.
func (m *MySQLAccessRepository) GetByName(ctx context.Context, name string) (*iamDomain.Access, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, created_at FROM accesses WHERE name = ?`

	return m.scanAccess(querier.QueryRowContext(ctx, query, name))
}

// List retrieves all accesses ordered by name.
func (m *MySQLAccessRepository) List(ctx context.Context) ([]*iamDomain.Access, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, created_at FROM accesses ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list accesses")
	}
	defer rows.Close()

	accesses := make([]*iamDomain.Access, 0)
	for rows.Next() {
		var access iamDomain.Access
		var idBytes []byte

		if err := rows.Scan(&idBytes, &access.Name, &access.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan access")
		}
		if err := access.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		accesses = append(accesses, &access)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate accesses")
	}

	return accesses, nil
}

// Delete removes an Access by ID from the MySQL database.
func (m *MySQLAccessRepository) Delete(ctx context.Context, accessID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := accessID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal access id")
	}

	query := `DELETE FROM accesses WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
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

func (m *MySQLAccessRepository) scanAccess(row *sql.Row) (*iamDomain.Access, error) {
	var access iamDomain.Access
	var idBytes []byte

	err := row.Scan(&idBytes, &access.Name, &access.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, iamDomain.ErrAccessNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get access")
	}

	if err := access.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &access, nil
}

// NewMySQLAccessRepository creates a new MySQL Access repository.
func NewMySQLAccessRepository(db *sql.DB) *MySQLAccessRepository {
	return &MySQLAccessRepository{db: db}
}
