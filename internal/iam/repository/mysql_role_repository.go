package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"github.com/licentio/licentio/internal/database"
	apperrors "github.com/licentio/licentio/internal/errors"
	iamDomain "github.com/licentio/licentio/internal/iam/domain"
)

// MySQLRoleRepository implements Role persistence for MySQL.
// Uses BINARY(16) for UUID storage and a JSON column for the access map.
type MySQLRoleRepository struct {
	db *sql.DB
}

// Create inserts a new Role into the MySQL database.
func (m *MySQLRoleRepository) Create(ctx context.Context, role *iamDomain.Role) error {
	querier := database.GetTx(ctx, m.db)

	id, err := role.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role id")
	}

	accessesJSON, err := json.Marshal(role.Accesses)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role accesses")
	}

	query := `INSERT INTO roles (id, name, accesses, created_at) VALUES (?, ?, ?, ?)`

	_, err = querier.ExecContext(ctx, query, id, role.Name, accessesJSON, role.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return iamDomain.ErrRoleExists
		}
		return apperrors.Wrap(err, "failed to create role")
	}
	return nil
}

// Update replaces the stored access map of an existing Role.
func (m *MySQLRoleRepository) Update(ctx context.Context, role *iamDomain.Role) error {
	querier := database.GetTx(ctx, m.db)

	id, err := role.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role id")
	}

	accessesJSON, err := json.Marshal(role.Accesses)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role accesses")
	}

	query := `UPDATE roles SET accesses = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, accessesJSON, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to update role")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return iamDomain.ErrRoleNotFound
	}

	return nil
}

// Get retrieves a Role by ID from the MySQL database.
func (m *MySQLRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*iamDomain.Role, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := roleID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal role id")
	}

	query := `SELECT id, name, accesses, created_at FROM roles WHERE id = ?`

	return m.scanRole(querier.QueryRowContext(ctx, query, id))
}

// GetByName retrieves a Role by name from the MySQL database.
func (m *MySQLRoleRepository) GetByName(ctx context.Context, name string) (*iamDomain.Role, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, accesses, created_at FROM roles WHERE name = ?`

	return m.scanRole(querier.QueryRowContext(ctx, query, name))
}

// List retrieves all roles ordered by name.
func (m *MySQLRoleRepository) List(ctx context.Context) ([]*iamDomain.Role, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, name, accesses, created_at FROM roles ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer rows.Close()

	roles := make([]*iamDomain.Role, 0)
	for rows.Next() {
		var role iamDomain.Role
		var idBytes []byte
		var accessesJSON []byte

		if err := rows.Scan(&idBytes, &role.Name, &accessesJSON, &role.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
		}
		if err := role.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		if err := json.Unmarshal(accessesJSON, &role.Accesses); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal role accesses")
		}
		roles = append(roles, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate roles")
	}

	return roles, nil
}

// Delete removes a Role by ID from the MySQL database.
func (m *MySQLRoleRepository) Delete(ctx context.Context, roleID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := roleID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role id")
	}

	query := `DELETE FROM roles WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete role")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return iamDomain.ErrRoleNotFound
	}

	return nil
}

func (m *MySQLRoleRepository) scanRole(row *sql.Row) (*iamDomain.Role, error) {
	var role iamDomain.Role
	var idBytes []byte
	var accessesJSON []byte

	err := row.Scan(&idBytes, &role.Name, &accessesJSON, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, iamDomain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role")
	}

	if err := role.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := json.Unmarshal(accessesJSON, &role.Accesses); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal role accesses")
	}

	return &role, nil
}

// NewMySQLRoleRepository creates a new MySQL Role repository.
func NewMySQLRoleRepository(db *sql.DB) *MySQLRoleRepository {
	return &MySQLRoleRepository{db: db}
}
