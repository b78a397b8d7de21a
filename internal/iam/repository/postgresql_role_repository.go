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

// PostgreSQLRoleRepository implements Role persistence for PostgreSQL.
// The access map is stored as a JSONB column.
type PostgreSQLRoleRepository struct {
	db *sql.DB
}

// Create inserts a new Role into the PostgreSQL database.
func (p *PostgreSQLRoleRepository) Create(ctx context.Context, role *iamDomain.Role) error {
	querier := database.GetTx(ctx, p.db)

	accessesJSON, err := json.Marshal(role.Accesses)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role accesses")
	}

	query := `INSERT INTO roles (id, name, accesses, created_at) VALUES ($1, $2, $3, $4)`

	_, err = querier.ExecContext(ctx, query, role.ID, role.Name, accessesJSON, role.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return iamDomain.ErrRoleExists
		}
		return apperrors.Wrap(err, "failed to create role")
	}
	return nil
}

// Update replaces the stored access map of an existing Role.
func (p *PostgreSQLRoleRepository) Update(ctx context.Context, role *iamDomain.Role) error {
	querier := database.GetTx(ctx, p.db)

	accessesJSON, err := json.Marshal(role.Accesses)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal role accesses")
	}

	query := `UPDATE roles SET accesses = $1 WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, accessesJSON, role.ID)
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

// Get retrieves a Role by ID from the PostgreSQL database.
func (p *PostgreSQLRoleRepository) Get(ctx context.Context, roleID uuid.UUID) (*iamDomain.Role, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, accesses, created_at FROM roles WHERE id = $1`

	return p.scanRole(querier.QueryRowContext(ctx, query, roleID))
}

// GetByName retrieves a Role by name from the PostgreSQL database.
func (p *PostgreSQLRoleRepository) GetByName(ctx context.Context, name string) (*iamDomain.Role, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, accesses, created_at FROM roles WHERE name = $1`

	return p.scanRole(querier.QueryRowContext(ctx, query, name))
}

// List retrieves all roles ordered by name.
func (p *PostgreSQLRoleRepository) List(ctx context.Context) ([]*iamDomain.Role, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, accesses, created_at FROM roles ORDER BY name`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list roles")
	}
	defer rows.Close()

	roles := make([]*iamDomain.Role, 0)
	for rows.Next() {
		var role iamDomain.Role
		var accessesJSON []byte

		if err := rows.Scan(&role.ID, &role.Name, &accessesJSON, &role.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan role")
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

// Delete removes a Role by ID from the PostgreSQL database.
func (p *PostgreSQLRoleRepository) Delete(ctx context.Context, roleID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM roles WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, roleID)
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

func (p *PostgreSQLRoleRepository) scanRole(row *sql.Row) (*iamDomain.Role, error) {
	var role iamDomain.Role
	var accessesJSON []byte

	err := row.Scan(&role.ID, &role.Name, &accessesJSON, &role.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, iamDomain.ErrRoleNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get role")
	}

	if err := json.Unmarshal(accessesJSON, &role.Accesses); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal role accesses")
	}

	return &role, nil
}

// NewPostgreSQLRoleRepository creates a new PostgreSQL Role repository.
func NewPostgreSQLRoleRepository(db *sql.DB) *PostgreSQLRoleRepository {
	return &PostgreSQLRoleRepository{db: db}
}
