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

// PostgreSQLUserRepository implements User persistence for PostgreSQL.
// The role-name set is stored as a JSONB column.
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User into the PostgreSQL database.
func (p *PostgreSQLUserRepository) Create(ctx context.Context, user *iamDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	rolesJSON, err := json.Marshal(user.Roles)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user roles")
	}

	query := `INSERT INTO users (id, username, password_hash, roles, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err = querier.ExecContext(
		ctx,
		query,
		user.ID,
		user.Username,
		user.PasswordHash,
		rolesJSON,
		user.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return iamDomain.ErrUserExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Update replaces the mutable fields of an existing User.
func (p *PostgreSQLUserRepository) Update(ctx context.Context, user *iamDomain.User) error {
	querier := database.GetTx(ctx, p.db)

	rolesJSON, err := json.Marshal(user.Roles)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user roles")
	}

	query := `UPDATE users SET password_hash = $1, roles = $2 WHERE id = $3`

	result, err := querier.ExecContext(ctx, query, user.PasswordHash, rolesJSON, user.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return iamDomain.ErrUserNotFound
	}

	return nil
}

// Get retrieves a User by ID from the PostgreSQL database.
func (p *PostgreSQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*iamDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, password_hash, roles, created_at FROM users WHERE id = $1`

	return p.scanUser(querier.QueryRowContext(ctx, query, userID))
}

// GetByUsername retrieves a User by username from the PostgreSQL database.
func (p *PostgreSQLUserRepository) GetByUsername(ctx context.Context, username string) (*iamDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, password_hash, roles, created_at FROM users WHERE username = $1`

	return p.scanUser(querier.QueryRowContext(ctx, query, username))
}

// List retrieves all users ordered by username.
func (p *PostgreSQLUserRepository) List(ctx context.Context) ([]*iamDomain.User, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, username, password_hash, roles, created_at FROM users ORDER BY username`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	users := make([]*iamDomain.User, 0)
	for rows.Next() {
		var user iamDomain.User
		var rolesJSON []byte

		if err := rows.Scan(&user.ID, &user.Username, &user.PasswordHash, &rolesJSON, &user.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		if err := json.Unmarshal(rolesJSON, &user.Roles); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal user roles")
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate users")
	}

	return users, nil
}

// Delete removes a User by ID from the PostgreSQL database.
func (p *PostgreSQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM users WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, userID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete user")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return iamDomain.ErrUserNotFound
	}

	return nil
}

func (p *PostgreSQLUserRepository) scanUser(row *sql.Row) (*iamDomain.User, error) {
	var user iamDomain.User
	var rolesJSON []byte

	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &rolesJSON, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, iamDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	if err := json.Unmarshal(rolesJSON, &user.Roles); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user roles")
	}

	return &user, nil
}

// NewPostgreSQLUserRepository creates a new PostgreSQL User repository.
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{db: db}
}
