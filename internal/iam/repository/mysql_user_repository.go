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

// MySQLUserRepository implements User persistence for MySQL.
// Uses BINARY(16) for UUID storage and a JSON column for the role-name set.
type MySQLUserRepository struct {
	db *sql.DB
}

// Create inserts a new User into the MySQL database.
func (m *MySQLUserRepository) Create(ctx context.Context, user *iamDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	rolesJSON, err := json.Marshal(user.Roles)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user roles")
	}

	query := `INSERT INTO users (id, username, password_hash, roles, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
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
func (m *MySQLUserRepository) Update(ctx context.Context, user *iamDomain.User) error {
	querier := database.GetTx(ctx, m.db)

	id, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	rolesJSON, err := json.Marshal(user.Roles)
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user roles")
	}

	query := `UPDATE users SET password_hash = ?, roles = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, user.PasswordHash, rolesJSON, id)
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

// Get retrieves a User by ID from the MySQL database.
func (m *MySQLUserRepository) Get(ctx context.Context, userID uuid.UUID) (*iamDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `SELECT id, username, password_hash, roles, created_at FROM users WHERE id = ?`

	return m.scanUser(querier.QueryRowContext(ctx, query, id))
}

// GetByUsername retrieves a User by username from the MySQL database.
func (m *MySQLUserRepository) GetByUsername(ctx context.Context, username string) (*iamDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, password_hash, roles, created_at FROM users WHERE username = ?`

	return m.scanUser(querier.QueryRowContext(ctx, query, username))
}

// List retrieves all users ordered by username.
func (m *MySQLUserRepository) List(ctx context.Context) ([]*iamDomain.User, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, username, password_hash, roles, created_at FROM users ORDER BY username`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list users")
	}
	defer rows.Close()

	users := make([]*iamDomain.User, 0)
	for rows.Next() {
		var user iamDomain.User
		var idBytes []byte
		var rolesJSON []byte

		if err := rows.Scan(&idBytes, &user.Username, &user.PasswordHash, &rolesJSON, &user.CreatedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan user")
		}
		if err := user.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
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

// Delete removes a User by ID from the MySQL database.
func (m *MySQLUserRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	querier := database.GetTx(ctx, m.db)

	id, err := userID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal user id")
	}

	query := `DELETE FROM users WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
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

func (m *MySQLUserRepository) scanUser(row *sql.Row) (*iamDomain.User, error) {
	var user iamDomain.User
	var idBytes []byte
	var rolesJSON []byte

	err := row.Scan(&idBytes, &user.Username, &user.PasswordHash, &rolesJSON, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, iamDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user")
	}

	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}
	if err := json.Unmarshal(rolesJSON, &user.Roles); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal user roles")
	}

	return &user, nil
}

// NewMySQLUserRepository creates a new MySQL User repository.
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{db: db}
}
