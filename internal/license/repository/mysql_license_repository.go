package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/licentio/licentio/internal/database"
	apperrors "github.com/licentio/licentio/internal/errors"
	licenseDomain "github.com/licentio/licentio/internal/license/domain"
)

// MySQLLicenseRepository implements License persistence for MySQL.
type MySQLLicenseRepository struct {
	db *sql.DB
}

// Create inserts a new License and fills in its auto-increment ID.
func (m *MySQLLicenseRepository) Create(ctx context.Context, license *licenseDomain.License) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO licenses
			  (company_name, product_name, users_count, expires_at, additional_info, digest_file_name, license_file_name, created_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		license.CompanyName,
		license.ProductName,
		license.UsersCount,
		license.ExpiresAt,
		license.AdditionalInfo,
		license.DigestFileName,
		license.LicenseFileName,
		license.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create license")
	}

	licenseID, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get license id")
	}
	license.ID = licenseID

	return nil
}

// Get retrieves a License by ID from the MySQL database.
func (m *MySQLLicenseRepository) Get(ctx context.Context, licenseID int64) (*licenseDomain.License, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, company_name, product_name, users_count, expires_at, additional_info, digest_file_name, license_file_name, created_at
			  FROM licenses WHERE id = ?`

	var license licenseDomain.License

	err := querier.QueryRowContext(ctx, query, licenseID).Scan(
		&license.ID,
		&license.CompanyName,
		&license.ProductName,
		&license.UsersCount,
		&license.ExpiresAt,
		&license.AdditionalInfo,
		&license.DigestFileName,
		&license.LicenseFileName,
		&license.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, licenseDomain.ErrLicenseNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get license")
	}

	return &license, nil
}

// List retrieves licenses ordered by ID descending (newest first) with pagination.
func (m *MySQLLicenseRepository) List(ctx context.Context, offset, limit int) ([]*licenseDomain.License, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, company_name, product_name, users_count, expires_at, additional_info, digest_file_name, license_file_name, created_at
			  FROM licenses ORDER BY id DESC LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list licenses")
	}
	defer rows.Close()

	licenses := make([]*licenseDomain.License, 0)
	for rows.Next() {
		var license licenseDomain.License
		err := rows.Scan(
			&license.ID,
			&license.CompanyName,
			&license.ProductName,
			&license.UsersCount,
			&license.ExpiresAt,
			&license.AdditionalInfo,
			&license.DigestFileName,
			&license.LicenseFileName,
			&license.CreatedAt,
		)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan license")
		}
		licenses = append(licenses, &license)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate licenses")
	}

	return licenses, nil
}

// Delete removes a License by ID from the MySQL database.
func (m *MySQLLicenseRepository) Delete(ctx context.Context, licenseID int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM licenses WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, licenseID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete license")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rowsAffected == 0 {
		return licenseDomain.ErrLicenseNotFound
	}

	return nil
}

// NewMySQLLicenseRepository creates a new MySQL License repository.
func NewMySQLLicenseRepository(db *sql.DB) *MySQLLicenseRepository {
	return &MySQLLicenseRepository{db: db}
}
