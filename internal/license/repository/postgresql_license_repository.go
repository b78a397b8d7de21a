// Package repository implements license persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/licentio/licentio/internal/database"
	apperrors "github.com/licentio/licentio/internal/errors"
	licenseDomain "github.com/licentio/licentio/internal/license/domain"
)

// PostgreSQLLicenseRepository implements License persistence for PostgreSQL.
type PostgreSQLLicenseRepository struct {
	db *sql.DB
}

// Create inserts a new License and fills in its auto-increment ID.
func (p *PostgreSQLLicenseRepository) Create(ctx context.Context, license *licenseDomain.License) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO licenses
			  (company_name, product_name, users_count, expires_at, additional_info, digest_file_name, license_file_name, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			  RETURNING id`

	err := querier.QueryRowContext(
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
	).Scan(&license.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create license")
	}

	return nil
}

// Get retrieves a License by ID from the PostgreSQL database.
func (p *PostgreSQLLicenseRepository) Get(ctx context.Context, licenseID int64) (*licenseDomain.License, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_name, product_name, users_count, expires_at, additional_info, digest_file_name, license_file_name, created_at
			  FROM licenses WHERE id = $1`

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
func (p *PostgreSQLLicenseRepository) List(ctx context.Context, offset, limit int) ([]*licenseDomain.License, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, company_name, product_name, users_count, expires_at, additional_info, digest_file_name, license_file_name, created_at
			  FROM licenses ORDER BY id DESC LIMIT $1 OFFSET $2`

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

// Delete removes a License by ID from the PostgreSQL database.
func (p *PostgreSQLLicenseRepository) Delete(ctx context.Context, licenseID int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM licenses WHERE id = $1`

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

// NewPostgreSQLLicenseRepository creates a new PostgreSQL License repository.
func NewPostgreSQLLicenseRepository(db *sql.DB) *PostgreSQLLicenseRepository {
	return &PostgreSQLLicenseRepository{db: db}
}
