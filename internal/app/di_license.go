package app

import (
	"context"
	"fmt"

	"gocloud.dev/blob"

	// Registers the file:// scheme for license artifact storage.
	_ "gocloud.dev/blob/fileblob"

	licenseRepository "github.com/licentio/licentio/internal/license/repository"
	licenseService "github.com/licentio/licentio/internal/license/service"
	licenseUseCase "github.com/licentio/licentio/internal/license/usecase"
)

// Bucket returns the blob bucket backing license artifact storage.
func (c *Container) Bucket() (*blob.Bucket, error) {
	var err error
	c.bucketInit.Do(func() {
		c.bucket, err = c.initBucket()
		if err != nil {
			c.initErrors["bucket"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["bucket"]; exists {
		return nil, storedErr
	}
	return c.bucket, nil
}

// ArchiveService returns the license artifact archive service.
func (c *Container) ArchiveService() (licenseService.ArchiveService, error) {
	var err error
	c.archiveServiceInit.Do(func() {
		c.archiveService, err = c.initArchiveService()
		if err != nil {
			c.initErrors["archiveService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["archiveService"]; exists {
		return nil, storedErr
	}
	return c.archiveService, nil
}

// FilenameService returns the license filename builder.
func (c *Container) FilenameService() licenseService.FilenameService {
	c.filenameServiceInit.Do(func() {
		c.filenameService = licenseService.NewFilenameService()
	})
	return c.filenameService
}

// LicenseRepository returns the license repository based on database driver.
func (c *Container) LicenseRepository() (licenseUseCase.LicenseRepository, error) {
	var err error
	c.licenseRepoInit.Do(func() {
		c.licenseRepo, err = c.initLicenseRepository()
		if err != nil {
			c.initErrors["licenseRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["licenseRepo"]; exists {
		return nil, storedErr
	}
	return c.licenseRepo, nil
}

// LicenseUseCase returns the license use case, wrapped with metrics when enabled.
func (c *Container) LicenseUseCase() (licenseUseCase.LicenseUseCase, error) {
	var err error
	c.licenseUseCaseInit.Do(func() {
		c.licenseUseCase, err = c.initLicenseUseCase()
		if err != nil {
			c.initErrors["licenseUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["licenseUseCase"]; exists {
		return nil, storedErr
	}
	return c.licenseUseCase, nil
}

// initBucket opens the blob bucket from the configured storage URL.
func (c *Container) initBucket() (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(context.Background(), c.config.StorageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage bucket: %w", err)
	}
	return bucket, nil
}

// initArchiveService creates the archive service backed by the blob bucket.
func (c *Container) initArchiveService() (licenseService.ArchiveService, error) {
	bucket, err := c.Bucket()
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket for archive service: %w", err)
	}

	return licenseService.NewArchiveService(bucket), nil
}

// initLicenseRepository creates the license repository instance.
func (c *Container) initLicenseRepository() (licenseUseCase.LicenseRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for license repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return licenseRepository.NewMySQLLicenseRepository(db), nil
	case "postgres":
		return licenseRepository.NewPostgreSQLLicenseRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initLicenseUseCase creates the license use case with its dependencies.
func (c *Container) initLicenseUseCase() (licenseUseCase.LicenseUseCase, error) {
	licenseRepo, err := c.LicenseRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get license repository for license use case: %w", err)
	}

	archiveService, err := c.ArchiveService()
	if err != nil {
		return nil, fmt.Errorf("failed to get archive service for license use case: %w", err)
	}

	useCase := licenseUseCase.NewLicenseUseCase(
		licenseRepo,
		archiveService,
		c.FilenameService(),
		c.Logger(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for license use case: %w", err)
		}
		useCase = licenseUseCase.NewLicenseUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}
