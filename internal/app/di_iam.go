package app

import (
	"fmt"

	iamRepository "github.com/licentio/licentio/internal/iam/repository"
	iamService "github.com/licentio/licentio/internal/iam/service"
	iamUseCase "github.com/licentio/licentio/internal/iam/usecase"
)

// PasswordService returns the password hashing service.
func (c *Container) PasswordService() iamService.PasswordService {
	c.passwordServiceInit.Do(func() {
		c.passwordService = iamService.NewPasswordService()
	})
	return c.passwordService
}

// TokenService returns the bearer token signing service.
func (c *Container) TokenService() iamService.TokenService {
	c.tokenServiceInit.Do(func() {
		c.tokenService = iamService.NewTokenService(
			c.config.TokenSecret,
			c.config.TokenExpiration,
		)
	})
	return c.tokenService
}

// CredentialDecryptor returns the transport credential decryptor.
func (c *Container) CredentialDecryptor() (iamService.CredentialDecryptor, error) {
	var err error
	c.credentialDecryptorInit.Do(func() {
		c.credentialDecryptor, err = iamService.NewCredentialDecryptor(c.config.TransportKeyPath)
		if err != nil {
			c.initErrors["credentialDecryptor"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["credentialDecryptor"]; exists {
		return nil, storedErr
	}
	return c.credentialDecryptor, nil
}

// DirectoryService returns the LDAP directory service.
func (c *Container) DirectoryService() iamService.DirectoryService {
	c.directoryServiceInit.Do(func() {
		c.directoryService = iamService.NewDirectoryService(iamService.DirectoryConfig{
			URL:           c.config.LDAPURL,
			BindDN:        c.config.LDAPBindDN,
			BindPassword:  c.config.LDAPBindPassword,
			BaseDN:        c.config.LDAPBaseDN,
			UserAttribute: c.config.LDAPUserAttribute,
			Timeout:       c.config.LDAPTimeout,
		}, c.Logger())
	})
	return c.directoryService
}

// AccessRepository returns the access repository based on database driver.
func (c *Container) AccessRepository() (iamUseCase.AccessRepository, error) {
	var err error
	c.accessRepoInit.Do(func() {
		c.accessRepo, err = c.initAccessRepository()
		if err != nil {
			c.initErrors["accessRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accessRepo"]; exists {
		return nil, storedErr
	}
	return c.accessRepo, nil
}

// RoleRepository returns the role repository based on database driver.
func (c *Container) RoleRepository() (iamUseCase.RoleRepository, error) {
	var err error
	c.roleRepoInit.Do(func() {
		c.roleRepo, err = c.initRoleRepository()
		if err != nil {
			c.initErrors["roleRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["roleRepo"]; exists {
		return nil, storedErr
	}
	return c.roleRepo, nil
}

// UserRepository returns the user repository based on database driver.
func (c *Container) UserRepository() (iamUseCase.UserRepository, error) {
	var err error
	c.userRepoInit.Do(func() {
		c.userRepo, err = c.initUserRepository()
		if err != nil {
			c.initErrors["userRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userRepo"]; exists {
		return nil, storedErr
	}
	return c.userRepo, nil
}

// Authenticator returns the tiered authenticator.
func (c *Container) Authenticator() (iamUseCase.Authenticator, error) {
	var err error
	c.authenticatorInit.Do(func() {
		c.authenticator, err = c.initAuthenticator()
		if err != nil {
			c.initErrors["authenticator"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authenticator"]; exists {
		return nil, storedErr
	}
	return c.authenticator, nil
}

// AccessUseCase returns the access use case.
func (c *Container) AccessUseCase() (iamUseCase.AccessUseCase, error) {
	var err error
	c.accessUseCaseInit.Do(func() {
		c.accessUseCase, err = c.initAccessUseCase()
		if err != nil {
			c.initErrors["accessUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["accessUseCase"]; exists {
		return nil, storedErr
	}
	return c.accessUseCase, nil
}

// RoleUseCase returns the role use case.
func (c *Container) RoleUseCase() (iamUseCase.RoleUseCase, error) {
	var err error
	c.roleUseCaseInit.Do(func() {
		c.roleUseCase, err = c.initRoleUseCase()
		if err != nil {
			c.initErrors["roleUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["roleUseCase"]; exists {
		return nil, storedErr
	}
	return c.roleUseCase, nil
}

// UserUseCase returns the user use case.
func (c *Container) UserUseCase() (iamUseCase.UserUseCase, error) {
	var err error
	c.userUseCaseInit.Do(func() {
		c.userUseCase, err = c.initUserUseCase()
		if err != nil {
			c.initErrors["userUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["userUseCase"]; exists {
		return nil, storedErr
	}
	return c.userUseCase, nil
}

// TokenUseCase returns the token use case, wrapped with metrics when enabled.
func (c *Container) TokenUseCase() (iamUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		if err != nil {
			c.initErrors["tokenUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenUseCase"]; exists {
		return nil, storedErr
	}
	return c.tokenUseCase, nil
}

// initAccessRepository creates the access repository instance.
func (c *Container) initAccessRepository() (iamUseCase.AccessRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for access repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return iamRepository.NewMySQLAccessRepository(db), nil
	case "postgres":
		return iamRepository.NewPostgreSQLAccessRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initRoleRepository creates the role repository instance.
func (c *Container) initRoleRepository() (iamUseCase.RoleRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for role repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return iamRepository.NewMySQLRoleRepository(db), nil
	case "postgres":
		return iamRepository.NewPostgreSQLRoleRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initUserRepository creates the user repository instance.
func (c *Container) initUserRepository() (iamUseCase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for user repository: %w", err)
	}

	// Select the appropriate repository based on the database driver
	switch c.config.DBDriver {
	case "mysql":
		return iamRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return iamRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAuthenticator creates the authenticator with all its dependencies.
func (c *Container) initAuthenticator() (iamUseCase.Authenticator, error) {
	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for authenticator: %w", err)
	}

	roleRepo, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for authenticator: %w", err)
	}

	accessRepo, err := c.AccessRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get access repository for authenticator: %w", err)
	}

	decryptor, err := c.CredentialDecryptor()
	if err != nil {
		return nil, fmt.Errorf("failed to get credential decryptor for authenticator: %w", err)
	}

	return iamUseCase.NewAuthenticator(
		c.config,
		userRepo,
		roleRepo,
		accessRepo,
		c.PasswordService(),
		decryptor,
		c.DirectoryService(),
		c.Logger(),
	), nil
}

// initAccessUseCase creates the access use case with its dependencies.
func (c *Container) initAccessUseCase() (iamUseCase.AccessUseCase, error) {
	accessRepo, err := c.AccessRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get access repository for access use case: %w", err)
	}

	return iamUseCase.NewAccessUseCase(accessRepo), nil
}

// initRoleUseCase creates the role use case with its dependencies.
func (c *Container) initRoleUseCase() (iamUseCase.RoleUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for role use case: %w", err)
	}

	roleRepo, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for role use case: %w", err)
	}

	accessRepo, err := c.AccessRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get access repository for role use case: %w", err)
	}

	return iamUseCase.NewRoleUseCase(txManager, roleRepo, accessRepo), nil
}

// initUserUseCase creates the user use case with its dependencies.
func (c *Container) initUserUseCase() (iamUseCase.UserUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for user use case: %w", err)
	}

	userRepo, err := c.UserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for user use case: %w", err)
	}

	roleRepo, err := c.RoleRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get role repository for user use case: %w", err)
	}

	return iamUseCase.NewUserUseCase(c.config, txManager, userRepo, roleRepo, c.PasswordService()), nil
}

// initTokenUseCase creates the token use case with its dependencies.
func (c *Container) initTokenUseCase() (iamUseCase.TokenUseCase, error) {
	authenticator, err := c.Authenticator()
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticator for token use case: %w", err)
	}

	useCase := iamUseCase.NewTokenUseCase(authenticator, c.TokenService())

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for token use case: %w", err)
		}
		useCase = iamUseCase.NewTokenUseCaseWithMetrics(useCase, businessMetrics)
	}

	return useCase, nil
}
