package service

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"time"

	"github.com/go-ldap/ldap/v3"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
)

// DirectoryConfig holds the connection settings for the external directory.
type DirectoryConfig struct {
	URL           string
	BindDN        string
	BindPassword  string
	BaseDN        string
	UserAttribute string
	Timeout       time.Duration
}

// ldapDirectoryService implements DirectoryService against an LDAP directory.
// Each call opens a fresh connection; the directory is only consulted as the
// last authentication tier, so connection reuse is not worth the state.
type ldapDirectoryService struct {
	cfg    DirectoryConfig
	logger *slog.Logger
}

// Authenticate performs the bind-search-rebind flow:
//  1. bind with the fixed service identity
//  2. search the base DN for an entry whose user attribute matches username
//  3. bind again with the found entry's DN and the supplied password
//
// A search returning multiple entries considers only the first canonical.
// The connection is closed (unbound) on every path.
func (d *ldapDirectoryService) Authenticate(
	ctx context.Context,
	username, password string,
) (*DirectoryIdentity, error) {
	conn, err := d.dial(ctx)
	if err != nil {
		d.logger.Warn("directory dial failed", slog.Any("error", err))
		return nil, iamDomain.ErrDirectoryUnavailable
	}
	defer func() { _ = conn.Close() }()

	if err := conn.Bind(d.cfg.BindDN, d.cfg.BindPassword); err != nil {
		d.logger.Warn("directory service bind failed", slog.Any("error", err))
		return nil, iamDomain.ErrDirectoryUnavailable
	}

	searchRequest := ldap.NewSearchRequest(
		d.cfg.BaseDN,
		ldap.ScopeWholeSubtree,
		ldap.NeverDerefAliases,
		0,
		0,
		false,
		fmt.Sprintf("(%s=%s)", d.cfg.UserAttribute, ldap.EscapeFilter(username)),
		[]string{"dn", "userPrincipalName", "mail"},
		nil,
	)

	result, err := conn.Search(searchRequest)
	if err != nil {
		d.logger.Warn("directory search failed",
			slog.String("username", username),
			slog.Any("error", err))
		return nil, iamDomain.ErrDirectoryUnavailable
	}

	if len(result.Entries) == 0 {
		return nil, iamDomain.ErrInvalidCredentials
	}

	entry := result.Entries[0]

	if err := conn.Bind(entry.DN, password); err != nil {
		return nil, iamDomain.ErrInvalidCredentials
	}

	identity := &DirectoryIdentity{
		DN:    entry.DN,
		Email: entry.GetAttributeValue("mail"),
	}
	if identity.Email == "" {
		identity.Email = entry.GetAttributeValue("userPrincipalName")
	}

	return identity, nil
}

// dial opens a connection honoring both the configured timeout and the
// request context deadline.
func (d *ldapDirectoryService) dial(ctx context.Context) (*ldap.Conn, error) {
	dialer := &net.Dialer{Timeout: d.cfg.Timeout}
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < d.cfg.Timeout {
			dialer.Timeout = remaining
		}
	}

	conn, err := ldap.DialURL(d.cfg.URL, ldap.DialWithDialer(dialer))
	if err != nil {
		return nil, err
	}

	conn.SetTimeout(d.cfg.Timeout)
	return conn, nil
}

// NewDirectoryService creates a DirectoryService backed by an LDAP server.
func NewDirectoryService(cfg DirectoryConfig, logger *slog.Logger) DirectoryService {
	return &ldapDirectoryService{
		cfg:    cfg,
		logger: logger,
	}
}
