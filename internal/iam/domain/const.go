// Package domain defines identity and access management domain models.
// Implements role-based access control with named accesses, roles, users,
// and the three-tier credential authentication chain.
package domain

// Well-known access names seeded at bootstrap. The registry is open: new
// accesses can be created at runtime and every role's access map reflects
// them through projection.
const (
	// AccessCreateLicense gates license generation and deletion.
	AccessCreateLicense = "CREATE_LICENSE"

	// AccessReadLicense gates listing and reading license metadata.
	AccessReadLicense = "READ_LICENSE"

	// AccessRetrieveFile gates downloading license and digest artifacts.
	AccessRetrieveFile = "RETRIEVE_FILE"

	// AccessUserRoleManagement gates administration of users, roles and accesses.
	AccessUserRoleManagement = "USER_ROLE_MANAGEMENT"
)

// BootstrapAccessNames returns the well-known access names created by the
// bootstrap command.
func BootstrapAccessNames() []string {
	return []string{
		AccessCreateLicense,
		AccessReadLicense,
		AccessRetrieveFile,
		AccessUserRoleManagement,
	}
}

// AdminRoleLabel is the role label reported for the built-in admin identity.
const AdminRoleLabel = "Admin"
