package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserHasLocalPassword(t *testing.T) {
	local := &User{Username: "alice", PasswordHash: "$2a$10$hash"}
	directory := &User{Username: "bob"}

	assert.True(t, local.HasLocalPassword())
	assert.False(t, directory.HasLocalPassword())
}

func TestUserHasRole(t *testing.T) {
	user := &User{Roles: []string{"Operators", "Issuers"}}

	assert.True(t, user.HasRole("Operators"))
	assert.True(t, user.HasRole("Issuers"))
	assert.False(t, user.HasRole("Admins"))
}

func TestUserAddRole(t *testing.T) {
	user := &User{Roles: []string{"Operators"}}

	user.AddRole("Issuers")
	assert.Equal(t, []string{"Operators", "Issuers"}, user.Roles)

	// Adding a held role is a no-op
	user.AddRole("Operators")
	assert.Equal(t, []string{"Operators", "Issuers"}, user.Roles)
}

func TestUserRemoveRole(t *testing.T) {
	user := &User{Roles: []string{"Operators", "Issuers"}}

	user.RemoveRole("Operators")
	assert.Equal(t, []string{"Issuers"}, user.Roles)

	// Removing an absent role is a no-op
	user.RemoveRole("Admins")
	assert.Equal(t, []string{"Issuers"}, user.Roles)
}

func TestResolveAccessSet(t *testing.T) {
	tests := []struct {
		name  string
		roles []*Role
		want  []string
	}{
		{
			name: "union of granted accesses sorted",
			roles: []*Role{
				{Name: "Issuers", Accesses: map[string]bool{"CREATE_LICENSE": true, "READ_LICENSE": true}},
				{Name: "Auditors", Accesses: map[string]bool{"READ_LICENSE": true, "RETRIEVE_FILE": true}},
			},
			want: []string{"CREATE_LICENSE", "READ_LICENSE", "RETRIEVE_FILE"},
		},
		{
			name: "false flags are excluded",
			roles: []*Role{
				{Name: "Viewers", Accesses: map[string]bool{"CREATE_LICENSE": false, "READ_LICENSE": true}},
			},
			want: []string{"READ_LICENSE"},
		},
		{
			name:  "no roles resolves to no accesses",
			roles: nil,
			want:  []string{},
		},
		{
			name: "roles with only denied flags resolve to no accesses",
			roles: []*Role{
				{Name: "Suspended", Accesses: map[string]bool{"CREATE_LICENSE": false}},
			},
			want: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, ResolveAccessSet(test.roles))
		})
	}
}
