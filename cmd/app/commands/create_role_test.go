package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	iamMocks "github.com/licentio/licentio/internal/iam/http/mocks"
)

func TestRunCreateRole(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()
	roleID := uuid.Must(uuid.NewV7())
	accessID := uuid.Must(uuid.NewV7())

	t.Run("without-accesses", func(t *testing.T) {
		mockRoles := &iamMocks.MockRoleUseCase{}
		mockAccesses := &iamMocks.MockAccessUseCase{}
		mockRoles.On("Create", ctx, &iamDomain.CreateRoleInput{Name: "Viewers"}).
			Return(&iamDomain.Role{
				ID:        roleID,
				Name:      "Viewers",
				Accesses:  map[string]bool{iamDomain.AccessReadLicense: false},
				CreatedAt: time.Now().UTC(),
			}, nil)

		var out bytes.Buffer
		err := RunCreateRole(ctx, mockRoles, mockAccesses, logger, &out, "Viewers", "", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), roleID.String())
		require.Contains(t, out.String(), "Viewers")
		mockRoles.AssertExpectations(t)
		mockAccesses.AssertNotCalled(t, "List", ctx)
	})

	t.Run("with-accesses", func(t *testing.T) {
		mockRoles := &iamMocks.MockRoleUseCase{}
		mockAccesses := &iamMocks.MockAccessUseCase{}
		mockRoles.On("Create", ctx, &iamDomain.CreateRoleInput{Name: "Issuers"}).
			Return(&iamDomain.Role{
				ID:       roleID,
				Name:     "Issuers",
				Accesses: map[string]bool{iamDomain.AccessCreateLicense: false},
			}, nil)
		mockAccesses.On("List", ctx).Return([]*iamDomain.Access{
			{ID: accessID, Name: iamDomain.AccessCreateLicense},
		}, nil)
		mockRoles.On("SetAccess", ctx, roleID, accessID, true).
			Return(&iamDomain.Role{
				ID:       roleID,
				Name:     "Issuers",
				Accesses: map[string]bool{iamDomain.AccessCreateLicense: true},
			}, nil)

		var out bytes.Buffer
		err := RunCreateRole(ctx, mockRoles, mockAccesses, logger, &out, "Issuers", "CREATE_LICENSE", "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Granted: CREATE_LICENSE")
		mockRoles.AssertExpectations(t)
		mockAccesses.AssertExpectations(t)
	})

	t.Run("unknown-access-name", func(t *testing.T) {
		mockRoles := &iamMocks.MockRoleUseCase{}
		mockAccesses := &iamMocks.MockAccessUseCase{}
		mockRoles.On("Create", ctx, &iamDomain.CreateRoleInput{Name: "Issuers"}).
			Return(&iamDomain.Role{ID: roleID, Name: "Issuers", Accesses: map[string]bool{}}, nil)
		mockAccesses.On("List", ctx).Return([]*iamDomain.Access{}, nil)

		var out bytes.Buffer
		err := RunCreateRole(ctx, mockRoles, mockAccesses, logger, &out, "Issuers", "NO_SUCH_ACCESS", "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown access name")
	})

	t.Run("propagates-conflict", func(t *testing.T) {
		mockRoles := &iamMocks.MockRoleUseCase{}
		mockAccesses := &iamMocks.MockAccessUseCase{}
		mockRoles.On("Create", ctx, &iamDomain.CreateRoleInput{Name: "Issuers"}).
			Return(nil, iamDomain.ErrRoleExists)

		var out bytes.Buffer
		err := RunCreateRole(ctx, mockRoles, mockAccesses, logger, &out, "Issuers", "", "text")

		require.Error(t, err)
		require.ErrorIs(t, err, iamDomain.ErrRoleExists)
	})

	t.Run("parse-access-names", func(t *testing.T) {
		names, err := parseAccessNames(" CREATE_LICENSE , READ_LICENSE ")
		require.NoError(t, err)
		require.Equal(t, []string{"CREATE_LICENSE", "READ_LICENSE"}, names)

		names, err = parseAccessNames("")
		require.NoError(t, err)
		require.Nil(t, names)

		_, err = parseAccessNames(",,")
		require.Error(t, err)
	})
}
