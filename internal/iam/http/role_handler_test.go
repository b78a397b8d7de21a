package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	"github.com/licentio/licentio/internal/iam/http/dto"
	httpMocks "github.com/licentio/licentio/internal/iam/http/mocks"
)

func TestRoleHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := &httpMocks.MockRoleUseCase{}
		handler := NewRoleHandler(mockUseCase, testLogger())

		role := &iamDomain.Role{
			ID:   uuid.Must(uuid.NewV7()),
			Name: "Operator",
			Accesses: map[string]bool{
				"CREATE_LICENSE": false,
				"READ_LICENSE":   false,
			},
		}
		mockUseCase.On("Create", mock.Anything, &iamDomain.CreateRoleInput{Name: "Operator"}).
			Return(role, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/roles", dto.CreateRoleRequest{Name: "Operator"})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.RoleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Operator", response.Name)
		assert.Len(t, response.Accesses, 2)
	})

	t.Run("Error_BlankName", func(t *testing.T) {
		mockUseCase := &httpMocks.MockRoleUseCase{}
		handler := NewRoleHandler(mockUseCase, testLogger())

		c, w := createTestContext(http.MethodPost, "/v1/roles", dto.CreateRoleRequest{Name: "   "})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestRoleHandler_SetAccessHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := &httpMocks.MockRoleUseCase{}
		handler := NewRoleHandler(mockUseCase, testLogger())

		roleID := uuid.Must(uuid.NewV7())
		accessID := uuid.Must(uuid.NewV7())
		updated := &iamDomain.Role{
			ID:       roleID,
			Name:     "Operator",
			Accesses: map[string]bool{"CREATE_LICENSE": true},
		}
		mockUseCase.On("SetAccess", mock.Anything, roleID, accessID, true).
			Return(updated, nil).
			Once()

		c, w := createTestContext(
			http.MethodPut,
			"/v1/roles/"+roleID.String()+"/accesses/"+accessID.String(),
			dto.SetRoleAccessRequest{HasAccess: true},
		)
		c.Params = []gin.Param{
			{Key: "id", Value: roleID.String()},
			{Key: "access_id", Value: accessID.String()},
		}

		handler.SetAccessHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.RoleResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.True(t, response.Accesses["CREATE_LICENSE"])
	})

	t.Run("Error_UnknownAccess", func(t *testing.T) {
		mockUseCase := &httpMocks.MockRoleUseCase{}
		handler := NewRoleHandler(mockUseCase, testLogger())

		roleID := uuid.Must(uuid.NewV7())
		accessID := uuid.Must(uuid.NewV7())
		mockUseCase.On("SetAccess", mock.Anything, roleID, accessID, false).
			Return(nil, iamDomain.ErrAccessNotFound).
			Once()

		c, w := createTestContext(
			http.MethodPut,
			"/v1/roles/"+roleID.String()+"/accesses/"+accessID.String(),
			dto.SetRoleAccessRequest{HasAccess: false},
		)
		c.Params = []gin.Param{
			{Key: "id", Value: roleID.String()},
			{Key: "access_id", Value: accessID.String()},
		}

		handler.SetAccessHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRoleHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := &httpMocks.MockRoleUseCase{}
		handler := NewRoleHandler(mockUseCase, testLogger())

		roleID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Delete", mock.Anything, roleID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/roles/"+roleID.String(), nil)
		c.Params = []gin.Param{{Key: "id", Value: roleID.String()}}

		handler.DeleteHandler(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
