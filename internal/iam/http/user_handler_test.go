package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	"github.com/licentio/licentio/internal/iam/http/dto"
	httpMocks "github.com/licentio/licentio/internal/iam/http/mocks"
	iamService "github.com/licentio/licentio/internal/iam/service"
)

func TestUserHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		handler := NewUserHandler(mockUseCase, testLogger())

		user := &iamDomain.User{
			ID:           uuid.Must(uuid.NewV7()),
			Username:     "alice",
			PasswordHash: "argon2id-hash",
			Roles:        []string{"Operator"},
		}
		mockUseCase.On("Create", mock.Anything, &iamDomain.CreateUserInput{
			Username: "alice",
			Password: "s3cret",
			Role:     "Operator",
		}).Return(user, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/users", dto.CreateUserRequest{
			Username: "alice",
			Password: "s3cret",
			Role:     "Operator",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "alice", response.Username)
		assert.True(t, response.HasPassword)
		assert.NotContains(t, w.Body.String(), "argon2id-hash")
	})

	t.Run("Error_ReservedUsername", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		handler := NewUserHandler(mockUseCase, testLogger())

		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, iamDomain.ErrUserExists).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/users", dto.CreateUserRequest{
			Username: "admin",
			Password: "s3cret",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUserHandler_SetRoleHandler(t *testing.T) {
	t.Run("Success_AddRole", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		handler := NewUserHandler(mockUseCase, testLogger())

		userID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		user := &iamDomain.User{
			ID:       userID,
			Username: "alice",
			Roles:    []string{"Operator"},
		}
		mockUseCase.On("SetRole", mock.Anything, userID, roleID, true).
			Return(user, nil).
			Once()

		c, w := createTestContext(
			http.MethodPut,
			"/v1/users/"+userID.String()+"/roles/"+roleID.String(),
			dto.SetUserRoleRequest{Added: true},
		)
		c.Params = []gin.Param{
			{Key: "id", Value: userID.String()},
			{Key: "role_id", Value: roleID.String()},
		}

		handler.SetRoleHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, []string{"Operator"}, response.Roles)
	})

	t.Run("Error_LastAdminGuard", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		handler := NewUserHandler(mockUseCase, testLogger())

		userID := uuid.Must(uuid.NewV7())
		roleID := uuid.Must(uuid.NewV7())
		mockUseCase.On("SetRole", mock.Anything, userID, roleID, false).
			Return(nil, iamDomain.ErrLastAdmin).
			Once()

		c, w := createTestContext(
			http.MethodPut,
			"/v1/users/"+userID.String()+"/roles/"+roleID.String(),
			dto.SetUserRoleRequest{Added: false},
		)
		c.Params = []gin.Param{
			{Key: "id", Value: userID.String()},
			{Key: "role_id", Value: roleID.String()},
		}

		handler.SetRoleHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserHandler_DeleteHandler(t *testing.T) {
	claims := &iamService.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "admin"},
		Accesses:         []string{iamDomain.AccessUserRoleManagement},
	}

	t.Run("Success", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		handler := NewUserHandler(mockUseCase, testLogger())

		userID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Delete", mock.Anything, "admin", userID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/users/"+userID.String(), nil)
		c.Params = []gin.Param{{Key: "id", Value: userID.String()}}
		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))

		handler.DeleteHandler(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_SelfDeletion", func(t *testing.T) {
		mockUseCase := &httpMocks.MockUserUseCase{}
		handler := NewUserHandler(mockUseCase, testLogger())

		userID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Delete", mock.Anything, "admin", userID).
			Return(iamDomain.ErrSelfDeletion).
			Once()

		c, w := createTestContext(http.MethodDelete, "/v1/users/"+userID.String(), nil)
		c.Params = []gin.Param{{Key: "id", Value: userID.String()}}
		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
