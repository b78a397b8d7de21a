package http

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	"github.com/licentio/licentio/internal/iam/http/dto"
	httpMocks "github.com/licentio/licentio/internal/iam/http/mocks"
)

func TestAccessHandler_CreateHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAccessUseCase{}
		handler := NewAccessHandler(mockUseCase, testLogger())

		access := &iamDomain.Access{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      "CREATE_LICENSE",
			CreatedAt: time.Now().UTC(),
		}
		mockUseCase.On("Create", mock.Anything, &iamDomain.CreateAccessInput{Name: "CREATE_LICENSE"}).
			Return(access, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/accesses", dto.CreateAccessRequest{
			Name: "CREATE_LICENSE",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.AccessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "CREATE_LICENSE", response.Name)
	})

	t.Run("Error_LowercaseNameRejected", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAccessUseCase{}
		handler := NewAccessHandler(mockUseCase, testLogger())

		c, w := createTestContext(http.MethodPost, "/v1/accesses", dto.CreateAccessRequest{
			Name: "create_license",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Error_DuplicatedName", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAccessUseCase{}
		handler := NewAccessHandler(mockUseCase, testLogger())

		mockUseCase.On("Create", mock.Anything, mock.Anything).
			Return(nil, iamDomain.ErrAccessExists).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/accesses", dto.CreateAccessRequest{
			Name: "CREATE_LICENSE",
		})

		handler.CreateHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAccessHandler_ListHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAccessUseCase{}
		handler := NewAccessHandler(mockUseCase, testLogger())

		accesses := []*iamDomain.Access{
			{ID: uuid.Must(uuid.NewV7()), Name: "CREATE_LICENSE"},
			{ID: uuid.Must(uuid.NewV7()), Name: "READ_LICENSE"},
		}
		mockUseCase.On("List", mock.Anything).Return(accesses, nil).Once()

		c, w := createTestContext(http.MethodGet, "/v1/accesses", nil)

		handler.ListHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ListAccessesResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Len(t, response.Data, 2)
	})
}

func TestAccessHandler_DeleteHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAccessUseCase{}
		handler := NewAccessHandler(mockUseCase, testLogger())

		accessID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Delete", mock.Anything, accessID).Return(nil).Once()

		c, w := createTestContext(http.MethodDelete, "/v1/accesses/"+accessID.String(), nil)
		c.Params = []gin.Param{{Key: "id", Value: accessID.String()}}

		handler.DeleteHandler(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Error_UnknownID", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAccessUseCase{}
		handler := NewAccessHandler(mockUseCase, testLogger())

		accessID := uuid.Must(uuid.NewV7())
		mockUseCase.On("Delete", mock.Anything, accessID).
			Return(iamDomain.ErrAccessNotFound).
			Once()

		c, w := createTestContext(http.MethodDelete, "/v1/accesses/"+accessID.String(), nil)
		c.Params = []gin.Param{{Key: "id", Value: accessID.String()}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Error_InvalidUUID", func(t *testing.T) {
		mockUseCase := &httpMocks.MockAccessUseCase{}
		handler := NewAccessHandler(mockUseCase, testLogger())

		c, w := createTestContext(http.MethodDelete, "/v1/accesses/not-a-uuid", nil)
		c.Params = []gin.Param{{Key: "id", Value: "not-a-uuid"}}

		handler.DeleteHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		mockUseCase.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
