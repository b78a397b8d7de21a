package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	iamDomain "github.com/licentio/licentio/internal/iam/domain"
	httpMocks "github.com/licentio/licentio/internal/iam/http/mocks"
	iamService "github.com/licentio/licentio/internal/iam/service"
)

func setupMiddlewareRouter(mockUseCase *httpMocks.MockTokenUseCase, requiredAccess string) *gin.Engine {
	router := gin.New()
	router.GET("/protected",
		AuthenticationMiddleware(mockUseCase, testLogger()),
		AuthorizationMiddleware(requiredAccess, testLogger()),
		func(c *gin.Context) {
			claims, _ := GetClaims(c.Request.Context())
			c.JSON(http.StatusOK, gin.H{"username": claims.Username()})
		},
	)
	return router
}

func TestAuthenticationMiddleware(t *testing.T) {
	t.Run("Success_ValidBearerToken", func(t *testing.T) {
		mockUseCase := &httpMocks.MockTokenUseCase{}
		claims := &iamService.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
			Accesses:         []string{"READ_LICENSE"},
		}
		mockUseCase.On("Verify", mock.Anything, "signed-token").Return(claims, nil).Once()

		router := setupMiddlewareRouter(mockUseCase, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer signed-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "alice")
	})

	t.Run("Error_MissingHeader", func(t *testing.T) {
		mockUseCase := &httpMocks.MockTokenUseCase{}
		router := setupMiddlewareRouter(mockUseCase, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		mockUseCase.AssertNotCalled(t, "Verify", mock.Anything, mock.Anything)
	})

	t.Run("Error_MalformedHeader", func(t *testing.T) {
		mockUseCase := &httpMocks.MockTokenUseCase{}
		router := setupMiddlewareRouter(mockUseCase, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_ExpiredToken", func(t *testing.T) {
		mockUseCase := &httpMocks.MockTokenUseCase{}
		mockUseCase.On("Verify", mock.Anything, "stale-token").
			Return(nil, iamDomain.ErrTokenExpired).
			Once()

		router := setupMiddlewareRouter(mockUseCase, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer stale-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthorizationMiddleware(t *testing.T) {
	t.Run("Success_RequiredAccessClaimed", func(t *testing.T) {
		mockUseCase := &httpMocks.MockTokenUseCase{}
		claims := &iamService.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
			Accesses:         []string{"CREATE_LICENSE"},
		}
		mockUseCase.On("Verify", mock.Anything, "signed-token").Return(claims, nil).Once()

		router := setupMiddlewareRouter(mockUseCase, "CREATE_LICENSE")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer signed-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Error_MissingAccessIsForbidden", func(t *testing.T) {
		mockUseCase := &httpMocks.MockTokenUseCase{}
		claims := &iamService.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
			Accesses:         []string{"READ_LICENSE"},
		}
		mockUseCase.On("Verify", mock.Anything, "signed-token").Return(claims, nil).Once()

		router := setupMiddlewareRouter(mockUseCase, "CREATE_LICENSE")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer signed-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Success_EmptyRequiredAccessIsIdentityOnly", func(t *testing.T) {
		mockUseCase := &httpMocks.MockTokenUseCase{}
		claims := &iamService.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "bob"},
			Accesses:         []string{},
		}
		mockUseCase.On("Verify", mock.Anything, "signed-token").Return(claims, nil).Once()

		router := setupMiddlewareRouter(mockUseCase, "")

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer signed-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
