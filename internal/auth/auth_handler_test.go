package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/FurowKick/phone-directory/internal/auth"
	autherrors "github.com/FurowKick/phone-directory/internal/auth/errors"
	authMock "github.com/FurowKick/phone-directory/internal/auth/mock"
	"github.com/FurowKick/phone-directory/internal/domain"
)

func setupAuthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/login", handler.Login)

	t.Run("Success Login", func(t *testing.T) {
		reqBody := auth.LoginRequest{Username: "admin", Password: "password123"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Login(gomock.Any(), reqBody.Username, reqBody.Password).
			Return(auth.LoginResponse{Token: "signed-token", Role: domain.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "signed-token", res["token"])
		assert.Equal(t, "Admin", res["role"])
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(auth.LoginResponse{}, autherrors.ErrInvalidCredentials)

		body, _ := json.Marshal(auth.LoginRequest{Username: "wrong", Password: "123"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		var res map[string]map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "INVALID_CREDENTIALS", res["error"]["code"])
	})

	t.Run("Missing Fields", func(t *testing.T) {
		// Binding rejects before the service is reached.
		body, _ := json.Marshal(map[string]string{"username": "admin"})
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)
	router := setupAuthRouter()
	router.POST("/register", handler.Register)

	validReq := auth.RegisterRequest{
		Username:  "new-user",
		Password:  "newpassword",
		FirstName: "Anna",
		LastName:  "Smirnova",
	}

	t.Run("Success Register", func(t *testing.T) {
		body, _ := json.Marshal(validReq)

		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Duplicate Username", func(t *testing.T) {
		body, _ := json.Marshal(validReq)

		mockService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(autherrors.ErrDuplicateUsername)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "DUPLICATE_USERNAME", res["error"]["code"])
	})

	t.Run("Missing Required Name", func(t *testing.T) {
		invalid := validReq
		invalid.LastName = ""
		body, _ := json.Marshal(invalid)

		req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
