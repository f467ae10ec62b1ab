package employee_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/FurowKick/phone-directory/internal/employee"
	employeeerrors "github.com/FurowKick/phone-directory/internal/employee/errors"
	employeeMock "github.com/FurowKick/phone-directory/internal/employee/mock"
)

func setupEmployeeRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asUser injects the context keys the auth middleware would set.
func asUser(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID.String())
		c.Next()
	}
}

func TestHandler_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	router := setupEmployeeRouter()
	router.GET("/employees", handler.GetAll)

	t.Run("Success", func(t *testing.T) {
		mockService.EXPECT().
			List(gomock.Any()).
			Return([]employee.EmployeeResponse{{LastName: "Ivanov"}, {LastName: "Petrova"}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var res []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res, 2)
		assert.Equal(t, "Ivanov", res[0]["lastName"])
	})

	t.Run("Empty Directory Returns Array", func(t *testing.T) {
		mockService.EXPECT().
			List(gomock.Any()).
			Return([]employee.EmployeeResponse{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	router := setupEmployeeRouter()
	router.GET("/employees/search", handler.Search)

	t.Run("Passes Query Through", func(t *testing.T) {
		mockService.EXPECT().
			Search(gomock.Any(), "ivanov").
			Return([]employee.EmployeeResponse{{LastName: "Ivanov"}}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/search?query=ivanov", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var res []map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res, 1)
	})

	t.Run("Missing Query Param Is Empty Search", func(t *testing.T) {
		mockService.EXPECT().
			Search(gomock.Any(), "").
			Return([]employee.EmployeeResponse{}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/search", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	router := setupEmployeeRouter()
	router.POST("/employees", handler.Create)

	t.Run("Success", func(t *testing.T) {
		reqBody := employee.CreateEmployeeRequest{FirstName: "Oleg", LastName: "Sidorov"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			Create(gomock.Any(), reqBody).
			Return(employee.EmployeeResponse{ID: uuid.NewString(), FirstName: "Oleg", LastName: "Sidorov"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "Sidorov", res["lastName"])
	})

	t.Run("Malformed Body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "INVALID_INPUT", res["error"]["code"])
	})
}

func TestHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	router := setupEmployeeRouter()
	router.DELETE("/employees/:id", handler.Delete)

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockService.EXPECT().Delete(gomock.Any(), id).Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+id.String(), nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		mockService.EXPECT().Delete(gomock.Any(), id).Return(employeeerrors.ErrEmployeeNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+id.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)

		var res map[string]map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "NOT_FOUND", res["error"]["code"])
		assert.Equal(t, "Employee not found", res["error"]["message"])
	})

	t.Run("Invalid ID", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/not-a-uuid", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Profile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	userID := uuid.New()

	router := setupEmployeeRouter()
	authed := router.Group("", asUser(userID))
	authed.GET("/employees/profile", handler.GetProfile)
	authed.PUT("/employees/profile", handler.UpdateProfile)

	t.Run("Get Success", func(t *testing.T) {
		mockService.EXPECT().
			GetProfile(gomock.Any(), userID).
			Return(employee.EmployeeResponse{UserID: userID.String(), LastName: "Ivanov"}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/profile", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, userID.String(), res["userId"])
	})

	t.Run("Get Without Card", func(t *testing.T) {
		mockService.EXPECT().
			GetProfile(gomock.Any(), userID).
			Return(employee.EmployeeResponse{}, employeeerrors.ErrProfileNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/profile", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)

		var res map[string]map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "NOT_FOUND", res["error"]["code"])
		assert.Equal(t, "Your directory card was not found", res["error"]["message"])
	})

	t.Run("Update Success", func(t *testing.T) {
		reqBody := employee.UpdateEmployeeRequest{FirstName: "Ivan", LastName: "Ivanov"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().
			UpdateProfile(gomock.Any(), userID, reqBody).
			Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/employees/profile", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Missing Identity", func(t *testing.T) {
		// No middleware on this route, so user_id is absent from the context.
		bare := setupEmployeeRouter()
		bare.GET("/employees/profile", handler.GetProfile)

		w := httptest.NewRecorder()
		bare.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/profile", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "INVALID_INPUT", res["error"]["code"])
		assert.Equal(t, "Could not determine the calling user", res["error"]["message"])
	})
}

func TestHandler_UpdateByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := employeeMock.NewMockService(ctrl)
	handler := employee.NewHandler(mockService)
	router := setupEmployeeRouter()
	router.PUT("/employees/:id", handler.UpdateByID)

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		reqBody := employee.UpdateEmployeeRequest{FirstName: "Ivan", LastName: "Ivanov", Position: "Lead"}
		body, _ := json.Marshal(reqBody)

		mockService.EXPECT().UpdateByID(gomock.Any(), id, reqBody).Return(nil)

		req := httptest.NewRequest(http.MethodPut, "/employees/"+id.String(), bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/employees/42", bytes.NewBufferString("{}"))
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var res map[string]map[string]any
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, "INVALID_INPUT", res["error"]["code"])
		assert.Equal(t, "Invalid employee ID", res["error"]["message"])
	})
}
