// controller/employee_controller_test.go
package controller_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/staffledger/api/controller"
	api_errors "github.com/staffledger/api/errors"
	"github.com/staffledger/api/model"
	mock_service "github.com/staffledger/api/test/service_mock"
)

const employeeJSON = `{"name":"Ann","address":"1 Main St","extension":"101","professionalEmail":"ann@corp.example","department":"HR","salary":5000}`

func setupRouter(t *testing.T) (*gin.Engine, *mock_service.MockIEmployeeService) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	mockEmployeeService := mock_service.NewMockIEmployeeService(ctrl)
	employeeController := controller.NewEmployeeController(mockEmployeeService)

	r := gin.New()
	api := r.Group("/api/v1")
	employeeController.RegisterRoutes(api)
	return r, mockEmployeeService
}

func serve(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestEmployeeController_Get(t *testing.T) {
	t.Run("GetEmployee_Success", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			GetEmployee(gomock.Any(), int64(7)).
			Return(&model.Employee{ID: 7, Name: "Ann", Department: "HR", Salary: 5000}, nil)

		w := serve(router, http.MethodGet, "/api/v1/employees/7", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var got model.Employee
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(7), got.ID)
		assert.Equal(t, "Ann", got.Name)
	})

	t.Run("GetEmployee_NonNumericID", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := serve(router, http.MethodGet, "/api/v1/employees/abc", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetEmployee_InvalidID", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			GetEmployee(gomock.Any(), int64(0)).
			Return(nil, fmt.Errorf("%w: %d", api_errors.ErrInvalidEmployeeID, 0))

		w := serve(router, http.MethodGet, "/api/v1/employees/0", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetEmployee_NotFound", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			GetEmployee(gomock.Any(), int64(999)).
			Return(nil, api_errors.ErrEmployeeNotFound)

		w := serve(router, http.MethodGet, "/api/v1/employees/999", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("GetEmployee_StoreFailure", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			GetEmployee(gomock.Any(), int64(7)).
			Return(nil, fmt.Errorf("%w: %w", api_errors.ErrDatabaseOperation, errors.New("connection reset")))

		w := serve(router, http.MethodGet, "/api/v1/employees/7", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, errorMessage(t, w), "connection reset")
	})
}

func TestEmployeeController_Create(t *testing.T) {
	t.Run("CreateEmployee_Success", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			CreateEmployee(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, e *model.Employee) (*model.Employee, error) {
				assert.Equal(t, "Ann", e.Name)
				assert.Equal(t, 5000.0, e.Salary)
				created := *e
				created.ID = 42
				return &created, nil
			})

		w := serve(router, http.MethodPost, "/api/v1/employees", employeeJSON)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/v1/employees/42", w.Header().Get("Location"))
		var got model.Employee
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, int64(42), got.ID)
	})

	t.Run("CreateEmployee_MalformedJSON", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := serve(router, http.MethodPost, "/api/v1/employees", `{"name":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CreateEmployee_ValidationFailure", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			CreateEmployee(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("%w: employee name is required", api_errors.ErrInvalidEmployeeData))

		w := serve(router, http.MethodPost, "/api/v1/employees", `{"name":"","salary":1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, errorMessage(t, w), "employee name is required")
	})

	t.Run("CreateEmployee_LogFailure", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			CreateEmployee(gomock.Any(), gomock.Any()).
			Return(&model.Employee{ID: 43}, fmt.Errorf("%w: %w", api_errors.ErrAuditLogWrite, errors.New("log store unavailable")))

		w := serve(router, http.MethodPost, "/api/v1/employees", employeeJSON)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, errorMessage(t, w), "failed to write audit log")
		assert.Empty(t, w.Header().Get("Location"))
	})
}

func TestEmployeeController_Update(t *testing.T) {
	t.Run("UpdateEmployee_Success", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			UpdateEmployee(gomock.Any(), int64(5), gomock.Any()).
			Return(nil)

		w := serve(router, http.MethodPut, "/api/v1/employees/5", employeeJSON)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("UpdateEmployee_NonNumericID", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := serve(router, http.MethodPut, "/api/v1/employees/five", employeeJSON)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateEmployee_MalformedJSON", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := serve(router, http.MethodPut, "/api/v1/employees/5", `not json`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateEmployee_NotFound", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			UpdateEmployee(gomock.Any(), int64(999), gomock.Any()).
			Return(api_errors.ErrEmployeeNotFound)

		w := serve(router, http.MethodPut, "/api/v1/employees/999", employeeJSON)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("UpdateEmployee_LogFailure", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			UpdateEmployee(gomock.Any(), int64(5), gomock.Any()).
			Return(fmt.Errorf("%w: %w", api_errors.ErrAuditLogWrite, errors.New("timeout")))

		w := serve(router, http.MethodPut, "/api/v1/employees/5", employeeJSON)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEmployeeController_Delete(t *testing.T) {
	t.Run("DeleteEmployee_Success", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			DeleteEmployee(gomock.Any(), int64(8)).
			Return(nil)

		w := serve(router, http.MethodDelete, "/api/v1/employees/8", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("DeleteEmployee_NonNumericID", func(t *testing.T) {
		router, _ := setupRouter(t)

		w := serve(router, http.MethodDelete, "/api/v1/employees/x", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteEmployee_NotFound", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			DeleteEmployee(gomock.Any(), int64(12)).
			Return(api_errors.ErrEmployeeNotFound)

		w := serve(router, http.MethodDelete, "/api/v1/employees/12", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("DeleteEmployee_LogFailure", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			DeleteEmployee(gomock.Any(), int64(8)).
			Return(fmt.Errorf("%w: %w", api_errors.ErrAuditLogWrite, errors.New("log store unavailable")))

		w := serve(router, http.MethodDelete, "/api/v1/employees/8", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, errorMessage(t, w), "failed to write audit log")
	})

	t.Run("DeleteEmployee_StoreFailure", func(t *testing.T) {
		router, svc := setupRouter(t)
		svc.EXPECT().
			DeleteEmployee(gomock.Any(), int64(8)).
			Return(fmt.Errorf("%w: %w", api_errors.ErrDatabaseOperation, errors.New("deadlock")))

		w := serve(router, http.MethodDelete, "/api/v1/employees/8", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
