// controller/employee_controller.go
package controller

import (
	"fmt"
	"net/http"
	"path"
	"strconv"

	"github.com/gin-gonic/gin"

	api_errors "github.com/staffledger/api/errors"
	"github.com/staffledger/api/model"
	"github.com/staffledger/api/service"
	"github.com/staffledger/api/util"
	helper_util "github.com/staffledger/api/util/helper"
)

type EmployeeController struct {
	employeeService service.IEmployeeService
}

func NewEmployeeController(employeeService service.IEmployeeService) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
	}
}

// RegisterRoutes registers the API routes
func (ec *EmployeeController) RegisterRoutes(r *gin.RouterGroup) {
	employees := r.Group("/employees")
	{
		employees.GET("/:id", ec.GetEmployee)
		employees.POST("", ec.CreateEmployee)
		employees.PUT("/:id", ec.UpdateEmployee)
		employees.DELETE("/:id", ec.DeleteEmployee)
	}
}

// GetEmployee endpoint
func (ec *EmployeeController) GetEmployee(c *gin.Context) {
	employeeID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID", api_errors.ErrInvalidEmployeeID)
		return
	}

	employee, err := ec.employeeService.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondWithServiceError(c, "Failed to retrieve employee", err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

// CreateEmployee endpoint
func (ec *EmployeeController) CreateEmployee(c *gin.Context) {
	var employee model.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", err)
		return
	}

	created, err := ec.employeeService.CreateEmployee(c.Request.Context(), &employee)
	if err != nil {
		respondWithServiceError(c, "Failed to create employee", err)
		return
	}

	c.Header("Location", path.Join(c.FullPath(), strconv.FormatInt(created.ID, 10)))
	c.JSON(http.StatusCreated, created)
}

// UpdateEmployee endpoint
func (ec *EmployeeController) UpdateEmployee(c *gin.Context) {
	employeeID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID", api_errors.ErrInvalidEmployeeID)
		return
	}

	var employee model.Employee
	if err := c.ShouldBindJSON(&employee); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee data", err)
		return
	}

	if err := ec.employeeService.UpdateEmployee(c.Request.Context(), employeeID, &employee); err != nil {
		respondWithServiceError(c, "Failed to update employee", err)
		return
	}

	c.Status(http.StatusOK)
}

// DeleteEmployee endpoint
func (ec *EmployeeController) DeleteEmployee(c *gin.Context) {
	employeeID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid employee ID", api_errors.ErrInvalidEmployeeID)
		return
	}

	if err := ec.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		respondWithServiceError(c, "Failed to delete employee", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// respondWithServiceError maps a service error to its status code. Internal
// errors carry the cause text so clients can tell a store failure from a
// log failure.
func respondWithServiceError(c *gin.Context, message string, err error) {
	switch api_errors.KindOf(err) {
	case api_errors.KindInvalidArgument:
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case api_errors.KindNotFound:
		util.RespondWithError(c, http.StatusNotFound, "Employee not found", err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fmt.Sprintf("%s: %v", message, err), err)
	}
}
