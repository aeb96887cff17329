// errors/employee_errors.go
package errors

import "errors"

var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrInvalidEmployeeID   = errors.New("invalid employee id")
	ErrInvalidEmployeeData = errors.New("invalid employee data")
)
