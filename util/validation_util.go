// util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	api_errors "github.com/staffledger/api/errors"
	"github.com/staffledger/api/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank rejects empty and whitespace-only strings
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}
		return strings.TrimSpace(field.String()) != ""
	})
	return &ValidationUtil{validate: v}
}

// employeeFieldMessages maps struct fields to the message returned to callers.
var employeeFieldMessages = map[string]string{
	"Name":              "employee name is required",
	"ProfessionalEmail": "professional email is required",
	"Salary":            "salary must be greater than zero",
}

// ValidateEmployee checks the fields the primary store cannot accept.
// Only the first failing field is reported.
func (v *ValidationUtil) ValidateEmployee(employee *model.Employee) error {
	if employee == nil {
		return fmt.Errorf("%w: employee data is required", api_errors.ErrInvalidEmployeeData)
	}

	err := v.validate.Struct(employee)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		if msg, ok := employeeFieldMessages[first.StructField()]; ok {
			return fmt.Errorf("%w: %s", api_errors.ErrInvalidEmployeeData, msg)
		}
		return fmt.Errorf("%w: %s failed on %s", api_errors.ErrInvalidEmployeeData, first.Field(), first.Tag())
	}
	return fmt.Errorf("%w: %v", api_errors.ErrInvalidEmployeeData, err)
}

func (v *ValidationUtil) ValidateEmployeeID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", api_errors.ErrInvalidEmployeeID, id)
	}
	return nil
}
