// test/mock/employee_cache.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/staffledger/api/model"
)

// MockEmployeeCache is a mock implementation of service.EmployeeCache
type MockEmployeeCache struct {
	mock.Mock
}

func (m *MockEmployeeCache) GetEmployee(ctx context.Context, employeeID int64) (*model.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeCache) SetEmployee(ctx context.Context, employee model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeCache) DeleteEmployee(ctx context.Context, employeeID int64) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}
