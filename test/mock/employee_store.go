// test/mock/employee_store.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/staffledger/api/model"
)

// MockEmployeeStore is a mock implementation of service.EmployeeStore
type MockEmployeeStore struct {
	mock.Mock
}

func (m *MockEmployeeStore) GetEmployee(ctx context.Context, employeeID int64) (*model.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Employee), args.Error(1)
}

func (m *MockEmployeeStore) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeStore) UpdateEmployee(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeStore) DeleteEmployee(ctx context.Context, employee *model.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}
