package dao

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	api_errors "github.com/staffledger/api/errors"
	logger "github.com/staffledger/api/logging"
	"github.com/staffledger/api/model"
)

type EmployeeDAO struct {
	DB *gorm.DB
}

func NewEmployeeDAO(db *gorm.DB) *EmployeeDAO {
	return &EmployeeDAO{DB: db}
}

func (dao *EmployeeDAO) GetEmployee(ctx context.Context, employeeID int64) (*model.Employee, error) {
	start := time.Now()

	var employee model.Employee
	err := dao.DB.WithContext(ctx).First(&employee, employeeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Debug("Employee not found", zap.Int64("employeeID", employeeID))
		return nil, api_errors.ErrEmployeeNotFound
	}
	if err != nil {
		logger.Error("Failed to retrieve employee",
			zap.Error(err),
			zap.Int64("employeeID", employeeID),
			zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	logger.Debug("Employee retrieved",
		zap.Int64("employeeID", employeeID),
		zap.Duration("duration", time.Since(start)))
	return &employee, nil
}

// CreateEmployee inserts the employee and sets the ID assigned by the store.
func (dao *EmployeeDAO) CreateEmployee(ctx context.Context, employee *model.Employee) error {
	start := time.Now()
	logger.Info("Creating new employee", zap.String("department", employee.Department))

	// the store owns the identifier
	employee.ID = 0
	if err := dao.DB.WithContext(ctx).Create(employee).Error; err != nil {
		logger.Error("Failed to create employee",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return err
	}

	logger.Info("Employee created successfully",
		zap.Int64("employeeID", employee.ID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// UpdateEmployee writes every column of an existing row. It never inserts:
// a row removed since it was read yields ErrEmployeeNotFound.
func (dao *EmployeeDAO) UpdateEmployee(ctx context.Context, employee *model.Employee) error {
	start := time.Now()
	logger.Info("Updating employee", zap.Int64("employeeID", employee.ID))

	result := dao.DB.WithContext(ctx).Model(employee).Select("*").Updates(employee)
	if result.Error != nil {
		logger.Error("Failed to update employee",
			zap.Error(result.Error),
			zap.Int64("employeeID", employee.ID),
			zap.Duration("duration", time.Since(start)))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return api_errors.ErrEmployeeNotFound
	}

	logger.Info("Employee updated successfully",
		zap.Int64("employeeID", employee.ID),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *EmployeeDAO) DeleteEmployee(ctx context.Context, employee *model.Employee) error {
	start := time.Now()
	logger.Info("Deleting employee", zap.Int64("employeeID", employee.ID))

	result := dao.DB.WithContext(ctx).Delete(&model.Employee{}, employee.ID)
	if result.Error != nil {
		logger.Error("Failed to delete employee",
			zap.Error(result.Error),
			zap.Int64("employeeID", employee.ID),
			zap.Duration("duration", time.Since(start)))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return api_errors.ErrEmployeeNotFound
	}

	logger.Info("Employee deleted successfully",
		zap.Int64("employeeID", employee.ID),
		zap.Duration("duration", time.Since(start)))
	return nil
}
