// service/employee_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/staffledger/api/audit"
	api_errors "github.com/staffledger/api/errors"
	logger "github.com/staffledger/api/logging"
	"github.com/staffledger/api/metrics"
	"github.com/staffledger/api/model"
	"github.com/staffledger/api/util"
)

// IEmployeeService defines the interface for employee operations
type IEmployeeService interface {
	GetEmployee(ctx context.Context, employeeID int64) (*model.Employee, error)
	CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID int64, employee *model.Employee) error
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// EmployeeStore is the primary store. GetEmployee, UpdateEmployee and
// DeleteEmployee return api_errors.ErrEmployeeNotFound when no row matches.
type EmployeeStore interface {
	GetEmployee(ctx context.Context, employeeID int64) (*model.Employee, error)
	CreateEmployee(ctx context.Context, employee *model.Employee) error
	UpdateEmployee(ctx context.Context, employee *model.Employee) error
	DeleteEmployee(ctx context.Context, employee *model.Employee) error
}

// EmployeeCache is the optional read-through cache. Misses return nil, nil.
type EmployeeCache interface {
	GetEmployee(ctx context.Context, employeeID int64) (*model.Employee, error)
	SetEmployee(ctx context.Context, employee model.Employee) error
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// EmployeeService writes employees to the primary store and mirrors every
// committed mutation into the audit log. A failed log write is reported to
// the caller but never undoes the primary write.
type EmployeeService struct {
	employeeDAO    EmployeeStore
	auditService   audit.Service
	validationUtil *util.ValidationUtil
	cacheService   EmployeeCache
	metrics        *metrics.Metrics
	newRowKey      func() string
	now            func() time.Time
}

var _ IEmployeeService = &EmployeeService{}

type Option func(*EmployeeService)

// WithClock overrides the time source used for log timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *EmployeeService) { s.now = now }
}

// WithRowKeyGenerator overrides how audit row keys are generated.
func WithRowKeyGenerator(gen func() string) Option {
	return func(s *EmployeeService) { s.newRowKey = gen }
}

// NewEmployeeService creates a new instance of EmployeeService
func NewEmployeeService(
	employeeDAO EmployeeStore,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService EmployeeCache,
	m *metrics.Metrics,
	opts ...Option,
) *EmployeeService {
	if cacheService == nil {
		cacheService = util.NewCacheService(nil)
	}
	s := &EmployeeService{
		employeeDAO:    employeeDAO,
		auditService:   auditService,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		metrics:        m,
		newRowKey:      func() string { return uuid.New().String() },
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetEmployee retrieves an employee by its ID
func (s *EmployeeService) GetEmployee(ctx context.Context, employeeID int64) (*model.Employee, error) {
	if err := s.validationUtil.ValidateEmployeeID(employeeID); err != nil {
		return nil, err
	}

	cached, err := s.cacheService.GetEmployee(ctx, employeeID)
	if err != nil {
		logger.Warn("Failed to read employee from cache", zap.Error(err), zap.Int64("employeeID", employeeID))
	} else if cached != nil {
		return cached, nil
	}

	employee, err := s.employeeDAO.GetEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, api_errors.ErrEmployeeNotFound) {
			return nil, api_errors.ErrEmployeeNotFound
		}
		logger.Error("Error retrieving employee", zap.Error(err), zap.Int64("employeeID", employeeID))
		return nil, fmt.Errorf("%w: %w", api_errors.ErrDatabaseOperation, err)
	}

	if err := s.cacheService.SetEmployee(ctx, *employee); err != nil {
		logger.Warn("Failed to cache employee", zap.Error(err), zap.Int64("employeeID", employeeID))
	}

	return employee, nil
}

// CreateEmployee persists a new employee and logs an Insertion entry. When
// only the log write fails the created employee is returned alongside the
// error, since the record is already committed.
func (s *EmployeeService) CreateEmployee(ctx context.Context, employee *model.Employee) (*model.Employee, error) {
	if err := s.validationUtil.ValidateEmployee(employee); err != nil {
		return nil, err
	}

	if err := s.employeeDAO.CreateEmployee(ctx, employee); err != nil {
		logger.Error("Error creating employee", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", api_errors.ErrDatabaseOperation, err)
	}
	s.metrics.IncrementMutation(string(audit.ActionInsertion))

	if err := s.logChange(ctx, *employee, audit.ActionInsertion); err != nil {
		return employee, err
	}

	logger.Info("Employee created successfully", zap.Int64("employeeID", employee.ID))
	return employee, nil
}

// UpdateEmployee copies the mutable fields of employee onto the stored record
// and logs an Update entry.
func (s *EmployeeService) UpdateEmployee(ctx context.Context, employeeID int64, employee *model.Employee) error {
	if err := s.validationUtil.ValidateEmployeeID(employeeID); err != nil {
		return err
	}
	if err := s.validationUtil.ValidateEmployee(employee); err != nil {
		return err
	}

	existing, err := s.findForMutation(ctx, employeeID)
	if err != nil {
		return err
	}

	existing.ApplyUpdate(*employee)

	if err := s.employeeDAO.UpdateEmployee(ctx, existing); err != nil {
		if errors.Is(err, api_errors.ErrEmployeeNotFound) {
			return api_errors.ErrEmployeeNotFound
		}
		logger.Error("Error updating employee", zap.Error(err), zap.Int64("employeeID", employeeID))
		return fmt.Errorf("%w: %w", api_errors.ErrDatabaseOperation, err)
	}
	s.metrics.IncrementMutation(string(audit.ActionUpdate))
	s.invalidateCache(ctx, employeeID)

	if err := s.logChange(ctx, *existing, audit.ActionUpdate); err != nil {
		return err
	}

	logger.Info("Employee updated successfully", zap.Int64("employeeID", employeeID))
	return nil
}

// DeleteEmployee removes the employee and logs a Removal entry carrying its
// last known values.
func (s *EmployeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	if err := s.validationUtil.ValidateEmployeeID(employeeID); err != nil {
		return err
	}

	existing, err := s.findForMutation(ctx, employeeID)
	if err != nil {
		return err
	}

	if err := s.employeeDAO.DeleteEmployee(ctx, existing); err != nil {
		if errors.Is(err, api_errors.ErrEmployeeNotFound) {
			return api_errors.ErrEmployeeNotFound
		}
		logger.Error("Error deleting employee", zap.Error(err), zap.Int64("employeeID", employeeID))
		return fmt.Errorf("%w: %w", api_errors.ErrDatabaseOperation, err)
	}
	s.metrics.IncrementMutation(string(audit.ActionRemoval))
	s.invalidateCache(ctx, employeeID)

	if err := s.logChange(ctx, *existing, audit.ActionRemoval); err != nil {
		return err
	}

	logger.Info("Employee deleted successfully", zap.Int64("employeeID", employeeID))
	return nil
}

// Helper methods

// findForMutation always reads the primary store, never the cache.
func (s *EmployeeService) findForMutation(ctx context.Context, employeeID int64) (*model.Employee, error) {
	existing, err := s.employeeDAO.GetEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, api_errors.ErrEmployeeNotFound) {
			return nil, api_errors.ErrEmployeeNotFound
		}
		logger.Error("Error retrieving existing employee", zap.Error(err), zap.Int64("employeeID", employeeID))
		return nil, fmt.Errorf("%w: %w", api_errors.ErrDatabaseOperation, err)
	}
	return existing, nil
}

func (s *EmployeeService) invalidateCache(ctx context.Context, employeeID int64) {
	if err := s.cacheService.DeleteEmployee(ctx, employeeID); err != nil {
		logger.Warn("Failed to delete employee from cache", zap.Error(err), zap.Int64("employeeID", employeeID))
	}
}

func (s *EmployeeService) logChange(ctx context.Context, employee model.Employee, action audit.Action) error {
	entry, err := audit.NewEmployeeLog(employee, action, employee.Department, s.newRowKey(), s.now())
	if err == nil {
		err = s.auditService.LogEmployeeChange(ctx, entry)
	}
	if err != nil {
		s.metrics.IncrementAuditFailure(string(action))
		logger.Error("Failed to write audit log",
			zap.Error(err),
			zap.String("action", string(action)),
			zap.Int64("employeeID", employee.ID),
			zap.String("department", employee.Department))
		return fmt.Errorf("%w: %w", api_errors.ErrAuditLogWrite, err)
	}
	return nil
}
