// service/services.go
package service

import (
	"gorm.io/gorm"

	"github.com/staffledger/api/audit"
	"github.com/staffledger/api/dao"
	"github.com/staffledger/api/metrics"
	"github.com/staffledger/api/util"
)

type Services struct {
	Employee IEmployeeService
}

func InitializeServices(
	gormDB *gorm.DB,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	cacheService *util.CacheService,
	m *metrics.Metrics,
) *Services {
	employeeDAO := dao.NewEmployeeDAO(gormDB)

	return &Services{
		Employee: NewEmployeeService(employeeDAO, auditService, validationUtil, cacheService, m),
	}
}
