// controller/controllers.go
package controller

import "github.com/staffledger/api/service"

type Controllers struct {
	Employee *EmployeeController
}

func InitializeControllers(services *service.Services) *Controllers {
	return &Controllers{
		Employee: NewEmployeeController(services.Employee),
	}
}
