// model/employee.go
package model

// Employee is the authoritative record held by the primary store.
type Employee struct {
	ID                int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Name              string  `json:"name" gorm:"column:name;not null" validate:"notblank"`
	Address           string  `json:"address" gorm:"column:address"`
	Extension         string  `json:"extension" gorm:"column:extension"`
	ProfessionalEmail string  `json:"professionalEmail" gorm:"column:professional_email;not null" validate:"notblank"`
	Department        string  `json:"department" gorm:"column:department;index"`
	Salary            float64 `json:"salary" gorm:"column:salary;not null" validate:"gt=0"`
}

func (Employee) TableName() string { return "employees" }

// ApplyUpdate copies every mutable field from src. The ID is left alone.
func (e *Employee) ApplyUpdate(src Employee) {
	e.Name = src.Name
	e.Address = src.Address
	e.Extension = src.Extension
	e.ProfessionalEmail = src.ProfessionalEmail
	e.Department = src.Department
	e.Salary = src.Salary
}
