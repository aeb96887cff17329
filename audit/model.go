// audit/model.go
package audit

import (
	"encoding/json"
	"time"

	"github.com/staffledger/api/model"
)

// Action identifies the mutation that produced a log entry.
type Action string

const (
	ActionInsertion Action = "Insertion"
	ActionUpdate    Action = "Update"
	ActionRemoval   Action = "Removal"
)

// EmployeeLog is the snapshot of an employee written to the log store after
// a successful mutation. PartitionKey groups entries by department and RowKey
// is unique per entry.
type EmployeeLog struct {
	PartitionKey      string    `json:"partition_key"`
	RowKey            string    `json:"row_key"`
	Action            Action    `json:"action"`
	Timestamp         time.Time `json:"timestamp"`
	EmployeeID        int64     `json:"employee_id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Extension         string    `json:"extension"`
	ProfessionalEmail string    `json:"professional_email"`
	Department        string    `json:"department"`
	Salary            float64   `json:"salary"`
	EmployeeJSON      string    `json:"employee_json"`
}

func NewEmployeeLog(employee model.Employee, action Action, partitionKey, rowKey string, now time.Time) (EmployeeLog, error) {
	snapshot, err := json.Marshal(employee)
	if err != nil {
		return EmployeeLog{}, err
	}
	return EmployeeLog{
		PartitionKey:      partitionKey,
		RowKey:            rowKey,
		Action:            action,
		Timestamp:         now.UTC(),
		EmployeeID:        employee.ID,
		Name:              employee.Name,
		Address:           employee.Address,
		Extension:         employee.Extension,
		ProfessionalEmail: employee.ProfessionalEmail,
		Department:        employee.Department,
		Salary:            employee.Salary,
		EmployeeJSON:      string(snapshot),
	}, nil
}
