package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staffledger/api/model"
)

func TestEmployee_ApplyUpdate(t *testing.T) {
	stored := model.Employee{
		ID:                7,
		Name:              "Ana",
		Address:           "Rua A, 1",
		Extension:         "101",
		ProfessionalEmail: "ana@x.com",
		Department:        "HR",
		Salary:            1000,
	}
	input := model.Employee{
		ID:                99,
		Name:              "Ana B",
		Address:           "Rua B, 2",
		Extension:         "202",
		ProfessionalEmail: "ana.b@x.com",
		Department:        "Finance",
		Salary:            1500,
	}

	stored.ApplyUpdate(input)

	assert.Equal(t, int64(7), stored.ID)
	assert.Equal(t, "Ana B", stored.Name)
	assert.Equal(t, "Rua B, 2", stored.Address)
	assert.Equal(t, "202", stored.Extension)
	assert.Equal(t, "ana.b@x.com", stored.ProfessionalEmail)
	assert.Equal(t, "Finance", stored.Department)
	assert.Equal(t, 1500.0, stored.Salary)
}

func TestEmployee_TableName(t *testing.T) {
	assert.Equal(t, "employees", model.Employee{}.TableName())
}
