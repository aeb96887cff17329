package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/staffledger/api/audit"
	"github.com/staffledger/api/test/mock"
)

func TestService_DelegatesToRepository(t *testing.T) {
	ctx := context.Background()
	repo := new(mock.MockAuditRepository)
	entry := audit.EmployeeLog{RowKey: "row-1", PartitionKey: "HR", Action: audit.ActionUpdate}

	repo.On("EnsureTable", ctx).Return(nil).Once()
	repo.On("Upsert", ctx, entry).Return(errors.New("unavailable")).Once()

	svc := audit.NewService(repo)

	assert.NoError(t, svc.EnsureTable(ctx))
	assert.EqualError(t, svc.LogEmployeeChange(ctx, entry), "unavailable")
	repo.AssertExpectations(t)
}
