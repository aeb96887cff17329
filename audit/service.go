// audit/service.go
package audit

import (
	"context"
)

type Service interface {
	EnsureTable(ctx context.Context) error
	LogEmployeeChange(ctx context.Context, entry EmployeeLog) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) EnsureTable(ctx context.Context) error {
	return s.repo.EnsureTable(ctx)
}

func (s *service) LogEmployeeChange(ctx context.Context, entry EmployeeLog) error {
	return s.repo.Upsert(ctx, entry)
}
