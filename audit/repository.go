// audit/repository.go
package audit

import (
	"context"
	"fmt"

	"github.com/staffledger/api/config"
)

// Repository is an append-only store for employee log entries. Upsert keyed
// by RowKey means a replayed entry overwrites itself instead of duplicating.
type Repository interface {
	EnsureTable(ctx context.Context) error
	Upsert(ctx context.Context, entry EmployeeLog) error
}

// NewRepository builds the log store selected by cfg.Backend.
func NewRepository(cfg config.AuditLogConfiguration) (Repository, error) {
	switch cfg.Backend {
	case config.AuditBackendRedis:
		return NewRedisRepository(cfg.ConnectionString, cfg.Table)
	case config.AuditBackendElasticsearch:
		return NewElasticsearchRepository(cfg.ConnectionString, cfg.Table)
	default:
		return nil, fmt.Errorf("unsupported audit log backend %q", cfg.Backend)
	}
}
