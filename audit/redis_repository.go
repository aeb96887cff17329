// audit/redis_repository.go
package audit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const tablesRegistryKey = "audit:tables"

// RedisRepository keeps each entry in a hash at <table>:<partition>:<rowKey>
// and indexes row keys per partition in a sorted set scored by timestamp.
type RedisRepository struct {
	client redis.UniversalClient
	table  string
}

// NewRedisRepository creates a repository from a redis:// connection string.
func NewRedisRepository(connectionString, table string) (*RedisRepository, error) {
	opts, err := redis.ParseURL(connectionString)
	if err != nil {
		return nil, fmt.Errorf("parse audit log redis URL: %w", err)
	}
	return NewRedisRepositoryWithClient(redis.NewClient(opts), table), nil
}

func NewRedisRepositoryWithClient(client redis.UniversalClient, table string) *RedisRepository {
	return &RedisRepository{client: client, table: table}
}

// EnsureTable registers the table and stamps its creation time. Safe to call
// on every startup.
func (r *RedisRepository) EnsureTable(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("audit log redis ping failed: %w", err)
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, tablesRegistryKey, r.table)
		pipe.HSetNX(ctx, r.metaKey(), "created_at", time.Now().UTC().Format(time.RFC3339Nano))
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to ensure audit table %s: %w", r.table, err)
	}
	return nil
}

// Upsert writes the entry and its partition index atomically.
func (r *RedisRepository) Upsert(ctx context.Context, entry EmployeeLog) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.EntryKey(entry.PartitionKey, entry.RowKey), entryFields(entry))
		pipe.ZAdd(ctx, r.PartitionKey(entry.PartitionKey), redis.Z{
			Score:  float64(entry.Timestamp.UnixMilli()),
			Member: entry.RowKey,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to upsert audit entry %s: %w", entry.RowKey, err)
	}
	return nil
}

// Close releases the underlying connection pool.
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) EntryKey(partitionKey, rowKey string) string {
	return fmt.Sprintf("%s:%s:%s", r.table, partitionKey, rowKey)
}

func (r *RedisRepository) PartitionKey(partitionKey string) string {
	return fmt.Sprintf("%s:partition:%s", r.table, partitionKey)
}

func (r *RedisRepository) metaKey() string {
	return r.table + ":meta"
}

func entryFields(entry EmployeeLog) map[string]interface{} {
	return map[string]interface{}{
		"partition_key":      entry.PartitionKey,
		"row_key":            entry.RowKey,
		"action":             string(entry.Action),
		"timestamp":          entry.Timestamp.Format(time.RFC3339Nano),
		"employee_id":        strconv.FormatInt(entry.EmployeeID, 10),
		"name":               entry.Name,
		"address":            entry.Address,
		"extension":          entry.Extension,
		"professional_email": entry.ProfessionalEmail,
		"department":         entry.Department,
		"salary":             strconv.FormatFloat(entry.Salary, 'f', -1, 64),
		"employee_json":      entry.EmployeeJSON,
	}
}
