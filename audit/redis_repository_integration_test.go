//go:build integration

package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/staffledger/api/audit"
	"github.com/staffledger/api/test/containers"
)

type RedisRepositorySuite struct {
	suite.Suite
	redis *containers.RedisContainer
	repo  *audit.RedisRepository
}

func TestRedisRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisRepositorySuite))
}

func (s *RedisRepositorySuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	repo, err := audit.NewRedisRepository(s.redis.URL, "EmployeeLog")
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositorySuite) TearDownSuite() {
	_ = s.repo.Close()
}

func (s *RedisRepositorySuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisRepositorySuite) TestEnsureTableIsIdempotent() {
	ctx := context.Background()

	s.Require().NoError(s.repo.EnsureTable(ctx))
	first, err := s.redis.Client.HGet(ctx, "EmployeeLog:meta", "created_at").Result()
	s.Require().NoError(err)

	s.Require().NoError(s.repo.EnsureTable(ctx))
	second, err := s.redis.Client.HGet(ctx, "EmployeeLog:meta", "created_at").Result()
	s.Require().NoError(err)

	s.Equal(first, second)
	isMember, err := s.redis.Client.SIsMember(ctx, "audit:tables", "EmployeeLog").Result()
	s.Require().NoError(err)
	s.True(isMember)
}

func (s *RedisRepositorySuite) TestUpsertWritesEntryAndPartitionIndex() {
	ctx := context.Background()
	entry := audit.EmployeeLog{
		PartitionKey:      "HR",
		RowKey:            "row-1",
		Action:            audit.ActionInsertion,
		Timestamp:         time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		EmployeeID:        1,
		Name:              "Ana",
		ProfessionalEmail: "ana@x.com",
		Department:        "HR",
		Salary:            1000,
	}

	s.Require().NoError(s.repo.Upsert(ctx, entry))

	fields, err := s.redis.Client.HGetAll(ctx, s.repo.EntryKey("HR", "row-1")).Result()
	s.Require().NoError(err)
	s.Equal("Insertion", fields["action"])
	s.Equal("HR", fields["partition_key"])
	s.Equal("1", fields["employee_id"])
	s.Equal("1000", fields["salary"])
	s.Equal("Ana", fields["name"])

	members, err := s.redis.Client.ZRange(ctx, s.repo.PartitionKey("HR"), 0, -1).Result()
	s.Require().NoError(err)
	s.Equal([]string{"row-1"}, members)
}

func (s *RedisRepositorySuite) TestUpsertSameRowKeyOverwrites() {
	ctx := context.Background()
	entry := audit.EmployeeLog{PartitionKey: "HR", RowKey: "row-1", Action: audit.ActionUpdate, Timestamp: time.Now()}

	s.Require().NoError(s.repo.Upsert(ctx, entry))
	entry.Name = "Ana B"
	s.Require().NoError(s.repo.Upsert(ctx, entry))

	count, err := s.redis.Client.ZCard(ctx, s.repo.PartitionKey("HR")).Result()
	s.Require().NoError(err)
	s.Equal(int64(1), count)

	name, err := s.redis.Client.HGet(ctx, s.repo.EntryKey("HR", "row-1"), "name").Result()
	s.Require().NoError(err)
	s.Equal("Ana B", name)
}
