package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/staffledger/api/db"
)

func TestNewRedisCache_KeyLength(t *testing.T) {
	_, err := db.NewRedisCache(nil, "short", time.Minute)
	assert.EqualError(t, err, "invalid encryption key length: must be 32 bytes")

	cache, err := db.NewRedisCache(nil, "", time.Minute)
	assert.NoError(t, err)
	assert.NotNil(t, cache)

	cache, err = db.NewRedisCache(nil, "0123456789abcdef0123456789abcdef", time.Minute)
	assert.NoError(t, err)
	assert.NotNil(t, cache)
}
