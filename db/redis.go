// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/staffledger/api/config"
	logger "github.com/staffledger/api/logging"
	"github.com/staffledger/api/model"
)

func InitRedis(cfg config.RedisConfiguration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		PoolSize:     cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return client, nil
}

func CloseRedis(client *redis.Client) {
	if client != nil {
		if err := client.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

// RedisCache stores employee snapshots and rate limit windows. Cached
// employees are AES-GCM encrypted when an encryption key is configured.
type RedisCache struct {
	client        *redis.Client
	encryptionKey []byte
	ttl           time.Duration
}

func NewRedisCache(client *redis.Client, encryptionKey string, ttl time.Duration) (*RedisCache, error) {
	key := []byte(encryptionKey)
	if len(key) != 0 && len(key) != 32 {
		return nil, fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}
	return &RedisCache{client: client, encryptionKey: key, ttl: ttl}, nil
}

func (r *RedisCache) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(r.encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (r *RedisCache) decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(r.encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func employeeKey(employeeID int64) string {
	return fmt.Sprintf("employee:%d", employeeID)
}

func (r *RedisCache) CacheEmployee(ctx context.Context, employee *model.Employee) error {
	employeeJSON, err := json.Marshal(employee)
	if err != nil {
		return fmt.Errorf("failed to marshal employee: %w", err)
	}

	payload := string(employeeJSON)
	if len(r.encryptionKey) > 0 {
		encrypted, err := r.encrypt(employeeJSON)
		if err != nil {
			return fmt.Errorf("failed to encrypt employee: %w", err)
		}
		payload = base64.StdEncoding.EncodeToString(encrypted)
	}

	if err := r.client.Set(ctx, employeeKey(employee.ID), payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache employee: %w", err)
	}

	logger.Debug("Employee cached successfully", zap.Int64("employeeID", employee.ID))
	return nil
}

// GetCachedEmployee returns nil, nil on a cache miss.
func (r *RedisCache) GetCachedEmployee(ctx context.Context, employeeID int64) (*model.Employee, error) {
	payload, err := r.client.Get(ctx, employeeKey(employeeID)).Result()
	if err == redis.Nil {
		logger.Debug("Employee not found in cache", zap.Int64("employeeID", employeeID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get employee from cache: %w", err)
	}

	employeeJSON := []byte(payload)
	if len(r.encryptionKey) > 0 {
		encrypted, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode employee: %w", err)
		}
		if employeeJSON, err = r.decrypt(encrypted); err != nil {
			return nil, fmt.Errorf("failed to decrypt employee: %w", err)
		}
	}

	var employee model.Employee
	if err := json.Unmarshal(employeeJSON, &employee); err != nil {
		return nil, fmt.Errorf("failed to unmarshal employee: %w", err)
	}

	logger.Debug("Employee retrieved from cache", zap.Int64("employeeID", employeeID))
	return &employee, nil
}

func (r *RedisCache) DeleteCachedEmployee(ctx context.Context, employeeID int64) error {
	if err := r.client.Del(ctx, employeeKey(employeeID)).Err(); err != nil {
		return fmt.Errorf("failed to delete employee from cache: %w", err)
	}
	logger.Debug("Employee deleted from cache", zap.Int64("employeeID", employeeID))
	return nil
}

// rateLimitMember is unique per hit so hits in the same nanosecond are all counted.
func rateLimitMember(now int64) string {
	return fmt.Sprintf("%d-%s", now, uuid.NewString())
}

// RateLimit records a hit for key and reports whether it is within limit for
// the sliding window per.
func (r *RedisCache) RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := r.client.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: rateLimitMember(now)})
	card := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := card.Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
