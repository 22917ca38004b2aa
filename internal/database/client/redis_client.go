package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lovedj/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisClient 連接 Redis；未設定 host 時為停用狀態，限流不生效
type RedisClient struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisClient(logger *zap.Logger, config *config.Configuration) (*RedisClient, func(), error) {
	redisClient := &RedisClient{logger: logger}
	if strings.TrimSpace(config.Redis.Host) == "" {
		logger.Warn("Redis host is empty, date rate limiting is disabled")
		return redisClient, func() {}, nil
	}

	client, err := redisClient.connectDB(config)
	if err != nil {
		logger.Error("failed to connect to Redis", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to Redis")
	redisClient.client = client

	cleanup := func() {
		logger.Info("closing the Redis resources")
		if err := redisClient.Close(); err != nil {
			logger.Error("failed to close Redis client", zap.Error(err))
		}
	}

	return redisClient, cleanup, nil
}

// NewRedisClientFrom 包裝既有連線（測試用 miniredis）
func NewRedisClientFrom(logger *zap.Logger, client *redis.Client) *RedisClient {
	return &RedisClient{logger: logger, client: client}
}

func (client *RedisClient) connectDB(config *config.Configuration) (*redis.Client, error) {
	port := config.Redis.Port
	if port == 0 {
		port = 6379
	}
	opts := &redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Redis.Host, port),
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
		PoolSize: config.Redis.PoolSize,
	}
	if config.Redis.DialTimeout > 0 {
		opts.DialTimeout = time.Duration(config.Redis.DialTimeout) * time.Second
	}
	r := redis.NewClient(opts)
	if _, err := r.Ping(context.Background()).Result(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

func (redisClient *RedisClient) Enabled() bool {
	return redisClient != nil && redisClient.client != nil
}

// Close 關閉 Redis 連線
func (redisClient *RedisClient) Close() error {
	if !redisClient.Enabled() {
		return nil
	}
	return redisClient.client.Close()
}

// Client 回傳 Redis 連線
func (redisClient *RedisClient) Client() *redis.Client {
	return redisClient.client
}
