package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lovedj/internal/core"
	client "lovedj/internal/database/client"
	"lovedj/internal/telemetry"

	"github.com/redis/go-redis/v9"
)

// RateLimiterRepository 固定視窗計數器：key 存剩餘次數，TTL 即視窗剩餘時間
type RateLimiterRepository struct {
	trace  *telemetry.Trace
	client *redis.Client
}

func NewRateLimiterRepository(trace *telemetry.Trace, client *client.RedisClient) *RateLimiterRepository {
	return &RateLimiterRepository{trace: trace, client: client.Client()}
}

var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Enabled Redis 未設定時為 false
func (repository *RateLimiterRepository) Enabled() bool {
	return repository != nil && repository.client != nil
}

// Consume 消耗一次配額；自動處理新週期初始化與剩餘 TTL。
// 回傳：remaining（剩餘次數）、ttlSec（剩餘秒數）、err（若超限為 ErrRateLimitExceeded）
func (repository *RateLimiterRepository) Consume(
	contextValue context.Context,
	scope core.RedisKey,
	subject string,
	windowSeconds int64,
	limitCount int64,
) (remainingCount int64, timeToLiveSeconds int64, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() {
		// 超限是預期結果，不標記 span 錯誤
		if errors.Is(returnedError, ErrRateLimitExceeded) {
			endSpan(nil)
			return
		}
		endSpan(returnedError)
	}()

	redisKey := repository.buildKey(scope, subject)
	traceMetadata := core.TraceRateLimitMeta{
		Key:       redisKey,
		Limit:     limitCount,
		WindowSec: windowSeconds,
		Op:        "consume",
	}
	defer func() {
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		traceMetadata.Blocked = errors.Is(returnedError, ErrRateLimitExceeded)
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
	}()

	expirationDuration := time.Duration(windowSeconds) * time.Second

	// 嘗試初始化：SET key value NX EX expiration
	wasSet, setError := repository.client.SetNX(
		contextValue,
		redisKey,
		limitCount-1, // 本次消耗一次，所以初始值 = 總額-1
		expirationDuration,
	).Result()
	if setError != nil {
		return 0, 0, setError
	}
	if wasSet {
		// 初始化成功，代表這是視窗內第一次消耗
		if limitCount-1 < 0 {
			return 0, windowSeconds, ErrRateLimitExceeded
		}
		return limitCount - 1, windowSeconds, nil
	}

	// Key 已存在 → 執行 DECR 扣一次
	newValue, decrError := repository.client.Decr(contextValue, redisKey).Result()
	if decrError != nil {
		return 0, 0, decrError
	}

	ttlDuration, _ := repository.client.TTL(contextValue, redisKey).Result()
	if ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	} else {
		// key 遺失 TTL 時補上，避免永久封鎖
		_ = repository.client.Expire(contextValue, redisKey, expirationDuration).Err()
		timeToLiveSeconds = windowSeconds
	}

	if newValue < 0 {
		return 0, timeToLiveSeconds, ErrRateLimitExceeded
	}
	return newValue, timeToLiveSeconds, nil
}

// GetCurrent 查詢目前剩餘次數與剩餘 TTL（秒）。尚無紀錄時 remaining = limitCount、ttl = 0。
func (repository *RateLimiterRepository) GetCurrent(
	contextValue context.Context,
	scope core.RedisKey,
	subject string,
	limitCount int64,
) (remainingCount int64, timeToLiveSeconds int64, returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(scope, subject)
	traceMetadata := core.TraceRateLimitMeta{Key: redisKey, Limit: limitCount, Op: "get"}
	defer func() {
		traceMetadata.Remaining, traceMetadata.TTL = remainingCount, timeToLiveSeconds
		repository.trace.ApplyTraceAttributes(span, traceMetadata)
	}()

	// 用 pipeline 併發 GET + TTL 減少往返
	pipeline := repository.client.Pipeline()
	getCommand := pipeline.Get(contextValue, redisKey)
	ttlCommand := pipeline.TTL(contextValue, redisKey)
	if _, execError := pipeline.Exec(contextValue); execError != nil && !errors.Is(execError, redis.Nil) {
		return 0, 0, execError
	}

	value, getError := getCommand.Int64()
	if errors.Is(getError, redis.Nil) {
		return limitCount, 0, nil
	}
	if getError != nil {
		return 0, 0, getError
	}

	if ttlDuration := ttlCommand.Val(); ttlDuration > 0 {
		timeToLiveSeconds = int64(ttlDuration.Seconds())
	}
	return max(value, 0), timeToLiveSeconds, nil
}

// Delete 刪除配額 key（徹底移除）
func (repository *RateLimiterRepository) Delete(
	contextValue context.Context,
	scope core.RedisKey,
	subject string,
) (returnedError error) {

	contextValue, span, endSpan := repository.trace.WithSpan(contextValue)
	defer func() { endSpan(returnedError) }()

	redisKey := repository.buildKey(scope, subject)
	repository.trace.ApplyTraceAttributes(span, core.TraceRateLimitMeta{Key: redisKey, Op: "delete"})
	return repository.client.Del(contextValue, redisKey).Err()
}

// buildKey lovedj:<scope>:<subject>
func (repository *RateLimiterRepository) buildKey(scope core.RedisKey, subject string) string {
	return fmt.Sprintf("%s:%s:%s", core.RedisKeyServerName, scope, subject)
}
