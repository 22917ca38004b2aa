package core

type MongoDatabaseName string
type MongoCollection string
type RedisKey string
type FluentdSubTag string

// ─── MongoDB ───────────────────────────────────────────────────────────────────
const (
	MongoDBLoveDJ MongoDatabaseName = "lovedj"
)

// MongoDB collections
const (
	MongoCollectionDates MongoCollection = "dates"
)

// ─── Redis Keys ────────────────────────────────────────────────────────────────

const (
	RedisKeyServerName    RedisKey = "lovedj"         // 伺服器名稱
	RedisKeyDateRateLimit RedisKey = "date_ratelimit" // 約會限流
)

const (
	FluentdRequest  FluentdSubTag = "request_log"
	FluentdResponse FluentdSubTag = "response_log"
	FluentUsage     FluentdSubTag = "usage_log"
	FluentdDate     FluentdSubTag = "date_log"
)

type ListOptions struct {
	Page int64 `json:"page,omitempty"`
	Size int64 `json:"size,omitempty"`
}
