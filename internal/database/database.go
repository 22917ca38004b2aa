package database

import (
	client "lovedj/internal/database/client"
	fluentdRepo "lovedj/internal/database/fluentd/repository"
	mongoRepo "lovedj/internal/database/mongodb/repository"
	redisRepo "lovedj/internal/database/redis/repository"

	"github.com/google/wire"
)

// ProviderSet 定義所有 DB Client 的依賴
var ProviderSet = wire.NewSet(
	client.NewMongoClient,
	client.NewRedisClient,
	client.NewFluentdClient,
	mongoRepo.ProviderSet,
	redisRepo.ProviderSet,
	fluentdRepo.ProviderSet,
)
