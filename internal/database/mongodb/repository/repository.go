package repository

import (
	"github.com/google/wire"
	"go.mongodb.org/mongo-driver/bson"
)

// Wire 依賴提供
var ProviderSet = wire.NewSet(NewDateRepository)

func withUpdatedAt(update bson.M) bson.M {
	// 確保 $currentDate 存在
	currentDate, ok := update["$currentDate"].(bson.M)
	if !ok || currentDate == nil {
		currentDate = bson.M{}
	}
	currentDate["updatedAt"] = true
	update["$currentDate"] = currentDate
	return update
}
