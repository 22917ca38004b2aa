package repository

import (
	"context"
	"errors"
	"time"

	"lovedj/internal/core"
	client "lovedj/internal/database/client"
	"lovedj/internal/database/mongodb/model"
	"lovedj/internal/telemetry"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDateNotFound 查無約會紀錄
var ErrDateNotFound = errors.New("date not found")

type DateRepository struct {
	trace      *telemetry.Trace
	collection *mongo.Collection
}

func NewDateRepository(trace *telemetry.Trace, mongoClient *client.MongoClient) *DateRepository {
	repository := &DateRepository{trace: trace}
	if db := mongoClient.Database(); db != nil {
		repository.collection = db.Collection(string(core.MongoCollectionDates))
		// 啟動時建立常用索引（冪等、存在即跳過）
		_ = repository.ensureIndexes(context.Background())
	}
	return repository
}

// Enabled Mongo 未設定時為 false
func (repository *DateRepository) Enabled() bool {
	return repository != nil && repository.collection != nil
}

func (repository *DateRepository) ensureIndexes(contextValue context.Context) error {
	indexModels := []mongo.IndexModel{
		{ // 依建立時間倒序查列表
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_createdAt_desc"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}},
			Options: options.Index().SetName("idx_status"),
		},
	}
	_, err := repository.collection.Indexes().CreateMany(contextValue, indexModels)
	return err
}

// Create：約會開始時寫入 running 狀態
func (repository *DateRepository) Create(
	contextValue context.Context,
	date *model.Date,
) (returnedError error) {
	contextValue, _, end := repository.trace.WithSpan(contextValue)
	defer func() { end(returnedError) }()

	nowUTC := time.Now().UTC()
	date.CreatedAt = nowUTC
	date.UpdatedAt = nowUTC

	_, returnedError = repository.collection.InsertOne(contextValue, date)
	return returnedError
}

// Finish：寫入最終狀態、對話與評分
func (repository *DateRepository) Finish(
	contextValue context.Context,
	date *model.Date,
) (returnedError error) {
	contextValue, _, end := repository.trace.WithSpan(contextValue)
	defer func() { end(returnedError) }()

	finishedAt := time.Now().UTC()
	date.FinishedAt = &finishedAt
	date.UpdatedAt = finishedAt

	set := bson.M{
		"status":     date.Status,
		"turns":      date.Turns,
		"usage":      date.Usage,
		"finishedAt": finishedAt,
	}
	if date.Ratings != nil {
		set["ratings"] = date.Ratings
	}
	if date.Error != "" {
		set["error"] = date.Error
	}

	result, updateError := repository.collection.UpdateOne(contextValue, bson.M{"_id": date.ID}, withUpdatedAt(bson.M{"$set": set}))
	if updateError != nil {
		return updateError
	}
	if result.MatchedCount == 0 {
		return ErrDateNotFound
	}
	return nil
}

// GetByID：單文件讀取
func (repository *DateRepository) GetByID(
	contextValue context.Context,
	dateID string,
) (_ *model.Date, returnedError error) {
	contextValue, _, end := repository.trace.WithSpan(contextValue)
	defer func() { end(returnedError) }()

	var date model.Date
	returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": dateID}).Decode(&date)
	if errors.Is(returnedError, mongo.ErrNoDocuments) {
		return nil, ErrDateNotFound
	}
	if returnedError != nil {
		return nil, returnedError
	}
	return &date, nil
}

// List：分頁查詢（page 為 0 起算），依建立時間倒序
func (repository *DateRepository) List(
	contextValue context.Context,
	listOptions core.ListOptions,
) (_ []*model.Date, returnedError error) {
	contextValue, _, end := repository.trace.WithSpan(contextValue)
	defer func() { end(returnedError) }()

	findOptions := options.Find().
		SetSkip(listOptions.Page * listOptions.Size).
		SetLimit(listOptions.Size).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		// 列表不需要完整對話
		SetProjection(bson.M{"turns": 0})

	cursor, findError := repository.collection.Find(contextValue, bson.M{}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	dates := []*model.Date{}
	if returnedError = cursor.All(contextValue, &dates); returnedError != nil {
		return nil, returnedError
	}
	return dates, nil
}
