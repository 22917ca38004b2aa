package client

import (
	"context"
	"strings"
	"time"

	"lovedj/config"
	"lovedj/internal/core"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// MongoClient 連接 MongoDB；未設定 URI 時為停用狀態，約會紀錄不落地
type MongoClient struct {
	client   *mongo.Client
	database string
	logger   *zap.Logger
}

func NewMongoClient(logger *zap.Logger, config *config.Configuration) (*MongoClient, func(), error) {
	mongoClient := &MongoClient{logger: logger, database: config.MongoDB.Database}
	if mongoClient.database == "" {
		mongoClient.database = string(core.MongoDBLoveDJ)
	}
	if strings.TrimSpace(config.MongoDB.URI) == "" {
		logger.Warn("MongoDB URI is empty, date records will not be persisted")
		return mongoClient, func() {}, nil
	}

	client, err := mongoClient.connectDB(config)
	if err != nil {
		logger.Error("failed to connect to MongoDB", zap.Error(err))
		return nil, nil, err
	}
	logger.Info("Connected to MongoDB", zap.String("database", mongoClient.database))
	mongoClient.client = client

	cleanup := func() {
		logger.Info("closing the MongoDB resources")
		if err := mongoClient.Close(); err != nil {
			logger.Error("failed to close MongoDB client", zap.Error(err))
		}
	}

	return mongoClient, cleanup, nil
}

func (client *MongoClient) connectDB(config *config.Configuration) (*mongo.Client, error) {
	uri := buildMongoURI(config.MongoDB.URI, config.MongoDB.Options)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := c.Ping(ctx, readpref.Primary()); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, err
	}
	return c, nil
}

func buildMongoURI(baseURI, optionStr string) string {
	if optionStr == "" {
		return baseURI
	}
	if strings.Contains(baseURI, "?") {
		return baseURI + "&" + optionStr
	}
	return baseURI + "?" + optionStr
}

func (m *MongoClient) Enabled() bool { return m != nil && m.client != nil }

// Close 關閉 MongoDB 連線
func (m *MongoClient) Close() error {
	if !m.Enabled() {
		return nil
	}
	return m.client.Disconnect(context.Background())
}

// Client 回傳 MongoDB 連線
func (m *MongoClient) Client() *mongo.Client {
	return m.client
}

// Database 設定的資料庫，停用時回傳 nil
func (m *MongoClient) Database() *mongo.Database {
	if !m.Enabled() {
		return nil
	}
	return m.client.Database(m.database)
}
