package repository

import (
	"context"
	"encoding/json"
	"time"

	"lovedj/config"
	"lovedj/internal/core"
	"lovedj/internal/database/client"
	"lovedj/internal/database/fluentd/model"
)

const loggedAtLayout = "2006-01-02 15:04:05.999999 UTC"

// LogRepository 統一負責發送 Request/Response/Usage/Date Log 到 Fluentd
type LogRepository struct {
	fluentdClient client.FluentdClient
	version       string
	now           func() time.Time
}

func NewLogRepository(config *config.Configuration, client client.FluentdClient) *LogRepository {
	version := "1.0.0"
	if config.App.Version != "" {
		version = config.App.Version
	}
	return &LogRepository{fluentdClient: client, version: version, now: time.Now}
}

func (repository *LogRepository) LogRequest(ctx context.Context, req model.RequestLog) error {
	repository.stamp(&req.LoggedAt, &req.Version)
	return repository.post(ctx, core.FluentdRequest, req)
}

func (repository *LogRepository) LogResponse(ctx context.Context, resp model.ResponseLog) error {
	repository.stamp(&resp.LoggedAt, &resp.Version)
	return repository.post(ctx, core.FluentdResponse, resp)
}

func (repository *LogRepository) LogUsage(ctx context.Context, usage model.AIUsageLog) error {
	repository.stamp(&usage.LoggedAt, &usage.Version)
	return repository.post(ctx, core.FluentUsage, usage)
}

func (repository *LogRepository) LogDate(ctx context.Context, date model.DateLog) error {
	repository.stamp(&date.LoggedAt, &date.Version)
	return repository.post(ctx, core.FluentdDate, date)
}

func (repository *LogRepository) stamp(loggedAt, version *string) {
	if *loggedAt == "" {
		*loggedAt = repository.now().UTC().Format(loggedAtLayout)
	}
	if *version == "" {
		*version = repository.version
	}
}

// fluent-logger 對 map 的編碼最穩定，先轉一次 json 取得 map
func (repository *LogRepository) post(ctx context.Context, tag core.FluentdSubTag, record any) error {
	b, err := json.Marshal(record)
	if err != nil {
		return err
	}
	var fluentdMessage map[string]any
	if err := json.Unmarshal(b, &fluentdMessage); err != nil {
		return err
	}
	return repository.fluentdClient.Post(ctx, string(tag), fluentdMessage)
}
