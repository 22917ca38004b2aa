package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"lovedj/config"
	"lovedj/internal/database/fluentd/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type posted struct {
	tag     string
	message map[string]any
}

type recordingClient struct {
	posts []posted
	err   error
}

func (c *recordingClient) Post(ctx context.Context, tag string, message any) error {
	c.posts = append(c.posts, posted{tag: tag, message: message.(map[string]any)})
	return c.err
}

func (c *recordingClient) Close() error { return nil }

func newTestRepository(c *recordingClient) *LogRepository {
	conf := &config.Configuration{}
	conf.App.Version = "2.1.0"
	repo := NewLogRepository(conf, c)
	repo.now = func() time.Time { return time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC) }
	return repo
}

func TestLogRepository_LogUsage(t *testing.T) {
	c := &recordingClient{}
	repo := newTestRepository(c)

	err := repo.LogUsage(context.Background(), model.AIUsageLog{
		DateID:      "d-1",
		Speaker:     "Alex",
		Provider:    "openai",
		Model:       "gpt-4o",
		Endpoint:    "chat.completions",
		TokensTotal: 42,
	})
	require.NoError(t, err)
	require.Len(t, c.posts, 1)

	p := c.posts[0]
	assert.Equal(t, "usage_log", p.tag)
	assert.Equal(t, "d-1", p.message["date_id"])
	assert.Equal(t, "2.1.0", p.message["version"])
	assert.Equal(t, "2024-05-01 08:30:00 UTC", p.message["logged_at"])
	assert.EqualValues(t, 42, p.message["tokens_total"])
}

func TestLogRepository_LogDateKeepsExplicitVersion(t *testing.T) {
	c := &recordingClient{}
	repo := newTestRepository(c)

	require.NoError(t, repo.LogDate(context.Background(), model.DateLog{DateID: "d-2", Status: "finished", Version: "custom"}))
	assert.Equal(t, "date_log", c.posts[0].tag)
	assert.Equal(t, "custom", c.posts[0].message["version"])
}

func TestLogRepository_PropagatesClientError(t *testing.T) {
	boom := errors.New("fluentd down")
	repo := newTestRepository(&recordingClient{err: boom})
	assert.ErrorIs(t, repo.LogRequest(context.Background(), model.RequestLog{RequestID: "r"}), boom)
}
