package client

import (
	"context"
	"lovedj/config"
	"strings"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
	"go.uber.org/zap"
)

// FluentdClient is a minimal interface to allow mocking in tests.
type FluentdClient interface {
	Post(ctx context.Context, tag string, message any) error
	Close() error
}

// ForwardClient implements FluentdClient using fluent-logger-golang.
type ForwardClient struct {
	client *fluent.Fluent
}

// NewFluentdClient creates a Fluentd forward client, or a no-op client when no host is set.
func NewFluentdClient(logger *zap.Logger, config *config.Configuration) (FluentdClient, func(), error) {
	if strings.TrimSpace(config.Fluentd.Host) == "" {
		logger.Info("Fluentd host is empty, usage logs are discarded")
		return NoopClient{}, func() {}, nil
	}

	prefix := "lovedj"
	if config.Fluentd.TagPrefix != "" {
		prefix = config.Fluentd.TagPrefix
	}
	var timeout time.Duration
	if config.Fluentd.Timeout > 0 {
		timeout = time.Duration(config.Fluentd.Timeout) * time.Millisecond
	}

	f, err := fluent.New(fluent.Config{
		FluentHost: config.Fluentd.Host,
		FluentPort: config.Fluentd.Port,
		Timeout:    timeout,
		TagPrefix:  prefix,
		// 連不上 fluentd 時不阻塞請求
		Async:    true,
		MaxRetry: config.Fluentd.MaxRetry,
	})
	if err != nil {
		return nil, nil, err
	}
	c := &ForwardClient{client: f}
	cleanup := func() {
		logger.Info("closing the Fluentd resources")
		if err := c.Close(); err != nil {
			logger.Error("failed to close Fluentd client", zap.Error(err))
		}
	}
	return c, cleanup, nil
}

func (c *ForwardClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Post sends a record to Fluentd; the configured TagPrefix is prepended by the logger.
// e.g. tag="usage_log" => "lovedj.usage_log"
func (c *ForwardClient) Post(ctx context.Context, tag string, message any) error {
	// fluent-logger-golang doesn't support context cancellation directly.
	return c.client.Post(tag, message)
}

// --------------------
// Noop client (disabled mode)
// --------------------

type NoopClient struct{}

func (NoopClient) Post(ctx context.Context, tag string, message any) error { return nil }
func (NoopClient) Close() error                                            { return nil }
