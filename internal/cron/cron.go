package cron

import (
	"context"
	"fmt"
	"strings"

	"lovedj/config"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron, NewCatalogJob)

type Cron struct {
	logger     *zap.Logger
	conf       *config.Configuration
	server     *cron.Cron
	catalogJob *CatalogJob
}

// NewCron .
func NewCron(logger *zap.Logger, conf *config.Configuration, catalogJob *CatalogJob) *Cron {
	server := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	return &Cron{
		logger:     logger,
		conf:       conf,
		server:     server,
		catalogJob: catalogJob,
	}
}

func (c *Cron) Run() error {
	if spec := strings.TrimSpace(c.conf.Catalog.RefreshCron); spec != "" {
		if _, err := c.server.AddFunc(spec, c.catalogJob.Refresh); err != nil {
			return fmt.Errorf("schedule catalog refresh %q: %w", spec, err)
		}
		c.logger.Info("catalog refresh scheduled", zap.String("spec", spec))
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	// 等待執行中的 job 結束或 ctx 逾時
	select {
	case <-c.server.Stop().Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
