package cron

import (
	"context"
	"time"

	"lovedj/internal/catalog"
	"lovedj/internal/core"
	"lovedj/internal/telemetry"

	"go.uber.org/zap"
)

const catalogRefreshTimeout = 2 * time.Minute

// CatalogJob 定時重新列舉模型目錄
type CatalogJob struct {
	logger *zap.Logger
	trace  *telemetry.Trace
	store  *catalog.Store
}

func NewCatalogJob(logger *zap.Logger, trace *telemetry.Trace, store *catalog.Store) *CatalogJob {
	return &CatalogJob{logger: logger.Named("cron"), trace: trace, store: store}
}

func (j *CatalogJob) Refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), catalogRefreshTimeout)
	defer cancel()

	ctx, span, end := j.trace.WithSpan(ctx, string(core.SpanCatalogFetch))
	snap := j.store.Refresh(ctx)
	j.trace.ApplyTraceAttributes(span, core.TraceCatalogMeta{
		Source:   "cron",
		Models:   snap.Catalog.Len(),
		Fallback: snap.Err != nil,
	})
	end(snap.Err)

	if snap.Err != nil {
		j.logger.Warn("catalog refresh fell back to default",
			zap.String("reason", catalog.Reason(snap.Err)),
			zap.Error(snap.Err),
		)
		return
	}
	j.logger.Info("catalog refreshed", zap.Int("models", snap.Catalog.Len()))
}
