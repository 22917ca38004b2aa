// Package enumerate 各種模型目錄來源，皆實作 catalog.Enumerator
package enumerate

import (
	"context"
	"errors"
	"fmt"

	"lovedj/internal/catalog"
	"lovedj/internal/service/models"

	"go.uber.org/zap"
)

// ProviderEnumerator 逐一詢問已設定的 provider，組成 (provider, model) rows。
// 單一 provider 失敗只記錄並略過；全部失敗才回傳錯誤。
type ProviderEnumerator struct {
	services []models.Service
	logger   *zap.Logger
}

func NewProviderEnumerator(logger *zap.Logger, services ...models.Service) *ProviderEnumerator {
	return &ProviderEnumerator{services: services, logger: logger}
}

func (e *ProviderEnumerator) Enumerate(ctx context.Context) (any, error) {
	var (
		rows  catalog.RowsResponse
		errs  []error
		tried int
	)
	for _, svc := range e.services {
		if !svc.Available() {
			continue
		}
		tried++
		list, err := svc.List(ctx)
		if err != nil {
			e.logger.Warn("list models failed",
				zap.String("provider", string(svc.Provider())),
				zap.Error(err),
			)
			errs = append(errs, fmt.Errorf("%s: %w", svc.Provider(), err))
			continue
		}
		for _, m := range list {
			rows = append(rows, catalog.Row{Provider: string(m.Provider), Model: m.ID})
		}
	}

	if tried == 0 {
		return nil, errors.New("no model provider is configured")
	}
	if len(errs) == tried {
		return nil, errors.Join(errs...)
	}
	return rows, nil
}
