package service

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"lovedj/config"
	"lovedj/internal/catalog"
	"lovedj/internal/core"
	fluentdRepo "lovedj/internal/database/fluentd/repository"
	mongoRepo "lovedj/internal/database/mongodb/repository"
	"lovedj/internal/service/chat"
	"lovedj/internal/service/enumerate"
	"lovedj/internal/service/llm"
	"lovedj/internal/service/models"
	"lovedj/internal/telemetry"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// 這裡只用一個 provider 實例化 Registry 並同時註冊
var ProviderSet = wire.NewSet(
	llm.ProviderSet,
	chat.NewOpenAIService,
	chat.NewGeminiService,
	chat.NewMockService,
	models.NewOpenAIService,
	models.NewGeminiService,
	models.NewMockService,
	ProvideRegistryWithServices,
	NewCatalogEnumerator,
	NewCatalogStore,
	ProvideDateRepository,
	ProvideDateLogger,
	NewDateService,
	NewHealthService,
)

// ProvideRegistryWithServices
func ProvideRegistryWithServices(
	openAIChat *chat.OpenAIService,
	geminiChat *chat.GeminiService,
	mockChat *chat.MockService,
	openAIModels *models.OpenAIService,
	geminiModels *models.GeminiService,
	mockModels *models.MockService,
) *Registry {
	reg := NewRegistry()
	reg.RegisterChat(core.ProviderOpenAI, openAIChat)
	reg.RegisterChat(core.ProviderGoogle, geminiChat)
	reg.RegisterModels(core.ProviderOpenAI, openAIModels)
	reg.RegisterModels(core.ProviderGoogle, geminiModels)
	// mock 只在啟用時註冊，避免目錄混入假模型
	if mockChat.Available() {
		reg.RegisterChat(core.ProviderMock, mockChat)
		reg.RegisterModels(core.ProviderMock, mockModels)
	}
	return reg
}

// NewCatalogEnumerator 依 CATALOG__SOURCE 選擇目錄來源，預設詢問各 provider
func NewCatalogEnumerator(
	conf *config.Configuration,
	reg *Registry,
	httpClient *http.Client,
	logger *zap.Logger,
) (catalog.Enumerator, error) {
	c := conf.Catalog
	switch core.CatalogSource(strings.ToLower(strings.TrimSpace(c.Source))) {
	case "", core.CatalogSourceProviders:
		return enumerate.NewProviderEnumerator(logger.Named("enumerate"), reg.ModelLister()...), nil
	case core.CatalogSourceHTTP:
		if strings.TrimSpace(c.URL) == "" {
			return nil, fmt.Errorf("catalog source %q requires CATALOG__URL", c.Source)
		}
		return enumerate.NewHTTPEnumerator(httpClient, c.URL, c.Token, ""), nil
	case core.CatalogSourceStatic:
		return enumerate.NewStaticEnumerator(c.Static), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", c.Source)
	}
}

// NewCatalogStore 建立目錄快取，每次載入後更新目錄相關指標
func NewCatalogStore(
	conf *config.Configuration,
	logger *zap.Logger,
	metric *telemetry.Metric,
	enumerator catalog.Enumerator,
	health *HealthService,
) *catalog.Store {
	c := conf.Catalog
	normalizer := catalog.NewNormalizer(catalog.Entry{Model: c.DefaultModel, Provider: c.DefaultProvider})
	return catalog.NewStore(enumerator, logger,
		catalog.WithNormalizer(normalizer),
		catalog.WithTimeout(time.Duration(c.Timeout)*time.Second),
		catalog.WithObserver(func(snap catalog.Snapshot) {
			if snap.Err != nil {
				metric.ObserveCatalogFallback(catalog.Reason(snap.Err))
			}
			metric.SetCatalogModels(snap.Catalog.Len())
		}),
		catalog.WithObserver(health.ObserveCatalog),
	)
}

// ProvideDateRepository 未設定 MongoDB 時不保存約會紀錄
func ProvideDateRepository(repo *mongoRepo.DateRepository) DateRepository {
	if repo == nil || !repo.Enabled() {
		return nil
	}
	return repo
}

func ProvideDateLogger(repo *fluentdRepo.LogRepository) DateLogger {
	if repo == nil {
		return nil
	}
	return repo
}
