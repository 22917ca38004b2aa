package service

import (
	"sync"
	"sync/atomic"
	"time"

	"lovedj/internal/catalog"
)

// HealthService liveness / readiness 狀態；ready 在模型目錄第一次載入後才打開
type HealthService struct {
	live  atomic.Bool
	ready atomic.Bool

	mu      sync.RWMutex
	catalog CatalogHealth
}

// CatalogHealth 最近一次目錄載入的摘要
type CatalogHealth struct {
	Models         int       `json:"models"`
	FallbackReason string    `json:"fallbackReason,omitempty"`
	LoadedAt       time.Time `json:"loadedAt"`
}

func NewHealthService() *HealthService {
	s := &HealthService{}
	s.live.Store(true)
	s.ready.Store(false) // 啟動完成後再打開
	return s
}

func (s *HealthService) SetReady(v bool) {
	s.ready.Store(v)
}

func (s *HealthService) IsLive() bool {
	return s.live.Load()
}

func (s *HealthService) IsReady() bool {
	return s.ready.Load()
}

// ObserveCatalog 作為 catalog.Store 的 observer，保底目錄也算載入完成
func (s *HealthService) ObserveCatalog(snap catalog.Snapshot) {
	s.mu.Lock()
	s.catalog = CatalogHealth{
		Models:         snap.Catalog.Len(),
		FallbackReason: catalog.Reason(snap.Err),
		LoadedAt:       snap.LoadedAt,
	}
	s.mu.Unlock()
}

func (s *HealthService) Catalog() CatalogHealth {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}
