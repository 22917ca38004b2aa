package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Enumerator 列出目前可用模型，回傳值格式不保證（交給 Detect 辨識）
type Enumerator interface {
	Enumerate(ctx context.Context) (any, error)
}

type EnumeratorFunc func(ctx context.Context) (any, error)

func (f EnumeratorFunc) Enumerate(ctx context.Context) (any, error) { return f(ctx) }

// Snapshot 一次載入的結果
type Snapshot struct {
	Catalog Catalog
	// 不為 nil 代表 Catalog 是保底目錄
	Err      error
	LoadedAt time.Time
}

// Observer 每次載入完成後呼叫
type Observer func(Snapshot)

type Option func(*Store)

func WithNormalizer(n *Normalizer) Option {
	return func(s *Store) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// WithTimeout 單次列舉逾時，<= 0 代表不設限
func WithTimeout(d time.Duration) Option {
	return func(s *Store) { s.timeout = d }
}

func WithObserver(o Observer) Option {
	return func(s *Store) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

// Store 模型目錄快取。
// 第一次讀取時才列舉，之後沿用快取直到 Refresh；列舉失敗時快取保底目錄。
// 同時間的多個載入請求只會打一次外部來源。
type Store struct {
	enumerator Enumerator
	normalizer *Normalizer
	logger     *zap.Logger
	timeout    time.Duration
	observers  []Observer
	now        func() time.Time

	group singleflight.Group
	mu    sync.RWMutex
	snap  *Snapshot
}

func NewStore(enumerator Enumerator, logger *zap.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		enumerator: enumerator,
		normalizer: defaultNormalizer,
		logger:     logger.Named("catalog"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Catalog 取得目錄，尚未載入時同步列舉
func (s *Store) Catalog(ctx context.Context) Catalog {
	return s.Snapshot(ctx).Catalog
}

func (s *Store) Snapshot(ctx context.Context) Snapshot {
	if snap, ok := s.Cached(); ok {
		return snap
	}
	return s.load(ctx, false)
}

// Refresh 重新列舉並覆蓋快取
func (s *Store) Refresh(ctx context.Context) Snapshot {
	return s.load(ctx, true)
}

// Labels 下拉選單文字，保底模型固定在第一個
func (s *Store) Labels(ctx context.Context) []string {
	return s.Catalog(ctx).Labels()
}

// ProviderOf 查不到時回傳 "unknown"
func (s *Store) ProviderOf(ctx context.Context, model string) string {
	return s.Catalog(ctx).ProviderOf(model)
}

// Cached 只讀快取，不觸發列舉
func (s *Store) Cached() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snap == nil {
		return Snapshot{}, false
	}
	return *s.snap, true
}

// Fallback 保底模型
func (s *Store) Fallback() Entry {
	return s.normalizer.Fallback()
}

func (s *Store) load(ctx context.Context, force bool) Snapshot {
	v, _, _ := s.group.Do("catalog", func() (any, error) {
		if !force {
			if snap, ok := s.Cached(); ok {
				return snap, nil
			}
		}
		snap := s.fetch(ctx)

		s.mu.Lock()
		s.snap = &snap
		s.mu.Unlock()

		for _, o := range s.observers {
			o(snap)
		}
		return snap, nil
	})
	return v.(Snapshot)
}

func (s *Store) fetch(parent context.Context) Snapshot {
	// 共用的載入不跟著單一呼叫者取消
	ctx := context.WithoutCancel(parent)
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	now := s.now()
	raw, err := s.enumerate(ctx)
	if err != nil {
		s.logger.Warn("model enumeration unavailable, using default catalog", zap.Error(err))
		return Snapshot{
			Catalog:  s.normalizer.Default(),
			Err:      fmt.Errorf("%w: %w", ErrEnumerationUnavailable, err),
			LoadedAt: now,
		}
	}

	c, err := s.normalizer.NormalizeRaw(raw)
	switch {
	case errors.Is(err, ErrUnsupportedShape):
		s.logger.Error("unsupported model catalog shape, using default catalog",
			zap.String("raw_type", fmt.Sprintf("%T", raw)),
			zap.Error(err),
		)
	case err != nil:
		s.logger.Warn("model catalog is empty, using default catalog", zap.Error(err))
	default:
		s.logger.Info("model catalog loaded", zap.Int("models", c.Len()))
	}
	return Snapshot{Catalog: c, Err: err, LoadedAt: now}
}

func (s *Store) enumerate(ctx context.Context) (raw any, err error) {
	if s.enumerator == nil {
		return nil, errors.New("no enumerator configured")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("enumerator panic: %v", r)
		}
	}()
	return s.enumerator.Enumerate(ctx)
}
