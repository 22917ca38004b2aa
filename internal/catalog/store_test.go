package catalog

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func countingEnumerator(raw any, err error) (Enumerator, *atomic.Int32) {
	calls := &atomic.Int32{}
	return EnumeratorFunc(func(ctx context.Context) (any, error) {
		calls.Add(1)
		return raw, err
	}), calls
}

func TestStore_FetchesOnce(t *testing.T) {
	enum, calls := countingEnumerator([][]string{{"openai", "gpt-4o"}, {"google", "gemini-1.5-pro"}}, nil)
	s := NewStore(enum, zap.NewNop())

	_, ok := s.Cached()
	assert.False(t, ok)

	ctx := context.Background()
	assert.Equal(t, []string{"gemini-1.5-pro", "gpt-4o"}, s.Catalog(ctx).Models)
	assert.Equal(t, "google", s.ProviderOf(ctx, "gemini-1.5-pro"))
	assert.Equal(t, "unknown", s.ProviderOf(ctx, "nope"))
	assert.Equal(t, []string{"gpt-4o [openai]", "gemini-1.5-pro [google]"}, s.Labels(ctx))
	assert.EqualValues(t, 1, calls.Load())

	snap, ok := s.Cached()
	assert.True(t, ok)
	assert.NoError(t, snap.Err)
}

func TestStore_RefreshRefetches(t *testing.T) {
	var n atomic.Int32
	enum := EnumeratorFunc(func(ctx context.Context) (any, error) {
		if n.Add(1) == 1 {
			return map[string][]string{"openai": {"gpt-4o"}}, nil
		}
		return map[string][]string{"openai": {"gpt-4o", "gpt-4.1"}}, nil
	})
	s := NewStore(enum, nil)
	ctx := context.Background()

	assert.Len(t, s.Catalog(ctx).Models, 1)
	snap := s.Refresh(ctx)
	assert.Equal(t, []string{"gpt-4.1", "gpt-4o"}, snap.Catalog.Models)
	assert.Equal(t, []string{"gpt-4.1", "gpt-4o"}, s.Catalog(ctx).Models)
	assert.EqualValues(t, 2, n.Load())
}

func TestStore_EnumerationFailureFallsBack(t *testing.T) {
	boom := errors.New("connection refused")
	enum, calls := countingEnumerator(nil, boom)
	s := NewStore(enum, zap.NewNop())

	snap := s.Snapshot(context.Background())
	assert.ErrorIs(t, snap.Err, ErrEnumerationUnavailable)
	assert.ErrorIs(t, snap.Err, boom)
	assert.True(t, snap.Catalog.IsDefault())
	assert.Equal(t, "unavailable", Reason(snap.Err))

	// 失敗結果同樣被快取
	s.Catalog(context.Background())
	assert.EqualValues(t, 1, calls.Load())
}

func TestStore_PanickingEnumerator(t *testing.T) {
	s := NewStore(EnumeratorFunc(func(ctx context.Context) (any, error) {
		panic("sdk exploded")
	}), zap.NewNop())

	var snap Snapshot
	assert.NotPanics(t, func() { snap = s.Snapshot(context.Background()) })
	assert.ErrorIs(t, snap.Err, ErrEnumerationUnavailable)
	assert.Equal(t, []string{DefaultModel}, snap.Catalog.Models)
}

func TestStore_NilEnumerator(t *testing.T) {
	s := NewStore(nil, nil)
	assert.Equal(t, []string{"gpt-4o [openai]"}, s.Labels(context.Background()))
}

func TestStore_UnsupportedShape(t *testing.T) {
	enum, _ := countingEnumerator("unexpected-string", nil)
	s := NewStore(enum, zap.NewNop())
	snap := s.Snapshot(context.Background())
	assert.ErrorIs(t, snap.Err, ErrUnsupportedShape)
	assert.Equal(t, "unsupported_shape", Reason(snap.Err))
	assert.True(t, snap.Catalog.IsDefault())
}

func TestStore_ConcurrentCallersShareOneFetch(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	enum := EnumeratorFunc(func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-release
		return [][]string{{"openai", "gpt-4o"}}, nil
	})
	s := NewStore(enum, zap.NewNop())

	var wg sync.WaitGroup
	results := make([]Catalog, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = s.Catalog(context.Background())
		}(i)
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for _, c := range results {
		assert.Equal(t, []string{"gpt-4o"}, c.Models)
	}
}

func TestStore_TimeoutFallsBack(t *testing.T) {
	enum := EnumeratorFunc(func(ctx context.Context) (any, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	s := NewStore(enum, zap.NewNop(), WithTimeout(10*time.Millisecond))

	snap := s.Snapshot(context.Background())
	assert.ErrorIs(t, snap.Err, context.DeadlineExceeded)
	assert.True(t, snap.Catalog.IsDefault())
}

func TestStore_CallerCancellationDoesNotAbortFetch(t *testing.T) {
	enum := EnumeratorFunc(func(ctx context.Context) (any, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return [][]string{{"google", "gemini-1.5-pro"}}, nil
	})
	s := NewStore(enum, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Equal(t, []string{"gemini-1.5-pro"}, s.Catalog(ctx).Models)
}

func TestStore_ObserverAndNormalizer(t *testing.T) {
	var seen []Snapshot
	enum, _ := countingEnumerator([]any{}, nil)
	s := NewStore(enum, zap.NewNop(),
		WithNormalizer(NewNormalizer(Entry{Model: "gemini-1.5-pro", Provider: "google"})),
		WithObserver(func(s Snapshot) { seen = append(seen, s) }),
	)

	c := s.Catalog(context.Background())
	require.Len(t, seen, 1)
	assert.ErrorIs(t, seen[0].Err, ErrEmptyCatalog)
	assert.Equal(t, []string{"gemini-1.5-pro"}, c.Models)
	assert.Equal(t, "gemini-1.5-pro [google]", s.Labels(context.Background())[0])
	assert.Equal(t, Entry{Model: "gemini-1.5-pro", Provider: "google"}, s.Fallback())
}
