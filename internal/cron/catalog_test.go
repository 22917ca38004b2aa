package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"lovedj/config"
	"lovedj/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogJob_Refresh(t *testing.T) {
	var calls atomic.Int32
	fail := atomic.Bool{}
	store := catalog.NewStore(catalog.EnumeratorFunc(func(ctx context.Context) (any, error) {
		calls.Add(1)
		if fail.Load() {
			return nil, errors.New("provider down")
		}
		return [][]string{{"openai", "gpt-4o-mini"}}, nil
	}), zap.NewNop())
	job := NewCatalogJob(zap.NewNop(), nil, store)

	job.Refresh()
	snap, ok := store.Cached()
	require.True(t, ok)
	assert.Equal(t, []string{"gpt-4o-mini"}, snap.Catalog.Models)

	fail.Store(true)
	job.Refresh()
	snap, _ = store.Cached()
	assert.True(t, snap.Catalog.IsDefault())
	assert.Equal(t, int32(2), calls.Load())
}

func TestCron_InvalidSpec(t *testing.T) {
	conf := &config.Configuration{}
	conf.Catalog.RefreshCron = "every tuesday"
	c := NewCron(zap.NewNop(), conf, NewCatalogJob(zap.NewNop(), nil, catalog.NewStore(nil, nil)))

	assert.Error(t, c.Run())
}

func TestCron_RunAndStop(t *testing.T) {
	conf := &config.Configuration{}
	conf.Catalog.RefreshCron = "0 */10 * * * *"
	c := NewCron(zap.NewNop(), conf, NewCatalogJob(zap.NewNop(), nil, catalog.NewStore(nil, nil)))

	require.NoError(t, c.Run())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, c.Stop(ctx))
}
