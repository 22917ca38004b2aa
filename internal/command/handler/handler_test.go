package command

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lovedj/config"
	"lovedj/internal/catalog"
	"lovedj/internal/core"
	"lovedj/internal/service"
	"lovedj/internal/service/chat"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCmd() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestCatalogHandler_CheckModels(t *testing.T) {
	store := catalog.NewStore(catalog.EnumeratorFunc(func(ctx context.Context) (any, error) {
		return map[string][]string{"openai": {"gpt-4o", "gpt-4o-mini"}, "google": {"gemini-1.5-pro"}}, nil
	}), zap.NewNop())
	h := NewCatalogHandler(zap.NewNop(), store)
	cmd, out := newTestCmd()
	path := filepath.Join(t.TempDir(), "catalog.json")

	require.NoError(t, h.CheckModels(cmd, path))
	assert.Contains(t, out.String(), "3 model(s)")
	assert.Contains(t, out.String(), "gpt-4o [openai]")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var written catalogOutput
	require.NoError(t, json.Unmarshal(raw, &written))
	assert.Equal(t, []string{"gemini-1.5-pro", "gpt-4o", "gpt-4o-mini"}, written.Models)
	assert.Equal(t, "gpt-4o [openai]", written.Labels[0])
	assert.Empty(t, written.FallbackReason)
}

func TestCatalogHandler_CheckModelsFallback(t *testing.T) {
	store := catalog.NewStore(catalog.EnumeratorFunc(func(ctx context.Context) (any, error) {
		return "not a catalog", nil
	}), zap.NewNop())
	h := NewCatalogHandler(zap.NewNop(), store)
	cmd, out := newTestCmd()

	require.NoError(t, h.CheckModels(cmd, ""))
	assert.Contains(t, out.String(), "unsupported_shape")
	assert.Contains(t, out.String(), "1 model(s)")
}

func TestSimulateHandler_Mock(t *testing.T) {
	conf := &config.Configuration{}
	conf.LLM.MockEnabled = true
	reg := service.NewRegistry()
	reg.RegisterChat(core.ProviderMock, chat.NewMockService(conf))
	store := catalog.NewStore(catalog.EnumeratorFunc(func(ctx context.Context) (any, error) {
		return [][]string{{"mock", "mock-date"}}, nil
	}), zap.NewNop())
	dateService := service.NewDateService(conf, zap.NewNop(), nil, nil, store, reg, nil, nil)

	h := NewSimulateHandler(zap.NewNop(), dateService)
	cmd, out := newTestCmd()

	err := h.Simulate(cmd, SimulateOptions{Rounds: 1, Model: "mock-date", NameA: "Alex", NameB: "Sam", Mock: true, Verbose: true})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "mock-date [mock], 1 round(s)")
	assert.Contains(t, text, "Alex: Utterance 1 from Alex")
	assert.Contains(t, text, "--- round 1 ---")
	assert.Contains(t, text, "Sam: Utterance 2 from Sam")
	assert.Contains(t, text, "average 7.0/10")
	assert.Contains(t, text, "5 requests")
}

func TestSimulateHandler_RejectsBadRounds(t *testing.T) {
	conf := &config.Configuration{}
	conf.LLM.MockEnabled = true
	reg := service.NewRegistry()
	reg.RegisterChat(core.ProviderMock, chat.NewMockService(conf))
	dateService := service.NewDateService(conf, zap.NewNop(), nil, nil, catalog.NewStore(nil, nil), reg, nil, nil)

	cmd, _ := newTestCmd()
	err := NewSimulateHandler(zap.NewNop(), dateService).Simulate(cmd, SimulateOptions{Rounds: 50, Mock: true})
	assert.Error(t, err)
}
