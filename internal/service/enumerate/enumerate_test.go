package enumerate

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lovedj/internal/catalog"
	"lovedj/internal/core"
	"lovedj/internal/service/models"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeModels struct {
	provider  core.ProviderName
	available bool
	ids       []string
	err       error
}

func (f *fakeModels) Provider() core.ProviderName { return f.provider }
func (f *fakeModels) Available() bool             { return f.available }
func (f *fakeModels) List(ctx context.Context) ([]models.Model, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Model, 0, len(f.ids))
	for _, id := range f.ids {
		out = append(out, models.Model{ID: id, Provider: f.provider})
	}
	return out, nil
}

func TestProviderEnumerator_Rows(t *testing.T) {
	e := NewProviderEnumerator(zap.NewNop(),
		&fakeModels{provider: "google", available: true, ids: []string{"gemini-1.5-pro"}},
		&fakeModels{provider: "openai", available: true, ids: []string{"gpt-4o", "gpt-4-turbo"}},
		&fakeModels{provider: "mock", available: false, ids: []string{"never"}},
	)
	raw, err := e.Enumerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.RowsResponse{
		{Provider: "google", Model: "gemini-1.5-pro"},
		{Provider: "openai", Model: "gpt-4o"},
		{Provider: "openai", Model: "gpt-4-turbo"},
	}, raw)
}

func TestProviderEnumerator_PartialFailure(t *testing.T) {
	e := NewProviderEnumerator(zap.NewNop(),
		&fakeModels{provider: "google", available: true, err: errors.New("quota")},
		&fakeModels{provider: "openai", available: true, ids: []string{"gpt-4o"}},
	)
	raw, err := e.Enumerate(context.Background())
	require.NoError(t, err)
	assert.Len(t, raw, 1)
}

func TestProviderEnumerator_AllFail(t *testing.T) {
	quota := errors.New("quota")
	e := NewProviderEnumerator(zap.NewNop(),
		&fakeModels{provider: "google", available: true, err: quota},
		&fakeModels{provider: "openai", available: true, err: errors.New("401")},
	)
	_, err := e.Enumerate(context.Background())
	assert.ErrorIs(t, err, quota)

	_, err = NewProviderEnumerator(zap.NewNop()).Enumerate(context.Background())
	assert.Error(t, err)
}

func TestHTTPEnumerator_GroupedGzip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, _ = zw.Write([]byte(`{"openai":["gpt-4o","gpt-4-turbo"],"google":["gemini-1.5-pro"]}`))
		_ = zw.Close()
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Encoding", "gzip")
		_, _ = w.Write(buf.Bytes())
	}))
	defer srv.Close()

	// 關掉 transport 的自動解壓，才能驗證自己的解壓流程
	client := &http.Client{Transport: &http.Transport{DisableCompression: true}}
	raw, err := NewHTTPEnumerator(client, srv.URL, "secret", "").Enumerate(context.Background())
	require.NoError(t, err)

	c, err := catalog.NormalizeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini-1.5-pro", "gpt-4-turbo", "gpt-4o"}, c.Models)
}

func TestHTTPEnumerator_OpenAIList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"object":"list","data":[{"id":"gpt-4o","owned_by":"system"},{"id":"llama3","owned_by":"meta"},{"object":"model"}]}`))
	}))
	defer srv.Close()

	raw, err := NewHTTPEnumerator(nil, srv.URL, "", "").Enumerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog.RowsResponse{
		{Provider: "system", Model: "gpt-4o"},
		{Provider: "meta", Model: "llama3"},
	}, raw)

	raw, err = NewHTTPEnumerator(nil, srv.URL, "", "local").Enumerate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", raw.(catalog.RowsResponse)[0].Provider)
}

func TestHTTPEnumerator_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewHTTPEnumerator(nil, srv.URL, "", "").Enumerate(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestStaticEnumerator(t *testing.T) {
	groups := map[string][]string{"openai": {"gpt-4o"}}
	raw, err := NewStaticEnumerator(groups).Enumerate(context.Background())
	require.NoError(t, err)
	groups["openai"] = append(groups["openai"], "mutated")

	c, err := catalog.NormalizeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"gpt-4o"}, c.Models)
}
