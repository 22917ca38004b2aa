package enumerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lovedj/internal/catalog"
	"lovedj/internal/pkg/compress"

	"github.com/tidwall/gjson"
)

const maxCatalogBody = 8 << 20

// HTTPEnumerator 從遠端 JSON 取得模型目錄。
// 接受 rows / 分組兩種格式，另外支援 OpenAI 相容的 {"object":"list","data":[{"id":..}]}。
type HTTPEnumerator struct {
	client   *http.Client
	url      string
	token    string
	provider string
}

func NewHTTPEnumerator(client *http.Client, url, token, provider string) *HTTPEnumerator {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPEnumerator{client: client, url: url, token: token, provider: provider}
}

func (e *HTTPEnumerator) Enumerate(ctx context.Context) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Encoding", "gzip, br, zstd")
	if e.token != "" {
		req.Header.Set("Authorization", "Bearer "+e.token)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBody))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("catalog source returned %d: %s", resp.StatusCode, compress.TruncateRunes(strings.TrimSpace(string(raw)), 200))
	}

	body, err := compress.DecodeResponse(raw, resp.Header)
	if err != nil {
		return nil, fmt.Errorf("decode catalog body: %w", err)
	}

	if rows, ok := e.openAIList(body); ok {
		return rows, nil
	}
	return json.RawMessage(body), nil
}

// openAIList 將 OpenAI 相容的模型列表轉成 rows，owned_by 缺少時用預設 provider
func (e *HTTPEnumerator) openAIList(body []byte) (catalog.RowsResponse, bool) {
	if gjson.GetBytes(body, "object").String() != "list" {
		return nil, false
	}
	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return nil, false
	}
	rows := catalog.RowsResponse{}
	data.ForEach(func(_, m gjson.Result) bool {
		id := m.Get("id").String()
		if id == "" {
			return true
		}
		provider := e.provider
		if provider == "" {
			provider = m.Get("owned_by").String()
		}
		rows = append(rows, catalog.Row{Provider: provider, Model: id})
		return true
	})
	return rows, true
}
