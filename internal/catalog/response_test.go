package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect_Shapes(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want Shape
	}{
		{"string rows", [][]string{{"openai", "gpt-4o"}}, ShapeRows},
		{"any rows", []any{[]any{"openai", "gpt-4o"}}, ShapeRows},
		{"array rows", [][2]string{{"openai", "gpt-4o"}}, ShapeRows},
		{"row structs", []Row{{Provider: "openai", Model: "gpt-4o"}}, ShapeRows},
		{"pointer to rows", &[][]string{{"openai", "gpt-4o"}}, ShapeRows},
		{"grouped strings", map[string][]string{"openai": {"gpt-4o"}}, ShapeGrouped},
		{"grouped any", map[string]any{"openai": []any{"gpt-4o"}}, ShapeGrouped},
		{"json rows", json.RawMessage(`[["openai","gpt-4o"]]`), ShapeRows},
		{"json grouped", []byte(`{"openai":["gpt-4o"]}`), ShapeGrouped},
		{"already detected", GroupedResponse{{Provider: "openai", Models: []string{"gpt-4o"}}}, ShapeGrouped},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := Detect(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.Shape())
		})
	}
}

func TestDetect_Unsupported(t *testing.T) {
	for _, raw := range []any{nil, "unexpected-string", 3.14, true, struct{}{}, (*[]string)(nil), []byte(`42`)} {
		_, err := Detect(raw)
		assert.ErrorIs(t, err, ErrUnsupportedShape, "%#v", raw)
	}
}

func TestDetectJSON_Rows(t *testing.T) {
	resp, err := DetectJSON([]byte(`[["openai","gpt-4o","extra"],["google"],"junk",["local",42]]`))
	require.NoError(t, err)
	assert.Equal(t, RowsResponse{
		{Provider: "openai", Model: "gpt-4o"},
		{Provider: "local", Model: "42"},
	}, resp)
}

func TestDetectJSON_GroupedKeepsDocumentOrder(t *testing.T) {
	resp, err := DetectJSON([]byte(`{"zeta":["z-1"],"alpha":["a-1","a-2"],"note":"skip"}`))
	require.NoError(t, err)
	assert.Equal(t, GroupedResponse{
		{Provider: "zeta", Models: []string{"z-1"}},
		{Provider: "alpha", Models: []string{"a-1", "a-2"}},
	}, resp)
}

func TestDetect_GroupedSortsGoMapKeys(t *testing.T) {
	resp, err := Detect(map[string][]string{"b": {"2"}, "a": {"1"}, "c": {"3"}})
	require.NoError(t, err)
	groups := resp.(GroupedResponse)
	require.Len(t, groups, 3)
	assert.Equal(t, "a", groups[0].Provider)
	assert.Equal(t, "b", groups[1].Provider)
	assert.Equal(t, "c", groups[2].Provider)
}
