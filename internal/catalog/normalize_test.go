package catalog

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedUnique(in []string) []string {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

func TestNormalize_RowsExample(t *testing.T) {
	raw := [][]string{{"openai", "gpt-4o"}, {"anthropic", "claude-3-opus-20240229"}}

	c, err := NormalizeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"claude-3-opus-20240229", "gpt-4o"}, c.Models)
	assert.Equal(t, map[string]string{
		"gpt-4o":                 "openai",
		"claude-3-opus-20240229": "anthropic",
	}, c.Providers)
}

func TestNormalize_GroupedExample(t *testing.T) {
	raw := map[string][]string{
		"openai": {"gpt-4o", "gpt-4-turbo"},
		"google": {"gemini-1.5-pro"},
	}

	c, err := NormalizeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"gemini-1.5-pro", "gpt-4-turbo", "gpt-4o"}, c.Models)
	assert.Equal(t, "google", c.ProviderOf("gemini-1.5-pro"))
	assert.Equal(t, "openai", c.ProviderOf("gpt-4o"))
}

func TestNormalize_UnexpectedString(t *testing.T) {
	var c Catalog
	var err error
	assert.NotPanics(t, func() { c, err = NormalizeRaw("unexpected-string") })
	assert.ErrorIs(t, err, ErrUnsupportedShape)
	assert.Equal(t, Default().Models, c.Models)
	assert.Equal(t, Default().Providers, c.Providers)
	assert.True(t, c.IsDefault())
}

func TestNormalize_NeverEmpty(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want error
	}{
		{"nil", nil, ErrUnsupportedShape},
		{"empty sequence", []any{}, ErrEmptyCatalog},
		{"empty mapping", map[string]any{}, ErrEmptyCatalog},
		{"integer", 42, ErrUnsupportedShape},
		{"struct", struct{ Models []string }{Models: []string{"gpt-4o"}}, ErrUnsupportedShape},
		{"short rows", [][]string{{"openai"}, {}}, ErrEmptyCatalog},
		{"non-row elements", []string{"gpt-4o", "gpt-4-turbo"}, ErrEmptyCatalog},
		{"mapping of scalars", map[string]any{"openai": "gpt-4o"}, ErrEmptyCatalog},
		{"json string", json.RawMessage(`"gpt-4o"`), ErrUnsupportedShape},
		{"invalid json", []byte(`{"openai": [`), ErrUnsupportedShape},
		{"typed nil rows", RowsResponse(nil), ErrEmptyCatalog},
		{"blank model ids", [][]string{{"openai", ""}, {"google", "  "}}, ErrEmptyCatalog},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NormalizeRaw(tc.raw)
			assert.ErrorIs(t, err, tc.want)
			require.NotEmpty(t, c.Models)
			assert.Equal(t, DefaultModel, c.Models[0])
			assert.Equal(t, DefaultProvider, c.ProviderOf(DefaultModel))
		})
	}
}

func TestNormalize_FirstProviderWins(t *testing.T) {
	raw := []any{
		[]any{"azure", "gpt-4o"},
		[]any{"openai", "gpt-4o", "ignored", 3},
		[]any{"openai", "gpt-4-turbo"},
	}
	c, err := NormalizeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"gpt-4-turbo", "gpt-4o"}, c.Models)
	assert.Equal(t, "azure", c.ProviderOf("gpt-4o"))
}

func TestNormalize_GroupedFirstProviderWinsInKeyOrder(t *testing.T) {
	// map 依 provider 名稱排序後再套用先到先贏
	raw := map[string][]string{
		"openai": {"gpt-4o"},
		"azure":  {"gpt-4o"},
	}
	c, err := NormalizeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, "azure", c.ProviderOf("gpt-4o"))
}

func TestNormalize_CoercesIdsToStrings(t *testing.T) {
	raw := []any{
		[]any{"local", 7},
		[]any{"local", 1.5},
		[]any{"openai", "gpt-4o"},
	}
	c, err := NormalizeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"1.5", "7", "gpt-4o"}, c.Models)
}

func TestNormalize_MissingProviderIsUnknown(t *testing.T) {
	cases := map[string]any{
		"nil element":  []any{[]any{nil, "x"}},
		"blank string": [][]string{{" ", "x"}},
		"json null":    json.RawMessage(`[[null, "x"]]`),
		"empty key":    map[string][]string{"": {"x"}},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := NormalizeRaw(raw)
			require.NoError(t, err)
			assert.Equal(t, UnknownProvider, c.ProviderOf("x"))
			assert.Contains(t, c.Labels(), "x [unknown]")
		})
	}
}

func TestNormalize_OrdinalSort(t *testing.T) {
	raw := [][]string{{"x", "b"}, {"x", "B"}, {"x", "a"}, {"x", "A"}}
	c, err := NormalizeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "a", "b"}, c.Models)
}

func TestNormalize_JSONDocumentOrder(t *testing.T) {
	raw := json.RawMessage(`{"openai": ["gpt-4o"], "azure": ["gpt-4o", "gpt-35-turbo"], "meta": "skip"}`)
	c, err := NormalizeRaw(raw)
	require.NoError(t, err)
	assert.Equal(t, []string{"gpt-35-turbo", "gpt-4o"}, c.Models)
	// JSON 保留文件順序，openai 先出現
	assert.Equal(t, "openai", c.ProviderOf("gpt-4o"))
}

func TestNormalize_CustomFallback(t *testing.T) {
	n := NewNormalizer(Entry{Model: "gemini-1.5-pro", Provider: "google"})
	c, err := n.NormalizeRaw(map[string][]string{})
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.Equal(t, []string{"gemini-1.5-pro"}, c.Models)
	assert.Equal(t, "gemini-1.5-pro [google]", c.Labels()[0])
}

func TestNormalize_Properties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("rows: models are the sorted unique second elements", prop.ForAll(
		func(rows [][]string) bool {
			c, err := NormalizeRaw(rows)
			if len(rows) == 0 {
				return err != nil && c.IsDefault()
			}
			want := make([]string, 0, len(rows))
			for _, r := range rows {
				want = append(want, r[1])
			}
			return err == nil && slices.Equal(c.Models, sortedUnique(want))
		},
		gen.SliceOf(gen.SliceOfN(2, gen.Identifier())),
	))

	properties.Property("grouped: models are the sorted unique union of values", prop.ForAll(
		func(groups map[string][]string) bool {
			var want []string
			for _, ids := range groups {
				want = append(want, ids...)
			}
			c, err := NormalizeRaw(groups)
			if len(want) == 0 {
				return err != nil && c.IsDefault()
			}
			return err == nil && slices.Equal(c.Models, sortedUnique(want))
		},
		gen.MapOf(gen.Identifier(), gen.SliceOf(gen.Identifier())),
	))

	properties.Property("every model has a provider from the input", prop.ForAll(
		func(rows [][]string) bool {
			c, _ := NormalizeRaw(rows)
			for _, m := range c.Models {
				if c.ProviderOf(m) == UnknownProvider {
					return false
				}
			}
			return len(c.Models) == len(c.Providers)
		},
		gen.SliceOf(gen.SliceOfN(2, gen.Identifier())),
	))

	properties.Property("normalize is idempotent", prop.ForAll(
		func(rows [][]string) bool {
			a, errA := NormalizeRaw(rows)
			b, errB := NormalizeRaw(rows)
			return slices.Equal(a.Models, b.Models) &&
				assert.ObjectsAreEqual(a.Providers, b.Providers) &&
				(errA == nil) == (errB == nil)
		},
		gen.SliceOf(gen.SliceOfN(2, gen.Identifier())),
	))

	providers := []string{"openai", "azure", "google"}
	models := []string{"gpt-4o", "gpt-4o-mini", "GPT-4", "claude-3-opus-20240229", "gemini-1.5-pro"}
	properties.Property("default model is offered exactly once and first", prop.ForAll(
		func(picks []int) bool {
			rows := make([][]string, 0, len(picks))
			for i, p := range picks {
				rows = append(rows, []string{providers[(i+p)%len(providers)], models[p%len(models)]})
			}
			c, _ := NormalizeRaw(rows)
			labels := c.Labels()
			count := 0
			for _, l := range labels {
				if ModelFromLabel(l) == DefaultModel {
					count++
				}
			}
			return count == 1 && labels[0] == DefaultEntry.Label()
		},
		gen.SliceOf(gen.IntRange(0, 100)),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
