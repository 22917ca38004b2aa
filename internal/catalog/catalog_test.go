package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Labels(t *testing.T) {
	c, err := NormalizeRaw([][]string{
		{"openai", "gpt-4o"},
		{"anthropic", "claude-3-opus-20240229"},
		{"openai", "GPT-4-turbo"},
		{"google", "gemini-1.5-pro"},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{
		"gpt-4o [openai]",
		"claude-3-opus-20240229 [anthropic]",
		"gemini-1.5-pro [google]",
		"GPT-4-turbo [openai]",
	}, c.Labels())
}

func TestCatalog_LabelsPrependsMissingDefault(t *testing.T) {
	c, err := NormalizeRaw(map[string][]string{"google": {"gemini-1.5-pro"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"gpt-4o [openai]", "gemini-1.5-pro [google]"}, c.Labels())
}

func TestCatalog_LabelsSingleEntryForDefaultModel(t *testing.T) {
	// 目錄把保底模型歸到其他 provider 時，選單仍只出現一個 gpt-4o
	c, err := NormalizeRaw([][]string{{"azure", "gpt-4o"}, {"anthropic", "claude"}})
	assert.NoError(t, err)
	assert.Equal(t, []string{"gpt-4o [openai]", "claude [anthropic]"}, c.Labels())
	assert.Equal(t, "azure", c.ProviderOf("gpt-4o"))
}

func TestCatalog_LabelsOnZeroValue(t *testing.T) {
	var c Catalog
	assert.Equal(t, []string{"gpt-4o [openai]"}, c.Labels())
	assert.Equal(t, UnknownProvider, c.ProviderOf("gpt-4o"))
}

func TestCatalog_ProviderOf(t *testing.T) {
	c := Default()
	assert.Equal(t, "openai", c.ProviderOf("gpt-4o"))
	assert.Equal(t, "unknown", c.ProviderOf("no-such-model"))
	assert.True(t, c.Contains("gpt-4o"))
	assert.False(t, c.Contains("no-such-model"))
}

func TestModelFromLabel(t *testing.T) {
	cases := map[string]string{
		"gpt-4o [openai]":                "gpt-4o",
		"claude 3 opus [anthropic]":      "claude 3 opus",
		"  gemini-1.5-pro [google]  ":    "gemini-1.5-pro",
		"gpt-4o":                         "gpt-4o",
		"[openai]":                       "[openai]",
		"weird [name] model [provider]":  "weird [name] model",
	}
	for label, want := range cases {
		assert.Equal(t, want, ModelFromLabel(label), label)
	}
}

func TestParseLabel(t *testing.T) {
	model, provider := ParseLabel("gpt-4o [openai]")
	assert.Equal(t, "gpt-4o", model)
	assert.Equal(t, "openai", provider)

	model, provider = ParseLabel("weird [name] model [provider]")
	assert.Equal(t, "weird [name] model", model)
	assert.Equal(t, "provider", provider)

	model, provider = ParseLabel("x []")
	assert.Equal(t, "x", model)
	assert.Empty(t, provider)

	model, provider = ParseLabel("llama-3-70b")
	assert.Equal(t, "llama-3-70b", model)
	assert.Empty(t, provider)
}

func TestCatalog_Entries(t *testing.T) {
	c, _ := NormalizeRaw(map[string][]string{"openai": {"gpt-4o", "gpt-4-turbo"}})
	assert.Equal(t, []Entry{
		{Model: "gpt-4-turbo", Provider: "openai"},
		{Model: "gpt-4o", Provider: "openai"},
	}, c.Entries())
}
