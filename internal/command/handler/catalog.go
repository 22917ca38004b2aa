package command

import (
	"encoding/json"
	"fmt"
	"os"

	"lovedj/internal/catalog"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	logger *zap.Logger
	store  *catalog.Store
}

func NewCatalogHandler(logger *zap.Logger, store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{logger: logger, store: store}
}

type catalogOutput struct {
	Models         []string          `json:"models"`
	Providers      map[string]string `json:"providers"`
	Labels         []string          `json:"labels"`
	FallbackReason string            `json:"fallbackReason,omitempty"`
}

// CheckModels 列舉一次模型目錄並輸出；out 不為空時另存 JSON
func (handler *CatalogHandler) CheckModels(cmd *cobra.Command, out string) error {
	snap := handler.store.Refresh(cmd.Context())
	c := snap.Catalog

	if snap.Err != nil {
		cmd.PrintErrf("⚠️  using default catalog (%s): %v\n", catalog.Reason(snap.Err), snap.Err)
	}
	cmd.Printf("%d model(s)\n", c.Len())
	for _, label := range c.Labels() {
		cmd.Println("  " + label)
	}

	if out == "" {
		return nil
	}
	data, err := json.MarshalIndent(catalogOutput{
		Models:         c.Models,
		Providers:      c.Providers,
		Labels:         c.Labels(),
		FallbackReason: catalog.Reason(snap.Err),
	}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	handler.logger.Info("catalog written", zap.String("path", out), zap.Int("models", c.Len()))
	return nil
}
