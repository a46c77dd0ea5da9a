package factory

import (
	"log/slog"

	"github.com/ListingScraper/internal/infra/extractor"
	"github.com/ListingScraper/pkg/config"
)

// NewLayout resolves the configured page layout. A layout file takes
// precedence over a registered layout name.
func NewLayout(cfg *config.Config) (extractor.Layout, error) {
	if cfg.LayoutFile != "" {
		layout, err := extractor.LoadLayout(cfg.LayoutFile)
		if err != nil {
			return extractor.Layout{}, err
		}
		slog.Info("Loaded layout file", "path", cfg.LayoutFile, "layout", layout.Name)
		return layout, nil
	}

	layout, err := extractor.GetLayout(cfg.LayoutName)
	if err != nil {
		return extractor.Layout{}, err
	}
	slog.Info("Registered layout", "layout", layout.Name)
	return layout, nil
}
