package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy/internal/assets"
	"github.com/vovakirdan/flappy/internal/platform/tui"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Show the sprite manifest",
	Long: `List every sprite the game uses, whether it was read from the asset
directory or replaced by a generated placeholder, and its size.

Examples:
  flappy assets
  flappy assets --assets ./assets`,
	Args: cobra.NoArgs,
	RunE: runAssets,
}

func runAssets(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "flappy")
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := newImages(cfg, assetFS(cfg.Assets.Dir, logger), logger)
	entries := loader.Manifest()

	files := 0
	for _, e := range entries {
		if e.Source == assets.SourceFile {
			files++
		}
	}

	fmt.Printf("Assets - %s (bird %d)\n\n", cfg.Assets.Dir, loader.Bird())
	fmt.Println(tui.ManifestTable(entries, nil))
	fmt.Printf("\n%d of %d loaded from disk\n", files, len(entries))
	return nil
}
