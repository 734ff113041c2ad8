package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/indspenceable/gosu/internal/assets"
)

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Work with the media files",
}

var bakeCmd = &cobra.Command{
	Use:   "bake <dir>",
	Short: "Write the generated media files to a directory",
	Long: `Render the built-in background, star sheet and ship and save them
under the names the game looks for. The files can then be edited and
used with --media.

Examples:
  tutorial assets bake ./media
  tutorial play --media ./media`,
	Args: cobra.ExactArgs(1),
	RunE: runBake,
}

func init() {
	assetsCmd.AddCommand(bakeCmd)
}

func runBake(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	written, err := assets.Bake(args[0], cfg.Assets, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("baking media: %w", err)
	}
	for _, path := range written {
		fmt.Println(path)
	}
	return nil
}
