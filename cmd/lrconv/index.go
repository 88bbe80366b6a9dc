package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lrconv/internal/catalog"
	"github.com/vovakirdan/lrconv/internal/container"
	"github.com/vovakirdan/lrconv/internal/textlevel"
)

var indexCmd = &cobra.Command{
	Use:   "index <levels.txt>",
	Short: "Store decoded level metadata in the catalog",
	Long: `Decode every level in the container and upsert its metadata (encoding,
entity counts, gold, hidden-ladder overlaps) into the catalog database.

Examples:
  lrconv index levels.txt
  lrconv index levels.txt --db ./catalog.db`,
	Args: cobra.ExactArgs(1),
	Run:  runIndex,
}

func runIndex(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	raws, err := container.ExtractFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	items := decodeBatch(raws, cfg.Jobs)

	ok, failed := 0, 0
	for _, item := range items {
		if item.Err != nil {
			logger.Warn("skipping level", "name", item.Raw.Name, "error", item.Err)
			failed++
			continue
		}
		entry := catalog.EntryFromLevel(item.Decoded,
			textlevel.DisplayName(item.Decoded.Name), len(item.Raw.Data))
		if _, err := store.Save(entry); err != nil {
			logger.Warn("could not save entry", "name", item.Raw.Name, "error", err)
			failed++
			continue
		}
		ok++
	}

	fmt.Printf("Done: %d levels indexed, %d errors\n", ok, failed)
}
