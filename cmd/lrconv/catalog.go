package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lrconv/internal/catalog"
)

var flagEncoding string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Query the level catalog",
	Long: `Show the levels stored in the catalog database by 'lrconv index'.

Examples:
  lrconv catalog
  lrconv catalog --encoding grid
  lrconv catalog --db ./catalog.db`,
	Run: runCatalog,
}

func init() {
	catalogCmd.Flags().StringVar(&flagEncoding, "encoding", "", "Filter by body encoding: row-rle, column-rle, grid")
}

func runCatalog(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := catalog.Open(cfg.Catalog.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening catalog: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var entries []catalog.Entry
	if flagEncoding != "" {
		entries, err = store.ByEncoding(flagEncoding)
	} else {
		entries, err = store.Levels()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error querying catalog: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No levels catalogued.")
		fmt.Println("Run 'lrconv index <levels.txt>' to populate the catalog.")
		return
	}

	maxNameLen := 4
	for _, e := range entries {
		if len(e.Name) > maxNameLen {
			maxNameLen = len(e.Name)
		}
	}

	fmt.Printf("  %-*s  %-10s  %-6s  %-7s  %-7s  %-4s  %s\n",
		maxNameLen, "Name", "Encoding", "Bytes", "Enemies", "Ladders", "Gold", "Overlaps")
	fmt.Printf("  %-*s  %-10s  %-6s  %-7s  %-7s  %-4s  %s\n",
		maxNameLen, "----", "--------", "-----", "-------", "-------", "----", "--------")

	for _, e := range entries {
		fmt.Printf("  %-*s  %-10s  %-6d  %-7d  %-7d  %-4d  %d\n",
			maxNameLen, e.Name, e.Encoding, e.ByteSize,
			e.Enemies, e.ExitLadders, e.Gold, e.Overlaps)
	}

	fmt.Println()
	fmt.Printf("%d levels catalogued\n", len(entries))
}
