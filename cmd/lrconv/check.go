package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lrconv/internal/textlevel"
)

var checkCmd = &cobra.Command{
	Use:   "check <dir|file>",
	Short: "Validate text level files",
	Long: `Parse .txt and .nlp files and verify the fixed 28x16 geometry, the tile
legend, and that every level has exactly one player spawn.

Examples:
  lrconv check levels/
  lrconv check classic.nlp`,
	Args: cobra.ExactArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	target := args[0]

	info, err := os.Stat(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var defs []textlevel.LevelDef
	problems := 0

	if info.IsDir() {
		loaded, failures, err := textlevel.NewLoader(target).LoadAll()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		for path, ferr := range failures {
			fmt.Printf("  FAIL  %s: %v\n", path, ferr)
			problems++
		}
		defs = loaded
	} else {
		loaded, err := textlevel.LoadFile(target)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defs = loaded
	}

	for _, def := range defs {
		if err := textlevel.Validate(def); err != nil {
			fmt.Printf("  FAIL  %s: %v\n", def.Name, err)
			problems++
			continue
		}
		fmt.Printf("  ok    %s\n", def.Name)
	}

	fmt.Println()
	if problems > 0 {
		fmt.Printf("%d levels checked, %d problems\n", len(defs), problems)
		os.Exit(1)
	}
	fmt.Printf("%d levels checked, all valid\n", len(defs))
}
