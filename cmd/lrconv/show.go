package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lrconv/internal/container"
	"github.com/vovakirdan/lrconv/internal/level"
	"github.com/vovakirdan/lrconv/internal/textlevel"
)

var showCmd = &cobra.Command{
	Use:   "show <levels.txt> <name>",
	Short: "Print one decoded level",
	Long: `Decode a single level by its array name and print its text form.

Examples:
  lrconv show levels.txt test
  lrconv show levels.txt level12`,
	Args: cobra.ExactArgs(2),
	Run:  runShow,
}

func runShow(_ *cobra.Command, args []string) {
	raws, err := container.ExtractFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	name := args[1]
	var raw *level.RawLevel
	for i := range raws {
		if raws[i].Name == name {
			raw = &raws[i]
			break
		}
	}
	if raw == nil {
		fmt.Fprintf(os.Stderr, "Error: no level %q in %s\n", name, args[0])
		fmt.Fprintln(os.Stderr, "Run 'lrconv list' to see available levels.")
		os.Exit(1)
	}

	d, err := level.Decode(*raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %s: %v\n", name, err)
		os.Exit(1)
	}

	fmt.Print(textlevel.Emit(d))
}
