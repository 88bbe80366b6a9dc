package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lrconv/internal/container"
	"github.com/vovakirdan/lrconv/internal/platform/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview <levels.txt>",
	Short: "Browse decoded levels interactively",
	Long: `Open a terminal browser over every decodable level in the container.

Controls:
  Up/Down      - Move in the level list
  Enter        - View the selected level
  Left/Right   - Previous/next level in the map view
  Esc          - Back to the list
  Q            - Quit`,
	Args: cobra.ExactArgs(1),
	Run:  runPreview,
}

func runPreview(_ *cobra.Command, args []string) {
	raws, err := container.ExtractFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	decoded, ok, failed := reportBatch(decodeBatch(raws, 0))
	if ok == 0 {
		fmt.Fprintf(os.Stderr, "Error: no decodable levels in %s (%d failures)\n", args[0], failed)
		os.Exit(1)
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewPreviewModel(tui.NewPreviewItems(decoded), width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running preview: %v\n", err)
		os.Exit(1)
	}
}
