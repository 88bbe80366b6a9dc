package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lrconv/internal/container"
	"github.com/vovakirdan/lrconv/internal/textlevel"
)

var listCmd = &cobra.Command{
	Use:   "list <levels.txt>",
	Short: "List levels found in a container",
	Long:  `Shows every level array in the container with its decode outcome.`,
	Args:  cobra.ExactArgs(1),
	Run:   runList,
}

func runList(_ *cobra.Command, args []string) {
	raws, err := container.ExtractFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	items := decodeBatch(raws, 0)

	// Calculate column width
	maxNameLen := 4 // "Name" header
	for _, item := range items {
		if len(item.Raw.Name) > maxNameLen {
			maxNameLen = len(item.Raw.Name)
		}
	}

	fmt.Printf("  %-*s  %-6s  %-10s  %-7s  %-7s  %s\n", maxNameLen, "Name", "Bytes", "Encoding", "Enemies", "Ladders", "Title")
	fmt.Printf("  %-*s  %-6s  %-10s  %-7s  %-7s  %s\n", maxNameLen, "----", "-----", "--------", "-------", "-------", "-----")

	failed := 0
	for _, item := range items {
		if item.Err != nil {
			fmt.Printf("  %-*s  %-6d  %s\n", maxNameLen, item.Raw.Name, len(item.Raw.Data), "unparseable")
			failed++
			continue
		}
		d := item.Decoded
		fmt.Printf("  %-*s  %-6d  %-10s  %-7d  %-7d  %s\n",
			maxNameLen, d.Name, len(item.Raw.Data), d.Header.Encoding,
			len(d.Header.Enemies), len(d.Header.ExitLadders),
			textlevel.DisplayName(d.Name))
	}

	fmt.Println()
	fmt.Printf("%d levels, %d unparseable\n", len(items), failed)
}
