// lrconv converts Lode Runner binary level data into the NodeRunner text
// level format.
//
// Usage:
//
//	lrconv convert <levels.txt>   - Convert all levels to text files
//	lrconv list <levels.txt>      - List levels found in the container
//	lrconv show <levels.txt> <n>  - Print one decoded level
//	lrconv check <dir|file>       - Validate text levels
//	lrconv index <levels.txt>     - Write level metadata to the catalog
//	lrconv catalog                - Query the level catalog
//	lrconv preview <levels.txt>   - Browse decoded levels interactively
//	lrconv serve <levels.txt>     - Serve the browser over SSH
//
// Global flags:
//
//	--config <path>  - Custom config file (default: ~/.lrconv/config.yaml)
//	--db <path>      - Catalog database path (default from config)
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lrconv/internal/config"
)

var (
	// Global flags
	flagConfigPath string
	flagDBPath     string
	flagVerbose    bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "lrconv",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lrconv",
	Short: "Lode Runner binary level converter",
	Long: `lrconv decodes binary Lode Runner level arrays (C uint8_t arrays in a
levels.txt source file) and re-emits them as NodeRunner text levels.

Available commands:
  convert  - Convert every level to text files or a .nlp pack
  list     - Show the levels found in a container
  show     - Print one decoded level to stdout
  check    - Validate text level files
  index    - Store decoded level metadata in the catalog
  catalog  - Query the level catalog
  preview  - Browse decoded levels in the terminal
  serve    - Serve the level browser over SSH

Examples:
  lrconv convert levels.txt -o levels/
  lrconv convert levels.txt --pack classic.nlp
  lrconv show levels.txt level3
  lrconv check levels/
  lrconv serve levels.txt --ssh :2222`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Catalog database path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the configuration and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	if flagDBPath != "" {
		cfg.Catalog.Path = flagDBPath
	}
	return cfg, nil
}
