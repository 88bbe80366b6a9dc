package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lrconv/internal/container"
	"github.com/vovakirdan/lrconv/internal/textlevel"
)

var (
	flagOutDir   string
	flagPackFile string
	flagJobs     int
)

var convertCmd = &cobra.Command{
	Use:   "convert <levels.txt>",
	Short: "Convert binary levels to text files",
	Long: `Extract every level array from the container, decode it, and write the
NodeRunner text form.

By default each level becomes one .txt file in the output directory, named
with a zero-padded index (000_test.txt, 001_level1.txt, ...). With --pack
all levels go into a single .nlp pack file instead.

Levels that cannot be decoded are skipped with a warning; the batch always
runs to completion and reports totals at the end.

Examples:
  lrconv convert levels.txt
  lrconv convert levels.txt -o out/levels
  lrconv convert levels.txt --pack classic.nlp
  lrconv convert levels.txt --jobs 8`,
	Args: cobra.ExactArgs(1),
	Run:  runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&flagOutDir, "out", "o", "", "Output directory (default from config)")
	convertCmd.Flags().StringVar(&flagPackFile, "pack", "", "Write a single .nlp pack instead of per-level files")
	convertCmd.Flags().IntVar(&flagJobs, "jobs", 0, "Decode workers (0 = one per CPU)")
}

func runConvert(_ *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	outDir := flagOutDir
	if outDir == "" {
		outDir = cfg.Output.Dir
	}
	jobs := flagJobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}

	raws, err := container.ExtractFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("extracted level arrays", "count", len(raws), "source", args[0])

	decoded, ok, failed := reportBatch(decodeBatch(raws, jobs))

	if flagPackFile != "" {
		meta := textlevel.PackMeta{
			Name:        cfg.Pack.Name,
			Author:      cfg.Pack.Author,
			Description: cfg.Pack.Description,
		}
		f, err := os.Create(flagPackFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating pack: %v\n", err)
			os.Exit(1)
		}
		if err := textlevel.WritePack(f, meta, decoded); err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "Error writing pack: %v\n", err)
			os.Exit(1)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing pack: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Done: %d levels packed into %s, %d errors\n", ok, flagPackFile, failed)
		return
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	for i, d := range decoded {
		name := textlevel.FileName(d.Name, i)
		path := filepath.Join(outDir, name)
		if err := os.WriteFile(path, []byte(textlevel.Emit(d)), 0o644); err != nil {
			logger.Warn("could not write level", "path", path, "error", err)
			failed++
			ok--
			continue
		}
		logger.Debug("wrote level", "path", path)
	}

	fmt.Printf("Done: %d levels converted, %d errors\n", ok, failed)
	if failed > 0 && ok == 0 {
		os.Exit(1)
	}
}
