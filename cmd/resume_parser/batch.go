package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/batch"
	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/observability"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse every resume in a folder",
	Long:  "Parse all supported resume documents in a folder, writing parsed_<name>.json per file plus a combined all_parsed_resumes.json. Files that fail to parse are reported and skipped.",
	RunE:  runBatch,
}

var (
	batchInputDir   string
	batchOutputDir  string
	batchConfigPath string
	batchAPIKey     string
	batchWorkers    int
	batchVerbose    bool
)

func init() {
	batchCmd.Flags().StringVarP(&batchInputDir, "in", "i", "", "Folder containing resume documents (required)")
	batchCmd.Flags().StringVarP(&batchOutputDir, "out", "o", "", "Output folder for JSON artifacts (default: input folder)")
	batchCmd.Flags().StringVar(&batchConfigPath, "config", "", "Path to JSON config file")
	batchCmd.Flags().StringVar(&batchAPIKey, "api-key", "", "Gemini API key for the name fallback (overrides GEMINI_API_KEY env var)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Concurrent parses (default 4)")
	batchCmd.Flags().BoolVarP(&batchVerbose, "verbose", "v", false, "Print a run summary")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(batchConfigPath, config.Config{
		Input:     batchInputDir,
		OutputDir: batchOutputDir,
		APIKey:    batchAPIKey,
		Workers:   batchWorkers,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("input folder is required (use --in)")
	}

	ctx := context.Background()

	p, err := buildParser(ctx, cfg.APIKey)
	if err != nil {
		return err
	}

	result, err := batch.Run(ctx, batch.Options{
		InputDir:  cfg.Input,
		OutputDir: cfg.OutputDir,
		Workers:   cfg.Workers,
		Parser:    p,
	})
	if err != nil {
		return err
	}

	for _, failure := range result.Failures {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", failure)
	}

	if batchVerbose {
		var messages []string
		for _, failure := range result.Failures {
			messages = append(messages, failure.String())
		}
		observability.NewPrinter(os.Stdout).PrintBatchSummary(len(result.Parsed), len(result.Failures), messages)
	}

	fmt.Fprintf(os.Stdout, "Parsed %d of %d resumes\n", len(result.Parsed), len(result.Parsed)+len(result.Failures))
	return nil
}
