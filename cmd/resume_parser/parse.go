package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/config"
	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/ner"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/schemas"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse one resume document into structured JSON",
	Long:  "Parse a PDF, HTML or plain-text resume into a structured JSON record that validates against the parsed_resume schema.",
	RunE:  runParse,
}

var (
	parseInputFile   string
	parseOutputFile  string
	parseConfigPath  string
	parseAPIKey      string
	parseDatabaseURL string
	parseStore       bool
	parseVerbose     bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseInputFile, "in", "i", "", "Path to the resume document (required)")
	parseCmd.Flags().StringVarP(&parseOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to JSON config file")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key for the name fallback (overrides GEMINI_API_KEY env var)")
	parseCmd.Flags().StringVar(&parseDatabaseURL, "db-url", "", "Database URL (overrides DATABASE_URL env var)")
	parseCmd.Flags().BoolVar(&parseStore, "store", false, "Store the parsed record in the database")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a parse summary")

	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(parseConfigPath, config.Config{
		Input:       parseInputFile,
		APIKey:      parseAPIKey,
		DatabaseURL: parseDatabaseURL,
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("input file is required (use --in)")
	}

	ctx := context.Background()

	p, err := buildParser(ctx, cfg.APIKey)
	if err != nil {
		return err
	}

	resume, err := p.ParseFile(ctx, cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", cfg.Input, err)
	}
	resume.SourceFile = filepath.Base(cfg.Input)

	jsonBytes, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if parseOutputFile != "" {
		if err := os.WriteFile(parseOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		validateOutput(parseOutputFile)
		fmt.Fprintf(os.Stdout, "Output: %s\n", parseOutputFile)
	} else {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
	}

	if parseVerbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintParsedResume(resume)
		printer.PrintExperience(resume.Experience)
		printer.PrintTables(resume.TablesData)
	}

	if parseStore {
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = os.Getenv("DATABASE_URL")
		}
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL required when using --store")
		}

		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer database.Close()

		if err := database.EnsureSchema(ctx); err != nil {
			return err
		}

		id, err := database.SaveResume(ctx, resume)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Stored: %s\n", id)
	}

	return nil
}

// buildParser creates a Parser, attaching the name-recognition fallback
// when an API key is available.
func buildParser(ctx context.Context, apiKey string) (*parser.Parser, error) {
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return parser.New(), nil
	}

	recognizer, err := ner.NewGeminiRecognizer(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create recognizer: %w", err)
	}
	return parser.New(parser.WithRecognizer(recognizer)), nil
}

// loadMergedConfig loads the optional config file and merges it under the
// CLI flag values, which always win.
func loadMergedConfig(path string, flags config.Config) (config.Config, error) {
	if path == "" {
		if err := flags.Validate(); err != nil {
			return config.Config{}, err
		}
		return flags, nil
	}

	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}

	merged := flags.MergeWithDefaults(*fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// validateOutput checks a written artifact against the bundled schema.
// Schema problems warn; genuine mismatches are reported but never undo the
// write.
func validateOutput(jsonPath string) {
	err := schemas.ValidateParsedResumeFile(jsonPath)
	if err == nil {
		return
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		fmt.Fprintf(os.Stderr, "Warning: output does not validate against schema: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "Warning: could not validate output against schema: %v\n", err)
}
