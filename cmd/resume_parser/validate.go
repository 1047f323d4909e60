package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a parsed resume JSON artifact against the schema",
	RunE:  runValidate,
}

var validateInputFile string

func init() {
	validateCmd.Flags().StringVarP(&validateInputFile, "in", "i", "", "Path to parsed resume JSON file (required)")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	if validateInputFile == "" {
		return fmt.Errorf("input file is required (use --in)")
	}

	if err := schemas.ValidateParsedResumeFile(validateInputFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s is valid\n", validateInputFile)
	return nil
}
