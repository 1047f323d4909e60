// Package batch runs the parser over a folder of resume documents and
// writes per-file and combined JSON artifacts.
package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/types"
)

// defaultWorkers bounds concurrent parses when the caller does not.
const defaultWorkers = 4

// CombinedFileName is the name of the artifact holding every parsed resume
// from one run.
const CombinedFileName = "all_parsed_resumes.json"

// supportedExtensions lists the document types the extraction layer accepts.
var supportedExtensions = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".text": true,
	".html": true,
	".htm":  true,
}

// Options configures a folder run.
type Options struct {
	InputDir  string
	OutputDir string
	Workers   int
	Parser    *parser.Parser
}

// Failure records one document that could not be parsed. The run itself
// still succeeds.
type Failure struct {
	File string
	Err  error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s: %v", f.File, f.Err)
}

// Result summarizes one folder run.
type Result struct {
	Parsed   []*types.ParsedResume
	Failures []Failure
}

// Run parses every supported document directly under opts.InputDir. Each
// parsed resume is written to parsed_<stem>.json in the output directory,
// and the full set to all_parsed_resumes.json. A file that fails to parse
// is recorded as a Failure and never aborts the run.
func Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Parser == nil {
		opts.Parser = parser.New()
	}
	if opts.Workers <= 0 {
		opts.Workers = defaultWorkers
	}
	if opts.OutputDir == "" {
		opts.OutputDir = opts.InputDir
	}

	files, err := listResumeFiles(opts.InputDir)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	// Output slots are indexed by file so combined output keeps the
	// directory order regardless of which worker finishes first.
	parsed := make([]*types.ParsedResume, len(files))

	var mu sync.Mutex
	var failures []Failure

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)

	for i, file := range files {
		g.Go(func() error {
			resume, err := opts.Parser.ParseFile(ctx, file)
			if err != nil {
				mu.Lock()
				failures = append(failures, Failure{File: filepath.Base(file), Err: err})
				mu.Unlock()
				return nil
			}
			resume.SourceFile = filepath.Base(file)

			if err := writeResumeJSON(opts.OutputDir, resume); err != nil {
				mu.Lock()
				failures = append(failures, Failure{File: filepath.Base(file), Err: err})
				mu.Unlock()
				return nil
			}

			parsed[i] = resume
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Failures: failures}
	for _, resume := range parsed {
		if resume != nil {
			result.Parsed = append(result.Parsed, resume)
		}
	}

	if err := writeCombinedJSON(opts.OutputDir, result.Parsed); err != nil {
		return nil, err
	}

	return result, nil
}

// listResumeFiles returns the supported documents directly under dir,
// sorted by name.
func listResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if supportedExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// writeResumeJSON writes one parsed resume to parsed_<stem>.json.
func writeResumeJSON(outputDir string, resume *types.ParsedResume) error {
	stem := strings.TrimSuffix(resume.SourceFile, filepath.Ext(resume.SourceFile))
	path := filepath.Join(outputDir, fmt.Sprintf("parsed_%s.json", stem))

	data, err := json.MarshalIndent(resume, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal parsed resume: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeCombinedJSON writes the combined artifact for the run.
func writeCombinedJSON(outputDir string, parsed []*types.ParsedResume) error {
	if parsed == nil {
		parsed = []*types.ParsedResume{}
	}

	path := filepath.Join(outputDir, CombinedFileName)
	data, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal combined output: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
