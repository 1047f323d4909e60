// Package parser orchestrates extraction, segmentation and the entity
// parsers, assembling one ParsedResume per document.
package parser

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jonathan/resume-parser/internal/achievements"
	"github.com/jonathan/resume-parser/internal/contact"
	"github.com/jonathan/resume-parser/internal/education"
	"github.com/jonathan/resume-parser/internal/experience"
	"github.com/jonathan/resume-parser/internal/extraction"
	"github.com/jonathan/resume-parser/internal/ner"
	"github.com/jonathan/resume-parser/internal/projects"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/skills"
	"github.com/jonathan/resume-parser/internal/types"
)

// ErrNoText is returned when every extraction strategy yields blank text.
var ErrNoText = errors.New("could not extract text from file")

// Parser turns resume documents into structured records. The zero-cost
// default works standalone; an optional recognizer enables the last-resort
// name fallback. A Parser holds no per-parse state and is safe for
// concurrent use.
type Parser struct {
	recognizer ner.Recognizer
}

// Option configures a Parser.
type Option func(*Parser)

// WithRecognizer installs the person-name recognition collaborator used
// when heuristic name extraction finds nothing.
func WithRecognizer(recognizer ner.Recognizer) Option {
	return func(p *Parser) { p.recognizer = recognizer }
}

// New creates a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseFile parses the document at path. Extraction that yields no text at
// all is an error; a missing section or an unmatched field is not, and the
// corresponding value is left empty.
func (p *Parser) ParseFile(ctx context.Context, path string) (*types.ParsedResume, error) {
	text, tableRecords, err := extraction.Extract(path)
	if err != nil {
		return nil, err
	}
	return p.parse(ctx, text, tableRecords)
}

// ParseText parses already-extracted resume text. Used by callers that
// receive document content rather than a file path.
func (p *Parser) ParseText(ctx context.Context, text string) (*types.ParsedResume, error) {
	return p.parse(ctx, text, nil)
}

func (p *Parser) parse(ctx context.Context, text string, tableRecords []types.TableRecord) (*types.ParsedResume, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}

	lines := sections.SplitLines(text)
	bounds := sections.FindBoundaries(lines)

	resume := &types.ParsedResume{
		Name:           contact.ExtractName(ctx, text, p.recognizer),
		ContactInfo:    contact.Extract(text),
		Experience:     experience.Parse(sections.Content(lines, sections.Experience, bounds)),
		Education:      education.Parse(sections.Content(lines, sections.Education, bounds)),
		Skills:         skills.Extract(sections.Content(lines, sections.Skills, bounds)),
		Projects:       projects.Parse(sections.Content(lines, sections.Projects, bounds)),
		Achievements:   achievements.Parse(sections.Content(lines, sections.Achievements, bounds)),
		TablesDetected: len(tableRecords),
		TablesData:     tableRecords,
		RawText:        text,
		ParsedDate:     time.Now().UTC(),
	}

	// Serialized output promises arrays, not nulls.
	if resume.Experience == nil {
		resume.Experience = []types.JobEntry{}
	}
	if resume.Education == nil {
		resume.Education = []types.EducationEntry{}
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
	if resume.Projects == nil {
		resume.Projects = []types.ProjectRecord{}
	}
	if resume.Achievements == nil {
		resume.Achievements = []string{}
	}

	return resume, nil
}
