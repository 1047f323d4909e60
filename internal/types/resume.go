// Package types provides type definitions for structured data used throughout the resume-parser system.
package types

import "time"

// ParsedResume is the structured record produced from one resume document.
// It aggregates the outputs of every extraction stage and owns all nested
// entities exclusively; nothing is shared between parses.
type ParsedResume struct {
	Name           string           `json:"name,omitempty"`
	ContactInfo    ContactInfo      `json:"contact_info"`
	Experience     []JobEntry       `json:"experience"`
	Education      []EducationEntry `json:"education"`
	Skills         []string         `json:"skills"`
	Projects       []ProjectRecord  `json:"projects"`
	Achievements   []string         `json:"achievements"`
	TablesDetected int              `json:"tables_detected"`
	TablesData     []TableRecord    `json:"tables_data,omitempty"`
	RawText        string           `json:"raw_text"`
	ParsedDate     time.Time        `json:"parsed_date"`

	// SourceFile is set by the batch driver so combined output can be
	// traced back to the originating document.
	SourceFile string `json:"source_file,omitempty"`
}

// ContactInfo holds the contact fields recovered from the document.
// Each field keeps only the first match in document order.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// JobEntry is one work-experience record. A job owns zero or more nested
// projects. Description is populated only by table-mode parsing, where the
// source row carries a free-text duties column.
type JobEntry struct {
	RawHeader   string         `json:"raw_header,omitempty"`
	Position    string         `json:"position,omitempty"`
	Company     string         `json:"company,omitempty"`
	Duration    string         `json:"duration,omitempty"`
	Description string         `json:"description,omitempty"`
	Projects    []ProjectEntry `json:"projects,omitempty"`
}

// ProjectEntry is a project nested under a job in the experience section.
type ProjectEntry struct {
	RawHeader   string `json:"raw_header,omitempty"`
	Name        string `json:"name,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

// EducationEntry is one education record.
type EducationEntry struct {
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	CGPA        string `json:"cgpa,omitempty"`
	RawText     string `json:"raw_text,omitempty"`
}

// ProjectRecord is a top-level project from the projects section,
// independent of any experience-nested project.
type ProjectRecord struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies"`
}

// TableRecord is one table recovered by the table-aware extraction
// strategy: a grid of cell text plus its location in the document.
type TableRecord struct {
	Page       int        `json:"page"`
	TableIndex int        `json:"table_num"`
	Rows       [][]string `json:"data"`
	Text       string     `json:"processed_text,omitempty"`
}
