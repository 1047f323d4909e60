// Package skills extracts a deduplicated skill list from the skills section
// of a resume.
package skills

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// vocabulary is the curated set of technology terms matched as whole words
// against the section text. Immutable package data shared by every parse.
var vocabulary = []string{
	// Programming languages
	"java", "python", "javascript", "c++", "c#", "php", "ruby", "go", "kotlin", "swift",
	"typescript", "scala", "r", "matlab", "perl", "rust", "dart", "j2ee",

	// Frameworks and libraries
	"spring", "spring boot", "spring mvc", "hibernate", "react", "angular", "vue.js", "node.js", "express",
	"django", "flask", "rails", "laravel", ".net", "asp.net", "jquery", "bootstrap", "struts",

	// Databases
	"mysql", "postgresql", "mongodb", "oracle", "sql server", "sqlite", "redis", "cassandra",
	"dynamodb", "elasticsearch", "neo4j", "rdbms",

	// Cloud and DevOps
	"aws", "azure", "gcp", "docker", "kubernetes", "jenkins", "git", "github", "gitlab",
	"terraform", "ansible", "chef", "puppet", "ci/cd",

	// Tools and technologies
	"kafka", "rabbitmq", "microservices", "restful api", "rest api", "graphql", "soap", "junit", "selenium",
	"postman", "swagger", "maven", "gradle", "npm", "webpack", "tomcat", "jpa", "orm",

	// Operating systems
	"linux", "unix", "windows", "macos",

	// Methodologies
	"agile", "scrum", "kanban", "devops", "tdd", "bdd",
}

// vocabularyPatterns holds a compiled whole-word pattern per vocabulary
// term, in the same order.
var vocabularyPatterns = func() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(vocabulary))
	for i, term := range vocabulary {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
	}
	return patterns
}()

// categoryHeaders are skill-section grouping labels, not skills themselves.
var categoryHeaders = []string{"languages:", "frameworks:", "databases:", "tools:", "architecture:"}

var skillDelimiters = regexp.MustCompile(`[,•\n\-\|]`)

var symbolsOnly = regexp.MustCompile(`^[•\-\*\s]+$`)

// noisePhrases rejects freeform tokens that are resume prose rather than
// skills: locations, date abbreviations and generic narrative fragments.
var noisePhrases = []string{
	"@", ".com", "present", "mumbai", "bangalore", "years", "experience",
	"oct", "dec", "gained", "hands", "system", "framework", "between",
	"time", "syncing", "reducing", "transaction", "failures", "collaborated",
	"frontend", "meet", "business", "goals", "software", "engineer",
}

var stopwords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "from": true,
	"to": true, "in": true, "on": true, "at": true, "by": true,
}

// Extract pulls skills from the skills section. Two independent passes feed
// one result list: curated-vocabulary hits (title-cased) and freeform tokens
// split on list delimiters. Deduplication is case-insensitive with the
// first-seen casing preserved.
func Extract(sectionLines []string) []string {
	if len(sectionLines) == 0 {
		return nil
	}

	var found []string
	sectionText := strings.ToLower(strings.Join(sectionLines, "\n"))

	titler := cases.Title(language.English)
	for i, term := range vocabulary {
		if vocabularyPatterns[i].MatchString(sectionText) {
			found = append(found, titler.String(term))
		}
	}

	for _, line := range sectionLines {
		line = strings.TrimSpace(line)
		if line == "" || isCategoryHeader(line) {
			continue
		}
		for _, token := range skillDelimiters.Split(line, -1) {
			token = strings.TrimSpace(token)
			if isSkillToken(token) {
				found = append(found, token)
			}
		}
	}

	return dedupe(found)
}

func isCategoryHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, header := range categoryHeaders {
		if strings.Contains(lower, header) {
			return true
		}
	}
	return false
}

// isSkillToken applies the freeform filters: plausible length, not numeric,
// not symbols, not an email fragment, no noise phrase, not a stopword.
func isSkillToken(token string) bool {
	length := utf8.RuneCountInString(token)
	if length < 2 || length > 25 {
		return false
	}
	if isDigits(token) || symbolsOnly.MatchString(token) || strings.Contains(token, "@") {
		return false
	}
	lower := strings.ToLower(token)
	if stopwords[lower] {
		return false
	}
	for _, noise := range noisePhrases {
		if strings.Contains(lower, noise) {
			return false
		}
	}
	return true
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func dedupe(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	unique := make([]string, 0, len(skills))
	for _, skill := range skills {
		skill = strings.TrimSpace(skill)
		if skill == "" {
			continue
		}
		lower := strings.ToLower(skill)
		if !seen[lower] {
			seen[lower] = true
			unique = append(unique, skill)
		}
	}
	return unique
}
