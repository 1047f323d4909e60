package parser

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john.smith@example.com
+91 98765 43210
linkedin.com/in/johnsmith

Work Experience
Software Engineer | Initech Ltd, Mumbai | 2019 - 2021
Inventory System (Jan 2020 - Dec 2020)
• Automated invoice generation

Education
ABC University, Pune
Bachelor of Science in Physics, 2018

Skills
Python, Docker

Achievements
Won the 2019 internal hackathon
`

func TestParseText_FullResume(t *testing.T) {
	resume, err := New().ParseText(context.Background(), sampleResume)
	require.NoError(t, err)

	assert.Equal(t, "John Smith", resume.Name)
	assert.Equal(t, "john.smith@example.com", resume.ContactInfo.Email)
	assert.Equal(t, "9876543210", resume.ContactInfo.Phone)
	assert.Equal(t, "https://linkedin.com/in/johnsmith", resume.ContactInfo.LinkedIn)

	require.Len(t, resume.Experience, 1)
	job := resume.Experience[0]
	assert.Equal(t, "Software Engineer", job.Position)
	assert.Equal(t, "Initech Ltd", job.Company)
	require.Len(t, job.Projects, 1)
	assert.Equal(t, "Inventory System", job.Projects[0].Name)

	require.Len(t, resume.Education, 1)
	assert.Equal(t, "ABC University", resume.Education[0].Institution)
	assert.Equal(t, "B.Sc", resume.Education[0].Degree)
	assert.Equal(t, "Physics", resume.Education[0].Field)

	assert.Contains(t, resume.Skills, "Python")
	assert.Contains(t, resume.Skills, "Docker")

	assert.Equal(t, []string{"Won the 2019 internal hackathon"}, resume.Achievements)

	assert.Equal(t, 0, resume.TablesDetected)
	assert.Equal(t, sampleResume, resume.RawText)
	assert.False(t, resume.ParsedDate.IsZero())
}

func TestParseText_BlankText(t *testing.T) {
	_, err := New().ParseText(context.Background(), "  \n\t ")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoText)
}

func TestParseText_EmptyFieldsAreArrays(t *testing.T) {
	resume, err := New().ParseText(context.Background(), "just one line of nothing much")
	require.NoError(t, err)

	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Skills)
	assert.NotNil(t, resume.Projects)
	assert.NotNil(t, resume.Achievements)
	assert.Empty(t, resume.Experience)
}

func TestParseFile_PlainTextDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0644))

	resume, err := New().ParseFile(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "John Smith", resume.Name)
	assert.Equal(t, "john.smith@example.com", resume.ContactInfo.Email)
}

func TestParseFile_MissingFile(t *testing.T) {
	_, err := New().ParseFile(context.Background(), filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestParseText_PseudoTableResume(t *testing.T) {
	text := strings.Join([]string{
		"--- Page 1 ---",
		"Name: Priya Sharma",
		"priya@example.com",
		"",
		"--- Table 1 on Page 1 ---",
		"Headers: Experience | Company | Duration",
		"Row 1: Experience: Software Engineer | Company: Acme Corp | Duration: 2020-2023",
	}, "\n")

	resume, err := New().ParseText(context.Background(), text)
	require.NoError(t, err)

	assert.Equal(t, "Priya Sharma", resume.Name)
	assert.Equal(t, "priya@example.com", resume.ContactInfo.Email)

	require.Len(t, resume.Experience, 1)
	assert.Equal(t, "Acme Corp", resume.Experience[0].Company)
	assert.Equal(t, "2020-2023", resume.Experience[0].Duration)
}
