package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-portfolio-generator/internal/resume"
)

func testRecord() *resume.Record {
	sections := resume.NewSectionMap()
	sections.Add(resume.SectionPersonal, "John Doe\njohn@x.com")
	sections.Add("EDUCATION", "EDUCATION\nBS in Computer Science")
	sections.Add(resume.SectionExperience, strings.Join([]string{
		"EXPERIENCE",
		"Software Engineer at Acme Corp, June 2018 - May 2020",
		"- Built the billing pipeline",
		"Senior Engineer at Globex, June 2020 - Present",
		"- Led the platform team",
	}, "\n"))

	return &resume.Record{
		FullText: "irrelevant for the prompt",
		Sections: sections,
		Email:    "john@x.com",
		Phone:    "555-123-4567",
		Name:     "John Doe",
	}
}

func TestBuildPortfolioPromptContainsContactInfo(t *testing.T) {
	prompt := NewPromptBuilder().BuildPortfolioPrompt(testRecord(), "dark and minimal")

	assert.Contains(t, prompt, "Create a professional portfolio website for John Doe")
	assert.Contains(t, prompt, "Email: john@x.com")
	assert.Contains(t, prompt, "Phone: 555-123-4567")
	assert.Contains(t, prompt, "Design preferences: dark and minimal")
}

func TestBuildPortfolioPromptSplitsExperiences(t *testing.T) {
	prompt := NewPromptBuilder().BuildPortfolioPrompt(testRecord(), "")

	// Every job entry gets its own numbered block.
	assert.Contains(t, prompt, "### Experience 1")
	assert.Contains(t, prompt, "### Experience 2")
	assert.Contains(t, prompt, "Acme Corp")
	assert.Contains(t, prompt, "Globex")

	// Non-experience sections come through as plain headings.
	assert.Contains(t, prompt, "## EDUCATION")
	assert.Contains(t, prompt, "BS in Computer Science")
}

func TestBuildPortfolioPromptKeepsSectionOrder(t *testing.T) {
	prompt := NewPromptBuilder().BuildPortfolioPrompt(testRecord(), "")

	personalIdx := strings.Index(prompt, "## Personal Information")
	educationIdx := strings.Index(prompt, "## EDUCATION")
	experienceIdx := strings.Index(prompt, "## EXPERIENCE")

	require.NotEqual(t, -1, personalIdx)
	require.NotEqual(t, -1, educationIdx)
	require.NotEqual(t, -1, experienceIdx)
	assert.Less(t, personalIdx, educationIdx)
	assert.Less(t, educationIdx, experienceIdx)
}

func TestBuildPortfolioPromptHandlesNilSections(t *testing.T) {
	record := &resume.Record{Name: "Jane Roe", Email: "jane@y.org"}
	prompt := NewPromptBuilder().BuildPortfolioPrompt(record, "")

	assert.Contains(t, prompt, "Jane Roe")
	assert.Contains(t, prompt, "jane@y.org")
}
