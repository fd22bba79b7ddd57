package services

import (
	"fmt"
	"strings"

	"ai-portfolio-generator/internal/resume"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildPortfolioPrompt creates the user prompt for portfolio generation.
// Sections are rendered in document order; the EXPERIENCE section is expanded
// into one block per job entry so the model renders every position, not just
// the most recent one.
func (pb *PromptBuilder) BuildPortfolioPrompt(record *resume.Record, themePreferences string) string {
	var sectionsText strings.Builder

	if record.Sections != nil {
		for _, name := range record.Sections.Names() {
			content, _ := record.Sections.Get(name)

			if name == resume.SectionExperience {
				sectionsText.WriteString("## EXPERIENCE\n")
				for i, entry := range resume.SplitExperiences(content) {
					sectionsText.WriteString(fmt.Sprintf("### Experience %d\n%s\n\n", i+1, entry))
				}
				continue
			}

			sectionsText.WriteString(fmt.Sprintf("## %s\n%s\n\n", name, content))
		}
	}

	return fmt.Sprintf(`Create a professional portfolio website for %s.

Contact information:
- Email: %s
- Phone: %s (IMPORTANT: Make sure to display this exact phone number in the portfolio)

Resume content:
%s
Design preferences: %s

Generate a complete HTML file that includes all CSS and JavaScript needed for a responsive, modern portfolio website. The website should be a single HTML file that looks professional and showcases the person's skills and experience effectively.

IMPORTANT GUIDELINES:
1. Make sure to include ALL experiences listed in the resume, not just the most recent one.
2. Display the exact phone number provided above - this is critical.
3. Create separate sections or cards for each work experience.
4. List each experience with its job title, company, dates, and bullet points.
5. Make sure the contact information is prominently displayed and accurate.`,
		record.Name, record.Email, record.Phone, sectionsText.String(), themePreferences)
}
