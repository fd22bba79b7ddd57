package resume

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// ExtractEmail returns the first email-shaped token in the text, or "" if
// none is present.
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first North-American-style phone number in the
// text, or "" if none is present.
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// ExtractName guesses the candidate's name: the first line of the Personal
// Information section when one exists, otherwise the first line of the
// document.
func ExtractName(fullText string, sections *SectionMap) string {
	if sections != nil {
		if personal, ok := sections.Get(SectionPersonal); ok {
			if line := firstLine(personal); line != "" {
				return line
			}
		}
	}
	return firstLine(fullText)
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}
