package resume

import (
	"regexp"
	"strings"
)

const monthAlternation = `January|February|March|April|May|June|July|August|September|October|November|December|Jan|Feb|Mar|Apr|Jun|Jul|Aug|Sep|Oct|Nov|Dec`

// datePattern matches "Month YYYY - Month YYYY" and "Month YYYY - Present"
// ranges, with hyphen, en-dash or em-dash separators.
var datePattern = regexp.MustCompile(
	`(?i)(?:` + monthAlternation + `)[\s,]+\d{4}\s*[-–—]\s*(?:Present|Current|` + monthAlternation + `)(?:[\s,]+\d{4})?`)

// titlePattern matches a line starting with a capitalized phrase that ends in
// a job-title noun. Used only when no date ranges are found.
var titlePattern = regexp.MustCompile(
	`\n[A-Z][a-zA-Z\s,]+(?:Developer|Engineer|Designer|Manager|Director|Analyst|Consultant|Specialist|Coordinator|Assistant|Lead|Head|Chief|Officer|Administrator|Supervisor)`)

// SplitExperiences partitions the text of an EXPERIENCE section into
// individual job entries, preserving document order (not chronological
// order). Date ranges anchor entries; when none exist, lines that look like
// job titles do; when neither works, the whole section is one entry.
// SplitExperiences never fails.
func SplitExperiences(sectionText string) []string {
	if matches := datePattern.FindAllStringIndex(sectionText, -1); len(matches) > 0 {
		if entries := splitAtDates(sectionText, matches); len(entries) > 0 {
			return entries
		}
		return []string{sectionText}
	}

	if entries := splitAtTitles(sectionText); len(entries) > 0 {
		return entries
	}

	return []string{sectionText}
}

// splitAtDates cuts one entry per date-range anchor. Each entry starts at the
// line holding the job title above its date and runs to the line above the
// next date. A date falling inside the previous entry's span is skipped; it
// belongs to that entry's bullet text.
func splitAtDates(text string, matches [][]int) []string {
	var entries []string

	lastEnd := 0
	for i, match := range matches {
		start := match[0]
		if start < lastEnd {
			continue
		}

		prevBreak := strings.LastIndex(text[:start], "\n")
		if prevBreak == -1 {
			prevBreak = 0
		}

		if i < len(matches)-1 {
			end := matches[i+1][0]
			if lineBreak := strings.LastIndex(text[:end], "\n"); lineBreak > start {
				end = lineBreak
			}
			entries = append(entries, strings.TrimSpace(text[prevBreak:end]))
			lastEnd = end
		} else {
			entries = append(entries, strings.TrimSpace(text[prevBreak:]))
		}
	}

	return entries
}

// splitAtTitles cuts one entry per job-title line. A newline is prepended so
// a title on the very first line still anchors an entry.
func splitAtTitles(text string) []string {
	padded := "\n" + text
	matches := titlePattern.FindAllStringIndex(padded, -1)
	if len(matches) == 0 {
		return nil
	}

	var entries []string
	for i, match := range matches {
		// Index into padded of the anchoring newline equals the index in
		// text where the title line begins.
		start := match[0]
		if i < len(matches)-1 {
			entries = append(entries, strings.TrimSpace(text[start:matches[i+1][0]]))
		} else {
			entries = append(entries, strings.TrimSpace(text[start:]))
		}
	}

	return entries
}
