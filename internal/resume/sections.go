package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Canonical names for text that falls outside the recognized headings.
const (
	SectionPersonal = "Personal Information"
	SectionGeneral  = "General Information"
)

// SectionExperience is the canonical name the experience splitter consumes.
const SectionExperience = "EXPERIENCE"

// sectionGroups maps each canonical section name to its case-insensitive
// heading synonyms. Group order decides the winner when two synonyms could
// match at the same offset, so it must stay stable. Longer synonyms come
// first within a group so the leftmost match carries the full heading.
var sectionGroups = []struct {
	name     string
	synonyms []string
}{
	{"EDUCATION", []string{"EDUCATION", "ACADEMIC BACKGROUND"}},
	{SectionExperience, []string{"WORK EXPERIENCE", "PROFESSIONAL EXPERIENCE", "WORK HISTORY", "EMPLOYMENT", "EXPERIENCE", "CAREER"}},
	{"SKILLS", []string{"TECHNICAL SKILLS", "KEY SKILLS", "SKILLS"}},
	{"PROJECTS", []string{"KEY PROJECTS", "PROJECTS"}},
	{"CERTIFICATIONS", []string{"CERTIFICATIONS", "CERTIFICATES"}},
	{"PUBLICATIONS", []string{"PUBLICATIONS", "RESEARCH"}},
	{"AWARDS", []string{"AWARDS", "HONORS", "ACHIEVEMENTS"}},
	{"VOLUNTEER", []string{"VOLUNTEER", "COMMUNITY SERVICE"}},
	{"LANGUAGES", []string{"LANGUAGES", "LANGUAGE PROFICIENCY"}},
	{"INTERESTS", []string{"INTERESTS", "HOBBIES"}},
}

// headingPattern is built once; one capture group per canonical section.
var headingPattern = regexp.MustCompile(buildHeadingPattern())

func buildHeadingPattern() string {
	parts := make([]string, len(sectionGroups))
	for i, group := range sectionGroups {
		parts[i] = `\b(` + strings.Join(group.synonyms, "|") + `)\b`
	}
	return `(?i)` + strings.Join(parts, "|")
}

// SectionMap is an insertion-ordered mapping from canonical section name to
// accumulated section text. JSON marshalling preserves insertion order.
type SectionMap struct {
	names    []string
	contents map[string]string
}

func NewSectionMap() *SectionMap {
	return &SectionMap{contents: make(map[string]string)}
}

// Add appends content under name. If the name already holds text the new
// content is concatenated after a blank line, never overwritten.
func (m *SectionMap) Add(name, content string) {
	if existing, ok := m.contents[name]; ok {
		m.contents[name] = existing + "\n\n" + content
		return
	}
	m.names = append(m.names, name)
	m.contents[name] = content
}

func (m *SectionMap) Get(name string) (string, bool) {
	content, ok := m.contents[name]
	return content, ok
}

func (m *SectionMap) Has(name string) bool {
	_, ok := m.contents[name]
	return ok
}

// Names returns the canonical names in insertion order.
func (m *SectionMap) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

func (m *SectionMap) Len() int {
	return len(m.names)
}

func (m *SectionMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(m.contents[name])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *SectionMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("sections: expected JSON object, got %v", tok)
	}

	m.names = nil
	m.contents = make(map[string]string)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("sections: expected string key, got %v", keyTok)
		}

		var content string
		if err := dec.Decode(&content); err != nil {
			return fmt.Errorf("sections: invalid content for %q: %w", key, err)
		}
		m.Add(key, content)
	}

	_, err = dec.Token()
	return err
}

// Segment partitions resume text into canonical sections. Text before the
// first recognized heading becomes "Personal Information"; if no heading is
// recognized at all, the whole text lands under "General Information".
// Segment never fails.
func Segment(fullText string) *SectionMap {
	sections := NewSectionMap()

	matches := headingPattern.FindAllStringSubmatchIndex(fullText, -1)
	if len(matches) == 0 {
		sections.Add(SectionGeneral, strings.TrimSpace(fullText))
		return sections
	}

	if matches[0][0] > 0 {
		if header := strings.TrimSpace(fullText[:matches[0][0]]); header != "" {
			sections.Add(SectionPersonal, header)
		}
	}

	for i, match := range matches {
		start := match[0]
		end := len(fullText)
		if i < len(matches)-1 {
			end = matches[i+1][0]
		}
		sections.Add(canonicalName(match), strings.TrimSpace(fullText[start:end]))
	}

	return sections
}

// canonicalName resolves which synonym group produced a submatch.
func canonicalName(match []int) string {
	for i, group := range sectionGroups {
		if match[2*(i+1)] >= 0 {
			return group.name
		}
	}
	return SectionGeneral
}
