package resume

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitExperiencesByDateRanges(t *testing.T) {
	text := strings.Join([]string{
		"Software Engineer at Acme Corp, June 2018 - May 2020",
		"- Built the billing pipeline",
		"- Cut infrastructure costs by a third",
		"Senior Engineer at Globex, June 2020 - Present",
		"- Led the platform team",
	}, "\n")

	entries := SplitExperiences(text)

	require.Len(t, entries, 2)
	assert.True(t, strings.HasPrefix(entries[0], "Software Engineer at Acme Corp"))
	assert.Contains(t, entries[0], "billing pipeline")
	assert.True(t, strings.HasPrefix(entries[1], "Senior Engineer at Globex"))
	assert.Contains(t, entries[1], "platform team")
}

func TestSplitExperiencesKeepsDocumentOrder(t *testing.T) {
	// Oldest job listed last; output must follow the document, not the dates.
	text := strings.Join([]string{
		"Lead Developer at Hooli, March 2022 - Present",
		"- Current role",
		"Junior Developer at Initech, January 2015 - February 2017",
		"- First job",
	}, "\n")

	entries := SplitExperiences(text)

	require.Len(t, entries, 2)
	assert.Contains(t, entries[0], "Current role")
	assert.Contains(t, entries[1], "First job")
}

func TestSplitExperiencesDashVariants(t *testing.T) {
	for _, sep := range []string{"-", "–", "—"} {
		text := "Analyst at Acme, Jan 2019 " + sep + " Dec 2019\n- Reporting\nManager at Globex, Jan 2020 " + sep + " Current\n- Oversight"
		entries := SplitExperiences(text)
		require.Len(t, entries, 2, "separator %q", sep)
	}
}

func TestSplitExperiencesByJobTitles(t *testing.T) {
	text := strings.Join([]string{
		"Software Developer, Initech",
		"- Maintained reporting",
		"Senior Designer, Hooli",
		"- Redesigned onboarding",
	}, "\n")

	entries := SplitExperiences(text)

	require.Len(t, entries, 2)
	assert.True(t, strings.HasPrefix(entries[0], "Software Developer, Initech"))
	assert.Contains(t, entries[0], "Maintained reporting")
	assert.True(t, strings.HasPrefix(entries[1], "Senior Designer, Hooli"))
}

func TestSplitExperiencesFallsBackToWholeSection(t *testing.T) {
	text := "Worked on a farm for several years.\nThen traveled."

	entries := SplitExperiences(text)

	require.Len(t, entries, 1)
	assert.Equal(t, text, entries[0])
}

func TestSplitExperiencesCoverage(t *testing.T) {
	text := strings.Join([]string{
		"Consultant at Vandelay, February 2021 - August 2022",
		"- Advised on imports and exports",
		"Coordinator at Kramerica, September 2022 - Present",
		"- Coordinated",
	}, "\n")

	entries := SplitExperiences(text)
	require.NotEmpty(t, entries)

	// Every non-blank source line survives in some entry, and no entry is
	// empty.
	joined := strings.Join(entries, "\n")
	for _, line := range strings.Split(text, "\n") {
		assert.Contains(t, joined, line)
	}
	for _, entry := range entries {
		assert.NotEmpty(t, strings.TrimSpace(entry))
	}
}
