package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeOptions(t *testing.T) {
	themes := NewThemeService()

	options := themes.ThemeOptions()
	require.Len(t, options, 6)
	assert.Equal(t, ThemeProfessionalClassic, options[0])

	for _, option := range options {
		assert.True(t, themes.IsValidTheme(option), option)
	}
}

func TestSystemPromptPerTheme(t *testing.T) {
	themes := NewThemeService()

	netflix := themes.SystemPrompt(ThemeNetflixStyle)
	assert.Contains(t, netflix, "Netflix-inspired")
	assert.Contains(t, netflix, "expert web developer")
	assert.Contains(t, netflix, "WCAG")

	tech := themes.SystemPrompt(ThemeTechProfessional)
	assert.Contains(t, tech, "terminal/code editor")
	assert.NotEqual(t, netflix, tech)
}

func TestSystemPromptUnknownThemeFallsBack(t *testing.T) {
	themes := NewThemeService()

	assert.False(t, themes.IsValidTheme("Vaporwave"))
	assert.Equal(t, themes.SystemPrompt(ThemeProfessionalClassic), themes.SystemPrompt("Vaporwave"))
}
