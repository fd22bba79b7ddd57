package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGemini struct {
	response     string
	err          error
	systemPrompt string
	prompt       string
}

func (f *fakeGemini) GenerateText(ctx context.Context, systemPrompt, prompt string, temperature float32) (string, error) {
	f.systemPrompt = systemPrompt
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeGemini) GenerateTextWithRetry(ctx context.Context, systemPrompt, prompt string, temperature float32, maxRetries int) (string, error) {
	return f.GenerateText(ctx, systemPrompt, prompt, temperature)
}

func TestGeneratePortfolioExtractsFencedHTML(t *testing.T) {
	gemini := &fakeGemini{response: "Here you go:\n```html\n<html><body>ok</body></html>\n```\nEnjoy!"}
	generator := NewGeneratorService(gemini, NewThemeService(), 3)

	html, err := generator.GeneratePortfolio(context.Background(), testRecord(), ThemeNetflixStyle, "red accents")
	require.NoError(t, err)

	assert.Equal(t, "<html><body>ok</body></html>", html)
	assert.Contains(t, gemini.systemPrompt, "Netflix-inspired")
	assert.Contains(t, gemini.prompt, "Design preferences: red accents")
}

func TestGeneratePortfolioReturnsBareResponse(t *testing.T) {
	gemini := &fakeGemini{response: "<html><body>bare</body></html>"}
	generator := NewGeneratorService(gemini, NewThemeService(), 3)

	html, err := generator.GeneratePortfolio(context.Background(), testRecord(), ThemeModernMinimalist, "")
	require.NoError(t, err)

	assert.Equal(t, "<html><body>bare</body></html>", html)

	// Empty preferences fall back to the theme name.
	assert.Contains(t, gemini.prompt, "Design preferences: "+ThemeModernMinimalist)
}

func TestGeneratePortfolioPropagatesError(t *testing.T) {
	gemini := &fakeGemini{err: errors.New("model unavailable")}
	generator := NewGeneratorService(gemini, NewThemeService(), 3)

	_, err := generator.GeneratePortfolio(context.Background(), testRecord(), ThemeAmazonStyle, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate portfolio")
}

func TestExtractHTML(t *testing.T) {
	assert.Equal(t, "<p>x</p>", extractHTML("```html\n<p>x</p>\n```"))
	assert.Equal(t, "<p>y</p>", extractHTML("  <p>y</p>  "))
}
