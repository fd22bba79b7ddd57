package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"ai-portfolio-generator/internal/resume"
)

type GeneratorService interface {
	GeneratePortfolio(ctx context.Context, record *resume.Record, theme, themePreferences string) (string, error)
}

type generatorService struct {
	geminiService GeminiService
	themeService  ThemeService
	promptBuilder *PromptBuilder
	maxRetries    int
}

func NewGeneratorService(
	geminiService GeminiService,
	themeService ThemeService,
	maxRetries int,
) GeneratorService {
	return &generatorService{
		geminiService: geminiService,
		themeService:  themeService,
		promptBuilder: NewPromptBuilder(),
		maxRetries:    maxRetries,
	}
}

var htmlFencePattern = regexp.MustCompile("```html\\s*([\\s\\S]*?)\\s*```")

// GeneratePortfolio implements GeneratorService. It combines the theme's
// system prompt with the resume prompt and returns the generated HTML
// document.
func (g *generatorService) GeneratePortfolio(ctx context.Context, record *resume.Record, theme, themePreferences string) (string, error) {
	systemPrompt := g.themeService.SystemPrompt(theme)

	preferences := themePreferences
	if preferences == "" {
		preferences = theme
	}
	userPrompt := g.promptBuilder.BuildPortfolioPrompt(record, preferences)

	response, err := g.geminiService.GenerateTextWithRetry(ctx, systemPrompt, userPrompt, 0.7, g.maxRetries)
	if err != nil {
		return "", fmt.Errorf("failed to generate portfolio: %w", err)
	}

	return extractHTML(response), nil
}

// extractHTML pulls the document out of a ```html fence. Models sometimes
// answer with the bare document, so the full response is the fallback.
func extractHTML(response string) string {
	if match := htmlFencePattern.FindStringSubmatch(response); match != nil {
		return match[1]
	}
	return strings.TrimSpace(response)
}
