package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"ai-portfolio-generator/internal/models"
	"ai-portfolio-generator/internal/repositories"
	"ai-portfolio-generator/internal/resume"
)

type PortfolioService interface {
	ProcessPortfolio(ctx context.Context, portfolioID uuid.UUID) error
}

type portfolioService struct {
	portfolioRepo    repositories.PortfolioRepository
	resumeRepo       repositories.ResumeRepository
	generatorService GeneratorService
}

func NewPortfolioService(
	portfolioRepo repositories.PortfolioRepository,
	resumeRepo repositories.ResumeRepository,
	generatorService GeneratorService,
) PortfolioService {
	return &portfolioService{
		portfolioRepo:    portfolioRepo,
		resumeRepo:       resumeRepo,
		generatorService: generatorService,
	}
}

// ProcessPortfolio runs one queued generation job end to end: load the
// portfolio and its resume, rebuild the structured record, generate the HTML
// and persist the outcome.
func (p *portfolioService) ProcessPortfolio(ctx context.Context, portfolioID uuid.UUID) error {
	if err := p.portfolioRepo.UpdateStatus(portfolioID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting generation for portfolio: %s\n", portfolioID)

	portfolio, err := p.portfolioRepo.FindByID(portfolioID)
	if err != nil {
		p.portfolioRepo.UpdateError(portfolioID, err.Error())
		return fmt.Errorf("failed to get portfolio: %w", err)
	}

	resumeRow, err := p.resumeRepo.FindByID(portfolio.ResumeID)
	if err != nil {
		p.portfolioRepo.UpdateError(portfolioID, fmt.Sprintf("Resume not found: %v", err))
		return fmt.Errorf("failed to get resume: %w", err)
	}

	record, err := recordFromModel(resumeRow)
	if err != nil {
		p.portfolioRepo.UpdateError(portfolioID, fmt.Sprintf("Stored resume is unreadable: %v", err))
		return fmt.Errorf("failed to rebuild resume record: %w", err)
	}

	log.Println("🤖 Generating portfolio with LLM...")
	htmlContent, err := p.generatorService.GeneratePortfolio(ctx, record, portfolio.Theme, portfolio.ThemePreferences)
	if err != nil {
		p.portfolioRepo.UpdateError(portfolioID, fmt.Sprintf("Failed to generate portfolio: %v", err))
		return fmt.Errorf("failed to generate portfolio: %w", err)
	}

	log.Println("💾 Saving generated portfolio...")
	if err := p.portfolioRepo.UpdateResult(portfolioID, htmlContent); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	log.Printf("✅ Generation completed for portfolio: %s\n", portfolioID)
	return nil
}

// recordFromModel rebuilds the extraction record from its stored columns.
func recordFromModel(row *models.Resume) (*resume.Record, error) {
	sections := resume.NewSectionMap()
	if row.SectionsJSON != "" {
		if err := json.Unmarshal([]byte(row.SectionsJSON), sections); err != nil {
			return nil, fmt.Errorf("invalid sections json: %w", err)
		}
	}

	return &resume.Record{
		FullText: row.ContentText,
		Sections: sections,
		Email:    row.Email,
		Phone:    row.Phone,
		Name:     row.Name,
	}, nil
}
