package handlers

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-portfolio-generator/internal/models"
	"ai-portfolio-generator/internal/repositories"
	"ai-portfolio-generator/internal/services"
)

type PortfolioHandler struct {
	portfolioRepo   repositories.PortfolioRepository
	userRepo        repositories.UserRepository
	packagerService services.PackagerService
}

func NewPortfolioHandler(
	portfolioRepo repositories.PortfolioRepository,
	userRepo repositories.UserRepository,
	packagerService services.PackagerService,
) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioRepo:   portfolioRepo,
		userRepo:        userRepo,
		packagerService: packagerService,
	}
}

// HandleGetPortfolio handles GET /portfolio/:id
func (h *PortfolioHandler) HandleGetPortfolio(c *fiber.Ctx) error {
	portfolio, err := h.findPortfolio(c)
	if portfolio == nil {
		return err
	}

	response := models.PortfolioResponse{
		ID:         portfolio.ID.String(),
		Name:       portfolio.Name,
		Theme:      portfolio.Theme,
		Status:     string(portfolio.Status),
		IsFavorite: portfolio.IsFavorite,
	}

	if portfolio.Status == models.StatusCompleted && portfolio.HTMLContent != nil {
		html := *portfolio.HTMLContent
		response.HTML = &html

		previewURI := h.packagerService.EncodeDataURI(html)
		response.PreviewURI = &previewURI

		if zipBytes, err := h.packagerService.BuildZip(html, "portfolio"); err == nil {
			zipBase64 := base64.StdEncoding.EncodeToString(zipBytes)
			response.ZipBase64 = &zipBase64
		}
	}

	if portfolio.Status == models.StatusFailed && portfolio.ErrorMessage != nil {
		response.ErrorMessage = portfolio.ErrorMessage
	}

	return c.JSON(response)
}

// HandleDownload handles GET /portfolio/:id/download
func (h *PortfolioHandler) HandleDownload(c *fiber.Ctx) error {
	portfolio, err := h.findPortfolio(c)
	if portfolio == nil {
		return err
	}

	if portfolio.Status != models.StatusCompleted || portfolio.HTMLContent == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Portfolio is not ready for download",
		})
	}

	zipBytes, err := h.packagerService.BuildZip(*portfolio.HTMLContent, "portfolio")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build portfolio archive",
		})
	}

	c.Set(fiber.HeaderContentType, "application/zip")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="portfolio.zip"`)
	return c.Send(zipBytes)
}

// HandleSetFavorite handles POST /portfolio/:id/favorite
func (h *PortfolioHandler) HandleSetFavorite(c *fiber.Ctx) error {
	portfolio, err := h.findPortfolio(c)
	if portfolio == nil {
		return err
	}

	favorite := !portfolio.IsFavorite
	if err := h.portfolioRepo.SetFavorite(portfolio.ID, favorite); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update favorite flag",
		})
	}

	return c.JSON(fiber.Map{
		"id":          portfolio.ID.String(),
		"is_favorite": favorite,
	})
}

// HandleListPortfolios handles GET /portfolios?email=
func (h *PortfolioHandler) HandleListPortfolios(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email query parameter is required",
		})
	}

	user, err := h.userRepo.FindByEmail(email)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	portfolios, err := h.portfolioRepo.FindByUserID(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to list portfolios: %v", err),
		})
	}

	summaries := make([]models.PortfolioSummary, 0, len(portfolios))
	for _, p := range portfolios {
		summaries = append(summaries, models.PortfolioSummary{
			ID:         p.ID.String(),
			Name:       p.Name,
			Theme:      p.Theme,
			Status:     string(p.Status),
			IsFavorite: p.IsFavorite,
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"portfolios": summaries,
	})
}

func (h *PortfolioHandler) findPortfolio(c *fiber.Ctx) (*models.Portfolio, error) {
	idParam := c.Params("id")
	portfolioID, err := uuid.Parse(idParam)
	if err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid portfolio ID format",
		})
	}

	portfolio, err := h.portfolioRepo.FindByID(portfolioID)
	if err != nil {
		return nil, c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Portfolio not found",
		})
	}

	return portfolio, nil
}
