package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-portfolio-generator/internal/models"
	"ai-portfolio-generator/internal/repositories"
	"ai-portfolio-generator/internal/services"
)

type GenerateHandler struct {
	portfolioRepo repositories.PortfolioRepository
	resumeRepo    repositories.ResumeRepository
	userRepo      repositories.UserRepository
	themeService  services.ThemeService
	worker        services.Worker
}

func NewGenerateHandler(
	portfolioRepo repositories.PortfolioRepository,
	resumeRepo repositories.ResumeRepository,
	userRepo repositories.UserRepository,
	themeService services.ThemeService,
	worker services.Worker,
) *GenerateHandler {
	return &GenerateHandler{
		portfolioRepo: portfolioRepo,
		resumeRepo:    resumeRepo,
		userRepo:      userRepo,
		themeService:  themeService,
		worker:        worker,
	}
}

// HandleGenerate handles POST /generate
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	var req models.GenerateRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_id is required",
		})
	}

	if req.Theme == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "theme is required",
		})
	}

	if req.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "email is required",
		})
	}

	if !h.themeService.IsValidTheme(req.Theme) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown theme",
		})
	}

	resumeID, err := uuid.Parse(req.ResumeID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_id format",
		})
	}

	if _, err := h.resumeRepo.FindByID(resumeID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume not found",
		})
	}

	user, err := h.userRepo.FindOrCreateByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to resolve user",
		})
	}

	portfolioName := req.PortfolioName
	if portfolioName == "" {
		portfolioName = "My Portfolio"
	}

	portfolio := &models.Portfolio{
		ID:               uuid.New(),
		UserID:           user.ID,
		ResumeID:         resumeID,
		Name:             portfolioName,
		Theme:            req.Theme,
		ThemePreferences: req.ThemePreferences,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.portfolioRepo.Create(portfolio); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create generation job",
		})
	}

	// Enqueue job to worker
	h.worker.EnqueueJob(portfolio.ID)

	// Return job ID immediately
	return c.Status(fiber.StatusAccepted).JSON(models.GenerateResponse{
		ID:     portfolio.ID.String(),
		Status: string(models.StatusQueued),
	})
}
