package handlers

import (
	"github.com/gofiber/fiber/v2"

	"ai-portfolio-generator/internal/services"
)

type ThemeHandler struct {
	themeService services.ThemeService
}

func NewThemeHandler(themeService services.ThemeService) *ThemeHandler {
	return &ThemeHandler{
		themeService: themeService,
	}
}

// HandleGetThemes handles GET /themes
func (h *ThemeHandler) HandleGetThemes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"themes": h.themeService.ThemeOptions(),
	})
}
