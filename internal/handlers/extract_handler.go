package handlers

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"ai-portfolio-generator/internal/models"
	"ai-portfolio-generator/internal/repositories"
	"ai-portfolio-generator/internal/resume"
	"ai-portfolio-generator/internal/services"
)

type ExtractHandler struct {
	resumeRepo     repositories.ResumeRepository
	storageService services.StorageService
	maxFileSize    int64
}

func NewExtractHandler(
	resumeRepo repositories.ResumeRepository,
	storageService services.StorageService,
	maxFileSize int64,
) *ExtractHandler {
	return &ExtractHandler{
		resumeRepo:     resumeRepo,
		storageService: storageService,
		maxFileSize:    maxFileSize,
	}
}

// HandleExtract handles POST /extract-resume. It runs the extraction
// pipeline on the uploaded PDF, persists the structured record and returns
// it to the caller.
func (h *ExtractHandler) HandleExtract(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload 'file' as a PDF.",
		})
	}

	if fileHeader.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to open uploaded file",
		})
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to read uploaded file",
		})
	}

	record, err := resume.Process(data)
	if err != nil {
		var extractErr *resume.ExtractionError
		if errors.As(err, &extractErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": "Uploaded file is not a readable PDF document",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to process resume: %v", err),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(fileHeader)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	sectionsJSON, err := record.Sections.MarshalJSON()
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to serialize resume sections",
		})
	}

	row := models.Resume{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: fileHeader.Filename,
		FilePath:         filePath,
		ContentText:      record.FullText,
		Name:             record.Name,
		Email:            record.Email,
		Phone:            record.Phone,
		SectionsJSON:     string(sectionsJSON),
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.resumeRepo.Create(&row); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume record: %v", err),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(models.ExtractResponse{
		ResumeID: row.ID.String(),
		FullText: record.FullText,
		Sections: record.Sections,
		Email:    record.Email,
		Phone:    record.Phone,
		Name:     record.Name,
	})
}
