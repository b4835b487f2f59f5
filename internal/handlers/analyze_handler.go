package handlers

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/Nehalakshmi23/carrer-campus/internal/models"
	"github.com/Nehalakshmi23/carrer-campus/internal/services"
)

type AnalyzeHandler struct {
	analyzer       services.AnalyzerService
	storageService services.StorageService
	extractor      services.TextExtractorService
	maxFileSize    int64
}

func NewAnalyzeHandler(
	analyzer services.AnalyzerService,
	storageService services.StorageService,
	extractor services.TextExtractorService,
	maxFileSize int64,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:       analyzer,
		storageService: storageService,
		extractor:      extractor,
		maxFileSize:    maxFileSize,
	}
}

// HandleAnalyze handles POST /analyze. Resume and job description arrive
// either as form text fields or as uploaded documents; extracted file text
// overrides the text field.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	resumeText := c.FormValue("resume_text")
	jobText := c.FormValue("job_text")

	if file, err := c.FormFile("resume"); err == nil && file != nil {
		text, err := h.extractUpload(file, "resume")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		resumeText = text
	}

	if file, err := c.FormFile("job"); err == nil && file != nil {
		text, err := h.extractUpload(file, "job")
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
		jobText = text
	}

	if services.NormalizeText(resumeText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Resume text missing or unable to extract from file",
		})
	}

	if services.NormalizeText(jobText) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Job description missing or unable to extract from file",
		})
	}

	report, err := h.analyzer.Analyze(resumeText, jobText)
	if err != nil {
		if errors.Is(err, models.ErrInputMissing) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Resume or job description text missing",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze resume",
		})
	}

	return c.JSON(report)
}

// extractUpload saves the uploaded document just long enough to pull its
// text out, then removes it.
func (h *AnalyzeHandler) extractUpload(file *multipart.FileHeader, fileType string) (string, error) {
	if file.Size > h.maxFileSize {
		return "", fmt.Errorf("%s file too large. Max size: %d bytes", fileType, h.maxFileSize)
	}

	filename, filePath, err := h.storageService.SaveFile(file, fileType)
	if err != nil {
		return "", fmt.Errorf("failed to save %s file: %v", fileType, err)
	}
	defer func() {
		if err := h.storageService.DeleteFile(filename); err != nil {
			log.Printf("⚠️  Failed to clean up upload %s: %v\n", filename, err)
		}
	}()

	return h.extractor.ExtractFile(filePath), nil
}
