package analysisapi

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/analysissrv"
)

// maxUploadSize caps resume uploads at 10MB
const maxUploadSize = int64(10 * 1024 * 1024)

type Handlers struct {
	service *analysissrv.Service
}

func NewHandlers(service *analysissrv.Service) *Handlers {
	return &Handlers{service: service}
}

func RegisterRoutes(app *fiber.App, h *Handlers) {
	api := app.Group("/api")
	api.Post("/analyze", h.Analyze)
}

// Analyze runs the full analysis over one resume
// POST /api/analyze
// Accepts either a multipart upload (field "file") or a JSON body
// {"text": "...", "filename": "..."}.
func (h *Handlers) Analyze(c *fiber.Ctx) error {
	if file, err := c.FormFile("file"); err == nil {
		if file.Size > maxUploadSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":    "file too large",
				"max_size": "10MB",
				"size":     file.Size,
			})
		}

		uploaded, err := file.Open()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to open uploaded file",
			})
		}
		defer uploaded.Close()

		data, err := io.ReadAll(uploaded)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to read uploaded file",
			})
		}

		result, err := h.service.AnalyzeDocument(c.Context(), data, file.Filename)
		if err != nil {
			return err
		}
		return c.JSON(toResponse(result))
	}

	var req analysis.AnalyzeTextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	if strings.TrimSpace(req.Text) == "" {
		return analysis.ErrEmptyInput()
	}

	result, err := h.service.AnalyzeText(c.Context(), req.Text, req.Filename)
	if err != nil {
		return err
	}
	return c.JSON(toResponse(result))
}

func toResponse(result *analysissrv.Result) analysis.AnalyzeResponse {
	resp := analysis.AnalyzeResponse{Profile: result.Profile.Response()}
	if result.ATS != nil {
		resp.ATS = *result.ATS
	}
	return resp
}
