package analysisapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/sift/analysis"
	"github.com/Abraxas-365/sift/analysis/analysissrv"
	"github.com/Abraxas-365/sift/analysis/vocabulary"
	"github.com/Abraxas-365/sift/internal/extract"
	"github.com/Abraxas-365/sift/pkg/errx"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*errx.Error); ok {
				return c.Status(e.HTTPStatus).JSON(e.ToHTTPResponse())
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	RegisterRoutes(app, NewHandlers(analysissrv.NewService(vocabulary.Default(), extract.New())))
	return app
}

func TestAnalyze_JSONBody(t *testing.T) {
	app := newTestApp()

	body, _ := json.Marshal(analysis.AnalyzeTextRequest{
		Text:     "John Smith\njohn@example.com\nSKILLS\nPython, SQL",
		Filename: "john.txt",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload analysis.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "John Smith", payload.Profile.Contact.Name)
	assert.Equal(t, "john.txt", payload.Profile.Filename)
	assert.Contains(t, payload.Profile.Skills, "Python")
}

func TestAnalyze_EmptyText(t *testing.T) {
	app := newTestApp()

	body, _ := json.Marshal(analysis.AnalyzeTextRequest{Text: "   "})
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalyze_MultipartUpload(t *testing.T) {
	app := newTestApp()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "jane.txt")
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader("Jane Doe\njane@example.com\nSKILLS\nGo, Docker"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload analysis.AnalyzeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "Jane Doe", payload.Profile.Contact.Name)
	assert.Equal(t, "jane.txt", payload.Profile.Filename)
}

func TestAnalyze_UnsupportedUpload(t *testing.T) {
	app := newTestApp()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "resume.doc")
	require.NoError(t, err)
	_, err = part.Write([]byte("legacy word document"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
