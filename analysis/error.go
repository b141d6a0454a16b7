package analysis

import (
	"net/http"

	"github.com/Abraxas-365/sift/pkg/errx"
)

var ErrRegistry = errx.NewRegistry("ANALYSIS")

// Error codes. The extraction pipeline itself never fails: a pattern that
// does not match leaves its field unset and is surfaced through scores and
// recommendations. These codes cover the input boundary and the API surface.
var (
	CodeEmptyInput        = ErrRegistry.Register("EMPTY_INPUT", errx.TypeValidation, http.StatusBadRequest, "No resume text provided")
	CodeFileNotFound      = ErrRegistry.Register("FILE_NOT_FOUND", errx.TypeNotFound, http.StatusNotFound, "File not found")
	CodeFileReadFailed    = ErrRegistry.Register("FILE_READ_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to read file")
	CodeInvalidFileFormat = ErrRegistry.Register("INVALID_FILE_FORMAT", errx.TypeValidation, http.StatusBadRequest, "Unsupported file format")
	CodeExtractionFailed  = ErrRegistry.Register("EXTRACTION_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to extract text from file")
	CodeRenderFailed      = ErrRegistry.Register("RENDER_FAILED", errx.TypeInternal, http.StatusInternalServerError, "Failed to render analysis report")
	CodeVocabularyInvalid = ErrRegistry.Register("VOCABULARY_INVALID", errx.TypeValidation, http.StatusBadRequest, "Invalid vocabulary override file")
)

func ErrEmptyInput() *errx.Error {
	return ErrRegistry.New(CodeEmptyInput)
}

func ErrFileNotFound() *errx.Error {
	return ErrRegistry.New(CodeFileNotFound)
}

func ErrFileReadFailed() *errx.Error {
	return ErrRegistry.New(CodeFileReadFailed)
}

func ErrInvalidFileFormat() *errx.Error {
	return ErrRegistry.New(CodeInvalidFileFormat)
}

func ErrExtractionFailed() *errx.Error {
	return ErrRegistry.New(CodeExtractionFailed)
}

func ErrRenderFailed() *errx.Error {
	return ErrRegistry.New(CodeRenderFailed)
}

func ErrVocabularyInvalid() *errx.Error {
	return ErrRegistry.New(CodeVocabularyInvalid)
}
