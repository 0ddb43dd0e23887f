package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalcopilot/internal/intake"
)

var (
	errInvalidJSON      = errors.New("invalid json")
	errNoFilePart       = errors.New("no file part")
	errDocumentRequired = errors.New("document is required")
	errQuestionRequired = errors.New("question is required")
	errTermsRequired    = errors.New("userTerms is required")
	errUploadTooLarge   = errors.New("upload too large")
)

type apiError struct {
	Code    string
	Message string
}

// writeErr attaches err to the gin context for the access log and writes a
// user-safe body. Raw error text never reaches the client.
func writeErr(c *gin.Context, status int, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	apiErr := toAPIError(status, err)
	c.JSON(status, gin.H{"error": apiErr.Message, "code": apiErr.Code})
}

func toAPIError(status int, err error) apiError {
	if status >= 500 {
		return apiError{
			Code:    "LC-API-5000",
			Message: "An error occurred while processing your request.",
		}
	}

	switch {
	case errors.Is(err, errNoFilePart), errors.Is(err, intake.ErrEmptyUpload):
		return apiError{Code: "LC-UPL-4001", Message: "No file was provided."}
	case errors.Is(err, intake.ErrInvalidFileKind):
		return apiError{Code: "LC-UPL-4002", Message: "Invalid file type. Upload a PDF."}
	case errors.Is(err, intake.ErrUnreadablePDF):
		return apiError{Code: "LC-UPL-4003", Message: "The PDF could not be read."}
	case errors.Is(err, errUploadTooLarge):
		return apiError{Code: "LC-UPL-4013", Message: "The uploaded file is too large."}
	case errors.Is(err, errInvalidJSON):
		return apiError{Code: "LC-API-4002", Message: "Malformed JSON request body."}
	case errors.Is(err, errDocumentRequired):
		return apiError{Code: "LC-API-4003", Message: "No document provided."}
	case errors.Is(err, errQuestionRequired):
		return apiError{Code: "LC-API-4004", Message: "No question provided."}
	case errors.Is(err, errTermsRequired):
		return apiError{Code: "LC-API-4005", Message: "No user terms provided."}
	}

	switch status {
	case http.StatusNotFound:
		return apiError{Code: "LC-API-4040", Message: "Requested resource was not found."}
	case http.StatusMethodNotAllowed:
		return apiError{Code: "LC-API-4050", Message: "This endpoint does not support the requested method."}
	}
	return apiError{Code: "LC-API-4000", Message: "Invalid request. Check inputs and retry."}
}
