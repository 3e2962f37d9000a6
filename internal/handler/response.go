package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridwanfathin/invoice-builder-service/internal/model"
	"github.com/ridwanfathin/invoice-builder-service/internal/service"
)

// HTTP status codes as constants for consistency
const (
	StatusOK                  = http.StatusOK
	StatusCreated             = http.StatusCreated
	StatusNoContent           = http.StatusNoContent
	StatusBadRequest          = http.StatusBadRequest
	StatusUnauthorized        = http.StatusUnauthorized
	StatusNotFound            = http.StatusNotFound
	StatusConflict            = http.StatusConflict
	StatusInternalServerError = http.StatusInternalServerError
	StatusBadGateway          = http.StatusBadGateway
)

// User-facing messages
const (
	ErrInvalidInput      = "Invalid input format"
	ErrInternalServer    = "Internal server error"
	MsgMissingNumber     = "Please enter an invoice number before saving."
	MsgNotSignedIn       = "You must be logged in to save an invoice."
	MsgSaveFailed        = "Error saving invoice. Please try again."
	MsgSaved             = "Invoice saved successfully!"
	MsgInvoiceNotFound   = "Error: Invoice not found."
	MsgDraftNotFound     = "Draft not found"
	MsgPasswordMismatch  = "Passwords do not match."
	MsgLoadFailed        = "Error loading invoice."
	MsgListFailed        = "Error loading saved invoices."
	MsgRenderFailed      = "Failed to render invoice"
	MsgInvalidItemIndex  = "Item index must be a non-negative integer"
	MsgUserAlreadyExists = "User with this email already exists"
)

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, statusCode int, message string, details ...model.ErrorDetail) {
	response := model.ErrorResponse{
		Status:  http.StatusText(statusCode),
		Message: message,
		Details: details,
	}
	c.AbortWithStatusJSON(statusCode, response)
}

// respondBadRequest sends a 400 Bad Request response
func respondBadRequest(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, StatusBadRequest, message, details...)
}

// respondUnauthorized sends a 401 Unauthorized response
func respondUnauthorized(c *gin.Context, message string, details ...model.ErrorDetail) {
	respondWithError(c, StatusUnauthorized, message, details...)
}

// respondNotFound sends a 404 Not Found response
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, StatusNotFound, message)
}

// respondConflict sends a 409 Conflict response
func respondConflict(c *gin.Context, message string) {
	respondWithError(c, StatusConflict, message)
}

// respondInternalServerError sends a 500 Internal Server Error response
func respondInternalServerError(c *gin.Context, message string) {
	respondWithError(c, StatusInternalServerError, message)
}

// respondServiceError maps a service error to its status and message.
// fallback is used for store failures the caller has a specific text for.
func respondServiceError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, service.ErrMissingInvoiceNumber):
		respondBadRequest(c, MsgMissingNumber, newErrorDetail("invoiceDetails.number", "required"))
	case errors.Is(err, service.ErrNoOwner):
		respondUnauthorized(c, MsgNotSignedIn)
	case errors.Is(err, service.ErrInvoiceNotFound):
		respondNotFound(c, MsgInvoiceNotFound)
	case errors.Is(err, service.ErrDraftNotFound):
		respondNotFound(c, MsgDraftNotFound)
	case errors.Is(err, service.ErrPersistFailure):
		respondWithError(c, StatusBadGateway, fallback)
	default:
		logError(c, "request_failed", err, nil)
		respondInternalServerError(c, ErrInternalServer)
	}
}

// respondSuccess sends a standardized success response with data
func respondSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// respondCreated sends a 201 Created response with data
func respondCreated(c *gin.Context, data interface{}) {
	respondSuccess(c, StatusCreated, data)
}

// respondOK sends a 200 OK response with data
func respondOK(c *gin.Context, data interface{}) {
	respondSuccess(c, StatusOK, data)
}

// respondNoContent sends a 204 No Content response
func respondNoContent(c *gin.Context) {
	c.Status(StatusNoContent)
}

// newErrorDetail creates a new error detail
func newErrorDetail(field, message string) model.ErrorDetail {
	return model.ErrorDetail{
		Field:   field,
		Message: message,
	}
}
