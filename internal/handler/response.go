package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"bookkeeper/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondAccepted sends a 202 success response.
func RespondAccepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrSuggestionNotFound):
		return http.StatusNotFound, "SUGGESTION_NOT_FOUND", "suggestion not found"
	case errors.Is(err, domain.ErrSuggestionResolved):
		return http.StatusConflict, "SUGGESTION_RESOLVED", "suggestion has already been reviewed"
	case errors.Is(err, domain.ErrPaymentAlreadyMatched):
		return http.StatusConflict, "PAYMENT_ALREADY_MATCHED", "payment is already bound to a bill or invoice"
	case errors.Is(err, domain.ErrBillNotFound):
		return http.StatusNotFound, "BILL_NOT_FOUND", "bill not found"
	case errors.Is(err, domain.ErrInvoiceNotFound):
		return http.StatusNotFound, "INVOICE_NOT_FOUND", "invoice not found"
	case errors.Is(err, domain.ErrPaymentNotFound):
		return http.StatusNotFound, "PAYMENT_NOT_FOUND", "payment not found"
	case errors.Is(err, domain.ErrRiskFlagNotFound):
		return http.StatusNotFound, "RISK_FLAG_NOT_FOUND", "risk flag not found"
	case errors.Is(err, domain.ErrRiskFlagClosed):
		return http.StatusConflict, "RISK_FLAG_CLOSED", "risk flag has already been closed"
	case errors.Is(err, domain.ErrInvalidResolution):
		return http.StatusBadRequest, "INVALID_RESOLUTION", "resolution status must be resolved or dismissed"
	case errors.Is(err, domain.ErrInvalidReconcileScope):
		return http.StatusBadRequest, "INVALID_SCOPE", "reconciliation scope must be all, payable, or receivable"
	case errors.Is(err, domain.ErrReconciliationInProgress):
		return http.StatusConflict, "RECONCILIATION_IN_PROGRESS", "a reconciliation operation is already running"
	case errors.Is(err, domain.ErrMatcherUnavailable):
		return http.StatusBadGateway, "MATCHER_UNAVAILABLE", "reconciliation gateway is unavailable"
	case errors.Is(err, domain.ErrPromoConfigNotFound):
		return http.StatusNotFound, "PROMO_CONFIG_NOT_FOUND", "no active promo configuration"
	case errors.Is(err, domain.ErrPromoConfigVersion):
		return http.StatusInternalServerError, "PROMO_CONFIG_VERSION", "promo configuration schema version is not supported"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}

// parseUUIDParam parses a UUID path parameter. Returns false if invalid
// (error response already written).
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}
