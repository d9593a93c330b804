package dto

import (
	"errors"
	"net/http"

	"github.com/techzone/backend/internal/domain/shared"
)

// Response is the uniform envelope for all API responses
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// OK builds a success envelope
func OK(data interface{}) Response {
	return Response{Success: true, Data: data}
}

// OKMessage builds a success envelope with a message only
func OKMessage(message string) Response {
	return Response{Success: true, Message: message}
}

// Error builds a failure envelope
func Error(message string, errs ...string) Response {
	return Response{Success: false, Message: message, Errors: errs}
}

// statusByCode maps domain error codes onto HTTP statuses. Domain
// errors without an entry are validation failures and map to 400;
// anything that is not a domain error maps to 500.
var statusByCode = map[string]int{
	"NOT_FOUND":           http.StatusNotFound,
	"ALREADY_EXISTS":      http.StatusConflict,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
	"INVALID_STATE":       http.StatusConflict,
	"INSUFFICIENT_STOCK":  http.StatusConflict,
	"CATEGORY_IN_USE":     http.StatusConflict,
	"DUPLICATE_REVIEW":    http.StatusConflict,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_DISABLED":    http.StatusForbidden,
	"INVALID_TOKEN":       http.StatusUnauthorized,
}

// StatusFor resolves the HTTP status for an error
func StatusFor(err error) int {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		if status, ok := statusByCode[domainErr.Code]; ok {
			return status
		}
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
