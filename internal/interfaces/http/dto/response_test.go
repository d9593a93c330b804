package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/techzone/backend/internal/domain/shared"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", shared.ErrNotFound, http.StatusNotFound},
		{"already exists", shared.ErrAlreadyExists, http.StatusConflict},
		{"forbidden", shared.ErrForbidden, http.StatusForbidden},
		{"invalid state", shared.ErrInvalidState, http.StatusConflict},
		{"insufficient stock", shared.ErrInsufficientStock, http.StatusConflict},
		{"category in use", shared.ErrCategoryInUse, http.StatusConflict},
		{"duplicate review", shared.ErrDuplicateReview, http.StatusConflict},
		{"bad credentials", shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password"), http.StatusUnauthorized},
		{"validation failure defaults to 400", shared.NewDomainError("INVALID_SKU", "bad sku"), http.StatusBadRequest},
		{"unknown errors default to 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, StatusFor(tt.err))
		})
	}
}
