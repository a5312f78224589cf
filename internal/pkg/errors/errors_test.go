package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geo-directory-service/internal/pkg/errors"
)

func TestAppError_WithDetailsDoesNotMutateSentinel(t *testing.T) {
	detailed := errors.ErrInvalidRequest.WithDetail("page", "must be an integer")

	assert.Equal(t, "must be an integer", detailed.Details["page"])
	assert.Empty(t, errors.ErrInvalidRequest.Details)
	assert.Equal(t, http.StatusBadRequest, detailed.StatusCode)
}

func TestAppError_Is(t *testing.T) {
	detailed := errors.ErrInvalidRequest.WithDetail("limit", "too big")
	wrapped := fmt.Errorf("handler: %w", detailed)

	assert.True(t, stderrors.Is(wrapped, errors.ErrInvalidRequest))
	assert.False(t, stderrors.Is(wrapped, errors.ErrCountryNotFound))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "COUNTRY_NOT_FOUND: Country not found", errors.ErrCountryNotFound.Error())
}
