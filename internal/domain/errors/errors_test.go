package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// State-guard conflicts report as 400: the request is well-formed but invalid
// against the entity's current state.
func TestStateGuardErrorsMapToBadRequest(t *testing.T) {
	guards := []*BaseError{
		ErrRequestNotPending,
		ErrRequestNotApproved,
		ErrRequestNotReceived,
		ErrCreditNotAssigned,
		ErrCreditAlreadyAssigned,
	}

	for _, guard := range guards {
		assert.Equal(t, http.StatusBadRequest, guard.HTTPCode(), guard.ErrorCode())
	}
}

func TestErrorTaxonomyHTTPCodes(t *testing.T) {
	tests := []struct {
		err  *BaseError
		code int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrRequestNotFound, http.StatusNotFound},
		{ErrWarehouseNotFound, http.StatusNotFound},
		{ErrLedgerCustomerNotFound, http.StatusNotFound},
		{ErrForbidden, http.StatusForbidden},
		{ErrAdminRequired, http.StatusForbidden},
		{ErrUnauthorized, http.StatusUnauthorized},
		{ErrLedgerUnavailable, http.StatusBadGateway},
		{ErrInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.code, tt.err.HTTPCode(), tt.err.ErrorCode())
	}
}

func TestWithDetailsCopyMatchesBaseUnderIs(t *testing.T) {
	detailed := ErrRequestNotPending.WithDetails("status is approved")

	assert.ErrorIs(t, detailed, ErrRequestNotPending)
	assert.NotErrorIs(t, detailed, ErrRequestNotApproved)
	assert.Equal(t, "status is approved", detailed.Details())
}
