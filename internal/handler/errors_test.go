package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	customError "github.com/societyops/maintenance-engine/pkg/errors"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid amount", customError.WrapInvalidAmount("-5"), http.StatusBadRequest},
		{"invalid signature", customError.WrapInvalidSignature("order_1"), http.StatusBadRequest},
		{"not approved", customError.WrapResidentNotApproved("r1"), http.StatusForbidden},
		{"resident not found", customError.WrapResidentNotFound("r1"), http.StatusNotFound},
		{"society not found", customError.WrapSocietyNotFound("s1"), http.StatusNotFound},
		{"order conflict", customError.WrapOrderConflict("r1"), http.StatusConflict},
		{"already settled", customError.WrapPaymentAlreadySettled("order_1"), http.StatusConflict},
		{"gateway failure", customError.WrapGatewayError(errors.New("timeout")), http.StatusInternalServerError},
		{"database error", customError.WrapDatabaseError(errors.New("connection refused")), http.StatusInternalServerError},
		{"plain error", errors.New("surprise"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			writeError(recorder, tt.err)
			assert.Equal(t, tt.expected, recorder.Code)
		})
	}
}
