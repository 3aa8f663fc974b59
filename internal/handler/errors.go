package handler

import (
	"errors"
	"net/http"

	customError "github.com/societyops/maintenance-engine/pkg/errors"
	"github.com/societyops/maintenance-engine/pkg/response"
)

// writeError maps a business error to its HTTP status. Unknown errors are
// reported as internal failures.
func writeError(w http.ResponseWriter, err error) {
	var businessErr *customError.BusinessError
	if !errors.As(err, &businessErr) {
		response.InternalServerError(w, "Internal server error", err)
		return
	}

	switch businessErr.Code {
	case customError.ErrCodeInvalidAmount, customError.ErrCodeInvalidSignature:
		response.BadRequest(w, businessErr.Message, businessErr.Err)
	case customError.ErrCodeResidentNotApproved:
		response.Forbidden(w, businessErr.Message)
	case customError.ErrCodeResidentNotFound, customError.ErrCodeSocietyNotFound:
		response.NotFound(w, businessErr.Message)
	case customError.ErrCodeOrderConflict, customError.ErrCodePaymentAlreadySettled,
		customError.ErrCodeResidentAlreadyExists, customError.ErrCodeSocietyAlreadyExists:
		response.Conflict(w, businessErr.Message, businessErr.Err)
	case customError.ErrCodeGatewayError:
		// Gateway failures surface as internal errors; the client cannot
		// act on the upstream detail
		response.InternalServerError(w, businessErr.Message, businessErr.Err)
	default:
		response.InternalServerError(w, businessErr.Message, businessErr.Err)
	}
}
