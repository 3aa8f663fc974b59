package errors

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrResidentNotFound      = errors.New("resident not found")
	ErrSocietyNotFound       = errors.New("society not found")
	ErrResidentNotApproved   = errors.New("resident not approved")
	ErrInvalidAmount         = errors.New("invalid payment amount")
	ErrInvalidSignature      = errors.New("invalid payment signature")
	ErrGatewayFailure        = errors.New("payment gateway request failed")
	ErrOrderConflict         = errors.New("pending payment marker changed concurrently")
	ErrPaymentAlreadySettled = errors.New("payment already settled")
	ErrResidentAlreadyExists = errors.New("resident already exists")
	ErrSocietyAlreadyExists  = errors.New("society already exists")
)

// BusinessError represents a business logic error
type BusinessError struct {
	Code    string
	Message string
	Err     error
}

func (e *BusinessError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

// NewBusinessError creates a new business error
func NewBusinessError(code, message string, err error) *BusinessError {
	return &BusinessError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Error codes
const (
	ErrCodeResidentNotFound      = "RESIDENT_NOT_FOUND"
	ErrCodeSocietyNotFound       = "SOCIETY_NOT_FOUND"
	ErrCodeResidentNotApproved   = "RESIDENT_NOT_APPROVED"
	ErrCodeInvalidAmount         = "INVALID_AMOUNT"
	ErrCodeInvalidSignature      = "INVALID_SIGNATURE"
	ErrCodeGatewayError          = "GATEWAY_ERROR"
	ErrCodeOrderConflict         = "ORDER_CONFLICT"
	ErrCodePaymentAlreadySettled = "PAYMENT_ALREADY_SETTLED"
	ErrCodeResidentAlreadyExists = "RESIDENT_ALREADY_EXISTS"
	ErrCodeSocietyAlreadyExists  = "SOCIETY_ALREADY_EXISTS"
	ErrCodeDatabaseError         = "DATABASE_ERROR"
	ErrCodeCacheError            = "CACHE_ERROR"
)

// Wrap common errors with business context
func WrapResidentNotFound(residentID string) *BusinessError {
	return NewBusinessError(
		ErrCodeResidentNotFound,
		fmt.Sprintf("Resident %s not found", residentID),
		ErrResidentNotFound,
	)
}

func WrapSocietyNotFound(societyName string) *BusinessError {
	return NewBusinessError(
		ErrCodeSocietyNotFound,
		fmt.Sprintf("Society %s not found", societyName),
		ErrSocietyNotFound,
	)
}

func WrapResidentNotApproved(residentID string) *BusinessError {
	return NewBusinessError(
		ErrCodeResidentNotApproved,
		fmt.Sprintf("Resident %s is not approved", residentID),
		ErrResidentNotApproved,
	)
}

func WrapInvalidAmount(amount string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidAmount,
		fmt.Sprintf("Invalid payment amount: %s", amount),
		ErrInvalidAmount,
	)
}

func WrapInvalidSignature(orderID string) *BusinessError {
	return NewBusinessError(
		ErrCodeInvalidSignature,
		fmt.Sprintf("Signature mismatch for order %s", orderID),
		ErrInvalidSignature,
	)
}

func WrapGatewayError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeGatewayError,
		"payment gateway call failed",
		errors.Join(ErrGatewayFailure, err),
	)
}

func WrapOrderConflict(residentID string) *BusinessError {
	return NewBusinessError(
		ErrCodeOrderConflict,
		fmt.Sprintf("Pending payment for resident %s was updated concurrently", residentID),
		ErrOrderConflict,
	)
}

func WrapPaymentAlreadySettled(orderID string) *BusinessError {
	return NewBusinessError(
		ErrCodePaymentAlreadySettled,
		fmt.Sprintf("Order %s has already been settled", orderID),
		ErrPaymentAlreadySettled,
	)
}

func WrapResidentAlreadyExists(username string) *BusinessError {
	return NewBusinessError(
		ErrCodeResidentAlreadyExists,
		fmt.Sprintf("Resident with username %s already exists", username),
		ErrResidentAlreadyExists,
	)
}

func WrapSocietyAlreadyExists(societyName string) *BusinessError {
	return NewBusinessError(
		ErrCodeSocietyAlreadyExists,
		fmt.Sprintf("Society %s already exists", societyName),
		ErrSocietyAlreadyExists,
	)
}

func WrapDatabaseError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeDatabaseError,
		"database operation failed",
		err,
	)
}

func WrapCacheError(err error) *BusinessError {
	return NewBusinessError(
		ErrCodeCacheError,
		"cache operation failed",
		err,
	)
}
