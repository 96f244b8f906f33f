package errs

import (
	"errors"
	"net/http"
)

var (
	ErrInternalServer      = errors.New("Internal server error")
	ErrClient              = errors.New("Bad request")
	ErrNotLoggedIn         = errors.New("Unauthorized")
	ErrInvalidCredentials  = errors.New("Invalid credentials")
	ErrAccountNotFound     = errors.New("Account not found")
	ErrEmailAlreadyUsed    = errors.New("Email already registered")
	ErrPhoneAlreadyUsed    = errors.New("Phone number already registered")
	ErrMissingFields       = errors.New("All fields are required")
	ErrCategoryNotFound    = errors.New("Category not found")
	ErrMenuItemNotFound    = errors.New("Menu item not found")
	ErrCartItemNotFound    = errors.New("Cart item not found")
	ErrOrderNotFound       = errors.New("Order not found")
	ErrOrderTotalMismatch  = errors.New("Order total does not match the sum of item subtotals")
	ErrInvalidPhoneNumber  = errors.New("Invalid phone format")
	ErrTransactionNotFound = errors.New("Transaction not found")
	ErrPaymentNotFound     = errors.New("Payment record not found")
	ErrIntegrity           = errors.New("Inconsistent payment records")
	ErrUpstreamGateway     = errors.New("Payment gateway request failed")
	ErrAccessToken         = errors.New("Failed to get access token")
)

var errorMap = map[error]int{
	ErrInternalServer:      http.StatusInternalServerError,
	ErrClient:              http.StatusBadRequest,
	ErrNotLoggedIn:         http.StatusUnauthorized,
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrAccountNotFound:     http.StatusNotFound,
	ErrEmailAlreadyUsed:    http.StatusBadRequest,
	ErrPhoneAlreadyUsed:    http.StatusBadRequest,
	ErrMissingFields:       http.StatusBadRequest,
	ErrCategoryNotFound:    http.StatusNotFound,
	ErrMenuItemNotFound:    http.StatusNotFound,
	ErrCartItemNotFound:    http.StatusNotFound,
	ErrOrderNotFound:       http.StatusNotFound,
	ErrOrderTotalMismatch:  http.StatusBadRequest,
	ErrInvalidPhoneNumber:  http.StatusBadRequest,
	ErrTransactionNotFound: http.StatusNotFound,
	ErrPaymentNotFound:     http.StatusNotFound,
	ErrIntegrity:           http.StatusInternalServerError,
	ErrUpstreamGateway:     http.StatusBadGateway,
	ErrAccessToken:         http.StatusInternalServerError,
}

func GetErrorStatusCode(err error) int {
	errStatusCode, ok := errorMap[err]
	if !ok {
		errStatusCode = errorMap[ErrInternalServer]
	}
	return errStatusCode
}
