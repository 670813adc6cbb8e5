package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrProductNotFound is returned when a product id does not resolve.
	ErrProductNotFound = errors.New("product not found")
	// ErrCartNotFound is returned when the caller has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a product is not in the cart.
	ErrCartItemNotFound = errors.New("item not in cart")
	// ErrInsufficientStock is returned when a requested quantity exceeds stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity is returned when a quantity is out of range.
	ErrInvalidQuantity = errors.New("invalid quantity")
	// ErrInvalidCategory is returned when a product category is not recognized.
	ErrInvalidCategory = errors.New("invalid product category")
	// ErrEmailTaken is returned when signing up with a registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials is returned for unknown email or wrong password.
	// The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidSession is returned for a missing, malformed, or revoked token.
	ErrInvalidSession = errors.New("invalid or expired session")
	// ErrAdminRequired is returned when an authenticated caller lacks the admin flag.
	ErrAdminRequired = errors.New("admin access required")
	// ErrUserNotFound is returned when a user id does not resolve.
	ErrUserNotFound = errors.New("user not found")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrProductNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PRODUCT_NOT_FOUND")
	case ErrCartNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "CART_NOT_FOUND")
	case ErrCartItemNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ITEM_NOT_FOUND")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrInsufficientStock:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INSUFFICIENT_STOCK")
	case ErrInvalidQuantity:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_QUANTITY")
	case ErrInvalidCategory:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CATEGORY")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrInvalidSession:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_SESSION")
	case ErrAdminRequired:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ADMIN_REQUIRED")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
