package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer         = http.StatusInternalServerError
	ErrStatusClient                 = http.StatusBadRequest
	ErrStatusNotLoggedIn            = http.StatusUnauthorized
	ErrStatusNoPermission           = http.StatusForbidden
	ErrStatusUnauthorized           = http.StatusUnauthorized
	ErrStatusNotFound               = http.StatusNotFound
	ErrStatusFileSizeExceedingLimit = http.StatusRequestEntityTooLarge
	ErrStatusConflict               = http.StatusConflict
	ErrStatusBadGateway             = http.StatusBadGateway
	ErrStatusServiceUnavailable     = http.StatusServiceUnavailable
)

var (
	ErrInternalServer          = errors.New("Internal server error")
	ErrClient                  = errors.New("Bad request")
	ErrValidation              = errors.New("Invalid data")
	ErrMissingFields           = errors.New("All fields are required")
	ErrNotLoggedIn             = errors.New("Not authorized, login again")
	ErrInvalidCredentialsEmail = errors.New("Invalid email or password")
	ErrWrongPassword           = errors.New("Current password is incorrect")
	ErrPasswordTooShort        = errors.New("New password must be at least 6 characters long")
	ErrPasswordTooLong         = errors.New("Password must be at most 72 bytes long")
	ErrUnauthorized            = errors.New("Forbidden access")
	ErrNotFound                = errors.New("Resource not found")
	ErrUserNotFound            = errors.New("User not found")
	ErrProductNotFound         = errors.New("Product not found")
	ErrAddressNotFound         = errors.New("Address not found")
	ErrAddressNotOwned         = errors.New("Unauthorized to modify this address")
	ErrPostNotFound            = errors.New("Post not found")
	ErrCommentNotFound         = errors.New("Comment not found")
	ErrNotPostOwner            = errors.New("You can only modify your own posts")
	ErrNotCommentOwner         = errors.New("Not authorized to delete this comment")
	ErrRequestNotFound         = errors.New("Product request not found")
	ErrRequestNotPending       = errors.New("Product request has already been reviewed")
	ErrRejectionReasonRequired = errors.New("Rejection reason is required")
	ErrImageRequired           = errors.New("At least one image is required")
	ErrNotAnImage              = errors.New("Uploaded file is not an image")
	ErrFileTooLarge            = errors.New("Image size should be less than 5MB")
	ErrUserAlreadyExists       = errors.New("User already exists")
	ErrEmailAlreadyUsed        = errors.New("Email has already been used")
	ErrConflict                = errors.New("Conflicting record found")
	ErrPaymentExpired          = errors.New("Payment for this order has expired")
	ErrInvalidSignature        = errors.New("Invalid notification signature")
	ErrUpstream                = errors.New("Upstream service failure")
	ErrServiceUnavailable      = errors.New("Service temporarily unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer:          ErrStatusInternalServer,
	ErrClient:                  ErrStatusClient,
	ErrValidation:              ErrStatusClient,
	ErrMissingFields:           ErrStatusClient,
	ErrNotLoggedIn:             ErrStatusNotLoggedIn,
	ErrInvalidCredentialsEmail: ErrStatusUnauthorized,
	ErrWrongPassword:           ErrStatusUnauthorized,
	ErrPasswordTooShort:        ErrStatusClient,
	ErrPasswordTooLong:         ErrStatusClient,
	ErrUnauthorized:            ErrStatusNoPermission,
	ErrNotFound:                ErrStatusNotFound,
	ErrUserNotFound:            ErrStatusNotFound,
	ErrProductNotFound:         ErrStatusNotFound,
	ErrAddressNotFound:         ErrStatusNotFound,
	ErrAddressNotOwned:         ErrStatusNoPermission,
	ErrPostNotFound:            ErrStatusNotFound,
	ErrCommentNotFound:         ErrStatusNotFound,
	ErrNotPostOwner:            ErrStatusNoPermission,
	ErrNotCommentOwner:         ErrStatusNoPermission,
	ErrRequestNotFound:         ErrStatusNotFound,
	ErrRequestNotPending:       ErrStatusConflict,
	ErrRejectionReasonRequired: ErrStatusClient,
	ErrImageRequired:           ErrStatusClient,
	ErrNotAnImage:              ErrStatusClient,
	ErrFileTooLarge:            ErrStatusFileSizeExceedingLimit,
	ErrUserAlreadyExists:       ErrStatusConflict,
	ErrEmailAlreadyUsed:        ErrStatusConflict,
	ErrConflict:                ErrStatusConflict,
	ErrPaymentExpired:          ErrStatusNoPermission,
	ErrInvalidSignature:        ErrStatusUnauthorized,
	ErrUpstream:                ErrStatusBadGateway,
	ErrServiceUnavailable:      ErrStatusServiceUnavailable,
}

// GetErrorStatusCode resolves the HTTP status for err, unwrapping as needed.
// Errors outside the map are reported as internal server errors.
func GetErrorStatusCode(err error) int {
	if statusCode, ok := errorMap[err]; ok {
		return statusCode
	}

	for known, statusCode := range errorMap {
		if errors.Is(err, known) {
			return statusCode
		}
	}

	return errorMap[ErrInternalServer]
}

// PublicMessage returns the message that is safe to show to a client.
// Wrapped sentinel errors surface the sentinel text, anything else is generic.
func PublicMessage(err error) string {
	if _, ok := errorMap[err]; ok {
		return err.Error()
	}

	for known := range errorMap {
		if errors.Is(err, known) {
			return known.Error()
		}
	}

	return ErrInternalServer.Error()
}
