package helpers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind tags every failure a handler can surface. Each kind carries its HTTP
// status so the mapping lives here and nowhere else.
type Kind int

const (
	KindInternal Kind = iota
	KindMissingToken
	KindInvalidToken
	KindUserNotFound
	KindForbidden
	KindDuplicateEmail
	KindInvalidCredentials
	KindValidation
	KindNotFound
	KindSlotTaken
)

func (k Kind) Status() int {
	switch k {
	case KindMissingToken, KindInvalidToken, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindUserNotFound, KindNotFound:
		return http.StatusNotFound
	case KindDuplicateEmail, KindValidation:
		return http.StatusBadRequest
	case KindSlotTaken:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

func NewError(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func WrapError(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

var (
	ErrMissingToken       = NewError(KindMissingToken, "Authentication token is missing")
	ErrInvalidToken       = NewError(KindInvalidToken, "Authentication token is invalid or expired")
	ErrUserNotFound       = NewError(KindUserNotFound, "User not found")
	ErrForbidden          = NewError(KindForbidden, "You don't have permissions to make this request")
	ErrDuplicateEmail     = NewError(KindDuplicateEmail, "Email is already taken")
	ErrInvalidCredentials = NewError(KindInvalidCredentials, "Incorrect email or password")
	ErrSlotTaken          = NewError(KindSlotTaken, "The table is already booked for this date and time")
)

// WriteError is the single translation point from failures to responses.
// Anything that is not an *AppError is an internal error; its details stay
// out of the response body.
func WriteError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.AbortWithStatusJSON(appErr.Kind.Status(), gin.H{"message": appErr.Message})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
}
