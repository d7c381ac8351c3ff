// Package apperr defines the error taxonomy shared by repositories,
// services, and the HTTP layer. Callers branch on kind, not on message.
package apperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota + 1
	KindNotFound
	KindAuthentication
	KindStorage
)

// Error carries a kind, a caller-safe message, and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

func Storage(msg string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: cause}
}

func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func IsValidation(err error) bool     { return isKind(err, KindValidation) }
func IsNotFound(err error) bool       { return isKind(err, KindNotFound) }
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }
func IsStorage(err error) bool        { return isKind(err, KindStorage) }
