package domain

import "fmt"

// Stable machine-readable error codes. Clients branch on these instead of
// matching message prose.
const (
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeUsernameExists    = "USERNAME_ALREADY_EXISTS"
	CodeInvalidPassword   = "INVALID_PASSWORD"
	CodeCredentialsLookup = "CREDENTIALS_LOOKUP_FAILED"
)

// Error is a terminal domain failure carrying a stable code alongside the
// human-readable message. None of these kinds is retryable.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches by code, so errors.Is(err, ErrUserNotFound) holds for every
// UserNotFound regardless of the message it was built with.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel kinds for errors.Is comparisons.
var (
	ErrUserNotFound      = &Error{Code: CodeUserNotFound, Message: "user not found"}
	ErrUsernameExists    = &Error{Code: CodeUsernameExists, Message: "username already exists"}
	ErrInvalidPassword   = &Error{Code: CodeInvalidPassword, Message: "invalid password"}
	ErrCredentialsLookup = &Error{Code: CodeCredentialsLookup, Message: "failed to retrieve user"}
)

// UserNotFoundByID builds the not-found failure for a specific identifier.
func UserNotFoundByID(id int64) *Error {
	return &Error{Code: CodeUserNotFound, Message: fmt.Sprintf("User not found with id: %d", id)}
}

// UsernameAlreadyExists builds the uniqueness-violation failure.
func UsernameAlreadyExists(username string) *Error {
	return &Error{Code: CodeUsernameExists, Message: "Username already exists: " + username}
}

// CredentialsLookupFailed builds the authentication-path lookup failure. It is
// deliberately a different kind from UserNotFound: it flows into the login
// error channel, never through the HTTP error translator.
func CredentialsLookupFailed(username string) *Error {
	return &Error{Code: CodeCredentialsLookup, Message: "Failed to retrieve user: " + username}
}

// InvalidPassword builds the failed-credential-comparison failure raised by
// the login flow.
func InvalidPassword() *Error {
	return &Error{Code: CodeInvalidPassword, Message: "invalid password"}
}
