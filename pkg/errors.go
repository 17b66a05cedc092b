package pkg

import "fmt"

// AppError is the error shape returned by every HTTP handler.
type AppError struct {
	Code       string
	Message    string
	HTTPStatus int
	Err        error
	Details    map[string]string
}

// HTTPError is the JSON body written for an AppError.
type HTTPError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func NewDomainErrorSimple(code, message string, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status}
}

func NewDomainError(code, message string, err error, status int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Err: err}
}

// WithDetails returns a copy of e carrying extra key/value context for the client.
func (e *AppError) WithDetails(details map[string]string) *AppError {
	out := *e
	out.Details = details
	return &out
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

// ToHTTPError hides the wrapped error; only code and message reach the client.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Code: e.Code, Message: e.Message, Details: e.Details}
}
