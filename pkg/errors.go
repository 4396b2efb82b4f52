package pkg

import "fmt"

// AppError is the error type surfaced at the HTTP boundary.
//
// Handlers map use-case sentinel errors into AppError values; the wrapped
// cause (if any) stays server-side and never leaks into the response body.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

// HTTPError is the wire shape of every error response.
type HTTPError struct {
	Error string `json:"error"`
}

func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ToHTTPError strips the error down to the client-facing message.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{Error: e.Message}
}
