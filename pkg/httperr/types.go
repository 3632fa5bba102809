package httperr

import "net/http"

type HTTPError struct {
	Status  int
	Message string
	Cause   error
}

// error 인터페이스의 계약 구현
func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Cause
}

func NotFound(msg string) error {
	return &HTTPError{Status: http.StatusNotFound, Message: msg}
}

func BadRequest(msg string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) error {
	return &HTTPError{Status: http.StatusUnauthorized, Message: msg}
}

func MethodNotAllowed(msg string) error {
	return &HTTPError{Status: http.StatusMethodNotAllowed, Message: msg}
}

func Internal(msg string, cause error) error {
	return &HTTPError{Status: http.StatusInternalServerError, Message: msg, Cause: cause}
}
