package errors

import "net/http"

var ErrInvalidCredentials = &Exception{
	Message:    "incorrect password",
	StatusCode: http.StatusUnauthorized,
}
