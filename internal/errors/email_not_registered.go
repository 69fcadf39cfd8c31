package errors

import "net/http"

var ErrEmailNotRegistered = &Exception{
	Message:    "email is not registered",
	StatusCode: http.StatusConflict,
}
