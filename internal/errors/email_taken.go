package errors

import "net/http"

var ErrEmailTaken = &Exception{
	Message:    "user already registered",
	StatusCode: http.StatusConflict,
}
