package errors

import "net/http"

var ErrAccountConfirmed = &Exception{
	Message:    "account is already confirmed",
	StatusCode: http.StatusForbidden,
}
