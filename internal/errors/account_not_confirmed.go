package errors

import "net/http"

var ErrAccountNotConfirmed = &Exception{
	Message:    "account has not been confirmed, a confirmation email was sent",
	StatusCode: http.StatusUnauthorized,
}
