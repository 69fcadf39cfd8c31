package errors

import "net/http"

var ErrDuplicateMember = &Exception{
	Message:    "user is already on the project",
	StatusCode: http.StatusConflict,
}
