package errors

import "net/http"

var ErrProjectNotFound = &Exception{
	Message:    "project not found",
	StatusCode: http.StatusNotFound,
}
