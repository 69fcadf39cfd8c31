package errors

import "net/http"

var ErrNoteNotFound = &Exception{
	Message:    "note not found",
	StatusCode: http.StatusNotFound,
}
