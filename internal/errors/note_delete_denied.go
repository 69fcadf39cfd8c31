package errors

import "net/http"

var ErrNoteDeleteDenied = &Exception{
	Message:    "action not valid",
	StatusCode: http.StatusNotFound,
}
