package errors

import "net/http"

var ErrNotProjectManager = &Exception{
	Message:    "action not valid",
	StatusCode: http.StatusNotFound,
}
