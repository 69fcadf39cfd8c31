package errors

import "net/http"

var ErrTaskNotInProject = &Exception{
	Message:    "task does not belong to project",
	StatusCode: http.StatusNotFound,
}
