package errors

import "net/http"

var ErrManagerAsMember = &Exception{
	Message:    "the manager cannot be added as a team member",
	StatusCode: http.StatusConflict,
}
