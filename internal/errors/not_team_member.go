package errors

import "net/http"

var ErrNotTeamMember = &Exception{
	Message:    "user is not on the project",
	StatusCode: http.StatusConflict,
}
