package models

import "net/http"

type GenericResponse struct {
	Error     bool     `json:"error"`
	Message   string   `json:"message"`
	Data      any      `json:"data"`
	Warnings  []string `json:"warnings,omitempty"`
	Status    int      `json:"status"`
	RequestID string   `json:"request_id,omitempty"`
}

// SuccessResponse builds a non-error envelope, 200 unless a status is given.
func SuccessResponse(message string, data any, status ...int) GenericResponse {
	code := http.StatusOK
	if len(status) > 0 {
		code = status[0]
	}

	return GenericResponse{
		Message: message,
		Data:    data,
		Status:  code,
	}
}

// ErrorResponse builds an error envelope; the status is required.
func ErrorResponse(status int, message string, data any) GenericResponse {
	return GenericResponse{
		Error:   true,
		Message: message,
		Data:    data,
		Status:  status,
	}
}

func (r GenericResponse) WithWarnings(warnings ...string) GenericResponse {
	r.Warnings = append(r.Warnings, warnings...)
	return r
}

func (r GenericResponse) WithRequestID(id string) GenericResponse {
	r.RequestID = id
	return r
}
