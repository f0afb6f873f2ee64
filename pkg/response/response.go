package response

import "github.com/MTrazona/aurum-platform-admin-sub000/pkg/apperr"

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	ErrorKind  string      `json:"error_kind,omitempty"` // apperr classification for the global error surface
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// ClassifiedError returns an error response carrying the apperr kind,
// so the admin UI's global error surface can pick its dismissal
// policy (auto-dismiss vs explicit).
func ClassifiedError(statusCode int, err error) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err.Error(),
		ErrorKind:  string(apperr.KindOf(err)),
	}
}
