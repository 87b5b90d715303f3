package handler

import (
	"encoding/json"
	"errors"
	"net/http"
)

// JSONResponse is the envelope of JSON responses.
type JSONResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail describes a failed request.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSON wraps v in the data envelope with status 200.
func JSON(v any) Response {
	return jsonResponse{status: http.StatusOK, body: JSONResponse{Data: v}}
}

// JSONError renders err in the error envelope. HTTPError and ValidationError
// determine the status code; anything else is a 500.
func JSONError(err error) Response {
	status, detail := errorToDetail(err)
	return jsonResponse{status: status, body: JSONResponse{Error: detail}}
}

func errorToDetail(err error) (int, *ErrorDetail) {
	var validationErr ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, &ErrorDetail{
			Code:    "validation_error",
			Message: validationErr.Error(),
			Details: validationErr,
		}
	}
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}
	return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: err.Error()}
}
