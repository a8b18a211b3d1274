package httputil

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
)

const contentTypeJSON = "application/json"

// ErrorResponse is the body of every non-2xx answer
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	resp := ErrorResponse{Code: statusCode, Message: message}
	if details != nil {
		resp.Details = details.Error()
	}
	writeJSON(w, statusCode, resp, sonic.ConfigFastest)
}

// WriteJSONResponse sends body with the given status. A nil body sends headers only.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	writeJSON(w, statusCode, body, sonic.ConfigDefault)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any, api sonic.API) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)
	if body == nil {
		return
	}
	api.NewEncoder(w).Encode(body)
}

// DecodeJSON reads the request body into v. An empty body is an error.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	defer r.Body.Close()
	return sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
}
