package utils

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
)

// ErrorBody is the JSON body of a failed API request.
type ErrorBody struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// WriteJSON serializes data to JSON and writes it with statusCode and an
// application/json content type.
//
// If marshaling fails, it responds with 500 Internal Server Error and returns
// a wrapped error. The int result is the number of body bytes written.
//
//	WriteJSON(w, models.VersionResponse{Version: "1.0.0"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteError writes msg as an [ErrorBody] with statusCode.
func WriteError(w http.ResponseWriter, msg string, statusCode int) {
	WriteJSON(w, ErrorBody{Error: msg, Status: statusCode}, statusCode)
}
