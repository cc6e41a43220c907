package utils

import (
	"encoding/json"
	"net/http"
)

type M map[string]interface{}

// RespondWithJSON sends a JSON response.
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// Success writes the {success:true, message, ...} envelope. Extra keys
// (cart, data, info, orderDetails) are merged into the payload.
func Success(w http.ResponseWriter, statusCode int, message string, extra M) {
	payload := M{"success": true, "message": message}
	for k, v := range extra {
		payload[k] = v
	}
	RespondWithJSON(w, statusCode, payload)
}

// Fail writes the {success:false, message} envelope.
func Fail(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, M{"success": false, "message": message})
}

// FailFromError maps a data-access error onto the failure envelope.
func FailFromError(w http.ResponseWriter, err error) {
	Fail(w, StatusForError(err), err.Error())
}
