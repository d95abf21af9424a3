package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
)

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, logger logrus.FieldLogger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.WithError(err).Warn("Failed to encode JSON response")
	}
}

// writeError writes a JSON error response with the given status code
func writeError(w http.ResponseWriter, logger logrus.FieldLogger, status int, message string) {
	writeJSON(w, logger, status, map[string]string{"error": message})
}

// queryInt reads an integer query parameter, returning 0 when absent or invalid
func queryInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return 0
	}
	return n
}
