package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	mm "github.com/Decentr-net/quill/internal/middleware"
)

func writeOK(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to marshal response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

func writeError(w http.ResponseWriter, status int, message string) {
	b, _ := json.Marshal(Error{Error: message}) // nolint: errchkjson

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// writeInternalErrorf logs error with request scoped logger and hides its details from client.
func writeInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	mm.GetLogger(ctx).Error(fmt.Sprintf(format, args...))

	writeError(w, http.StatusInternalServerError, "internal error")
}
