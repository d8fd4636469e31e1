package api

import (
	"net/http"

	json "github.com/goccy/go-json"
	"github.com/whiteelite/ixservice/internal/domain/apperrors"
)

// envelope is the body of every JSON response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	appErr := apperrors.From(err)
	writeJSON(w, apperrors.HTTPStatus(appErr.Kind), envelope{Success: false, Error: appErr.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body envelope) {
	raw, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		raw = []byte(`{"success":false,"error":"Internal server error: response encoding failed"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

// decode reads a JSON body of at most limit bytes into a T.
func decode[T any](w http.ResponseWriter, r *http.Request, limit int64) (T, error) {
	var req T
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, apperrors.BadRequest("Invalid JSON body")
	}
	return req, nil
}
