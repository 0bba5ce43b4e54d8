package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"chessmm/internal/chess"
	ownErrors "chessmm/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ownErrors.ErrGameNotFound):
		return http.StatusNotFound
	case errors.Is(err, ownErrors.ErrIllegalMove),
		errors.Is(err, ownErrors.ErrInvalidRequest),
		errors.Is(err, chess.ErrInvalidFEN):
		return http.StatusBadRequest
	case errors.Is(err, ownErrors.ErrGameOver),
		errors.Is(err, ownErrors.ErrNotEngineTurn),
		errors.Is(err, ownErrors.ErrNotPlayerTurn):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.log.Errorw("request failed", "error", err)
		writeJSON(w, status, ErrorResponse{Error: "internal error"})
		return
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

// decode reads a JSON body and rejects unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ownErrors.ErrInvalidRequest, err)
	}
	return nil
}
