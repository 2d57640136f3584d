package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// isMiss reports whether a storage error is an empty findOne result. Misses
// serialize as a null body with 200, never as 404.
func isMiss(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
