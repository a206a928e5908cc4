package stub

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

type Handler struct {
	Table *rd10249.Table
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input, h.Table)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// writeError keeps the three failure kinds distinguishable on the wire:
// an undeterminable stress is a 422 (the request was well formed but the
// table cannot answer), everything else is a 400 with the reason.
func writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrStressUndeterminable) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}
