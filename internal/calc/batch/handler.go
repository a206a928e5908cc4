package batch

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alpenrose85-eng/troynik/internal/calc/stub"
	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

type Handler struct {
	Table *rd10249.Table
}

func (h *Handler) Stub(w http.ResponseWriter, r *http.Request) {
	var input StubBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateStub(input, h.Table)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, stub.ErrStressUndeterminable) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
