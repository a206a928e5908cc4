package export

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
	var input stub.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := stub.Calculate(input, h.Table)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, stub.ErrStressUndeterminable) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}
	f, err := Workbook(input, res)
	if err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"stub-check.xlsx\"")
	if err := f.Write(w); err != nil {
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
