package rd10249

import (
	"encoding/json"
	"net/http"
	"strconv"
)

// Handler serves the reference table to the form layer, which renders it
// next to the input fields the way the printed standard shows it.
type Handler struct {
	Table *Table
}

type tableView struct {
	Grade         string       `json:"grade"`
	TemperaturesC []float64    `json:"temperatures_c"`
	DurationsH    []float64    `json:"durations_h"`
	StressMPa     [][]*float64 `json:"stress_mpa"` // null = no figure in the standard
}

// Show returns the whole table as JSON.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	temps := h.Table.Temperatures()
	durs := h.Table.Durations()
	view := tableView{
		Grade:         h.Table.Grade(),
		TemperaturesC: temps,
		DurationsH:    durs,
		StressMPa:     make([][]*float64, len(temps)),
	}
	for i := range temps {
		row := make([]*float64, len(durs))
		for j := range durs {
			if v, ok := h.Table.Cell(i, j); ok {
				stress := v
				row[j] = &stress
			}
		}
		view.StressMPa[i] = row
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// Stress answers a single interpolation query:
// GET ...?temperature=545&hours=269142
func (h *Handler) Stress(w http.ResponseWriter, r *http.Request) {
	temp, err := strconv.ParseFloat(r.URL.Query().Get("temperature"), 64)
	if err != nil {
		http.Error(w, "Invalid temperature parameter", http.StatusBadRequest)
		return
	}
	hours, err := strconv.ParseFloat(r.URL.Query().Get("hours"), 64)
	if err != nil || hours < 0 {
		http.Error(w, "Invalid hours parameter", http.StatusBadRequest)
		return
	}

	stress, ok := h.Table.Query(temp, hours)
	if !ok {
		http.Error(w, "Allowable stress undeterminable for the given temperature and service life", http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Grade              string  `json:"grade"`
		TemperatureC       float64 `json:"temperature_c"`
		Hours              float64 `json:"hours"`
		AllowableStressMPa float64 `json:"allowable_stress_mpa"`
	}{h.Table.Grade(), temp, hours, stress})
}
