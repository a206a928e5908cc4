// Package importer accepts a spreadsheet of stub joints, one joint per
// row, and runs the strength check over every parseable row. Broken
// rows are skipped rather than failing the whole upload.
package importer

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/alpenrose85-eng/troynik/internal/calc/stub"
	"github.com/alpenrose85-eng/troynik/internal/rd10249"
	"github.com/xuri/excelize/v2"
)

type Handler struct {
	Table *rd10249.Table
}

type StubImportResult struct {
	Count   int           `json:"count"`
	Results []stub.Result `json:"results"`
}

func (h *Handler) Stub(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []stub.Result
	for i := 1; i < len(rows); i++ {
		input, err := parseStubRow(rows[i])
		if err != nil {
			continue
		}
		res, err := stub.Calculate(input, h.Table)
		if err != nil {
			continue
		}
		results = append(results, res)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(StubImportResult{Count: len(results), Results: results})
}

func parseStubRow(row []string) (stub.Input, error) {
	// expected: D_a, s, d_a, s_s, p, T, elapsed_h, planned_h, c(optional)
	if len(row) < 8 {
		return stub.Input{}, fmt.Errorf("bad row")
	}
	mainD, err := toFloat(row[0])
	if err != nil {
		return stub.Input{}, err
	}
	mainWall, err := toFloat(row[1])
	if err != nil {
		return stub.Input{}, err
	}
	stubD, err := toFloat(row[2])
	if err != nil {
		return stub.Input{}, err
	}
	stubWall, err := toFloat(row[3])
	if err != nil {
		return stub.Input{}, err
	}
	pressure, err := toFloat(row[4])
	if err != nil {
		return stub.Input{}, err
	}
	temp, err := toFloat(row[5])
	if err != nil {
		return stub.Input{}, err
	}
	elapsed, err := toInt(row[6])
	if err != nil {
		return stub.Input{}, err
	}
	planned, err := toInt(row[7])
	if err != nil {
		return stub.Input{}, err
	}
	corrosion := 0.0
	if len(row) > 8 && row[8] != "" {
		corrosion, _ = toFloat(row[8])
	}
	return stub.Input{
		MainOuterDiameterMM: mainD,
		MainWallMM:          mainWall,
		StubOuterDiameterMM: stubD,
		StubWallMM:          stubWall,
		PressureMPa:         pressure,
		TemperatureC:        temp,
		ElapsedHours:        elapsed,
		PlannedHours:        planned,
		CorrosionMM:         corrosion,
	}, nil
}

func toFloat(s string) (float64, error) {
	var v float64
	_, err := fmt.Sscanf(s, "%f", &v)
	return v, err
}

func toInt(s string) (int, error) {
	v, err := toFloat(s)
	return int(v), err
}
