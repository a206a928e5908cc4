// Package export renders a finished stub joint check as a spreadsheet:
// one sheet of inputs, one with the step-by-step derivation, and one
// with the verdict table.
package export

import (
	"fmt"

	"github.com/alpenrose85-eng/troynik/internal/calc/stub"
	"github.com/xuri/excelize/v2"
)

func Workbook(in stub.Input, res stub.Result) (*excelize.File, error) {
	f := excelize.NewFile()

	const inputs = "Inputs"
	if err := f.SetSheetName(f.GetSheetName(0), inputs); err != nil {
		return nil, err
	}
	inputRows := [][]interface{}{
		{"Parameter", "Value"},
		{"Main pipe outer diameter D_a, mm", in.MainOuterDiameterMM},
		{"Main pipe wall s, mm", in.MainWallMM},
		{"Stub outer diameter d_a, mm", in.StubOuterDiameterMM},
		{"Stub wall s_s, mm", in.StubWallMM},
		{"Pressure p, MPa", in.PressureMPa},
		{"Temperature T, C", in.TemperatureC},
		{"Elapsed service, h", in.ElapsedHours},
		{"Planned service, h", in.PlannedHours},
		{"Corrosion allowance c, mm", in.CorrosionMM},
		{"Total service life, h", res.TotalHours},
	}
	for i := range inputRows {
		if err := f.SetSheetRow(inputs, fmt.Sprintf("A%d", i+1), &inputRows[i]); err != nil {
			return nil, err
		}
	}
	f.SetColWidth(inputs, "A", "A", 36)

	const derivation = "Derivation"
	if _, err := f.NewSheet(derivation); err != nil {
		return nil, err
	}
	header := []interface{}{"Step", "Title", "Formula", "Value", "Unit"}
	if err := f.SetSheetRow(derivation, "A1", &header); err != nil {
		return nil, err
	}
	for i, s := range res.Steps {
		row := []interface{}{s.Number, s.Title, s.Formula, s.Value, s.Unit}
		if err := f.SetSheetRow(derivation, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return nil, err
		}
	}
	f.SetColWidth(derivation, "B", "C", 44)

	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return nil, err
	}
	summaryHeader := []interface{}{"Parameter", "Value", "Status"}
	if err := f.SetSheetRow(summary, "A1", &summaryHeader); err != nil {
		return nil, err
	}
	for i, row := range res.Summary {
		cells := []interface{}{row.Parameter, row.Value, row.Status}
		if err := f.SetSheetRow(summary, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			return nil, err
		}
	}
	verdict := []interface{}{"Verdict", res.Notes}
	if err := f.SetSheetRow(summary, fmt.Sprintf("A%d", len(res.Summary)+2), &verdict); err != nil {
		return nil, err
	}
	f.SetColWidth(summary, "A", "B", 36)

	return f, nil
}
