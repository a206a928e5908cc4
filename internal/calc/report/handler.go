// Package report renders a stub joint check as a PDF suitable for a
// survey dossier: inputs, the eight derivation steps, and the verdict.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alpenrose85-eng/troynik/internal/calc/stub"
	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

type Input struct {
	Project string     `json:"project"`
	Author  string     `json:"author"`
	Joint   stub.Input `json:"joint"`
}

type Handler struct {
	Table *rd10249.Table
}

// grades come from GOST designations; the PDF core fonts cannot render
// Cyrillic, so grade names are transliterated.
var gradeTranslit = strings.NewReplacer(
	"Х", "Kh", "М", "M", "Ф", "F", "Г", "G", "С", "S", "Н", "N",
	"Т", "T", "Р", "R", "Б", "B", "А", "A", "В", "V", "Д", "D",
	"Е", "E", "К", "K", "Л", "L", "П", "P", "У", "U", "Ю", "Yu",
	"Ц", "Ts", "Ч", "Ch", "Ш", "Sh", "Щ", "Shch", "Я", "Ya",
	"И", "I", "З", "Z", "Ж", "Zh", "О", "O", "Э", "E", "Ы", "Y",
)

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := stub.Calculate(input.Joint, h.Table)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, stub.ErrStressUndeterminable) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		return
	}

	pdf := buildPDF(input, res, gradeTranslit.Replace(h.Table.Grade()))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"stub-check.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func buildPDF(input Input, res stub.Result, grade string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Stub Joint Strength Check")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Per RD 10-249-98, steel %s", grade))
	pdf.Ln(8)
	if input.Project != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
		pdf.Ln(6)
	}
	if input.Author != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Input data")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	in := input.Joint
	for _, line := range []string{
		fmt.Sprintf("Main pipe outer diameter D_a = %g mm, wall s = %g mm", in.MainOuterDiameterMM, in.MainWallMM),
		fmt.Sprintf("Stub outer diameter d_a = %g mm, wall s_s = %g mm", in.StubOuterDiameterMM, in.StubWallMM),
		fmt.Sprintf("Pressure p = %g MPa, temperature T = %g C", in.PressureMPa, in.TemperatureC),
		fmt.Sprintf("Service life: %d h elapsed + %d h planned = %d h", in.ElapsedHours, in.PlannedHours, res.TotalHours),
		fmt.Sprintf("Corrosion allowance c = %g mm", in.CorrosionMM),
	} {
		pdf.Cell(0, 5, line)
		pdf.Ln(5)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Derivation")
	pdf.Ln(7)
	for _, step := range res.Steps {
		pdf.SetFont("Helvetica", "B", 10)
		value := fmt.Sprintf("%.4g", step.Value)
		if step.Unit != "" {
			value += " " + step.Unit
		}
		pdf.Cell(0, 5, fmt.Sprintf("%d. %s = %s", step.Number, step.Title, value))
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "", 9)
		pdf.Cell(0, 4, "    = "+step.Formula)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Summary")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range res.Summary {
		pdf.Cell(0, 5, fmt.Sprintf("%s: %s (%s)", row.Parameter, row.Value, row.Status))
		pdf.Ln(5)
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.MultiCell(0, 6, res.Notes, "", "L", false)
	return pdf
}
