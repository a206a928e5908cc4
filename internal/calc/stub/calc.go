// Package stub checks the strength of a welded stub (branch pipe) joint
// on a header per RD 10-249-98. The check interpolates an allowable
// stress from the material table, derives the opening reinforcement
// factors, and compares the reduced stress against the allowable one.
package stub

import (
	"fmt"
	"math"

	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

// phiTemp is the first-approximation strength factor used when sizing
// the minimum stub wall. The method keeps it at 1.0 and does not refine
// it against phi_oc.
const phiTemp = 1.0

type Input struct {
	MainOuterDiameterMM float64 `json:"main_outer_diameter_mm"` // D_a
	MainWallMM          float64 `json:"main_wall_mm"`           // s
	StubOuterDiameterMM float64 `json:"stub_outer_diameter_mm"` // d_a
	StubWallMM          float64 `json:"stub_wall_mm"`           // s_s
	PressureMPa         float64 `json:"pressure_mpa"`
	TemperatureC        float64 `json:"temperature_c"`
	ElapsedHours        int     `json:"elapsed_hours"`
	PlannedHours        int     `json:"planned_hours"`
	CorrosionMM         float64 `json:"corrosion_mm"`
}

// Step is one line of the printed derivation with its substituted values.
type Step struct {
	Number  int     `json:"number"`
	Title   string  `json:"title"`
	Formula string  `json:"formula"`
	Value   float64 `json:"value"`
	Unit    string  `json:"unit,omitempty"`
}

// SummaryRow is one line of the verdict table shown under the derivation.
type SummaryRow struct {
	Parameter string `json:"parameter"`
	Value     string `json:"value"`
	Status    string `json:"status"`
}

type Result struct {
	TotalHours           int          `json:"total_hours"`
	AllowableStressMPa   float64      `json:"allowable_stress_mpa"`
	StubHeightMM         float64      `json:"stub_height_mm"`         // h_s
	MinStubWallMM        float64      `json:"min_stub_wall_mm"`       // s_os
	ReinforcementAreaMM2 float64      `json:"reinforcement_area_mm2"` // f_s
	MeanDiameterMM       float64      `json:"mean_diameter_mm"`       // D_m
	OpeningRatio         float64      `json:"opening_ratio"`          // z
	UnreinforcedFactor   float64      `json:"unreinforced_factor"`    // phi_od
	ReinforcedFactor     float64      `json:"reinforced_factor"`      // phi_oc
	ReducedStressMPa     float64      `json:"reduced_stress_mpa"`     // sigma
	SafetyFactor         float64      `json:"safety_factor"`
	OK                   bool         `json:"ok"`
	Notes                string       `json:"notes"`
	Steps                []Step       `json:"steps"`
	Summary              []SummaryRow `json:"summary"`
}

// Validate rejects inputs the formulas cannot accept: negative or
// non-finite dimensions, pressures, temperatures, or hour counts.
func (in Input) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"main_outer_diameter_mm", in.MainOuterDiameterMM},
		{"main_wall_mm", in.MainWallMM},
		{"stub_outer_diameter_mm", in.StubOuterDiameterMM},
		{"stub_wall_mm", in.StubWallMM},
		{"pressure_mpa", in.PressureMPa},
		{"temperature_c", in.TemperatureC},
		{"corrosion_mm", in.CorrosionMM},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{Field: f.name, Reason: "must be a finite number"}
		}
		if f.value < 0 {
			return &ValidationError{Field: f.name, Reason: "must not be negative"}
		}
	}
	if in.ElapsedHours < 0 {
		return &ValidationError{Field: "elapsed_hours", Reason: "must not be negative"}
	}
	if in.PlannedHours < 0 {
		return &ValidationError{Field: "planned_hours", Reason: "must not be negative"}
	}
	return nil
}

// Calculate runs the eight-step joint strength check against the given
// allowable-stress table. Every intermediate quantity is kept in the
// result so the caller can render the full derivation.
func Calculate(in Input, table *rd10249.Table) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	// 1. Allowable stress for the summed service life.
	totalHours := in.ElapsedHours + in.PlannedHours
	allowable, ok := table.Query(in.TemperatureC, float64(totalHours))
	if !ok {
		return Result{}, ErrStressUndeterminable
	}

	// 2. Constructive stub height h_s.
	stubWall := in.StubWallMM - in.CorrosionMM
	if stubWall <= 0 {
		return Result{}, &DomainError{Step: 2, Reason: "stub wall must exceed the corrosion allowance"}
	}
	if in.StubOuterDiameterMM < in.StubWallMM {
		return Result{}, &DomainError{Step: 2, Reason: "stub outer diameter must not be less than the stub wall"}
	}
	hS := math.Sqrt(1.25 * (in.StubOuterDiameterMM - in.StubWallMM) * stubWall)

	// 3. Minimum stub wall s_os at the design pressure.
	div := 2*allowable*phiTemp + in.PressureMPa
	if div == 0 {
		return Result{}, &DomainError{Step: 3, Reason: "zero divisor in the minimum wall formula"}
	}
	sOS := in.PressureMPa * in.StubOuterDiameterMM / div

	// 4. Compensating reinforcement area f_s. Negative means the stub
	// wall is thinner than the pressure demands; it is passed through
	// unclamped so the verdict reflects the deficiency.
	fS := 2 * hS * (stubWall - sOS)

	// 5. Strength factor phi_od for the unreinforced opening.
	mainWall := in.MainWallMM - in.CorrosionMM
	if mainWall <= 0 {
		return Result{}, &DomainError{Step: 5, Reason: "main wall must exceed the corrosion allowance"}
	}
	dM := in.MainOuterDiameterMM - in.MainWallMM
	if dM <= 0 {
		return Result{}, &DomainError{Step: 5, Reason: "main outer diameter must exceed the main wall"}
	}
	root := math.Sqrt(dM * mainWall)
	z := in.StubOuterDiameterMM / root
	phiOD := 0.0
	if z+1.75 != 0 {
		phiOD = 2 / (z + 1.75)
	}

	// 6. Strength factor phi_oc with the stub acting as reinforcement.
	denom := 2 * mainWall * root
	phiOC := phiOD
	if denom != 0 {
		phiOC = phiOD * (1 + fS/denom)
	}

	// 7. Reduced stress sigma at the opening.
	stressDiv := 2 * phiOC * mainWall
	if stressDiv == 0 {
		return Result{}, &DomainError{Step: 7, Reason: "zero strength factor leaves the reduced stress undefined"}
	}
	sigma := in.PressureMPa * (in.MainOuterDiameterMM - mainWall) / stressDiv

	// 8. Safety factor and verdict.
	safety := 0.0
	if sigma != 0 {
		safety = allowable / sigma
	}
	pass := sigma <= allowable

	notes := fmt.Sprintf("Strength condition satisfied: sigma = %.2f MPa <= [sigma] = %.2f MPa", sigma, allowable)
	if !pass {
		notes = fmt.Sprintf("Strength condition not satisfied: sigma = %.2f MPa > [sigma] = %.2f MPa", sigma, allowable)
	}

	steps := []Step{
		{1, "Allowable stress [sigma]", fmt.Sprintf("interpolated for %g C and %d h total service life", in.TemperatureC, totalHours), allowable, "MPa"},
		{2, "Constructive stub height h_s", fmt.Sprintf("sqrt(1.25 * (%g - %g) * (%g - %g))", in.StubOuterDiameterMM, in.StubWallMM, in.StubWallMM, in.CorrosionMM), hS, "mm"},
		{3, "Minimum stub wall s_os", fmt.Sprintf("(%g * %g) / (2 * %.2f * %g + %g)", in.PressureMPa, in.StubOuterDiameterMM, allowable, phiTemp, in.PressureMPa), sOS, "mm"},
		{4, "Reinforcement area f_s", fmt.Sprintf("2 * %.2f * ((%g - %g) - %.2f)", hS, in.StubWallMM, in.CorrosionMM, sOS), fS, "mm2"},
		{5, "Unreinforced opening factor phi_od", fmt.Sprintf("z = %g / sqrt(%.1f * %g) = %.3f; phi_od = 2 / (z + 1.75)", in.StubOuterDiameterMM, dM, mainWall, z), phiOD, ""},
		{6, "Reinforced opening factor phi_oc", fmt.Sprintf("%.3f * (1 + %.1f / %.1f)", phiOD, fS, denom), phiOC, ""},
		{7, "Reduced stress sigma", fmt.Sprintf("%g * (%g - %g) / (2 * %.3f * %g)", in.PressureMPa, in.MainOuterDiameterMM, mainWall, phiOC, mainWall), sigma, "MPa"},
		{8, "Safety factor", fmt.Sprintf("%.2f / %.2f", allowable, sigma), safety, ""},
	}

	stressStatus := "within limits"
	if sigma > allowable {
		stressStatus = "exceeded"
	}
	safetyStatus := "adequate"
	if safety < 1.0 {
		safetyStatus = "insufficient"
	}
	summary := []SummaryRow{
		{"Allowable stress [sigma], MPa", fmt.Sprintf("%.2f", allowable), "-"},
		{"Reduced stress sigma, MPa", fmt.Sprintf("%.2f", sigma), stressStatus},
		{"Strength factor phi_oc", fmt.Sprintf("%.3f", phiOC), "-"},
		{"Safety factor", fmt.Sprintf("%.2f", safety), safetyStatus},
	}

	return Result{
		TotalHours:           totalHours,
		AllowableStressMPa:   allowable,
		StubHeightMM:         hS,
		MinStubWallMM:        sOS,
		ReinforcementAreaMM2: fS,
		MeanDiameterMM:       dM,
		OpeningRatio:         z,
		UnreinforcedFactor:   phiOD,
		ReinforcedFactor:     phiOC,
		ReducedStressMPa:     sigma,
		SafetyFactor:         safety,
		OK:                   pass,
		Notes:                notes,
		Steps:                steps,
		Summary:              summary,
	}, nil
}
