package batch

import (
	"errors"
	"strings"
	"testing"

	"github.com/alpenrose85-eng/troynik/internal/calc/stub"
	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

func surveyItem() stub.Input {
	return stub.Input{
		MainOuterDiameterMM: 325,
		MainWallMM:          38,
		StubOuterDiameterMM: 93,
		StubWallMM:          21.5,
		PressureMPa:         14,
		TemperatureC:        545,
		ElapsedHours:        219142,
		PlannedHours:        50000,
	}
}

func TestCalculateStubKeepsOrder(t *testing.T) {
	table := rd10249.Steel12Kh1MF()
	first := surveyItem()
	second := surveyItem()
	second.PressureMPa = 10
	third := surveyItem()
	third.MainWallMM = 60

	res, err := CalculateStub(StubBatchInput{Items: []stub.Input{first, second, third}}, table)
	if err != nil {
		t.Fatalf("CalculateStub: %v", err)
	}
	if len(res.Results) != 3 {
		t.Fatalf("len(Results) = %d, want 3", len(res.Results))
	}
	if res.Results[0].OK {
		t.Error("Results[0].OK = true, want the overstressed joint to fail")
	}
	if !res.Results[1].OK {
		t.Error("Results[1].OK = false, want the lower pressure joint to pass")
	}
	if !res.Results[2].OK {
		t.Error("Results[2].OK = false, want the thick-walled joint to pass")
	}
}

func TestCalculateStubEmpty(t *testing.T) {
	if _, err := CalculateStub(StubBatchInput{}, rd10249.Steel12Kh1MF()); err == nil {
		t.Error("CalculateStub with no items: err = nil, want an error")
	}
}

func TestCalculateStubStopsAtFirstFailure(t *testing.T) {
	table := rd10249.Steel12Kh1MF()
	bad := surveyItem()
	bad.TemperatureC = 20
	bad.ElapsedHours = 350000

	_, err := CalculateStub(StubBatchInput{Items: []stub.Input{surveyItem(), bad, surveyItem()}}, table)
	if !errors.Is(err, stub.ErrStressUndeterminable) {
		t.Fatalf("err = %v, want ErrStressUndeterminable", err)
	}
	if !strings.Contains(err.Error(), "item 2") {
		t.Errorf("err = %q, want the failing item named", err)
	}
}
