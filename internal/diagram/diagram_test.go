package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alpenrose85-eng/troynik/internal/rd10249"
)

func TestAscii(t *testing.T) {
	chart := Ascii(rd10249.Steel12Kh1MF(), 10)
	if !strings.Contains(chart, "12Х1МФ") {
		t.Error("chart does not name the steel grade")
	}
	if !strings.Contains(chart, "10000 h") || !strings.Contains(chart, "400000 h") {
		t.Error("chart does not list the duration series")
	}
	if len(strings.Split(chart, "\n")) < 10 {
		t.Errorf("chart looks too small:\n%s", chart)
	}
}

func TestAsciiEmptyTable(t *testing.T) {
	empty := rd10249.New("none", []float64{100, 200, 300}, []float64{1e4}, [][]float64{{0}, {0}, {0}})
	if got := Ascii(empty, 10); !strings.Contains(got, "empty") {
		t.Errorf("Ascii on an all-gap table = %q, want an empty-table notice", got)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stress.png")
	if err := SavePNG(rd10249.Steel12Kh1MF(), path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("image file is empty")
	}
}

func TestSavePNGAddsExtension(t *testing.T) {
	base := filepath.Join(t.TempDir(), "stress")
	if err := SavePNG(rd10249.Steel12Kh1MF(), base); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	if _, err := os.Stat(base + ".png"); err != nil {
		t.Errorf("expected %s.png to exist: %v", base, err)
	}
}
