package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alpenrose85-eng/troynik/internal/rd10249"
	"github.com/xuri/excelize/v2"
)

func TestParseStubRow(t *testing.T) {
	full := []string{"325", "38", "93", "21.5", "14", "545", "219142", "50000", "1.5"}
	in, err := parseStubRow(full)
	if err != nil {
		t.Fatalf("parseStubRow: %v", err)
	}
	if in.MainOuterDiameterMM != 325 || in.StubWallMM != 21.5 || in.CorrosionMM != 1.5 {
		t.Errorf("parsed input = %+v, want the row values", in)
	}
	if in.ElapsedHours != 219142 || in.PlannedHours != 50000 {
		t.Errorf("parsed hours = %d/%d, want 219142/50000", in.ElapsedHours, in.PlannedHours)
	}

	noCorrosion := full[:8]
	in, err = parseStubRow(noCorrosion)
	if err != nil {
		t.Fatalf("parseStubRow without c: %v", err)
	}
	if in.CorrosionMM != 0 {
		t.Errorf("CorrosionMM = %v, want the default 0", in.CorrosionMM)
	}

	if _, err := parseStubRow([]string{"325", "38"}); err == nil {
		t.Error("short row parsed, want an error")
	}
	broken := append([]string{}, full...)
	broken[4] = "fourteen"
	if _, err := parseStubRow(broken); err == nil {
		t.Error("unparseable pressure accepted, want an error")
	}
}

func TestStubImportSkipsBrokenRows(t *testing.T) {
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	wb.SetSheetRow(sheet, "A1", &[]interface{}{"D_a", "s", "d_a", "s_s", "p", "T", "elapsed_h", "planned_h", "c"})
	wb.SetSheetRow(sheet, "A2", &[]interface{}{325, 38, 93, 21.5, 14, 545, 219142, 50000, 0})
	wb.SetSheetRow(sheet, "A3", &[]interface{}{325, 60, 93, 21.5, 14, 545, 219142, 50000})
	wb.SetSheetRow(sheet, "A4", &[]interface{}{"broken", 38, 93, 21.5, 14, 545, 219142, 50000})
	// Outside the stress table: parses fine, fails the check, skipped.
	wb.SetSheetRow(sheet, "A5", &[]interface{}{325, 38, 93, 21.5, 14, 20, 350000, 50000})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "joints.xlsx")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if err := wb.Write(fw); err != nil {
		t.Fatalf("writing workbook: %v", err)
	}
	mw.Close()

	h := &Handler{Table: rd10249.Steel12Kh1MF()}
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/stub/import", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Stub(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var res StubImportResult
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if res.Count != 2 || len(res.Results) != 2 {
		t.Fatalf("Count = %d with %d results, want 2 good rows", res.Count, len(res.Results))
	}
	if res.Results[0].OK {
		t.Error("Results[0].OK = true, want the overstressed joint to fail")
	}
	if !res.Results[1].OK {
		t.Error("Results[1].OK = false, want the thick-walled joint to pass")
	}
}

func TestStubImportRejectsMissingFile(t *testing.T) {
	h := &Handler{Table: rd10249.Steel12Kh1MF()}
	req := httptest.NewRequest(http.MethodPost, "/api/user/tools/stub/import", bytes.NewBufferString("no file here"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")
	rec := httptest.NewRecorder()
	h.Stub(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
