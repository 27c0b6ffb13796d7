package httpadapter

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/echoenvoy/sudoku-solver/internal/solver"
	"github.com/echoenvoy/sudoku-solver/internal/usecase"
	"github.com/echoenvoy/sudoku-solver/internal/validator"
)

var classic = [][]int{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func testEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	uc := usecase.NewService(solver.NewBacktracker(), nil, validator.New(), nil)
	e := gin.New()
	New(uc).Register(e)
	return e
}

func postJSON(t *testing.T, e *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestSolveEndpoint(t *testing.T) {
	e := testEngine()
	w := postJSON(t, e, "/api/v1/solve", solveReq{Size: 9, Cells: classic, Strategy: "mrv"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	var resp solveResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Outcome != "solved" {
		t.Fatalf("outcome = %q, want solved (error=%q)", resp.Outcome, resp.Error)
	}
	want := []int{5, 3, 4, 6, 7, 8, 9, 1, 2}
	for i, v := range want {
		if resp.Cells[0][i] != v {
			t.Fatalf("first row = %v, want %v", resp.Cells[0], want)
		}
	}
	if resp.Calls == 0 {
		t.Fatal("telemetry missing: zero calls reported")
	}
}

func TestSolveEndpointRejectsConflict(t *testing.T) {
	e := testEngine()
	bad := make([][]int, 9)
	for r := range classic {
		bad[r] = append([]int(nil), classic[r]...)
	}
	bad[8][8] = 5
	w := postJSON(t, e, "/api/v1/solve", solveReq{Size: 9, Cells: bad})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestValidateEndpointReportsConflictCell(t *testing.T) {
	e := testEngine()
	bad := make([][]int, 9)
	for r := range classic {
		bad[r] = append([]int(nil), classic[r]...)
	}
	bad[8][8] = 5
	w := postJSON(t, e, "/api/v1/validate", validateReq{Size: 9, Cells: bad})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp validateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.OK {
		t.Fatal("conflicting board reported as valid")
	}
	if resp.Conflict == nil || resp.Conflict.Col != 8 || resp.Value != 5 {
		t.Fatalf("conflict = %+v value = %d, want value 5 in column 8", resp.Conflict, resp.Value)
	}
}

func TestValidateEndpointAcceptsValid(t *testing.T) {
	e := testEngine()
	w := postJSON(t, e, "/api/v1/validate", validateReq{Size: 9, Cells: classic})
	var resp validateResp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.OK {
		t.Fatalf("valid board rejected: %s", w.Body.String())
	}
}
