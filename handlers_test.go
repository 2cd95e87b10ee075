package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
)

func TestReporteTipificacionRejectsBadPeriod(t *testing.T) {
	// reporting stays nil: an out-of-range period must be rejected
	// before the store is touched
	app := newTestApplication()

	tests := []map[string]string{
		{"year": "2024", "month": "0"},
		{"year": "2024", "month": "13"},
		{"year": "0", "month": "6"},
		{"year": "2024", "month": "marzo"},
		{"year": "veinte", "month": "6"},
	}

	for _, vars := range tests {
		req := mux.SetURLVars(httptest.NewRequest("GET", "/report/tipification", nil), vars)
		rec := httptest.NewRecorder()
		app.reporteTipificacion(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("year=%s month=%s: status = %d, want 400", vars["year"], vars["month"], rec.Code)
		}
	}
}
