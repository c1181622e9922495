// Package handler — export.go implements GET /export.
// Returns the user's trips as a flat table, one row per trip.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/nkoval/greencard-days/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "destination", "departure_date", "return_date",
	"days", "notes", "created_at",
}

// GetExport handles GET /export.
// Use ?format=csv to receive CSV; default is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	userID, ok := authedUser(w, r)
	if !ok {
		return
	}

	rows, err := s.export.Export(r.Context(), userID)
	if err != nil {
		internalError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, exportToJSON(rows))
}

// exportRowJSON is the JSON wire shape of one export row.
type exportRowJSON struct {
	TripID        int64  `json:"trip_id"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	Days          int    `json:"days"`
	Notes         string `json:"notes,omitempty"`
	CreatedAt     string `json:"created_at"`
}

func exportToJSON(rows []domain.ExportRow) []exportRowJSON {
	out := make([]exportRowJSON, 0, len(rows))
	for _, r := range rows {
		out = append(out, exportRowJSON{
			TripID:        r.TripID,
			Destination:   r.Destination,
			DepartureDate: r.DepartureDate,
			ReturnDate:    r.ReturnDate,
			Days:          r.Days,
			Notes:         r.Notes,
			CreatedAt:     r.CreatedAt,
		})
	}
	return out
}

// writeCSV encodes the rows as CSV, one trip per line after the header.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="trips.csv"`)

	cw := csv.NewWriter(w)

	//nolint:errcheck — the underlying ResponseWriter error surfaces on Flush.
	cw.Write(csvHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write([]string{
			strconv.FormatInt(r.TripID, 10),
			r.Destination,
			r.DepartureDate,
			r.ReturnDate,
			strconv.Itoa(r.Days),
			r.Notes,
			r.CreatedAt,
		})
	}
	cw.Flush()
}
