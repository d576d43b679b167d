package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/Nomadcxx/slotsheet/internal/csvout"
	"github.com/Nomadcxx/slotsheet/internal/logging"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// TableResponse is returned by POST /convert?format=json.
type TableResponse struct {
	Header   []string   `json:"header"`
	Rows     [][]string `json:"rows"`
	Lines    int        `json:"lines"`
	Skipped  int        `json:"skipped"`
	Segments int        `json:"segments"`
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
}

// HandleConvert reads the raw report from the body and answers with CSV, or
// with JSON when format=json.
func (s *Server) HandleConvert(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "read_failed", err.Error())
		return
	}

	res := s.converter.Convert(string(body))
	s.log.Debug(component, "converted",
		logging.F("people", len(res.Table.People)),
		logging.F("slots", len(res.Table.Slots)),
		logging.F("skipped", res.Stats.Skipped),
	)

	switch r.URL.Query().Get("format") {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if err := csvout.Write(w, res.Table.Records()); err != nil {
			s.log.Error(component, "write response", err)
		}
	case "json":
		writeJSON(w, http.StatusOK, TableResponse{
			Header:   res.Table.Header,
			Rows:     res.Table.Rows,
			Lines:    res.Stats.Lines,
			Skipped:  res.Stats.Skipped,
			Segments: res.Stats.Segments,
		})
	default:
		writeError(w, http.StatusBadRequest, "unknown_format", "format must be csv or json")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"code":    code,
		"message": message,
	})
}
