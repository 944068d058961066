package importer

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/xuri/excelize/v2"

	"Psychro/internal/calc/point"
	"Psychro/internal/calc/premium/batch"
)

type Handler struct{}

type PointImportResult struct {
	Count   int                    `json:"count"`
	Results []batch.PointBatchItem `json:"results"`
}

// Points reads an xlsx upload with one header row and three columns per data
// row (altitude m, dry-bulb °C, relative humidity %) and computes the
// moist-air state for each. Malformed rows are skipped.
func (h *Handler) Points(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	f, err := excelize.OpenReader(file)
	if err != nil {
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		http.Error(w, "Empty sheet", http.StatusBadRequest)
		return
	}

	var results []batch.PointBatchItem
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}
		input, err := parsePointRow(row)
		if err != nil {
			continue
		}
		res, err := point.Calculate(input)
		if errors.Is(err, point.ErrPointUndefined) {
			results = append(results, batch.PointBatchItem{Undefined: true})
			continue
		}
		if err != nil {
			continue
		}
		results = append(results, batch.PointBatchItem{Result: &res})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(PointImportResult{Count: len(results), Results: results})
}

func parsePointRow(row []string) (point.Input, error) {
	alt, err := strconv.ParseFloat(row[0], 64)
	if err != nil {
		return point.Input{}, fmt.Errorf("altitude: %w", err)
	}
	tdb, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return point.Input{}, fmt.Errorf("dry-bulb: %w", err)
	}
	rh, err := strconv.ParseFloat(row[2], 64)
	if err != nil {
		return point.Input{}, fmt.Errorf("relative humidity: %w", err)
	}
	return point.Input{AltitudeM: alt, DryBulbC: tdb, RelHumPct: rh}, nil
}
