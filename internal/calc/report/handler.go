package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	"Psychro/internal/calc/process"
)

type Input struct {
	Project   string           `json:"project"`
	Author    string           `json:"author"`
	Title     string           `json:"title"`
	AltitudeM float64          `json:"altitude_m"`
	Processes []process.Result `json:"processes"`
	Notes     string           `json:"notes"`
}

type Handler struct{}

// Generate renders a process-analysis report: one line per recorded process
// with both end states, the enthalpy change and the equivalent power at a dry
// air mass flow of 1 kg/s.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Title == "" {
		input.Title = "Psychrometric Process Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, input.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Site altitude: %.0f m", input.AltitudeM))
	pdf.Ln(10)

	if len(input.Processes) == 0 {
		pdf.Cell(0, 6, "No processes recorded.")
		pdf.Ln(8)
	}
	for i, p := range input.Processes {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, fmt.Sprintf("Process %d (%s)", i+1, p.Direction))
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 5, fmt.Sprintf("  A: %.1f C, w = %.4f kg/kg, h = %.2f kJ/kg",
			p.A.DryBulbC, p.A.HumidityRatio, p.EnthalpyA))
		pdf.Ln(5)
		pdf.Cell(0, 5, fmt.Sprintf("  B: %.1f C, w = %.4f kg/kg, h = %.2f kJ/kg",
			p.B.DryBulbC, p.B.HumidityRatio, p.EnthalpyB))
		pdf.Ln(5)
		pdf.Cell(0, 5, fmt.Sprintf("  Delta h = %.2f kJ/kg dry air, power at 1 kg/s: %.2f kW",
			p.DeltaHKJ, p.PowerKW))
		pdf.Ln(8)
	}

	if input.Notes != "" {
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 6, input.Notes, "", "L", false)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"process_report.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}
