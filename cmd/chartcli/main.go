// chartcli generates the psychrometric chart curve set for a site altitude
// and writes it as CSV or an xlsx workbook, for plotting outside the service.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/akamensky/argparse"

	"Psychro/internal/calc/export"
	"Psychro/internal/chart"
	"Psychro/internal/psychro"
)

func main() {
	parser := argparse.NewParser("chartcli", "Generates psychrometric chart curves for a site altitude")

	altitude := parser.FloatPositional(&argparse.Options{
		Default: 0.0,
		Help:    "Site altitude in meters (0 to 5000)"})

	format := parser.Selector("f", "format", []string{"CSV", "XLSX"}, &argparse.Options{
		Default: "CSV",
		Help:    "Output format"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path (CSV defaults to stdout)"})

	if err := parser.Parse(os.Args); err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	if *altitude < 0 || *altitude > 5000 {
		fmt.Fprintln(os.Stderr, "Error: altitude must be between 0 and 5000 m")
		os.Exit(1)
	}

	p := psychro.PressureFromAltitude(*altitude)
	set := chart.Generate(p)
	fmt.Fprintf(os.Stderr, "pressure at %.0f m: %.0f Pa\n", *altitude, p)

	switch *format {
	case "XLSX":
		if *filename == "" {
			fmt.Fprintln(os.Stderr, "Error: XLSX output requires --output")
			os.Exit(1)
		}
		f, err := export.ToXLSX(set)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		if err := f.SaveAs(*filename); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	default:
		buf := bytes.NewBuffer(nil)
		export.ToCSV(set, buf)
		if *filename == "" {
			fmt.Print(buf.String())
			return
		}
		if err := os.WriteFile(*filename, buf.Bytes(), 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}
