// Command assess evaluates the Polar Risk Index for one set of readings and
// prints the result.
//
// Usage:
//
//	go run ./cmd/assess -sic 65 -drift 12 -wind 8
//	go run ./cmd/assess -sic 90 -drift 25 -wind 20 -date 2026-01-15 -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/couchcryptid/polar-risk-service/internal/domain"
	"github.com/jonboulle/clockwork"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("assess", flag.ContinueOnError)
	fs.SetOutput(stderr)
	sic := fs.Float64("sic", 65, "sea-ice concentration (0-100 %)")
	drift := fs.Float64("drift", 12, "ice drift speed (0-30 km/day)")
	wind := fs.Float64("wind", 8, "wind speed (0-25 m/s)")
	date := fs.String("date", "", "fix the assessment date (YYYY-MM-DD) instead of today")
	asJSON := fs.Bool("json", false, "print the assessment as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *date != "" {
		day, err := time.Parse(time.DateOnly, *date)
		if err != nil {
			fmt.Fprintf(stderr, "invalid -date %q: %v\n", *date, err)
			return 2
		}
		domain.SetClock(clockwork.NewFakeClockAt(day))
		defer domain.SetClock(nil)
	}

	a, err := domain.Assess(domain.Readings{
		SeaIceConcentration: *sic,
		DriftSpeed:          *drift,
		WindSpeed:           *wind,
	})
	if err != nil {
		fmt.Fprintf(stderr, "FATAL: %v\n", err)
		return 1
	}

	if *asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(a); err != nil {
			fmt.Fprintf(stderr, "FATAL: encode assessment: %v\n", err)
			return 1
		}
		return 0
	}

	printReport(stdout, a)
	return 0
}

func printReport(w io.Writer, a domain.Assessment) {
	fmt.Fprintf(w, "=== Polar Risk Index (%s) ===\n", a.DateString())
	fmt.Fprintf(w, "  %-24s %6.1f %%\n", "Sea-ice concentration", a.Readings.SeaIceConcentration)
	fmt.Fprintf(w, "  %-24s %6.1f km/day\n", "Ice drift speed", a.Readings.DriftSpeed)
	fmt.Fprintf(w, "  %-24s %6.1f m/s\n", "Wind speed", a.Readings.WindSpeed)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Risk index: %.1f / 100\n", a.RiskIndex)
	fmt.Fprintf(w, "Status:     %s\n", a.Status)
	fmt.Fprintf(w, "Guidance:   %s\n", a.Guidance)
}
