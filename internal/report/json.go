// Package report provides output formatters for plugreg check
// results in JSON and human-readable text formats.
package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/plugreg/internal/taxonomy"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version string `json:"version"`
	*taxonomy.Report
}

// WriteJSON writes a check report as formatted JSON to the writer.
func WriteJSON(w io.Writer, rpt *taxonomy.Report, version string) error {
	if rpt == nil {
		rpt = &taxonomy.Report{}
	}
	out := *rpt
	if out.Registrations == nil {
		out.Registrations = []taxonomy.Registration{}
	}
	if out.Diagnostics == nil {
		out.Diagnostics = []taxonomy.Diagnostic{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(JSONReport{Version: version, Report: &out})
}
