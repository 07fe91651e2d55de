package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/plugreg/internal/taxonomy"
)

// tableWidth is the widest the registration table renders, so that
// it fits 80 columns.
const tableWidth = 76

// minName is the smallest TYPE column shortening goes down to.
const minName = 20

var regHeaders = []string{"TYPE", "SHAPE", "CX", "ROUND"}

// WriteText writes a check report as human-readable styled text to
// the writer. Output uses lipgloss for color and formatting when the
// output is a TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, rpt *taxonomy.Report) error {
	if rpt == nil {
		rpt = &taxonomy.Report{}
	}
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render("=== plugreg check ==="))
	fmt.Fprintln(w, s.SubHeader.Render(fmt.Sprintf("    %d round(s), registry %s",
		rpt.Metadata.Rounds, rpt.RegistryPath)))

	for _, warn := range rpt.Metadata.Warnings {
		fmt.Fprintln(w, s.Warning.Render("    warning: "+warn))
	}
	fmt.Fprintln(w)

	writeRegistrations(w, rpt.Registrations, s)
	writeDiagnostics(w, rpt.Diagnostics, s)
	writeSummary(w, rpt, s)
	return nil
}

func writeRegistrations(w io.Writer, regs []taxonomy.Registration, s Styles) {
	if len(regs) == 0 {
		fmt.Fprintln(w, s.Muted.Render("    No conforming processors."))
		fmt.Fprintln(w)
		return
	}

	rows := make([][]string, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, []string{
			r.Name,
			string(r.Shape),
			fmt.Sprintf("%d", r.ProcessComplexity),
			fmt.Sprintf("%d", r.Round),
		})
	}
	budget := nameBudget(rows)
	for _, row := range rows {
		row[0] = shorten(row[0], budget)
	}

	// No fixed table width: lipgloss would wrap cells to meet it.
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.TableHeader
			}
			if col == 1 && row >= 0 && row < len(regs) {
				return s.ShapeStyle(regs[row].Shape)
			}
			return s.TableCell
		}).
		Headers(regHeaders...).
		Rows(rows...)

	fmt.Fprintln(w, t)
	fmt.Fprintln(w)
}

func writeDiagnostics(w io.Writer, diags []taxonomy.Diagnostic, s Styles) {
	if len(diags) == 0 {
		return
	}
	fmt.Fprintln(w, s.Header.Render("Diagnostics"))
	for _, d := range diags {
		sev := s.SeverityStyle(d.Severity).Render(string(d.Severity))
		if d.Location != "" {
			fmt.Fprintf(w, "  %s: %s: %s\n", s.Muted.Render(d.Location), sev, d.Message)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", sev, d.Message)
	}
	fmt.Fprintln(w)
}

func writeSummary(w io.Writer, rpt *taxonomy.Report, s Styles) {
	status := s.Pass.Render("PASS")
	if rpt.Failed() {
		status = s.Fail.Render("FAIL")
	}
	written := "not written"
	if rpt.RegistryWritten {
		written = "written"
	}

	fmt.Fprintf(w, "%s%s\n", s.SummaryLabel.Render("Status:"), status)
	fmt.Fprintf(w, "%s%s\n", s.SummaryLabel.Render("Registered:"),
		s.SummaryValue.Render(fmt.Sprintf("%d", len(rpt.Registrations))))
	fmt.Fprintf(w, "%s%s\n", s.SummaryLabel.Render("Errors:"),
		s.SummaryValue.Render(fmt.Sprintf("%d", taxonomy.CountSeverity(rpt.Diagnostics, taxonomy.SeverityError))))
	fmt.Fprintf(w, "%s%s\n", s.SummaryLabel.Render("Registry:"), s.SummaryValue.Render(written))
}

// nameBudget returns how wide a TYPE cell may be once the other
// columns, the borders and the cell padding are accounted for.
func nameBudget(rows [][]string) int {
	used := len(regHeaders) + 1 // vertical borders
	used++                      // TYPE cell padding
	for col := 1; col < len(regHeaders); col++ {
		w := lipgloss.Width(regHeaders[col])
		for _, r := range rows {
			if n := lipgloss.Width(r[col]) + 1; n > w {
				w = n
			}
		}
		used += w
	}
	return max(tableWidth-used, minName)
}

// shorten keeps the tail of a qualified name, where the type name is.
func shorten(name string, limit int) string {
	if len(name) <= limit {
		return name
	}
	return "..." + name[len(name)-limit+3:]
}
