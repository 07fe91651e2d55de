package report

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/unbound-force/plugreg/internal/taxonomy"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers (e.g. "=== plugreg check ===").
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// ShapeBase and ShapeContract color-code registration shapes.
	ShapeBase     lipgloss.Style
	ShapeContract lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Error, Warning and Note style diagnostic severities.
	Error   lipgloss.Style
	Warning lipgloss.Style
	Note    lipgloss.Style

	// SummaryLabel styles summary line labels.
	SummaryLabel lipgloss.Style

	// SummaryValue styles summary line values.
	SummaryValue lipgloss.Style

	// Pass styles PASS indicators.
	Pass lipgloss.Style

	// Fail styles FAIL indicators.
	Fail lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		ShapeBase:     lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		ShapeContract: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Note:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		SummaryLabel: lipgloss.NewStyle().Bold(true).Width(20),
		SummaryValue: lipgloss.NewStyle(),

		Pass: lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Fail: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// ShapeStyle returns the style for a registration shape.
func (s Styles) ShapeStyle(shape taxonomy.Shape) lipgloss.Style {
	switch shape {
	case taxonomy.ExtendsBase:
		return s.ShapeBase
	case taxonomy.ImplementsContract:
		return s.ShapeContract
	default:
		return s.Muted
	}
}

// SeverityStyle returns the style for a diagnostic severity.
func (s Styles) SeverityStyle(sev taxonomy.Severity) lipgloss.Style {
	switch sev {
	case taxonomy.SeverityError:
		return s.Error
	case taxonomy.SeverityWarning:
		return s.Warning
	default:
		return s.Note
	}
}
