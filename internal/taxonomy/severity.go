package taxonomy

// Rank orders severities for display, most severe first.
func Rank(s Severity) int {
	r, ok := rankMap[s]
	if !ok {
		return len(rankMap) // unknown severities sort last
	}
	return r
}

var rankMap = map[Severity]int{
	SeverityError:   0,
	SeverityWarning: 1,
	SeverityNote:    2,
}

// CountSeverity counts the diagnostics with severity s.
func CountSeverity(diags []Diagnostic, s Severity) int {
	n := 0
	for _, d := range diags {
		if d.Severity == s {
			n++
		}
	}
	return n
}
