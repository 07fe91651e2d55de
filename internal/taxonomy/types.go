// Package taxonomy defines the shared data model for plugreg: the
// shape a marked type was classified as, diagnostics, registrations
// and the check report, plus stable ID generation.
package taxonomy

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"
)

// Shape is the relationship a marked type has with the plugin
// contract.
type Shape string

// Shape constants.
const (
	// ExtendsBase means the type embeds the convenience base and only
	// has to declare Process.
	ExtendsBase Shape = "extends_base"

	// ImplementsContract means the type (or a pointer to it) is
	// assignable to the contract interface and has to declare every
	// contract method itself.
	ImplementsContract Shape = "implements_contract"

	// Neither means the type has no relationship with the contract.
	Neither Shape = "neither"
)

// Severity of a diagnostic.
type Severity string

// Severity constants.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Diagnostic is one message emitted against a marked type.
type Diagnostic struct {
	// ID is a stable identifier for diffing across runs.
	// Generated from sha256(type+operation+message).
	ID string `json:"id"`

	// Severity is always SeverityError for conformance problems.
	Severity Severity `json:"severity"`

	// Type is the qualified name of the offending declaration.
	Type string `json:"type"`

	// Operation is the contract method the diagnostic is about.
	// Empty when the type has no relationship with the contract.
	Operation string `json:"operation,omitempty"`

	// Message is the user-facing text.
	Message string `json:"message"`

	// Location is the source position (file:line:col) of the type
	// declaration.
	Location string `json:"location"`
}

// String renders the diagnostic like a compiler message.
func (d Diagnostic) String() string {
	if d.Location == "" {
		return fmt.Sprintf("%s: %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Severity, d.Message)
}

// Registration is a marked type that conformed to the contract.
type Registration struct {
	// Name is the qualified name written to the registry.
	Name string `json:"name"`

	// Shape is how the type satisfies the contract.
	Shape Shape `json:"shape"`

	// Location is the source position of the type declaration.
	Location string `json:"location"`

	// Round is the 1-based round the type was discovered in.
	Round int `json:"round"`

	// ProcessComplexity is the cyclomatic complexity of the type's
	// Process method. Zero when it could not be computed.
	ProcessComplexity int `json:"process_complexity"`
}

// Report is the complete output of one check invocation.
type Report struct {
	// RegistryPath is the path of the registry file, whether or not
	// it was written.
	RegistryPath string `json:"registry_path"`

	// RegistryWritten reports whether this invocation wrote the
	// registry file.
	RegistryWritten bool `json:"registry_written"`

	// Registrations lists conforming types in discovery order.
	Registrations []Registration `json:"registrations"`

	// Diagnostics lists every diagnostic in emission order.
	Diagnostics []Diagnostic `json:"diagnostics"`

	// Metadata contains run information.
	Metadata Metadata `json:"metadata"`
}

// Failed reports whether any error diagnostic was emitted.
func (r *Report) Failed() bool {
	return CountSeverity(r.Diagnostics, SeverityError) > 0
}

// Metadata holds check run metadata.
type Metadata struct {
	PlugregVersion string        `json:"plugreg_version"`
	GoVersion      string        `json:"go_version"`
	Rounds         int           `json:"rounds"`
	Timestamp      time.Time     `json:"-"`
	Duration       time.Duration `json:"-"`
	Warnings       []string      `json:"warnings"`
}

// MarshalJSON customizes JSON encoding to use duration_ms and
// ISO 8601 timestamp.
func (m Metadata) MarshalJSON() ([]byte, error) {
	type Alias Metadata
	ts := ""
	if !m.Timestamp.IsZero() {
		ts = m.Timestamp.UTC().Format(time.RFC3339)
	}
	return json.Marshal(&struct {
		Alias
		DurationMS int64  `json:"duration_ms"`
		Timestamp  string `json:"timestamp,omitempty"`
	}{
		Alias:      Alias(m),
		DurationMS: m.Duration.Milliseconds(),
		Timestamp:  ts,
	})
}

// GenerateID produces a stable, deterministic ID for a diagnostic.
// The ID is a sha256 hash truncated to 8 hex characters, prefixed
// with "dg-".
func GenerateID(typeName, operation, message string) string {
	input := fmt.Sprintf("%s:%s:%s", typeName, operation, message)
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("dg-%x", hash[:4])
}
