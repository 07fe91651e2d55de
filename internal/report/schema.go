package report

// Schema is the JSON Schema (Draft 2020-12) for the plugreg check
// JSON output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/plugreg/check-report.schema.json",
  "title": "plugreg Check Report",
  "description": "Output schema for plugreg check --format=json",
  "type": "object",
  "required": ["version", "registry_path", "registry_written", "registrations", "diagnostics", "metadata"],
  "properties": {
    "version": {
      "type": "string",
      "description": "plugreg version (semver)"
    },
    "registry_path": {
      "type": "string",
      "description": "Path of the service registry file"
    },
    "registry_written": {
      "type": "boolean",
      "description": "Whether this run wrote the registry file"
    },
    "registrations": {
      "type": "array",
      "items": { "$ref": "#/$defs/Registration" }
    },
    "diagnostics": {
      "type": "array",
      "items": { "$ref": "#/$defs/Diagnostic" }
    },
    "metadata": { "$ref": "#/$defs/Metadata" }
  },
  "$defs": {
    "Registration": {
      "type": "object",
      "required": ["name", "shape", "location", "round", "process_complexity"],
      "properties": {
        "name": {
          "type": "string",
          "description": "Qualified name written to the registry"
        },
        "shape": {
          "type": "string",
          "enum": ["extends_base", "implements_contract"]
        },
        "location": {
          "type": "string",
          "description": "Source position (file:line:col)"
        },
        "round": {
          "type": "integer",
          "minimum": 1,
          "description": "Round the type was discovered in"
        },
        "process_complexity": {
          "type": "integer",
          "minimum": 0,
          "description": "Cyclomatic complexity of the Process method"
        }
      }
    },
    "Diagnostic": {
      "type": "object",
      "required": ["id", "severity", "type", "message", "location"],
      "properties": {
        "id": {
          "type": "string",
          "pattern": "^dg-[0-9a-f]{8}$",
          "description": "Stable identifier (dg-XXXXXXXX)"
        },
        "severity": {
          "type": "string",
          "enum": ["error", "warning", "note"]
        },
        "type": {
          "type": "string",
          "description": "Qualified name of the offending type"
        },
        "operation": {
          "type": "string",
          "description": "Contract method the diagnostic is about"
        },
        "message": { "type": "string" },
        "location": {
          "type": "string",
          "description": "Source position"
        }
      }
    },
    "Metadata": {
      "type": "object",
      "required": ["plugreg_version", "go_version", "rounds", "duration_ms"],
      "properties": {
        "plugreg_version": { "type": "string" },
        "go_version": { "type": "string" },
        "rounds": {
          "type": "integer",
          "minimum": 0
        },
        "timestamp": {
          "type": "string",
          "description": "Run start (RFC 3339)"
        },
        "duration_ms": {
          "type": "integer",
          "description": "Check duration in milliseconds"
        },
        "warnings": {
          "oneOf": [
            { "type": "array", "items": { "type": "string" } },
            { "type": "null" }
          ],
          "description": "Ignored directives, if any"
        }
      }
    }
  }
}`
