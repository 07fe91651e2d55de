// Package registry encodes and decodes the service registry file
// that lists the processors a host should load.
package registry

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// Dir is the directory, relative to the output root, holding
// service registry files.
const Dir = "META-INF/services"

// Path returns the slash-separated path, relative to the output root,
// of the registry file for the service with the given qualified name.
func Path(service string) string {
	return path.Join(Dir, service)
}

// LineSeparator is the platform line separator used when encoding.
var LineSeparator = lineSeparator(runtime.GOOS)

func lineSeparator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Encode renders names one per line, each followed by
// LineSeparator, in the given order.
func Encode(names []string) []byte {
	var buf bytes.Buffer
	for _, name := range names {
		buf.WriteString(name)
		buf.WriteString(LineSeparator)
	}
	return buf.Bytes()
}

// Decode reads registry entries from r. Either line separator is
// accepted; blank lines are skipped.
func Decode(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading registry: %w", err)
	}
	return names, nil
}

// File returns the OS path of the service's registry file under root.
func File(root, service string) string {
	return filepath.Join(root, filepath.FromSlash(Path(service)))
}

// Read decodes the service's registry file under root.
func Read(root, service string) ([]string, error) {
	f, err := os.Open(File(root, service))
	if err != nil {
		return nil, fmt.Errorf("opening registry: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
