package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/unbound-force/plugreg/internal/taxonomy"
)

func TestRenderCheckContent_Empty(t *testing.T) {
	output := renderCheckContent(&taxonomy.Report{RegistryPath: "out/reg"})

	for _, want := range []string{"0 registered", "0 error(s)", "No conforming processors.", "not written", "out/reg"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestRenderCheckContent_WithResults(t *testing.T) {
	rpt := &taxonomy.Report{
		RegistryWritten: true,
		Registrations: []taxonomy.Registration{
			{Name: "example.com/p.Good", Shape: taxonomy.ExtendsBase, Location: "p.go:3:6", ProcessComplexity: 7},
		},
		Diagnostics: []taxonomy.Diagnostic{
			{Severity: taxonomy.SeverityError, Message: "example.com/p.Bad is neither extending", Location: "p.go:9:6"},
			{Severity: taxonomy.SeverityWarning, Message: "too complex"},
		},
	}

	output := renderCheckContent(rpt)
	for _, want := range []string{
		"1 registered", "1 error(s)", "example.com/p.Good", "extends_base", "7",
		"is neither extending", "p.go:9:6", "too complex", "registry written",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestCheckModel_Lifecycle(t *testing.T) {
	m := newCheckModel(&taxonomy.Report{})
	if m.Init() != nil {
		t.Error("Init should return no command")
	}
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(checkModel)
	if !m.ready {
		t.Fatal("model should be ready after WindowSizeMsg")
	}
	if !strings.Contains(m.View(), "No conforming processors.") {
		t.Errorf("view missing content:\n%s", m.View())
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	m = next.(checkModel)
	if !m.help.ShowAll {
		t.Error("? should toggle full help")
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
