package formatter

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/varray"
)

func TestFormatFitsLine(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := varray.From("In", "the", "beginning", "God")
	var sb strings.Builder
	err := Format(l, &sb, &Config{LineWidth: 80, Context: uax11.LatinContext}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if sb.String() != l.String()+"\n" {
		t.Errorf("expected single line %q, got %q", l.String(), sb.String())
	}
}

func TestFormatBreaksBetweenElements(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := varray.From("alpha", "beta", "gamma")
	var sb strings.Builder
	err := Format(l, &sb, &Config{LineWidth: 12, Context: uax11.LatinContext}, Plain{})
	if err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	t.Logf("\n%s", out)
	if got := strings.ReplaceAll(out, "\n", ""); got != l.String() {
		t.Errorf("line breaks changed the text: %q", got)
	}
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len(line) > 12 {
			t.Errorf("line %q exceeds line width", line)
		}
	}
}

func TestFormatLongElement(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := varray.From("The quick brown fox jumps over the lazy dog", "!")
	var sb strings.Builder
	err := Format(l, &sb, &Config{LineWidth: 15, Context: uax11.LatinContext}, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", sb.String())
	if got := strings.ReplaceAll(sb.String(), "\n", ""); got != l.String() {
		t.Errorf("line breaks changed the text: %q", got)
	}
}

func TestFormatEmptyWithCapacity(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := varray.New[int]()
	var sb strings.Builder
	err := Format(l, &sb, &Config{LineWidth: 40, ShowCapacity: true}, Plain{})
	if err != nil {
		t.Fatal(err)
	}
	if sb.String() != "[] ‹0/1›\n" {
		t.Errorf("unexpected output %q", sb.String())
	}
}

func TestConsoleWithoutColors(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()
	l := varray.From(1, 2, 3)
	var sb strings.Builder
	if err := NewConsole(nil).Fprint(&sb, l, &Config{LineWidth: 40}); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "[1, 2, 3]\n" {
		t.Errorf("unexpected console output %q", sb.String())
	}
}

func TestConfigFromTerminal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	config := ConfigFromTerminal()
	if config.LineWidth < 10 {
		t.Errorf("expected sensible line width, got %d", config.LineWidth)
	}
}

func TestFormatKeepsDelimiterWithinLine(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l := varray.From("The quick brown fox", "x")
	var sb strings.Builder
	err := Format(l, &sb, &Config{LineWidth: 10, Context: uax11.LatinContext}, Plain{})
	if err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	t.Logf("\n%s", out)
	if got := strings.ReplaceAll(out, "\n", ""); got != l.String() {
		t.Errorf("line breaks changed the text: %q", got)
	}
	for _, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if len(line) > 10 {
			t.Errorf("line %q exceeds line width 10", line)
		}
	}
}
