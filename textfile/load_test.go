package textfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/varray"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "genesis.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name
}

func TestLoad(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	name := writeFile(t, "In the beginning\r\nGod created\n\nthe heaven and the earth.\n")
	lines, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if lines.Size() != 4 {
		t.Fatalf("expected 4 lines, got %d: %s", lines.Size(), lines)
	}
	if got := lines.String(); got != "[In the beginning, God created, , the heaven and the earth.]" {
		t.Errorf("unexpected lines %s", got)
	}
	if !lines.CheckConsistency() {
		t.Errorf("loaded list is inconsistent: %v", lines.Check())
	}
}

func TestLoaderBroadcastsProgress(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	name := writeFile(t, "one\ntwo\nthree")
	ld, err := NewLoader(name)
	if err != nil {
		t.Fatal(err)
	}
	ch, ok := ld.Subscribe(nil, 16)
	if !ok {
		t.Fatalf("cannot subscribe to loader")
	}
	lines, err := ld.Load()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < lines.Size(); i++ {
		select {
		case msg := <-ch:
			p, ok := msg.(Progress)
			if !ok {
				t.Fatalf("unexpected message %v", msg)
			}
			want, _ := lines.Get(i)
			if p.Line != i || p.Text != want {
				t.Errorf("progress #%d = %+v, expected %q", i, p, want)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timeout waiting for progress of line %d", i)
		}
	}
	if _, err := ld.Load(); !errors.Is(err, varray.ErrIllegalArguments) {
		t.Errorf("expected second Load to fail, got %v", err)
	}
}

func TestLoadRejectsDirectories(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if _, err := Load(t.TempDir()); !errors.Is(err, varray.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for directory, got %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLoadRejectsInvalidUTF8(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	name := writeFile(t, "ok\n\xff\xfe\n")
	if _, err := Load(name); !errors.Is(err, varray.ErrIllegalArguments) {
		t.Errorf("expected ErrIllegalArguments for invalid UTF-8, got %v", err)
	}
}

func TestLoadKeepsInnerCarriageReturns(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	name := writeFile(t, "abc\r\r\nxyz\r")
	lines, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"abc\r", "xyz"}
	if lines.Size() != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), lines.Size())
	}
	for i, w := range want {
		if got, _ := lines.Get(i); got != w {
			t.Errorf("line %d = %q, expected %q", i, got, w)
		}
	}
}
