package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MaroIng01/portfolio/internal/apperr"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DEFAULT_LANG", "en")
	t.Setenv("ASSETS_DIR", t.TempDir())

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCommands(t *testing.T) {
	cmd := newRootCmd()
	want := map[string]bool{"serve": false, "build": false, "particles": false, "locales": false}
	for _, c := range cmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing %s command", name)
		}
	}
	if cmd.PersistentFlags().Lookup("debug") == nil {
		t.Fatalf("expected a persistent --debug flag")
	}
}

func TestLocalesReport(t *testing.T) {
	out, err := run(t, "locales")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"key parity OK", "ENGLISH (en) default", "FRANÇAIS (fr)", "every skill described"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in report:\n%s", want, out)
		}
	}
}

func TestLocalesParityFailure(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "en.yaml"), []byte("nav:\n  home: Home\n  about: About\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "fr.yaml"), []byte("nav:\n  home: Accueil\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := run(t, "locales", "--dir", dir)
	if !apperr.IsKind(err, apperr.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(out, "key parity FAILED") || !strings.Contains(out, "missing in fr.yaml") {
		t.Fatalf("expected parity failure report, got:\n%s", out)
	}
}

func TestBuildCommand(t *testing.T) {
	dist := filepath.Join(t.TempDir(), "dist")
	out, err := run(t, "build", "--out", dist)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Exported to "+dist) {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(dist, "index.html")); err != nil {
		t.Fatalf("expected index.html: %v", err)
	}
}

func TestParticlesUnknownScene(t *testing.T) {
	_, err := run(t, "particles", "--scene", "fireworks")
	if !apperr.IsKind(err, apperr.KindInvalidInput) {
		t.Fatalf("expected invalid_input before touching the terminal, got %v", err)
	}
}

func TestInvalidConfig(t *testing.T) {
	t.Setenv("PARTICLE_FPS", "0")
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"locales"})
	if err := cmd.Execute(); !apperr.IsKind(err, apperr.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}
