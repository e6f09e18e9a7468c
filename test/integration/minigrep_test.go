package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/minigrep/internal/application"
	"github.com/eugenenazirov/minigrep/internal/config"
	"github.com/eugenenazirov/minigrep/internal/storage"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func env(vars map[string]string) config.LookupEnv {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func searchFile(t *testing.T, args []string, vars map[string]string) string {
	t.Helper()

	cfg, err := config.Build(append([]string{"minigrep"}, args...), env(vars))
	if err != nil {
		t.Fatalf("config.Build returned error: %v", err)
	}

	var out bytes.Buffer
	app := application.New(cfg, storage.NewFileStorage(), &out, zaptest.NewLogger(t))
	if err := app.Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

func TestIntegrationFlow(t *testing.T) {
	path := writeFile(t, "poem.txt", "I'm nobody! Who are you?\r\nAre you nobody, too?\r\nThen there's a pair of us - don't tell!\r\nThey'd banish us, you know.\r\n\r\nHow dreary to be somebody!\r\nHow public, like a frog\r\nTo tell your name the livelong day\r\nTo an admiring bog!\r\n")

	got := searchFile(t, []string{"-q", "frog", "-f", path}, nil)
	if want := "How public, like a frog\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got = searchFile(t, []string{"-q", "body", "-f", path}, nil)
	if want := "I'm nobody! Who are you?\nAre you nobody, too?\nHow dreary to be somebody!\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got = searchFile(t, []string{"-q", "TO", "-f", path}, nil)
	if got != "" {
		t.Fatalf("expected no case-sensitive matches, got %q", got)
	}

	got = searchFile(t, []string{"-q", "TO", "-f", path}, map[string]string{config.EnvIgnoreCase: "1"})
	if want := "Are you nobody, too?\nHow dreary to be somebody!\nTo tell your name the livelong day\nTo an admiring bog!\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	got = searchFile(t, []string{"-q", "TO", "-f", path, "-i", "0"}, map[string]string{config.EnvIgnoreCase: "1"})
	if got != "" {
		t.Fatalf("expected command line to override environment, got %q", got)
	}
}

func TestIntegrationEmptyQueryEchoesFile(t *testing.T) {
	contents := "one\n\nthree\n"
	path := writeFile(t, "lines.txt", contents)

	if got := searchFile(t, []string{"--query", "", "--file_path", path}, nil); got != contents {
		t.Fatalf("expected every line echoed, got %q", got)
	}
}
