package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/durableprogramming/dotenvk/internal/errors"
)

// runCommand executes the root command with the given args, capturing stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	ResetGlobalState()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	oldStdout := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = oldStdout }()

	rootCmd.SetArgs(args)
	execErr := rootCmd.Execute()

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read captured output: %v", err)
	}
	return buf.String(), execErr
}

// writeEnv writes content to a fresh temp env file and returns its path.
func writeEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	return path
}

func readEnv(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read env file: %v", err)
	}
	return string(data)
}

func TestSetCommand(t *testing.T) {
	t.Run("creates the file when missing", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		out, err := runCommand(t, "set", "A=1", "B=two words", "-f", path)
		if err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if !strings.Contains(out, "Set 2 variable(s)") {
			t.Errorf("unexpected output: %q", out)
		}
		if got, want := readEnv(t, path), "A=1\nB=\"two words\"\n"; got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
	})

	t.Run("updates in place and leaves other lines untouched", func(t *testing.T) {
		path := writeEnv(t, "# header\n\nA=1 # keep\nB=2\n")
		if _, err := runCommand(t, "set", "A=9", "-f", path); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if got, want := readEnv(t, path), "# header\n\nA=9 # keep\nB=2\n"; got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
	})

	t.Run("appends new keys at the end", func(t *testing.T) {
		path := writeEnv(t, "A=1\n")
		if _, err := runCommand(t, "set", "NEW=value", "-f", path); err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if got, want := readEnv(t, path), "A=1\nNEW=value\n"; got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
	})

	t.Run("rejects invalid keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		if _, err := runCommand(t, "set", "9BAD=1", "-f", path); err == nil {
			t.Fatal("expected error for invalid key")
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("file should not have been created")
		}
	})

	t.Run("dry run leaves the file alone", func(t *testing.T) {
		path := writeEnv(t, "A=1\n")
		out, err := runCommand(t, "set", "A=2", "--dry-run", "-f", path)
		if err != nil {
			t.Fatalf("set failed: %v", err)
		}
		if !strings.Contains(out, "dry run") {
			t.Errorf("expected dry run notice, got %q", out)
		}
		if got := readEnv(t, path); got != "A=1\n" {
			t.Errorf("file was modified: %q", got)
		}
	})
}

func TestUnsetCommand(t *testing.T) {
	t.Run("removes every line for the key", func(t *testing.T) {
		path := writeEnv(t, "A=1\n# note\nA=2\nB=3\n")
		out, err := runCommand(t, "unset", "A", "-f", path)
		if err != nil {
			t.Fatalf("unset failed: %v", err)
		}
		if !strings.Contains(out, "Removed 1 variable(s)") {
			t.Errorf("unexpected output: %q", out)
		}
		if got, want := readEnv(t, path), "# note\nB=3\n"; got != want {
			t.Errorf("file = %q, want %q", got, want)
		}
	})

	t.Run("missing keys warn but do not fail", func(t *testing.T) {
		path := writeEnv(t, "A=1\n")
		out, err := runCommand(t, "unset", "NOPE", "-f", path)
		if err != nil {
			t.Fatalf("unset failed: %v", err)
		}
		if !strings.Contains(out, "was not present") {
			t.Errorf("expected warning, got %q", out)
		}
		if got := readEnv(t, path); got != "A=1\n" {
			t.Errorf("file was modified: %q", got)
		}
	})
}

func TestGetCommand(t *testing.T) {
	t.Run("prints the decoded value", func(t *testing.T) {
		path := writeEnv(t, "GREETING=\"hello world\" # inline\n")
		out, err := runCommand(t, "get", "GREETING", "-f", path)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if out != "hello world\n" {
			t.Errorf("output = %q, want %q", out, "hello world\n")
		}
	})

	t.Run("missing key is an error", func(t *testing.T) {
		path := writeEnv(t, "A=1\n")
		_, err := runCommand(t, "get", "MISSING", "-f", path)
		if !errors.Is(err, kerrors.ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
	})
}

func TestKeysCommand(t *testing.T) {
	path := writeEnv(t, "B=1\n# comment\nA=2\nB=3\n")
	out, err := runCommand(t, "keys", "-f", path)
	if err != nil {
		t.Fatalf("keys failed: %v", err)
	}
	if out != "B\nA\n" {
		t.Errorf("output = %q, want %q", out, "B\nA\n")
	}
}

func TestExportCommand(t *testing.T) {
	t.Run("bash", func(t *testing.T) {
		path := writeEnv(t, "A=1\nB=\"two words\"\n")
		out, err := runCommand(t, "export", "-f", path)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		want := "export A=1\nexport B=\"two words\"\n"
		if out != want {
			t.Errorf("output = %q, want %q", out, want)
		}
	})

	t.Run("json", func(t *testing.T) {
		path := writeEnv(t, "B=2\nA=1\n")
		out, err := runCommand(t, "export", "--format", "json", "-f", path)
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		want := "{\n  \"B\": \"2\",\n  \"A\": \"1\"\n}\n"
		if out != want {
			t.Errorf("output = %q, want %q", out, want)
		}
	})

	t.Run("unknown format", func(t *testing.T) {
		path := writeEnv(t, "A=1\n")
		if _, err := runCommand(t, "export", "--format", "yaml", "-f", path); err == nil {
			t.Fatal("expected error for unsupported format")
		}
	})
}

func TestRandomizeCommand(t *testing.T) {
	t.Run("assigns fresh values", func(t *testing.T) {
		path := writeEnv(t, "SECRET=old\nOTHER=keep\n")
		out, err := runCommand(t, "randomize", "SECRET", "--length", "16", "-f", path)
		if err != nil {
			t.Fatalf("randomize failed: %v", err)
		}
		if !strings.Contains(out, "Randomized") {
			t.Errorf("unexpected output: %q", out)
		}
		content := readEnv(t, path)
		if strings.Contains(content, "SECRET=old") {
			t.Error("old value survived")
		}
		if !strings.Contains(content, "OTHER=keep") {
			t.Error("unrelated entry was disturbed")
		}
		for _, line := range strings.Split(content, "\n") {
			if strings.HasPrefix(line, "SECRET=") {
				if got := len(strings.TrimPrefix(line, "SECRET=")); got != 16 {
					t.Errorf("generated value length = %d, want 16", got)
				}
			}
		}
	})

	t.Run("dry run leaves the file alone", func(t *testing.T) {
		path := writeEnv(t, "SECRET=old\n")
		out, err := runCommand(t, "randomize", "SECRET", "--dry-run", "-f", path)
		if err != nil {
			t.Fatalf("randomize failed: %v", err)
		}
		if !strings.Contains(out, "dry run") {
			t.Errorf("expected dry run notice, got %q", out)
		}
		if got := readEnv(t, path); got != "SECRET=old\n" {
			t.Errorf("file was modified: %q", got)
		}
	})

	t.Run("invalid length fails before writing", func(t *testing.T) {
		path := writeEnv(t, "A=1\n")
		if _, err := runCommand(t, "randomize", "A", "--length", "0", "-f", path); err == nil {
			t.Fatal("expected error for zero length")
		}
		if got := readEnv(t, path); got != "A=1\n" {
			t.Errorf("file was modified: %q", got)
		}
	})
}

func TestConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	config := "[defaults]\nfile = \"custom.env\"\nlength = 8\n"
	if err := os.WriteFile(filepath.Join(dir, ".dotenvk.toml"), []byte(config), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	defer func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Fatalf("failed to restore working directory: %v", err)
		}
	}()

	secretLen := func(t *testing.T, path, key string) int {
		t.Helper()
		for _, line := range strings.Split(readEnv(t, path), "\n") {
			if strings.HasPrefix(line, key+"=") {
				return len(strings.TrimPrefix(line, key+"="))
			}
		}
		t.Fatalf("%s not found in %s", key, path)
		return 0
	}

	t.Run("config fills in flags the user did not pass", func(t *testing.T) {
		if _, err := runCommand(t, "randomize", "TOKEN"); err != nil {
			t.Fatalf("randomize failed: %v", err)
		}
		if got := secretLen(t, filepath.Join(dir, "custom.env"), "TOKEN"); got != 8 {
			t.Errorf("generated value length = %d, want 8 from config", got)
		}
	})

	t.Run("explicit flags win over config", func(t *testing.T) {
		path := filepath.Join(dir, "flag.env")
		if _, err := runCommand(t, "randomize", "TOKEN", "--length", "12", "-f", path); err != nil {
			t.Fatalf("randomize failed: %v", err)
		}
		if got := secretLen(t, path, "TOKEN"); got != 12 {
			t.Errorf("generated value length = %d, want 12 from flag", got)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if out != "dotenvk dev\n" {
		t.Errorf("output = %q, want %q", out, "dotenvk dev\n")
	}
}
