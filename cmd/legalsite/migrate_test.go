package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunMigrate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lib", "services", "auth.dart")
	writeFile(t, path, "import '../models/user.dart';\n\nvoid f() {\n  print('hi');\n}\n")

	env := newTestEnv("")
	code := runMain([]string{"legalsite", "migrate-logger", path}, env.Environment)
	if code != ExitSuccess {
		t.Fatalf("exit = %d\nstderr: %s", code, env.stderr.String())
	}

	out := env.stdout.String()
	for _, want := range []string{
		"Migrating " + path + "...",
		"✓ Successfully migrated " + path,
		"  - Replaced 1 print statements",
		"  - Added SafeLogger import",
		"IMPORTANT: Please manually update 'SERVICE_NAME' tags",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("stdout missing %q", want)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "SafeLogger.debug('hi', tag: 'SERVICE_NAME');") {
		t.Errorf("file not migrated:\n%s", data)
	}
}

func TestRunMigrate_Tag(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "lib", "a.dart")
	writeFile(t, path, "void f() { debugPrint('x'); }\n")

	env := newTestEnv("")
	if code := runMain([]string{"legalsite", "migrate-logger", "--tag", "Auth", path}, env.Environment); code != ExitSuccess {
		t.Fatalf("exit = %d", code)
	}

	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "tag: 'Auth'") {
		t.Errorf("file = %s", data)
	}
	if strings.Contains(env.stdout.String(), "IMPORTANT") {
		t.Error("custom tag should not print the placeholder warning")
	}
}

func TestRunMigrate_NoChanges(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "clean.dart")
	writeFile(t, path, "void f() {}\n")

	env := newTestEnv("")
	if code := runMain([]string{"legalsite", "migrate-logger", path}, env.Environment); code != ExitSuccess {
		t.Fatalf("exit = %d", code)
	}
	if !strings.Contains(env.stdout.String(), "No changes needed for "+path) {
		t.Errorf("stdout = %s", env.stdout.String())
	}
}

func TestRunMigrate_InputErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := filepath.Join(dir, "notes.txt")
	writeFile(t, txt, "print('x');")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no argument", nil, "no source file given"},
		{"two arguments", []string{"a.dart", "b.dart"}, "no source file given"},
		{"missing file", []string{filepath.Join(dir, "missing.dart")}, "source file does not exist"},
		{"not dart", []string{txt}, "not a Dart file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv("")
			code := runMain(append([]string{"legalsite", "migrate-logger"}, tt.args...), env.Environment)
			if code != ExitGeneral {
				t.Errorf("exit = %d, want %d", code, ExitGeneral)
			}
			if !strings.Contains(env.stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %s", env.stderr.String())
			}
			if !strings.Contains(env.stderr.String(), "hint: pass a single .dart source file") {
				t.Error("migrate hint missing")
			}
		})
	}
}
