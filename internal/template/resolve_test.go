package template

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve(t *testing.T) {
	templatesDir := t.TempDir()

	tests := []struct {
		name         string
		arg          string
		templatesDir string
		want         string
		wantErr      bool
	}{
		{
			name:         "bare name resolves against templates dir",
			arg:          "conventions",
			templatesDir: templatesDir,
			want:         filepath.Join(templatesDir, "conventions.md"),
		},
		{
			name:         "name with extension is not doubled",
			arg:          "conventions.md",
			templatesDir: templatesDir,
			want:         filepath.Join(templatesDir, "conventions.md"),
		},
		{
			name:         "path with separator is used as-is",
			arg:          filepath.Join("docs", "local.md"),
			templatesDir: templatesDir,
			want:         filepath.Join("docs", "local.md"),
		},
		{
			name:         "empty argument is rejected",
			arg:          "",
			templatesDir: templatesDir,
			wantErr:      true,
		},
		{
			name:         "whitespace argument is rejected",
			arg:          "  ",
			templatesDir: templatesDir,
			wantErr:      true,
		},
		{
			name:         "bare name without configured dir is rejected",
			arg:          "conventions",
			templatesDir: "",
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.arg, tt.templatesDir)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) expected error, got %q", tt.arg, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.arg, got, tt.want)
			}
		})
	}
}

func TestResolve_ExistingFileWins(t *testing.T) {
	// A bare name that exists as a local file is used directly, even
	// when a templates directory is configured.
	dir := t.TempDir()
	local := filepath.Join(dir, "notes.md")
	if err := os.WriteFile(local, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	got, err := Resolve("notes.md", t.TempDir())
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if got != "notes.md" {
		t.Errorf("Resolve() = %q, want %q", got, "notes.md")
	}
}
