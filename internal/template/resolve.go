package template

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kirolabs/steering/internal/output"
)

// Resolve turns a load argument into a source file path.
//
// Arguments containing a path separator are used as-is, as are bare
// names that happen to exist as files in the current directory.
// Anything else is treated as a template name and resolved against the
// configured templates directory, appending the .md extension when the
// name doesn't carry it.
func Resolve(arg string, templatesDir string) (string, error) {
	if strings.TrimSpace(arg) == "" {
		return "", output.NewUserError("no template path provided")
	}

	if strings.ContainsRune(arg, os.PathSeparator) {
		return arg, nil
	}
	if _, err := os.Stat(arg); err == nil {
		return arg, nil
	}

	if templatesDir == "" {
		return "", output.NewUserError("no templates path configured; run 'steering path set <dir>'")
	}

	name := arg
	if !strings.HasSuffix(name, Extension) {
		name += Extension
	}
	return filepath.Join(templatesDir, name), nil
}
