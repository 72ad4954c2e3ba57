package template

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kirolabs/steering/internal/output"
)

// Destination folder inside a workspace, relative to the workspace root.
var steeringDirParts = []string{".kiro", "steering"}

// SteeringDir returns the steering destination directory for a workspace root.
func SteeringDir(workspaceRoot string) string {
	return filepath.Join(append([]string{workspaceRoot}, steeringDirParts...)...)
}

// LoadResult describes a completed load.
type LoadResult struct {
	Template string `json:"template"` // destination base filename
	Source   string `json:"source"`   // source file path
	Dest     string `json:"dest"`     // destination file path
}

// Loader copies template files into a workspace's steering directory.
type Loader struct {
	workspaceRoot string
}

// NewLoader creates a Loader for the given workspace root.
// An empty root is valid at construction; Load rejects it.
func NewLoader(workspaceRoot string) *Loader {
	return &Loader{workspaceRoot: workspaceRoot}
}

// WorkspaceRoot returns the workspace root the loader writes under.
func (l *Loader) WorkspaceRoot() string {
	return l.workspaceRoot
}

// Load copies the file at sourcePath into <workspaceRoot>/.kiro/steering/,
// overwriting any same-named destination file.
//
// The destination is never touched unless the full source read succeeds:
//   - empty or whitespace-only sourcePath: user error, no mutation
//   - empty workspace root: user error, no mutation
//   - source read failure: system error, destination untouched
//
// The steering directory is created (parents included) on every call.
// Concurrent loads of the same filename race at the filesystem level;
// last writer wins.
func (l *Loader) Load(sourcePath string) (*LoadResult, error) {
	if strings.TrimSpace(sourcePath) == "" {
		return nil, output.NewUserError("no template path provided")
	}

	if l.workspaceRoot == "" {
		return nil, output.NewUserError("no workspace open")
	}

	steeringDir := SteeringDir(l.workspaceRoot)
	if err := os.MkdirAll(steeringDir, 0o755); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to create steering directory", err)
	}

	// Read fully before writing anything: a failed read must leave the
	// destination file untouched.
	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return nil, output.NewSystemErrorWithCause("failed to load template", err)
	}

	name := filepath.Base(sourcePath)
	dest := filepath.Join(steeringDir, name)
	// #nosec G306 -- steering templates are shared project documentation
	if err := os.WriteFile(dest, content, 0o644); err != nil {
		return nil, output.NewSystemErrorWithCause("failed to write template", err)
	}

	return &LoadResult{
		Template: name,
		Source:   sourcePath,
		Dest:     dest,
	}, nil
}
