package template

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extension is the template file suffix the Lister filters on.
const Extension = ".md"

// PathFunc returns the configured templates directory.
// An empty string means the path is not configured.
type PathFunc func() string

// Lister discovers templates in the configured directory.
// It has no side effects and re-reads the configuration on every call.
type Lister struct {
	templatesPath PathFunc
}

// NewLister creates a Lister that resolves the templates directory
// through templatesPath on each List call.
func NewLister(templatesPath PathFunc) *Lister {
	return &Lister{templatesPath: templatesPath}
}

// Setup hint shared by every placeholder branch that needs reconfiguration.
const reconfigureHint = "Run 'steering path set <dir>' to configure"

// List produces the display items for the current configuration state:
//   - unset path: one setup placeholder
//   - missing path: "not found" + reconfigure placeholders
//   - unreadable path: "read error" + reconfigure placeholders
//   - no .md files: "no templates" + the configured path for diagnostics
//   - otherwise: one item per .md file, labeled without the extension,
//     sorted lexicographically so output is deterministic across filesystems
func (l *Lister) List() []Item {
	dir := l.templatesPath()
	if dir == "" {
		return []Item{
			{Label: "No templates path configured", Kind: KindSetup},
		}
	}

	if _, err := os.Stat(dir); err != nil {
		return []Item{
			{Label: "Templates path not found: " + dir, Kind: KindError},
			{Label: reconfigureHint, Kind: KindSetup},
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []Item{
			{Label: "Error reading templates directory", Kind: KindError},
			{Label: reconfigureHint, Kind: KindSetup},
		}
	}

	items := make([]Item, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, Extension) {
			continue
		}
		items = append(items, Item{
			Label: strings.TrimSuffix(name, Extension),
			Path:  filepath.Join(dir, name),
			Kind:  KindTemplate,
		})
	}

	if len(items) == 0 {
		return []Item{
			{Label: "No templates found", Kind: KindInfo},
			{Label: dir, Kind: KindInfo},
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].Label < items[j].Label
	})
	return items
}

// Templates returns only the loadable template items from List.
func (l *Lister) Templates() []Item {
	var templates []Item
	for _, item := range l.List() {
		if item.IsTemplate() {
			templates = append(templates, item)
		}
	}
	return templates
}
