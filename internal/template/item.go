package template

// Kind classifies a display item produced by the Lister.
type Kind string

const (
	// KindTemplate is a loadable template backed by a .md file.
	KindTemplate Kind = "template"
	// KindSetup prompts the user to configure the templates path.
	KindSetup Kind = "setup"
	// KindError reports a discovery failure inline.
	KindError Kind = "error"
	// KindInfo carries diagnostic text (empty directory, configured path).
	KindInfo Kind = "info"
)

// Item is a single display entry in the template listing.
// Template items carry the absolute source path; placeholder items
// (setup, error, info) have an empty Path.
type Item struct {
	Label string `json:"label"`
	Path  string `json:"path,omitempty"`
	Kind  Kind   `json:"kind"`
}

// IsTemplate reports whether the item is a loadable template.
func (it Item) IsTemplate() bool {
	return it.Kind == KindTemplate
}
