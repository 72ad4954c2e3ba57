// Package template implements steering template discovery and loading.
//
// Discovery (the Lister) reads the configured templates directory and
// produces display items: one per .md file, or placeholder items when the
// directory is unset, missing, unreadable, or empty. Placeholders carry
// failure states inline instead of returning errors, so every caller
// (list command, browse TUI, MCP tools) renders the same states the
// same way.
//
// Loading (the Loader) copies a template file verbatim into the
// workspace's .kiro/steering/ directory, creating it if needed. A load
// never touches the destination unless the full source read succeeded,
// and always overwrites a same-named destination file.
//
// Both operations re-read their inputs on every call; nothing is cached.
package template
