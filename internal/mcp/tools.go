package mcp

import (
	"context"
	"fmt"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/kirolabs/steering/internal/template"
)

// --- Shared types ---

// ItemSummary is a display item for tool output.
type ItemSummary struct {
	Label string `json:"label"          jsonschema:"display label"`
	Path  string `json:"path,omitempty" jsonschema:"absolute source path for template items"`
	Kind  string `json:"kind"           jsonschema:"item kind: template, setup, error, or info"`
}

func toItemSummaries(items []template.Item) []ItemSummary {
	out := make([]ItemSummary, 0, len(items))
	for _, item := range items {
		out = append(out, ItemSummary{
			Label: item.Label,
			Path:  item.Path,
			Kind:  string(item.Kind),
		})
	}
	return out
}

// --- list_templates tool ---

// ListTemplatesInput is the input for the list_templates tool (no parameters).
type ListTemplatesInput struct{}

// ListTemplatesOutput is the output for the list_templates tool.
type ListTemplatesOutput struct {
	Items []ItemSummary `json:"items"          jsonschema:"display items, templates or placeholders"`
	Count int           `json:"template_count" jsonschema:"number of loadable templates"`
}

func handleListTemplates(deps Deps) mcp.ToolHandlerFor[ListTemplatesInput, ListTemplatesOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ ListTemplatesInput) (*mcp.CallToolResult, ListTemplatesOutput, error) {
		lister := template.NewLister(deps.TemplatesPath)
		items := lister.List()

		count := 0
		for _, item := range items {
			if item.IsTemplate() {
				count++
			}
		}

		return nil, ListTemplatesOutput{
			Items: toItemSummaries(items),
			Count: count,
		}, nil
	}
}

// --- load_template tool ---

// LoadTemplateInput is the input for the load_template tool.
type LoadTemplateInput struct {
	Template string `json:"template" jsonschema:"template name or source file path"`
}

// LoadTemplateOutput is the output for the load_template tool.
type LoadTemplateOutput struct {
	Template string `json:"template" jsonschema:"destination base filename"`
	Source   string `json:"source"   jsonschema:"source file path"`
	Dest     string `json:"dest"     jsonschema:"destination file path"`
}

func handleLoadTemplate(deps Deps) mcp.ToolHandlerFor[LoadTemplateInput, LoadTemplateOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input LoadTemplateInput) (*mcp.CallToolResult, LoadTemplateOutput, error) {
		source, err := template.Resolve(input.Template, deps.TemplatesPath())
		if err != nil {
			return nil, LoadTemplateOutput{}, fmt.Errorf("resolving template: %w", err)
		}

		loader := template.NewLoader(deps.WorkspaceRoot)
		result, err := loader.Load(source)
		if err != nil {
			return nil, LoadTemplateOutput{}, fmt.Errorf("loading template: %w", err)
		}

		return nil, LoadTemplateOutput{
			Template: result.Template,
			Source:   result.Source,
			Dest:     result.Dest,
		}, nil
	}
}

// --- set_templates_path tool ---

// SetTemplatesPathInput is the input for the set_templates_path tool.
type SetTemplatesPathInput struct {
	Path string `json:"path" jsonschema:"directory containing .md steering templates"`
}

// SetTemplatesPathOutput is the output for the set_templates_path tool.
type SetTemplatesPathOutput struct {
	Path    string `json:"path"              jsonschema:"persisted templates directory"`
	Warning string `json:"warning,omitempty" jsonschema:"non-fatal warning about the new path"`
}

func handleSetTemplatesPath(deps Deps) mcp.ToolHandlerFor[SetTemplatesPathInput, SetTemplatesPathOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input SetTemplatesPathInput) (*mcp.CallToolResult, SetTemplatesPathOutput, error) {
		if input.Path == "" {
			return nil, SetTemplatesPathOutput{}, fmt.Errorf("path is required")
		}

		// A missing directory is allowed (the Lister reports it inline),
		// but worth flagging to the caller.
		warning := ""
		if info, err := os.Stat(input.Path); err != nil {
			warning = "directory does not exist yet; discovery will report it as not found"
		} else if !info.IsDir() {
			warning = "path is not a directory; discovery will report a read error"
		}

		if err := deps.SetTemplatesPath(input.Path); err != nil {
			return nil, SetTemplatesPathOutput{}, fmt.Errorf("saving templates path: %w", err)
		}

		return nil, SetTemplatesPathOutput{
			Path:    input.Path,
			Warning: warning,
		}, nil
	}
}

// --- status tool ---

// StatusInput is the input for the status tool (no parameters).
type StatusInput struct{}

// StatusOutput is the output for the status tool.
type StatusOutput struct {
	TemplatesPath     string `json:"templates_path"      jsonschema:"configured templates directory, empty when unset"`
	TemplateCount     int    `json:"template_count"      jsonschema:"number of loadable templates"`
	WorkspaceRoot     string `json:"workspace_root"      jsonschema:"workspace templates are loaded into"`
	SteeringDir       string `json:"steering_dir"        jsonschema:"destination steering directory"`
	SteeringDirExists bool   `json:"steering_dir_exists" jsonschema:"whether the steering directory exists"`
}

func handleStatus(deps Deps) mcp.ToolHandlerFor[StatusInput, StatusOutput] {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
		lister := template.NewLister(deps.TemplatesPath)
		templates := lister.Templates()

		out := StatusOutput{
			TemplatesPath: deps.TemplatesPath(),
			TemplateCount: len(templates),
			WorkspaceRoot: deps.WorkspaceRoot,
		}

		if deps.WorkspaceRoot != "" {
			steeringDir := template.SteeringDir(deps.WorkspaceRoot)
			out.SteeringDir = steeringDir
			info, err := os.Stat(steeringDir)
			out.SteeringDirExists = err == nil && info.IsDir()
		}

		return nil, out, nil
	}
}
