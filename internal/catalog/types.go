package catalog

import "github.com/careshift/servicetree/internal/i18n"

// Workspace identifies an application context an action is visible in.
type Workspace string

const (
	WorkspacePersonal     Workspace = "personal"
	WorkspaceFacility     Workspace = "facility"
	WorkspaceOrganization Workspace = "organization"
	WorkspaceAdmin        Workspace = "admin"
)

// Parameter describes one input accepted by an action. Parameters are
// consumed by external callers (form builders, LLM tool invocation); the
// search engine itself never reads them.
type Parameter struct {
	Name        string      `json:"name" yaml:"name"`
	Type        string      `json:"type" yaml:"type"`
	Description string      `json:"description" yaml:"description"`
	Required    bool        `json:"required" yaml:"required"`
	Default     interface{} `json:"default,omitempty" yaml:"default,omitempty"`
	Enum        []string    `json:"enum,omitempty" yaml:"enum,omitempty"`
}

// Action is one discoverable, executable application capability. Actions are
// immutable once the catalog is built.
type Action struct {
	ID             string      `json:"id"`
	Category       string      `json:"category"`
	Workspaces     []Workspace `json:"workspaces,omitempty"`
	Keywords       []string    `json:"keywords"`
	LabelKey       i18n.Key    `json:"label_key"`
	DescriptionKey i18n.Key    `json:"description_key"`
	Route          string      `json:"route"`
	Icon           string      `json:"icon,omitempty"`
	Parameters     []Parameter `json:"parameters,omitempty"`
}

// VisibleIn reports whether the action is visible in the given workspace.
// An action without workspace tags is visible everywhere; an empty workspace
// argument matches every action.
func (a Action) VisibleIn(ws Workspace) bool {
	if ws == "" || len(a.Workspaces) == 0 {
		return true
	}
	for _, w := range a.Workspaces {
		if w == ws {
			return true
		}
	}
	return false
}

// Category groups actions for faceting and suggestion affinity.
type Category struct {
	ID       string   `json:"id"`
	LabelKey i18n.Key `json:"label_key"`
	Icon     string   `json:"icon"`
	Color    string   `json:"color"`
}
