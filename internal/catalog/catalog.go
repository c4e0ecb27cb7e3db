package catalog

import "fmt"

// Catalog is an immutable, ordered registry of actions and categories. It is
// built once at startup and never mutated afterwards, so accessors need no
// locking.
type Catalog struct {
	actions    []Action
	byID       map[string]int
	categories []Category
	catByID    map[string]int
}

// New validates the records and builds a catalog. Action ids must be unique
// and every action must reference a declared category. Order of both slices
// is preserved: action order is the search tie-break, category order drives
// facet listing.
func New(actions []Action, categories []Category) (*Catalog, error) {
	c := &Catalog{
		actions:    make([]Action, len(actions)),
		byID:       make(map[string]int, len(actions)),
		categories: make([]Category, len(categories)),
		catByID:    make(map[string]int, len(categories)),
	}
	copy(c.categories, categories)

	for i, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category at index %d has empty id", i)
		}
		if _, dup := c.catByID[cat.ID]; dup {
			return nil, fmt.Errorf("duplicate category id: %s", cat.ID)
		}
		c.catByID[cat.ID] = i
	}

	copy(c.actions, actions)
	for i, a := range actions {
		if a.ID == "" {
			return nil, fmt.Errorf("action at index %d has empty id", i)
		}
		if _, dup := c.byID[a.ID]; dup {
			return nil, fmt.Errorf("duplicate action id: %s", a.ID)
		}
		if _, ok := c.catByID[a.Category]; !ok {
			return nil, fmt.Errorf("action %s references unknown category: %s", a.ID, a.Category)
		}
		c.byID[a.ID] = i
	}

	return c, nil
}

// Actions returns all actions in catalog order.
func (c *Catalog) Actions() []Action {
	out := make([]Action, len(c.actions))
	copy(out, c.actions)
	return out
}

// Len returns the number of actions.
func (c *Catalog) Len() int {
	return len(c.actions)
}

// Get retrieves an action by id.
func (c *Catalog) Get(id string) (Action, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Action{}, false
	}
	return c.actions[i], true
}

// Categories returns all categories in declaration order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category retrieves a category by id.
func (c *Catalog) Category(id string) (Category, bool) {
	i, ok := c.catByID[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// VisibleTo returns the actions visible in the given workspace, in catalog
// order. An empty workspace returns the full catalog.
func (c *Catalog) VisibleTo(ws Workspace) []Action {
	out := make([]Action, 0, len(c.actions))
	for _, a := range c.actions {
		if a.VisibleIn(ws) {
			out = append(out, a)
		}
	}
	return out
}

// Stats returns catalog statistics.
func (c *Catalog) Stats() map[string]interface{} {
	perCategory := make(map[string]int, len(c.categories))
	for _, cat := range c.categories {
		perCategory[cat.ID] = 0
	}
	perWorkspace := make(map[string]int)
	for _, a := range c.actions {
		perCategory[a.Category]++
		for _, ws := range a.Workspaces {
			perWorkspace[string(ws)]++
		}
	}

	return map[string]interface{}{
		"total_actions":    len(c.actions),
		"total_categories": len(c.categories),
		"categories":       perCategory,
		"workspaces":       perWorkspace,
	}
}
