package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careshift/servicetree/internal/i18n"
)

func testCategories() []Category {
	return []Category{
		{ID: "calendar", LabelKey: i18n.NewKey("categories", "calendar"), Icon: "calendar", Color: "#3B82F6"},
		{ID: "payroll", LabelKey: i18n.NewKey("categories", "payroll"), Icon: "dollar-sign", Color: "#EF4444"},
	}
}

func testActions() []Action {
	return []Action{
		{
			ID:         "calendar.getEvents",
			Category:   "calendar",
			Workspaces: []Workspace{WorkspacePersonal, WorkspaceFacility},
			Keywords:   []string{"calendar", "events", "shifts"},
			LabelKey:   i18n.NewKey("calendar", "getEvents"),
			Route:      "/dashboard/calendar",
		},
		{
			ID:       "calendar.createEvent",
			Category: "calendar",
			Keywords: []string{"calendar", "event", "create"},
			LabelKey: i18n.NewKey("calendar", "createEvent"),
			Route:    "/dashboard/calendar?action=create",
		},
	}
}

func TestNew(t *testing.T) {
	c, err := New(testActions(), testCategories())
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Len(t, c.Categories(), 2)

	a, ok := c.Get("calendar.getEvents")
	assert.True(t, ok)
	assert.Equal(t, "calendar", a.Category)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	actions := testActions()
	actions = append(actions, actions[0])

	_, err := New(actions, testCategories())
	assert.ErrorContains(t, err, "duplicate action id")
}

func TestNewRejectsUnknownCategory(t *testing.T) {
	actions := testActions()
	actions[0].Category = "nope"

	_, err := New(actions, testCategories())
	assert.ErrorContains(t, err, "unknown category")
}

func TestVisibleIn(t *testing.T) {
	tagged := Action{Workspaces: []Workspace{WorkspacePersonal}}
	assert.True(t, tagged.VisibleIn(WorkspacePersonal))
	assert.False(t, tagged.VisibleIn(WorkspaceAdmin))
	assert.True(t, tagged.VisibleIn(""))

	// Untagged actions are visible in every workspace.
	untagged := Action{}
	assert.True(t, untagged.VisibleIn(WorkspaceAdmin))
}

func TestVisibleTo(t *testing.T) {
	c, err := New(testActions(), testCategories())
	require.NoError(t, err)

	// createEvent is untagged, getEvents is personal+facility.
	assert.Len(t, c.VisibleTo(WorkspaceAdmin), 1)
	assert.Len(t, c.VisibleTo(WorkspacePersonal), 2)
	assert.Len(t, c.VisibleTo(""), 2)
}

func TestStats(t *testing.T) {
	c, err := New(testActions(), testCategories())
	require.NoError(t, err)

	stats := c.Stats()
	assert.Equal(t, 2, stats["total_actions"])
	assert.Equal(t, 2, stats["total_categories"])

	perCategory := stats["categories"].(map[string]int)
	assert.Equal(t, 2, perCategory["calendar"])
	// A category with zero members is still reported.
	assert.Equal(t, 0, perCategory["payroll"])
}

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	assert.Greater(t, c.Len(), 20)

	// Every default action resolves against the English bundle namespace set.
	bundle := DefaultBundle()
	r := i18n.NewResolver(bundle, "en")
	for _, a := range c.Actions() {
		label := r.Resolve(a.LabelKey, "en", "")
		assert.NotEmpty(t, label, "missing english label for %s", a.ID)
	}
}
