package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"

	"github.com/careshift/servicetree/internal/i18n"
)

// Seeder loads the catalog: the built-in defaults extended by optional
// bundle files (.json or .yaml) from a directory. A bundle file that fails
// to parse or violates catalog invariants is logged and skipped; the
// defaults always survive.
type Seeder struct {
	dir string
	log *zap.Logger
}

// NewSeeder creates a catalog seeder. An empty dir loads only the defaults.
func NewSeeder(dir string, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{dir: dir, log: log}
}

// bundleFile is the on-disk bundle format. Label keys use the legacy
// "bundle:namespace.leaf" string convention and are structured at load time.
type bundleFile struct {
	Categories   []categorySpec `json:"categories" yaml:"categories"`
	Actions      []actionSpec   `json:"actions" yaml:"actions"`
	Translations i18n.Bundle    `json:"translations" yaml:"translations"`
}

type categorySpec struct {
	ID       string `json:"id" yaml:"id"`
	LabelKey string `json:"labelKey" yaml:"labelKey"`
	Icon     string `json:"icon" yaml:"icon"`
	Color    string `json:"color" yaml:"color"`
}

type actionSpec struct {
	ID             string      `json:"id" yaml:"id"`
	Category       string      `json:"category" yaml:"category"`
	Workspace      []string    `json:"workspace" yaml:"workspace"`
	Keywords       []string    `json:"keywords" yaml:"keywords"`
	LabelKey       string      `json:"labelKey" yaml:"labelKey"`
	DescriptionKey string      `json:"descriptionKey" yaml:"descriptionKey"`
	Route          string      `json:"route" yaml:"route"`
	Icon           string      `json:"icon" yaml:"icon"`
	Parameters     []Parameter `json:"parameters" yaml:"parameters"`
}

// Load builds the catalog and its translation bundle. Defaults first, then
// each bundle file in lexical order.
func (s *Seeder) Load() (*Catalog, i18n.Bundle, error) {
	actions := defaultActions()
	categories := defaultCategories()
	bundle := DefaultBundle()

	cat, err := New(actions, categories)
	if err != nil {
		return nil, nil, err
	}

	if s.dir == "" {
		return cat, bundle, nil
	}
	if _, err := os.Stat(s.dir); os.IsNotExist(err) {
		s.log.Warn("catalog bundle directory not found", zap.String("dir", s.dir))
		return cat, bundle, nil
	}

	var loaded, skipped int
	err = filepath.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !isBundleFile(info.Name()) {
			return nil
		}

		file, err := readBundle(path)
		if err != nil {
			s.log.Warn("skipping catalog bundle", zap.String("file", info.Name()), zap.Error(err))
			skipped++
			return nil
		}

		nextActions := append(append([]Action{}, actions...), file.actions()...)
		nextCategories := append(append([]Category{}, categories...), file.categories()...)
		next, err := New(nextActions, nextCategories)
		if err != nil {
			s.log.Warn("skipping catalog bundle", zap.String("file", info.Name()), zap.Error(err))
			skipped++
			return nil
		}

		actions, categories, cat = nextActions, nextCategories, next
		mergeBundle(bundle, file.Translations)
		loaded++
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	s.log.Info("catalog seeded",
		zap.Int("actions", cat.Len()),
		zap.Int("bundles_loaded", loaded),
		zap.Int("bundles_skipped", skipped))
	return cat, bundle, nil
}

func isBundleFile(name string) bool {
	return strings.HasSuffix(name, ".json") ||
		strings.HasSuffix(name, ".yaml") ||
		strings.HasSuffix(name, ".yml")
}

func readBundle(path string) (*bundleFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file bundleFile
	if strings.HasSuffix(path, ".json") {
		err = sonic.Unmarshal(data, &file)
	} else {
		err = yaml.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (f *bundleFile) actions() []Action {
	out := make([]Action, 0, len(f.Actions))
	for _, spec := range f.Actions {
		workspaces := make([]Workspace, 0, len(spec.Workspace))
		for _, ws := range spec.Workspace {
			workspaces = append(workspaces, Workspace(ws))
		}
		out = append(out, Action{
			ID:             spec.ID,
			Category:       spec.Category,
			Workspaces:     workspaces,
			Keywords:       spec.Keywords,
			LabelKey:       i18n.ParseKey(spec.LabelKey),
			DescriptionKey: i18n.ParseKey(spec.DescriptionKey),
			Route:          spec.Route,
			Icon:           spec.Icon,
			Parameters:     spec.Parameters,
		})
	}
	return out
}

func (f *bundleFile) categories() []Category {
	out := make([]Category, 0, len(f.Categories))
	for _, spec := range f.Categories {
		out = append(out, Category{
			ID:       spec.ID,
			LabelKey: i18n.ParseKey(spec.LabelKey),
			Icon:     spec.Icon,
			Color:    spec.Color,
		})
	}
	return out
}

func mergeBundle(dst, src i18n.Bundle) {
	for lang, namespaces := range src {
		if dst[lang] == nil {
			dst[lang] = map[string]map[string]string{}
		}
		for ns, leaves := range namespaces {
			if dst[lang][ns] == nil {
				dst[lang][ns] = map[string]string{}
			}
			for leaf, msg := range leaves {
				dst[lang][ns][leaf] = msg
			}
		}
	}
}
