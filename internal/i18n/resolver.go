package i18n

import "strings"

// Key identifies a translatable message as a namespace plus leaf key. Keys
// are structured once when the catalog is authored or a bundle file is
// loaded; lookups never parse strings.
type Key struct {
	Namespace string `json:"namespace"`
	Leaf      string `json:"key"`
}

// NewKey builds a structured message key.
func NewKey(namespace, leaf string) Key {
	return Key{Namespace: namespace, Leaf: leaf}
}

// ParseKey converts the legacy dotted/colon convention into a structured
// key. "serviceTree:calendar.getEvents" yields namespace "calendar" and leaf
// "getEvents"; the bundle prefix before ':' is discarded. Inputs without a
// dot map to an empty namespace. Never fails.
func ParseKey(raw string) Key {
	if i := strings.IndexByte(raw, ':'); i >= 0 {
		raw = raw[i+1:]
	}
	ns, leaf, found := strings.Cut(raw, ".")
	if !found {
		return Key{Leaf: raw}
	}
	return Key{Namespace: ns, Leaf: leaf}
}

// IsZero reports whether the key is empty.
func (k Key) IsZero() bool {
	return k.Namespace == "" && k.Leaf == ""
}

// String renders the key in "namespace.leaf" form.
func (k Key) String() string {
	if k.Namespace == "" {
		return k.Leaf
	}
	return k.Namespace + "." + k.Leaf
}

// Bundle maps language code -> namespace -> leaf key -> translated string.
type Bundle map[string]map[string]map[string]string

// Resolver answers label lookups against an injected bundle. A missing
// translation is a normal condition resolved through the fallback chain,
// never an error.
type Resolver struct {
	bundle       Bundle
	fallbackLang string
}

// NewResolver creates a resolver over the given bundle. When a language has
// no entry for a key, fallbackLang is consulted before giving up.
func NewResolver(bundle Bundle, fallbackLang string) *Resolver {
	if bundle == nil {
		bundle = Bundle{}
	}
	return &Resolver{bundle: bundle, fallbackLang: fallbackLang}
}

// Resolve returns the translation of key for lang. Chain: requested
// language, then the resolver's fallback language, then the caller-provided
// fallback string unmodified.
func (r *Resolver) Resolve(key Key, lang, fallback string) string {
	if s, ok := r.lookup(lang, key); ok {
		return s
	}
	if r.fallbackLang != "" && r.fallbackLang != lang {
		if s, ok := r.lookup(r.fallbackLang, key); ok {
			return s
		}
	}
	return fallback
}

// Languages lists the language codes present in the bundle.
func (r *Resolver) Languages() []string {
	langs := make([]string, 0, len(r.bundle))
	for lang := range r.bundle {
		langs = append(langs, lang)
	}
	return langs
}

func (r *Resolver) lookup(lang string, key Key) (string, bool) {
	namespaces, ok := r.bundle[lang]
	if !ok {
		return "", false
	}
	leaves, ok := namespaces[key.Namespace]
	if !ok {
		return "", false
	}
	s, ok := leaves[key.Leaf]
	return s, ok
}
