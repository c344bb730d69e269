package wordml

import (
	"fmt"
	"sync"

	"github.com/samber/lo"
)

// TranslatorRegistry resolves translators by XML element name or by model
// key. Property and keyed-collection helpers use it to find "the translator
// for element X" without every composite hard-coding its child set.
type TranslatorRegistry interface {
	// Register adds a translator. Both its XMLName and its ModelKey must
	// be unique within the registry.
	Register(t *Translator) error
	// ByXMLName returns the translator for a qualified element name.
	ByXMLName(name string) (*Translator, bool)
	// ByModelKey returns the translator for a model attribute key.
	ByModelKey(key string) (*Translator, bool)
	// XMLNames lists registered element names in registration order.
	XMLNames() []string
}

// DefaultTranslatorRegistry is the default implementation of
// TranslatorRegistry. Reads are lock-free; the registry is built once at
// startup and frozen before any conversion runs.
type DefaultTranslatorRegistry struct {
	byXMLName  map[string]*Translator
	byModelKey map[string]*Translator
	order      []string
}

// NewTranslatorRegistry creates an empty registry.
func NewTranslatorRegistry() *DefaultTranslatorRegistry {
	return &DefaultTranslatorRegistry{
		byXMLName:  make(map[string]*Translator),
		byModelKey: make(map[string]*Translator),
	}
}

// Register adds a translator to both indexes.
func (r *DefaultTranslatorRegistry) Register(t *Translator) error {
	if t == nil {
		return fmt.Errorf("cannot register nil translator")
	}
	if t.XMLName == "" || t.ModelKey == "" {
		return fmt.Errorf("cannot register translator without XML name and model key")
	}
	if _, exists := r.byXMLName[t.XMLName]; exists {
		return fmt.Errorf("translator for %s already registered", t.XMLName)
	}
	if _, exists := r.byModelKey[t.ModelKey]; exists {
		return fmt.Errorf("translator for model key %s already registered", t.ModelKey)
	}
	r.byXMLName[t.XMLName] = t
	r.byModelKey[t.ModelKey] = t
	r.order = append(r.order, t.XMLName)
	return nil
}

// ByXMLName returns the translator for a qualified element name.
func (r *DefaultTranslatorRegistry) ByXMLName(name string) (*Translator, bool) {
	t, ok := r.byXMLName[name]
	return t, ok
}

// ByModelKey returns the translator for a model attribute key.
func (r *DefaultTranslatorRegistry) ByModelKey(key string) (*Translator, bool) {
	t, ok := r.byModelKey[key]
	return t, ok
}

// XMLNames lists registered element names in registration order.
func (r *DefaultTranslatorRegistry) XMLNames() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Translators resolves the named translators, skipping unknown names.
// Composite translator tables are assembled with it at startup.
func (r *DefaultTranslatorRegistry) Translators(names ...string) []*Translator {
	return lo.FilterMap(names, func(name string, _ int) (*Translator, bool) {
		return r.ByXMLName(name)
	})
}

var (
	globalTranslatorRegistry *DefaultTranslatorRegistry
	translatorRegistryOnce   sync.Once
)

// DefaultRegistry returns the process-wide registry holding every property
// translator defined in this package. It is built on first use and frozen
// afterwards; conversions running on any goroutine may share it freely.
func DefaultRegistry() TranslatorRegistry {
	translatorRegistryOnce.Do(buildDefaultRegistry)
	return globalTranslatorRegistry
}

func buildDefaultRegistry() {
	globalTranslatorRegistry = NewTranslatorRegistry()

	// Paragraph properties register first so contested names (w:spacing
	// appears in both w:pPr and w:rPr) resolve to the paragraph-level
	// translator.
	tables := [][]*Translator{
		paragraphPropertyTranslators,
		runPropertyTranslators,
		levelPropertyTranslators,
		stylePropertyTranslators,
	}
	seen := make(map[string]bool)
	for _, table := range tables {
		for _, t := range table {
			// Instances shared between property groups (w:pStyle,
			// w:shd, w:pPr) register only once.
			if seen[t.XMLName] {
				continue
			}
			seen[t.XMLName] = true
			if err := globalTranslatorRegistry.Register(t); err != nil {
				panic(err)
			}
		}
	}
}
