package archetype

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/EmberForge_Go/internal/domain"
)

// Finder is the read contract other packages consume
type Finder interface {
	Find(name string) (domain.ItemArchetype, bool)
}

// Repository is an immutable, eagerly-indexed archetype catalog. It is safe
// for concurrent readers because nothing mutates it after construction.
type Repository struct {
	byName map[string]domain.ItemArchetype
	names  []string
}

// NewRepository indexes defs by name. Defs must already be validated;
// a later duplicate overwrites an earlier one.
func NewRepository(defs []domain.ItemArchetype) *Repository {
	r := &Repository{
		byName: make(map[string]domain.ItemArchetype, len(defs)),
		names:  make([]string, 0, len(defs)),
	}
	for _, def := range defs {
		if def.DisplayText == "" {
			def.DisplayText = DisplayName(def.Name)
		}
		if _, exists := r.byName[def.Name]; !exists {
			r.names = append(r.names, def.Name)
		}
		r.byName[def.Name] = def
	}
	sort.Strings(r.names)
	return r
}

// Find returns the archetype with the given name
func (r *Repository) Find(name string) (domain.ItemArchetype, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// All returns every archetype ordered by name
func (r *Repository) All() []domain.ItemArchetype {
	out := make([]domain.ItemArchetype, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.byName[name])
	}
	return out
}

func (r *Repository) Len() int {
	return len(r.names)
}

// DisplayName derives a label from a snake_case key, e.g. "potion_mana" -> "Potion Mana".
func DisplayName(key string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(key, "_", " "))
}
