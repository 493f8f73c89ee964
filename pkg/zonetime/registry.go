// ============================================================================
// zonetime - Locale- and timezone-aware date/time values
// ============================================================================
//
// Package:     zonetime
// Description: Registry of user defined value extensions
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package zonetime

import (
	"sort"
	"strings"
	"sync"

	mdwerror "github.com/msto63/zonetime/foundation/core/error"
)

// ExtensionFunc implements a custom extension. Getters are called
// without args.
type ExtensionFunc func(v *Value, args ...any) any

// Extension is a named member added to every value of a factory
type Extension struct {
	Name       string
	Fn         ExtensionFunc
	Enumerable bool
	IsGetter   bool
}

// Registry maps names to extensions. Later registrations replace earlier
// ones; entries are never removed.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Extension
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Extension)}
}

// DefaultRegistry backs the default factory
var DefaultRegistry = NewRegistry()

// Add registers ext. A blank name or a nil Fn is rejected with
// CodeInvalidExtension.
func (r *Registry) Add(ext Extension) error {
	ext.Name = strings.TrimSpace(ext.Name)
	if ext.Name == "" || ext.Fn == nil {
		return mdwerror.New("extension needs a name and a function").
			WithCode(mdwerror.CodeInvalidExtension).
			WithOperation("zonetime.Registry.Add").
			WithDetail("name", ext.Name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[ext.Name] = ext
	return nil
}

// Lookup returns the extension registered as name
func (r *Registry) Lookup(name string) (Extension, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ext, ok := r.entries[name]
	return ext, ok
}

// Names lists registered names in sorted order, only enumerable ones when
// enumerableOnly is set.
func (r *Registry) Names(enumerableOnly bool) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name, ext := range r.entries {
		if ext.Enumerable || !enumerableOnly {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
