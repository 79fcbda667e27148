package prototype

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

var (
	// ErrNotFound is matched by every lookup of an unregistered name.
	ErrNotFound = errors.New("biome template not found")
	// ErrNilTemplate is returned when registering a nil template.
	ErrNilTemplate = errors.New("biome template is nil")
)

// NotFoundError reports a Create call for a name that has no template.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s", ErrNotFound, e.Name)
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Registry stores biome templates keyed by name. The registry owns its
// templates: it keeps a private copy of everything registered and hands out
// clones only.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Biome
}

// NewRegistry returns an empty template registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Biome)}
}

// DefaultRegistry returns a registry seeded with the Forest, Desert and Ocean
// templates.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	seed := []struct {
		name string
		b    Biome
	}{
		{"Forest", &Forest{TreeType: "Pine", Wildlife: "Deer"}},
		{"Desert", &Desert{SandType: "Golden", Climate: "Hot"}},
		{"Ocean", &Ocean{WaterType: "Salt", MarineLife: "Fish"}},
	}
	for _, s := range seed {
		// seed templates are non-nil
		_ = r.Register(s.name, s.b)
	}
	return r
}

// Register stores a clone of template under name, replacing any previous
// entry. Nil templates, including typed nil pointers, are rejected.
func (r *Registry) Register(name string, template Biome) error {
	if isNil(template) {
		return fmt.Errorf("register %s: %w", name, ErrNilTemplate)
	}
	owned := template.Clone()
	if isNil(owned) {
		return fmt.Errorf("register %s: clone of %T: %w", name, template, ErrNilTemplate)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.templates == nil {
		r.templates = make(map[string]Biome)
	}
	r.templates[name] = owned
	return nil
}

// Create returns a new biome cloned from the template registered under name.
func (r *Registry) Create(name string) (Biome, error) {
	r.mu.RLock()
	t, ok := r.templates[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return t.Clone(), nil
}

// Names returns the registered template names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.templates))
	for n := range r.templates {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Close releases every stored template. The registry is empty afterwards.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates = nil
}

func isNil(b Biome) bool {
	if b == nil {
		return true
	}
	v := reflect.ValueOf(b)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}
