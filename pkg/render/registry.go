package render

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry stores elements by name, providing discovery and duplication
// safeguards. Names are case-insensitive.
type Registry struct {
	mu       sync.RWMutex
	elements map[string]Element
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		elements: make(map[string]Element),
	}
}

// Register adds an element by its Name(). Duplicate names return an error.
func (r *Registry) Register(element Element) error {
	if element == nil {
		return fmt.Errorf("render: element is required")
	}
	name := normalizeName(element.Name())
	if name == "" {
		return fmt.Errorf("render: element name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.elements[name]; exists {
		return fmt.Errorf("render: element %q already registered", name)
	}

	r.elements[name] = element
	return nil
}

// Replace registers element, overriding any element with the same name.
func (r *Registry) Replace(element Element) error {
	if element == nil {
		return fmt.Errorf("render: element is required")
	}
	name := normalizeName(element.Name())
	if name == "" {
		return fmt.Errorf("render: element name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.elements[name] = element
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(element Element) {
	if err := r.Register(element); err != nil {
		panic(err)
	}
}

// Get retrieves an element by name.
func (r *Registry) Get(name string) (Element, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	element, ok := r.elements[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownElement, name)
	}
	return element, nil
}

// List returns a sorted list of element names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.elements))
	for name := range r.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether an element is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.elements[normalizeName(name)]
	return ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
