package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/odrellan/limitkit/core"
)

// Sentinel errors for registry operations.
var (
	// ErrEmptyID indicates a descriptor registered without an identifier.
	ErrEmptyID = errors.New("catalog: descriptor ID must not be empty")

	// ErrNilFunc indicates a descriptor registered without a callable.
	ErrNilFunc = errors.New("catalog: descriptor function is nil")

	// ErrDuplicateID indicates an identifier registered twice.
	ErrDuplicateID = errors.New("catalog: duplicate descriptor ID")

	// ErrUnknownFunction indicates a lookup for an unregistered identifier.
	ErrUnknownFunction = errors.New("catalog: unknown function ID")
)

// Descriptor is one catalog entry: a callable plus the metadata a
// presentation layer needs to offer it for exploration.
type Descriptor struct {
	// ID is the unique registry key.
	ID string

	// Name is the human-readable display name.
	Name string

	// Summary is a one-line account of the function's interesting behavior.
	Summary string

	// Fn is the callable handed to the evaluation core.
	Fn core.Func

	// Domain is the range over which the function is worth sampling or
	// plotting.
	Domain core.Interval

	// Points lists the approach points where the function's behavior is
	// worth examining.
	Points []float64
}

// Info is the serializable view of a Descriptor — everything except the
// callable itself.
type Info struct {
	ID      string    `yaml:"id"`
	Name    string    `yaml:"name"`
	Summary string    `yaml:"summary"`
	Domain  []float64 `yaml:"domain,flow"`
	Points  []float64 `yaml:"points,flow"`
}

// Info returns the descriptor's serializable view.
func (d Descriptor) Info() Info {
	return Info{
		ID:      d.ID,
		Name:    d.Name,
		Summary: d.Summary,
		Domain:  []float64{d.Domain.Lo, d.Domain.Hi},
		Points:  d.Points,
	}
}

// Registry is a keyed collection of descriptors. The zero value is not
// usable; construct with NewRegistry or Builtin. Safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	byID map[string]Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Descriptor)}
}

// Register adds d to the registry. The ID must be non-empty and unused,
// and the callable must be non-nil.
func (r *Registry) Register(d Descriptor) error {
	if d.ID == "" {
		return ErrEmptyID
	}
	if d.Fn == nil {
		return fmt.Errorf("%w: %q", ErrNilFunc, d.ID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[d.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
	}
	r.byID[d.ID] = d

	return nil
}

// Lookup returns the descriptor registered under id.
func (r *Registry) Lookup(id string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownFunction, id)
	}

	return d, nil
}

// IDs returns every registered identifier in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}
