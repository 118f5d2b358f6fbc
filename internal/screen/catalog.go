package screen

import (
	"fmt"
	"sort"
)

// Screen is a constructed screen implementation.
type Screen interface {
	Name() string
}

// DataReceiver is implemented by screens that accept a payload after they
// have been activated.
type DataReceiver interface {
	ReceiveData(payload any) error
}

// Constructor builds the screen implementation bound to name.
type Constructor func(name string) (Screen, error)

// Catalog is the factory table that resolves implementation references to
// constructors. It is filled explicitly at startup.
type Catalog struct {
	constructors map[Reference]Constructor
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{constructors: make(map[Reference]Constructor)}
}

// Register adds a constructor for ref
func (c *Catalog) Register(ref Reference, ctor Constructor) error {
	if !ref.Valid() {
		return fmt.Errorf("invalid screen reference: %q", ref.String())
	}
	if ctor == nil {
		return fmt.Errorf("nil constructor for screen reference: %s", ref)
	}
	if _, exists := c.constructors[ref]; exists {
		return fmt.Errorf("constructor already registered: %s", ref)
	}
	c.constructors[ref] = ctor
	return nil
}

// MustRegister is like Register but panics on error. It is meant for the
// static catalog wiring done at startup.
func (c *Catalog) MustRegister(ref Reference, ctor Constructor) {
	if err := c.Register(ref, ctor); err != nil {
		panic(err)
	}
}

// Resolve returns the constructor registered for ref
func (c *Catalog) Resolve(ref Reference) (Constructor, error) {
	ctor, ok := c.constructors[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReference, ref)
	}
	return ctor, nil
}

// References returns all registered references sorted by their string form
func (c *Catalog) References() []Reference {
	refs := make([]Reference, 0, len(c.constructors))
	for ref := range c.constructors {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].String() < refs[j].String() })
	return refs
}
