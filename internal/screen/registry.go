package screen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Registry source formats
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// Reference locates the constructor of a screen implementation.
type Reference struct {
	Package     string `json:"package" toml:"package" yaml:"package"`
	Constructor string `json:"constructor" toml:"constructor" yaml:"constructor"`
}

// rawReference is the decoded form of one registry entry. module and class
// are accepted as aliases of package and constructor.
type rawReference struct {
	Package     string `json:"package" toml:"package" yaml:"package"`
	Constructor string `json:"constructor" toml:"constructor" yaml:"constructor"`
	Module      string `json:"module" toml:"module" yaml:"module"`
	Class       string `json:"class" toml:"class" yaml:"class"`
}

func (r rawReference) reference() Reference {
	ref := Reference{Package: r.Package, Constructor: r.Constructor}
	if ref.Package == "" {
		ref.Package = r.Module
	}
	if ref.Constructor == "" {
		ref.Constructor = r.Class
	}
	return ref
}

// String returns the reference as package.Constructor
func (r Reference) String() string {
	return r.Package + "." + r.Constructor
}

// Valid reports whether both parts of the reference are set
func (r Reference) Valid() bool {
	return strings.TrimSpace(r.Package) != "" && strings.TrimSpace(r.Constructor) != ""
}

// Entry describes one screen of the registry.
type Entry struct {
	Name      string
	Reference Reference
}

// Registry is the read-only set of known screens. It is built once at startup
// and never mutated afterwards.
type Registry struct {
	entries map[string]Entry
	skipped []string
}

// NewRegistry creates a registry from the given entries. Entries with an empty
// name or an invalid reference are skipped, as are later duplicates of a name.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		switch {
		case strings.TrimSpace(e.Name) == "":
			r.skipped = append(r.skipped, "(unnamed)")
		case !e.Reference.Valid():
			r.skipped = append(r.skipped, e.Name)
		default:
			if _, exists := r.entries[e.Name]; exists {
				r.skipped = append(r.skipped, e.Name)
				continue
			}
			r.entries[e.Name] = e
		}
	}
	return r
}

// Lookup returns the entry registered for name
func (r *Registry) Lookup(name string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	e, ok := r.entries[name]
	return e, ok
}

// Names returns the registered screen names in sorted order
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered screens
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Skipped returns the names of entries that were dropped while building the
// registry because they were malformed or duplicated.
func (r *Registry) Skipped() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.skipped...)
}

// LoadRegistry reads a registry source file. The format is picked from the
// extension (.toml, .yaml or .yml, anything else is JSON). On a read or parse failure an empty
// registry is returned together with the error so callers can keep running.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NewRegistry(), fmt.Errorf("failed to read screen registry: %w", err)
	}
	return ParseRegistry(data, FormatFromPath(path))
}

// FormatFromPath returns the registry format implied by a file name
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// ParseRegistry decodes a registry source. Each entry is decoded on its own so
// one malformed entry does not discard the others.
func ParseRegistry(data []byte, format string) (*Registry, error) {
	var entries []Entry

	switch format {
	case FormatTOML:
		raw := map[string]toml.Primitive{}
		md, err := toml.Decode(string(data), &raw)
		if err != nil {
			return NewRegistry(), fmt.Errorf("failed to parse screen registry: %w", err)
		}
		for name, prim := range raw {
			var decoded rawReference
			if err := md.PrimitiveDecode(prim, &decoded); err != nil {
				entries = append(entries, Entry{Name: name})
				continue
			}
			entries = append(entries, Entry{Name: name, Reference: decoded.reference()})
		}
	case FormatYAML:
		raw := map[string]yaml.Node{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return NewRegistry(), fmt.Errorf("failed to parse screen registry: %w", err)
		}
		for name, node := range raw {
			var decoded rawReference
			if err := node.Decode(&decoded); err != nil {
				entries = append(entries, Entry{Name: name})
				continue
			}
			entries = append(entries, Entry{Name: name, Reference: decoded.reference()})
		}
	case FormatJSON:
		raw := map[string]json.RawMessage{}
		if err := json.Unmarshal(data, &raw); err != nil {
			return NewRegistry(), fmt.Errorf("failed to parse screen registry: %w", err)
		}
		for name, msg := range raw {
			var decoded rawReference
			if err := json.Unmarshal(msg, &decoded); err != nil {
				entries = append(entries, Entry{Name: name})
				continue
			}
			entries = append(entries, Entry{Name: name, Reference: decoded.reference()})
		}
	default:
		return NewRegistry(), fmt.Errorf("unsupported screen registry format: %s", format)
	}

	// Map iteration order is random; keep duplicate handling deterministic.
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return NewRegistry(entries...), nil
}
