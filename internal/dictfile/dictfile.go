// Package dictfile loads a writable-only dictionary from a small JSON
// schema, the concrete form behind spec §6's "a single variable names
// the dictionary directory or file." Derived facts, limits, and
// overrides still require dictionary.Builder calls in Go — there is no
// JSON expression language here, matching every dictionary used in this
// module's own tests, which are built the same way.
package dictfile

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/trueprep/fact-graph/dictionary"
	"github.com/trueprep/fact-graph/value"
)

// entry is one line of the dictionary file: an abstract path and its
// declared writable type.
type entry struct {
	Path string `json:"path"`
	Type string `json:"type"`
}

// Load reads raw, a JSON array of {"path","type"} entries, and returns a
// frozen Dictionary declaring each as a writable fact of the named
// value.Kind.
func Load(raw []byte) (*dictionary.Dictionary, error) {
	var entries []entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("dictfile: %w", err)
	}
	b := dictionary.NewBuilder()
	for _, e := range entries {
		kind, ok := value.ParseKind(e.Type)
		if !ok {
			return nil, fmt.Errorf("dictfile: %s: unknown type %q", e.Path, e.Type)
		}
		b = b.Define(dictionary.FactDefinition{
			AbstractPath: e.Path,
			DeclaredType: kind,
			IsWritable:   true,
		})
	}
	return b.Freeze()
}

// LoadFile reads path from disk and parses it via Load.
func LoadFile(path string) (*dictionary.Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dictfile: reading %s: %w", path, err)
	}
	return Load(raw)
}
