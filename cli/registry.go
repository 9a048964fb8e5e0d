package cli

import (
	"github.com/reoring/godecode"
	"github.com/reoring/godecode/jsonschema"
	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/schemable"
)

// Entry is a named schema in both of its interpretations.
type Entry struct {
	Name        string
	Description string
	Decoder     godecode.Decoder[any, any]
	Schema      func() *jsonschema.Schema
}

// Registry holds the schemas the CLI can check against, in registration
// order.
type Registry struct {
	entries ordered.Map[Entry]
}

// Register adds a schema. dec and doc must be the same generic schema
// instantiated for the decoder and JSON Schema interpreters:
//
//	r.Register("tree", "labelled tree", Tree[godecode.Decoder[any, any]], Tree[*jsonschema.Schema])
func (r *Registry) Register(
	name, description string,
	dec schemable.Schema[godecode.Decoder[any, any]],
	doc schemable.Schema[*jsonschema.Schema],
) {
	r.entries.Set(name, Entry{
		Name:        name,
		Description: description,
		Decoder:     godecode.Interpret(dec),
		Schema:      func() *jsonschema.Schema { return jsonschema.Generate(doc) },
	})
}

// Lookup returns the entry registered under name.
func (r *Registry) Lookup(name string) (Entry, bool) { return r.entries.Get(name) }

// Entries lists the entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, r.entries.Len())
	for _, e := range r.entries.All() {
		out = append(out, e)
	}
	return out
}
