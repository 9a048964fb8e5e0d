package jsonschema

import (
	"github.com/reoring/godecode/ordered"
	"github.com/reoring/godecode/schemable"
)

// Interpreter builds JSON Schema documents from schemable schemas. Lazy
// schemas become $ref nodes whose definitions are collected on the
// Interpreter; use Document to attach them to a root. An Interpreter is not
// safe for concurrent use.
type Interpreter struct {
	defs *ordered.Map[*Schema]
}

var _ schemable.Schemable[*Schema] = (*Interpreter)(nil)

// New returns an Interpreter with no definitions.
func New() *Interpreter {
	return &Interpreter{defs: ordered.NewMap[*Schema](0)}
}

// Generate interprets schema with a fresh Interpreter and returns the
// complete document.
func Generate(schema schemable.Schema[*Schema]) *Schema {
	in := New()
	return in.Document(schema(in))
}

// Document returns a copy of root carrying the dialect and every definition
// collected so far.
func (in *Interpreter) Document(root *Schema) *Schema {
	doc := *root
	doc.Dialect = Dialect
	if in.defs.Len() > 0 {
		doc.Defs = in.defs.Clone()
	}
	return &doc
}

// Definitions returns the collected definitions keyed by lazy id.
func (in *Interpreter) Definitions() *ordered.Map[*Schema] { return in.defs }

func (in *Interpreter) Literal(values ...schemable.Literal) *Schema {
	switch {
	case len(values) == 1 && values[0] == nil:
		return &Schema{Type: "null"}
	case len(values) == 1:
		return &Schema{Const: values[0]}
	default:
		return &Schema{Enum: append([]any(nil), values...)}
	}
}

func (in *Interpreter) String() *Schema  { return &Schema{Type: "string"} }
func (in *Interpreter) Number() *Schema  { return &Schema{Type: "number"} }
func (in *Interpreter) Boolean() *Schema { return &Schema{Type: "boolean"} }

func (in *Interpreter) Nullable(or *Schema) *Schema {
	return &Schema{AnyOf: []*Schema{or, {Type: "null"}}}
}

func (in *Interpreter) Type(properties ...schemable.Entry[*Schema]) *Schema {
	s := in.Partial(properties...)
	for _, p := range properties {
		s.Required = append(s.Required, p.Key)
	}
	return s
}

func (in *Interpreter) Partial(properties ...schemable.Entry[*Schema]) *Schema {
	props := ordered.NewMap[*Schema](len(properties))
	for _, p := range properties {
		props.Set(p.Key, p.Schema)
	}
	return &Schema{Type: "object", Properties: props}
}

func (in *Interpreter) Record(codomain *Schema) *Schema {
	return &Schema{Type: "object", AdditionalProperties: codomain}
}

func (in *Interpreter) Array(item *Schema) *Schema {
	return &Schema{Type: "array", Items: item}
}

func (in *Interpreter) Tuple(components ...*Schema) *Schema {
	n := len(components)
	return &Schema{Type: "array", PrefixItems: append([]*Schema(nil), components...), MinItems: &n}
}

func (in *Interpreter) Intersect(left, right *Schema) *Schema {
	return &Schema{AllOf: []*Schema{left, right}}
}

// Sum emits a oneOf over the members with a discriminator on tag. Each member
// is tightened so that tag must equal the member's name.
func (in *Interpreter) Sum(tag string, members ...schemable.Entry[*Schema]) *Schema {
	out := &Schema{Discriminator: &Discriminator{PropertyName: tag}}
	for _, m := range members {
		branch := &Schema{
			Type:       "object",
			Properties: ordered.FromPairs(ordered.Pair[*Schema]{Key: tag, Value: &Schema{Const: m.Key}}),
			Required:   []string{tag},
		}
		out.OneOf = append(out.OneOf, &Schema{AllOf: []*Schema{branch, m.Schema}})
	}
	return out
}

// Lazy returns a reference to #/$defs/<id>. The definition is built on first
// use; recursive references made while building it resolve to the same
// reference.
func (in *Interpreter) Lazy(id string, f func() *Schema) *Schema {
	ref := &Schema{Ref: "#/$defs/" + id}
	if in.defs.Has(id) {
		return ref
	}
	in.defs.Set(id, nil)
	in.defs.Set(id, f())
	return ref
}
