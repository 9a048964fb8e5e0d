package jsonschema

import "github.com/reoring/godecode/ordered"

// Dialect is the $schema URI written by Document.
const Dialect = "https://json-schema.org/draft/2020-12/schema"

// Schema is a JSON Schema (draft 2020-12) document node. Object properties and
// definitions keep the order in which the schema declared them.
type Schema struct {
	Dialect string `json:"$schema,omitempty"`
	Ref     string `json:"$ref,omitempty"`

	// Core
	Type  string `json:"type,omitempty"`
	Const any    `json:"const,omitempty"`
	Enum  []any  `json:"enum,omitempty"`

	// Object
	Properties           *ordered.Map[*Schema] `json:"properties,omitempty"`
	Required             []string              `json:"required,omitempty"`
	AdditionalProperties *Schema               `json:"additionalProperties,omitempty"`

	// Array
	Items       *Schema   `json:"items,omitempty"`
	PrefixItems []*Schema `json:"prefixItems,omitempty"`
	MinItems    *int      `json:"minItems,omitempty"`

	// Composition
	AnyOf         []*Schema      `json:"anyOf,omitempty"`
	AllOf         []*Schema      `json:"allOf,omitempty"`
	OneOf         []*Schema      `json:"oneOf,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty"`

	Defs *ordered.Map[*Schema] `json:"$defs,omitempty"`
}

// Discriminator names the property that selects a oneOf branch.
type Discriminator struct {
	PropertyName string `json:"propertyName"`
}
