// Package source loads JSON, YAML and TOML documents into the untyped values
// godecode decoders consume.
//
// Every loader yields *ordered.Map[any] for objects (document key order),
// []any for arrays, float64 for numbers, and string, bool or nil. Loaders
// never coerce one primitive kind into another; that is the decoders' job.
package source

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/reoring/godecode/internal/engine"
)

// Format names a document format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// DuplicatePolicy controls how repeated object keys are handled.
type DuplicatePolicy = engine.DuplicatePolicy

const (
	DuplicateLastWins = engine.DupLastWins
	DuplicateWarn     = engine.DupWarn
	DuplicateError    = engine.DupError
)

type (
	// Issue is a problem found while loading, addressed by JSON Pointer.
	Issue = engine.Issue
	// IssueError is returned for a fatal Issue.
	IssueError = engine.IssueError
)

// Options controls loading. The zero value accepts any nesting depth and lets
// the last of repeated keys win.
type Options struct {
	MaxDepth       int
	OnDuplicateKey DuplicatePolicy
	// OnIssue receives every issue, including DuplicateWarn reports.
	OnIssue func(Issue)
}

func (o Options) engine() engine.Options {
	return engine.Options{OnDuplicate: o.OnDuplicateKey, MaxDepth: o.MaxDepth, IssueSink: o.OnIssue}
}

// Source produces one untyped value.
type Source func() (any, error)

// Bytes returns a Source loading data as format f.
func Bytes(f Format, data []byte, opts Options) Source {
	return func() (any, error) { return Load(f, data, opts) }
}

// Reader returns a Source loading a JSON document from r.
func Reader(r io.Reader, opts Options) Source {
	return func() (any, error) { return JSONReader(r, opts) }
}

// Value returns a Source yielding v as it is.
func Value(v any) Source {
	return func() (any, error) { return v, nil }
}

// Load parses data as format f.
func Load(f Format, data []byte, opts Options) (any, error) {
	switch f {
	case JSON:
		return JSONBytes(data, opts)
	case YAML:
		return YAMLBytes(data, opts)
	case TOML:
		return TOMLBytes(data, opts)
	default:
		return nil, fmt.Errorf("source: unknown format %q", f)
	}
}

// FormatFromPath infers the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return "", fmt.Errorf("source: cannot infer format of %q", path)
	}
}

// JSONBytes parses a JSON document.
func JSONBytes(data []byte, opts Options) (any, error) {
	return JSONReader(bytes.NewReader(data), opts)
}

// JSONReader parses a single JSON document from r. Data after the document
// is an error.
func JSONReader(r io.Reader, opts Options) (any, error) {
	return build(JSON, engine.NewJSON(r), opts)
}

func build(f Format, src engine.TokenSource, opts Options) (any, error) {
	v, err := engine.Build(engine.Enforce(src, opts.engine()))
	if err != nil {
		return nil, fmt.Errorf("source: %s: %w", f, err)
	}
	return v, nil
}
