package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/reoring/godecode/internal/engine"
)

// YAMLBytes parses the first document of a YAML stream. An empty stream is
// null. Mapping keys must be strings; anchors and aliases are expanded.
func YAMLBytes(data []byte, opts Options) (any, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("source: yaml: %w", err)
	}
	toks := engine.NewTokens(nil)
	if err := walkYAML(toks, &root, 0); err != nil {
		return nil, fmt.Errorf("source: yaml: %w", err)
	}
	return build(YAML, toks, opts)
}

// maxAliasDepth stops alias cycles such as `a: &a [*a]`.
const maxAliasDepth = 1000

func walkYAML(toks *engine.Tokens, n *yaml.Node, aliases int) error {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			toks.Append(engine.Token{Kind: engine.KindNull})
			return nil
		}
		return walkYAML(toks, n.Content[0], aliases)
	case yaml.AliasNode:
		if aliases >= maxAliasDepth {
			return fmt.Errorf("line %d: alias nesting too deep", n.Line)
		}
		return walkYAML(toks, n.Alias, aliases+1)
	case yaml.MappingNode:
		toks.Append(engine.Token{Kind: engine.KindBeginObject})
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind != yaml.ScalarNode || k.ShortTag() != "!!str" {
				return fmt.Errorf("line %d: mapping key %q is not a string", k.Line, k.Value)
			}
			toks.Append(engine.Token{Kind: engine.KindKey, String: k.Value})
			if err := walkYAML(toks, v, aliases); err != nil {
				return err
			}
		}
		toks.Append(engine.Token{Kind: engine.KindEndObject})
		return nil
	case yaml.SequenceNode:
		toks.Append(engine.Token{Kind: engine.KindBeginArray})
		for _, c := range n.Content {
			if err := walkYAML(toks, c, aliases); err != nil {
				return err
			}
		}
		toks.Append(engine.Token{Kind: engine.KindEndArray})
		return nil
	case yaml.ScalarNode:
		tok, err := yamlScalar(n)
		if err != nil {
			return err
		}
		toks.Append(tok)
		return nil
	default:
		return fmt.Errorf("line %d: unsupported node kind %d", n.Line, n.Kind)
	}
}

func yamlScalar(n *yaml.Node) (engine.Token, error) {
	switch n.ShortTag() {
	case "!!null":
		return engine.Token{Kind: engine.KindNull}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return engine.Token{}, err
		}
		return engine.Token{Kind: engine.KindBool, Bool: b}, nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return engine.Token{}, err
		}
		return engine.Token{Kind: engine.KindNumber, Number: strconv.FormatFloat(f, 'g', -1, 64)}, nil
	default:
		return engine.Token{Kind: engine.KindString, String: n.Value}, nil
	}
}

