package source

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/reoring/godecode/internal/engine"
)

// TOMLBytes parses a TOML document. Keys keep document order. Integers become
// float64; dates and times become strings (RFC 3339 for offset date-times,
// the TOML local forms otherwise).
func TOMLBytes(data []byte, opts Options) (any, error) {
	var doc map[string]any
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("source: toml: %w", err)
	}
	order := make(map[string][]string)
	for _, key := range md.Keys() {
		parent := strings.Join(key[:len(key)-1], ".")
		if name := key[len(key)-1]; !slices.Contains(order[parent], name) {
			order[parent] = append(order[parent], name)
		}
	}
	toks := engine.NewTokens(nil)
	if err := walkTOML(toks, doc, "", order); err != nil {
		return nil, fmt.Errorf("source: toml: %w", err)
	}
	return build(TOML, toks, opts)
}

// walkTOML emits v. path is the dotted key path of v with array positions
// left out, matching MetaData.Keys.
func walkTOML(toks *engine.Tokens, v any, path string, order map[string][]string) error {
	switch v := v.(type) {
	case map[string]any:
		toks.Append(engine.Token{Kind: engine.KindBeginObject})
		for _, k := range tableKeys(v, order[path]) {
			toks.Append(engine.Token{Kind: engine.KindKey, String: k})
			if err := walkTOML(toks, v[k], joinKey(path, k), order); err != nil {
				return err
			}
		}
		toks.Append(engine.Token{Kind: engine.KindEndObject})
	case []map[string]any:
		toks.Append(engine.Token{Kind: engine.KindBeginArray})
		for _, e := range v {
			if err := walkTOML(toks, e, path, order); err != nil {
				return err
			}
		}
		toks.Append(engine.Token{Kind: engine.KindEndArray})
	case []any:
		toks.Append(engine.Token{Kind: engine.KindBeginArray})
		for _, e := range v {
			if err := walkTOML(toks, e, path, order); err != nil {
				return err
			}
		}
		toks.Append(engine.Token{Kind: engine.KindEndArray})
	case string:
		toks.Append(engine.Token{Kind: engine.KindString, String: v})
	case bool:
		toks.Append(engine.Token{Kind: engine.KindBool, Bool: v})
	case int64:
		toks.Append(engine.Token{Kind: engine.KindNumber, Number: strconv.FormatInt(v, 10)})
	case float64:
		toks.Append(engine.Token{Kind: engine.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)})
	case time.Time:
		toks.Append(engine.Token{Kind: engine.KindString, String: formatTOMLTime(v)})
	default:
		return fmt.Errorf("%s: unsupported value %T", path, v)
	}
	return nil
}

// tableKeys lists the keys of t in document order. Keys missing from the
// metadata follow in sorted order.
func tableKeys(t map[string]any, declared []string) []string {
	keys := make([]string, 0, len(t))
	for _, k := range declared {
		if _, ok := t[k]; ok {
			keys = append(keys, k)
		}
	}
	if len(keys) == len(t) {
		return keys
	}
	var rest []string
	for k := range t {
		if !slices.Contains(keys, k) {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	return append(keys, rest...)
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func formatTOMLTime(t time.Time) string {
	switch t.Location().String() {
	case "datetime-local":
		return t.Format("2006-01-02T15:04:05.999999999")
	case "date-local":
		return t.Format("2006-01-02")
	case "time-local":
		return t.Format("15:04:05.999999999")
	default:
		return t.Format(time.RFC3339Nano)
	}
}
