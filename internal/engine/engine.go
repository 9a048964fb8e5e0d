// Package engine turns token streams from any source format into untyped
// values: *ordered.Map[any] for objects, []any for arrays, float64 for
// numbers, plus string, bool and nil.
package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/reoring/godecode/ordered"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

var kindNames = [...]string{"{", "}", "[", "]", "key", "string", "number", "bool", "null"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is one structural or scalar token. Number holds the literal text of
// a number token.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
}

// TokenSource yields tokens until io.EOF.
type TokenSource interface {
	NextToken() (Token, error)
}

// ErrTrailingData is returned by Build when tokens follow the root value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

// Build reads exactly one value from src. A repeated key keeps its first
// position and its last value.
func Build(src TokenSource) (any, error) {
	tok, err := src.NextToken()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	v, err := build(src, tok)
	if err != nil {
		return nil, err
	}
	if _, err := src.NextToken(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

func build(src TokenSource, tok Token) (any, error) {
	switch tok.Kind {
	case KindBeginObject:
		return buildObject(src)
	case KindBeginArray:
		return buildArray(src)
	case KindString:
		return tok.String, nil
	case KindNumber:
		f, err := strconv.ParseFloat(tok.Number, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", tok.Number, err)
		}
		return f, nil
	case KindBool:
		return tok.Bool, nil
	case KindNull:
		return nil, nil
	default:
		return nil, fmt.Errorf("unexpected token %s", tok.Kind)
	}
}

func next(src TokenSource) (Token, error) {
	tok, err := src.NextToken()
	if errors.Is(err, io.EOF) {
		return Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}

func buildObject(src TokenSource) (any, error) {
	m := ordered.NewMap[any](0)
	for {
		tok, err := next(src)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndObject {
			return m, nil
		}
		if tok.Kind != KindKey {
			return nil, fmt.Errorf("unexpected token %s, expecting key", tok.Kind)
		}
		vt, err := next(src)
		if err != nil {
			return nil, err
		}
		v, err := build(src, vt)
		if err != nil {
			return nil, err
		}
		m.Set(tok.String, v)
	}
}

func buildArray(src TokenSource) (any, error) {
	arr := []any{}
	for {
		tok, err := next(src)
		if err != nil {
			return nil, err
		}
		if tok.Kind == KindEndArray {
			return arr, nil
		}
		v, err := build(src, tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

// Tokens replays a fixed token slice. Tree-shaped formats (YAML, TOML) walk
// their document into Tokens so they share enforcement and building with
// JSON.
type Tokens struct {
	toks []Token
	pos  int
}

// NewTokens returns a source over toks.
func NewTokens(toks []Token) *Tokens { return &Tokens{toks: toks} }

// Append adds tokens to the end of the stream.
func (t *Tokens) Append(toks ...Token) { t.toks = append(t.toks, toks...) }

// NextToken implements TokenSource.
func (t *Tokens) NextToken() (Token, error) {
	if t.pos >= len(t.toks) {
		return Token{}, io.EOF
	}
	tok := t.toks[t.pos]
	t.pos++
	return tok, nil
}
