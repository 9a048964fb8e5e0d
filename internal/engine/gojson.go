package engine

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	j "github.com/goccy/go-json"
)

type jsonFrame struct {
	kind         containerKind
	expectingKey bool
}

type jsonSource struct {
	dec   *j.Decoder
	stack []jsonFrame
}

// NewJSON returns a TokenSource reading JSON from r with goccy/go-json.
func NewJSON(r io.Reader) TokenSource {
	dec := j.NewDecoder(r)
	dec.UseNumber()
	return &jsonSource{dec: dec}
}

func (s *jsonSource) NextToken() (Token, error) {
	tok, err := s.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Token{}, io.EOF
		}
		return Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			s.valueRead()
			s.stack = append(s.stack, jsonFrame{kind: kindObject, expectingKey: true})
			return Token{Kind: KindBeginObject}, nil
		case '[':
			s.valueRead()
			s.stack = append(s.stack, jsonFrame{kind: kindArray})
			return Token{Kind: KindBeginArray}, nil
		case '}':
			s.pop()
			return Token{Kind: KindEndObject}, nil
		case ']':
			s.pop()
			return Token{Kind: KindEndArray}, nil
		}
	case string:
		if n := len(s.stack); n > 0 && s.stack[n-1].kind == kindObject && s.stack[n-1].expectingKey {
			s.stack[n-1].expectingKey = false
			return Token{Kind: KindKey, String: v}, nil
		}
		s.valueRead()
		return Token{Kind: KindString, String: v}, nil
	case bool:
		s.valueRead()
		return Token{Kind: KindBool, Bool: v}, nil
	case j.Number:
		s.valueRead()
		return Token{Kind: KindNumber, Number: string(v)}, nil
	case float64:
		s.valueRead()
		return Token{Kind: KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64)}, nil
	case nil:
		s.valueRead()
		return Token{Kind: KindNull}, nil
	}
	return Token{}, fmt.Errorf("unsupported json token %T", tok)
}

// valueRead marks the pending property of the enclosing object as consumed.
func (s *jsonSource) valueRead() {
	if n := len(s.stack); n > 0 && s.stack[n-1].kind == kindObject {
		s.stack[n-1].expectingKey = true
	}
}

func (s *jsonSource) pop() {
	if n := len(s.stack); n > 0 {
		s.stack = s.stack[:n-1]
	}
}
