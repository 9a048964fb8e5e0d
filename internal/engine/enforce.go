package engine

import (
	"strconv"
	"strings"

	"github.com/reoring/godecode/i18n"
)

// Enforcement wrapper for TokenSource applying duplicate key handling and
// max depth checks while the stream is consumed.

// DuplicatePolicy controls duplicate key handling.
type DuplicatePolicy int

const (
	// DupLastWins accepts duplicates silently; the last value wins.
	DupLastWins DuplicatePolicy = iota
	// DupWarn reports duplicates to the issue sink and continues.
	DupWarn
	// DupError stops at the first duplicate.
	DupError
)

// Issue codes reported by enforcement.
const (
	CodeDuplicateKey = "duplicate_key"
	CodeMaxDepth     = "max_depth"
)

// Options controls runtime enforcement behavior.
type Options struct {
	OnDuplicate DuplicatePolicy
	// MaxDepth bounds object and array nesting; 0 means unlimited.
	MaxDepth int
	// IssueSink receives every issue, including non-fatal duplicate warnings.
	IssueSink func(Issue)
}

// Issue is a problem found in the token stream, addressed by JSON Pointer.
type Issue struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// IssueError is the error returned for a fatal Issue.
type IssueError struct{ Issue }

func (e *IssueError) Error() string { return e.Path + ": " + e.Message }

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind       containerKind
	keys       map[string]struct{}
	path       string
	nextIndex  int
	pendingKey string
}

// Enforce returns a TokenSource that applies opt to inner. When opt enforces
// nothing it returns inner unchanged.
func Enforce(inner TokenSource, opt Options) TokenSource {
	if opt.OnDuplicate == DupLastWins && opt.MaxDepth <= 0 {
		return inner
	}
	return &enforcingTokenSource{inner: inner, opt: opt}
}

type enforcingTokenSource struct {
	inner TokenSource
	opt   Options
	stack []frame
}

func (e *enforcingTokenSource) NextToken() (Token, error) {
	tok, err := e.inner.NextToken()
	if err != nil {
		return Token{}, err
	}

	switch tok.Kind {
	case KindBeginObject, KindBeginArray:
		f := frame{kind: kindArray, path: e.valuePath()}
		if tok.Kind == KindBeginObject {
			f.kind = kindObject
			f.keys = make(map[string]struct{})
		}
		e.stack = append(e.stack, f)
		if e.opt.MaxDepth > 0 && len(e.stack) > e.opt.MaxDepth {
			return Token{}, e.report(CodeMaxDepth, f.path, nil, true)
		}
	case KindEndObject, KindEndArray:
		if n := len(e.stack); n > 0 {
			e.stack = e.stack[:n-1]
		}
	case KindKey:
		if n := len(e.stack); n > 0 && e.stack[n-1].kind == kindObject {
			top := &e.stack[n-1]
			if _, dup := top.keys[tok.String]; dup && e.opt.OnDuplicate != DupLastWins {
				path := joinJSONPointer(top.path, tok.String)
				if err := e.report(CodeDuplicateKey, path, map[string]string{"key": strconv.Quote(tok.String)}, e.opt.OnDuplicate == DupError); err != nil {
					return Token{}, err
				}
			}
			top.keys[tok.String] = struct{}{}
			top.pendingKey = tok.String
		}
	default:
		e.valuePath()
	}
	return tok, nil
}

// valuePath returns the pointer of the value about to be read and advances
// the enclosing array index.
func (e *enforcingTokenSource) valuePath() string {
	n := len(e.stack)
	if n == 0 {
		return ""
	}
	top := &e.stack[n-1]
	if top.kind == kindArray {
		p := joinJSONPointer(top.path, strconv.Itoa(top.nextIndex))
		top.nextIndex++
		return p
	}
	return joinJSONPointer(top.path, top.pendingKey)
}

func (e *enforcingTokenSource) report(code, path string, data map[string]string, fatal bool) error {
	if path == "" {
		path = "/"
	}
	is := Issue{Code: code, Path: path, Message: i18n.T(code, data)}
	if e.opt.IssueSink != nil {
		e.opt.IssueSink(is)
	}
	if fatal {
		return &IssueError{is}
	}
	return nil
}

var jsonPointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func joinJSONPointer(base, token string) string {
	return base + "/" + jsonPointerEscaper.Replace(token)
}
