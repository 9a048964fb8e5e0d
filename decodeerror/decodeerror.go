// Package decodeerror defines the structural decode errors.
//
// A Leaf is a terminal shape mismatch. Every other variant records where in
// the input a nested set of errors occurred: under a property (Key), an array
// position (Index), an alternative of a union (Member), a named recursive
// schema (Lazy), or a user supplied message (Wrap).
package decodeerror

import fs "github.com/reoring/godecode/freesemigroup"

// Errors is a non-empty, ordered set of decode errors.
type Errors = *fs.FreeSemigroup[DecodeError]

// Kind tells whether a property or index was required or optional.
type Kind string

const (
	Required Kind = "required"
	Optional Kind = "optional"
)

// DecodeError is one of Leaf, Key, Index, Member, Lazy or Wrap.
type DecodeError interface {
	decodeError()
}

// Leaf reports that Actual does not match the Expected description.
type Leaf struct {
	Actual   any
	Expected string
}

// Key reports errors found under the property Key.
type Key struct {
	Key    string
	Kind   Kind
	Errors Errors
}

// Index reports errors found at the array position Index.
type Index struct {
	Index  int
	Kind   Kind
	Errors Errors
}

// Member reports errors of the Index-th alternative of a union.
type Member struct {
	Index  int
	Errors Errors
}

// Lazy reports errors reached through the recursive schema ID.
type Lazy struct {
	ID     string
	Errors Errors
}

// Wrap annotates Errors with a custom Message.
type Wrap struct {
	Message string
	Errors  Errors
}

func (Leaf) decodeError()   {}
func (Key) decodeError()    {}
func (Index) decodeError()  {}
func (Member) decodeError() {}
func (Lazy) decodeError()   {}
func (Wrap) decodeError()   {}

func NewLeaf(actual any, expected string) DecodeError {
	return Leaf{Actual: actual, Expected: expected}
}

func NewKey(key string, kind Kind, errs Errors) DecodeError {
	return Key{Key: key, Kind: kind, Errors: errs}
}

func NewIndex(index int, kind Kind, errs Errors) DecodeError {
	return Index{Index: index, Kind: kind, Errors: errs}
}

func NewMember(index int, errs Errors) DecodeError {
	return Member{Index: index, Errors: errs}
}

func NewLazy(id string, errs Errors) DecodeError {
	return Lazy{ID: id, Errors: errs}
}

func NewWrap(message string, errs Errors) DecodeError {
	return Wrap{Message: message, Errors: errs}
}

// Of returns the set holding only e.
func Of(e DecodeError) Errors { return fs.Of(e) }

// Concat returns left followed by right.
func Concat(left, right Errors) Errors { return fs.Concat(left, right) }

// Folder holds one function per variant. Fold calls the one matching e.
type Folder[R any] struct {
	Leaf   func(actual any, expected string) R
	Key    func(key string, kind Kind, errs Errors) R
	Index  func(index int, kind Kind, errs Errors) R
	Member func(index int, errs Errors) R
	Lazy   func(id string, errs Errors) R
	Wrap   func(message string, errs Errors) R
}

// Fold dispatches e to the matching function of f.
func Fold[R any](e DecodeError, f Folder[R]) R {
	switch e := e.(type) {
	case Leaf:
		return f.Leaf(e.Actual, e.Expected)
	case Key:
		return f.Key(e.Key, e.Kind, e.Errors)
	case Index:
		return f.Index(e.Index, e.Kind, e.Errors)
	case Member:
		return f.Member(e.Index, e.Errors)
	case Lazy:
		return f.Lazy(e.ID, e.Errors)
	case Wrap:
		return f.Wrap(e.Message, e.Errors)
	default:
		panic("decodeerror: unknown variant")
	}
}
