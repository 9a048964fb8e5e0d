// Package middleware decodes JSON request bodies at HTTP boundaries.
//
// DecodeJSON wraps a net/http handler; the echo and gin subpackages (separate
// modules) adapt the same behavior to those frameworks. On success the
// decoded value is stored in the request context; on failure the client
// receives 400 with an ErrorPayload body.
package middleware

import (
	"context"
	"errors"
	"net/http"

	json "github.com/goccy/go-json"

	"github.com/reoring/godecode"
	"github.com/reoring/godecode/source"
)

// ctxKeyDecoded is a typed context key for storing a decoded T.
// Using a generic struct type ensures uniqueness per T.
type ctxKeyDecoded[T any] struct{}

// ContextWithDecoded attaches a decoded value to the context.
func ContextWithDecoded[T any](ctx context.Context, v T) context.Context {
	return context.WithValue(ctx, ctxKeyDecoded[T]{}, v)
}

// DecodedFromContext retrieves a decoded value from context.
func DecodedFromContext[T any](ctx context.Context) (T, bool) {
	v, ok := ctx.Value(ctxKeyDecoded[T]{}).(T)
	return v, ok
}

// DefaultOptions returns the loading options used at HTTP boundaries:
// duplicate keys are errors and nesting is bounded.
func DefaultOptions() source.Options {
	return source.Options{OnDuplicateKey: source.DuplicateError, MaxDepth: 64}
}

// DecodeRequest loads the JSON body of r and decodes it with d.
func DecodeRequest[A any](r *http.Request, d godecode.Decoder[any, A], opts source.Options) (A, error) {
	return godecode.DecodeSource(d, source.Reader(r.Body, opts))
}

// ErrorPayload shapes a DecodeRequest error for JSON responses. Decode
// failures carry the drawn error tree and the flattened issues; load
// failures carry only the message.
func ErrorPayload(err error) map[string]any {
	if derr, ok := godecode.AsError(err); ok {
		return map[string]any{"error": derr.Error(), "issues": derr.Issues()}
	}
	var ie *source.IssueError
	if errors.As(err, &ie) {
		return map[string]any{"error": err.Error(), "issues": []source.Issue{ie.Issue}}
	}
	return map[string]any{"error": err.Error()}
}

// DecodeJSON returns a handler that decodes the request body with d before
// calling next. Pass source.Options{} for permissive loading.
func DecodeJSON[A any](d godecode.Decoder[any, A], opts source.Options, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, err := DecodeRequest(r, d, opts)
		if err != nil {
			WriteJSON(w, http.StatusBadRequest, ErrorPayload(err))
			return
		}
		next.ServeHTTP(w, r.WithContext(ContextWithDecoded(r.Context(), v)))
	})
}

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
