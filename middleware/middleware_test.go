package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/godecode"
	"github.com/reoring/godecode/middleware"
	"github.com/reoring/godecode/ordered"
)

var user = godecode.Type(
	godecode.Field("name", godecode.String()),
	godecode.Field("age", godecode.Number()),
)

func serve(t *testing.T, body string) (*httptest.ResponseRecorder, *ordered.Map[any]) {
	t.Helper()
	var got *ordered.Map[any]
	h := middleware.DecodeJSON(user, middleware.DefaultOptions(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := middleware.DecodedFromContext[*ordered.Map[any]](r.Context())
		require.True(t, ok)
		got = v
		w.WriteHeader(http.StatusNoContent)
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))
	return rec, got
}

func TestDecodeJSON_Success(t *testing.T) {
	rec, got := serve(t, `{"name":"ann","age":30}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, got)
	name, _ := got.Get("name")
	assert.Equal(t, "ann", name)
}

func TestDecodeJSON_DecodeFailure(t *testing.T) {
	rec, got := serve(t, `{"name":1}`)
	assert.Nil(t, got)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string           `json:"error"`
		Issues []godecode.Issue `json:"issues"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, `required property "name"`)
	require.Len(t, body.Issues, 2)
	assert.Equal(t, "/name", body.Issues[0].Path)
	assert.Equal(t, "/age", body.Issues[1].Path)
}

func TestDecodeJSON_LoadFailure(t *testing.T) {
	rec, _ := serve(t, `{"name":"a","name":"b","age":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "duplicate_key")

	rec, _ = serve(t, `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}
