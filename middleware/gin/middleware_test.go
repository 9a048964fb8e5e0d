package ginmw_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/reoring/godecode"
	ginmw "github.com/reoring/godecode/middleware/gin"
	"github.com/reoring/godecode/source"
)

func TestValidateJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	age := godecode.Map(godecode.Type(godecode.Field("age", godecode.Number())), func(m godecode.Object) float64 {
		v, _ := m.Get("age")
		return v.(float64)
	})
	r.POST("/", ginmw.ValidateJSON(age, source.Options{OnDuplicateKey: source.DuplicateError}), func(c *gin.Context) {
		got, ok := ginmw.GetDecoded[float64](c)
		if !ok {
			t.Fatalf("decoded value missing from context")
		}
		c.JSON(http.StatusOK, gin.H{"age": got})
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age":7}`)))
	if rec.Code != http.StatusOK || rec.Body.String() != `{"age":7}` {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"age":1,"age":2}`)))
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), `"duplicate_key"`) {
		t.Fatalf("unexpected response %d %q", rec.Code, rec.Body.String())
	}
}
