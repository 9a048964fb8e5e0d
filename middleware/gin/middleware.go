package ginmw

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reoring/godecode"
	"github.com/reoring/godecode/middleware"
	"github.com/reoring/godecode/source"
)

// ValidateJSON decodes the request JSON with d, stores the value in the
// request context, and on failure aborts with 400 and an error payload.
func ValidateJSON[A any](d godecode.Decoder[any, A], opts source.Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, err := middleware.DecodeRequest(c.Request, d, opts)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			return
		}
		c.Request = c.Request.WithContext(middleware.ContextWithDecoded(c.Request.Context(), v))
		c.Next()
	}
}

// GetDecoded fetches the decoded value from gin.Context.
func GetDecoded[A any](c *gin.Context) (A, bool) {
	return middleware.DecodedFromContext[A](c.Request.Context())
}
