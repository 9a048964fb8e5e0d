package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/godecode"
	"github.com/reoring/godecode/middleware"
	"github.com/reoring/godecode/source"
)

// ValidateJSON decodes the request JSON with d, stores the value in the
// request context on success, or responds 400 with an error payload.
func ValidateJSON[A any](d godecode.Decoder[any, A], opts source.Options) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := middleware.DecodeRequest(c.Request(), d, opts)
			if err != nil {
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(err))
			}
			ctx := middleware.ContextWithDecoded(c.Request().Context(), v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetDecoded fetches the decoded value from echo.Context.
func GetDecoded[A any](c echo.Context) (A, bool) {
	return middleware.DecodedFromContext[A](c.Request().Context())
}
