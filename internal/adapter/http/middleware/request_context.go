package middleware

import (
	"seguros_xpto/internal/infrastructure/branding"
	"seguros_xpto/pkg/requestctx"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestContext assigns a request id (reusing a well-formed incoming one)
// and resolves the display brand from the request host once per request.
func RequestContext(brands *branding.Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Header(RequestIDHeader, id)

		ctx := requestctx.WithRequestID(c.Request.Context(), id)
		if brands != nil {
			ctx = requestctx.WithBrand(ctx, brands.Resolve(c.Request.Host))
		}
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
