// Package requestctx holds request-scoped values set by HTTP middleware and
// read by usecases, without pulling net/http into the usecase layer.
package requestctx

import "context"

type (
	brandKey     struct{}
	requestIDKey struct{}
)

// DefaultBrand is used when no brand was resolved for the request.
const DefaultBrand = "Seguros XPTO"

func WithBrand(ctx context.Context, brand string) context.Context {
	return context.WithValue(ctx, brandKey{}, brand)
}

// Brand returns the display brand resolved for the current request host.
func Brand(ctx context.Context) string {
	if v, ok := ctx.Value(brandKey{}).(string); ok && v != "" {
		return v
	}
	return DefaultBrand
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	v, _ := ctx.Value(requestIDKey{}).(string)
	return v
}
