package requestdata

import (
	"context"
)

type requestDataKey struct{}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	val := ctx.Value(requestDataKey{})
	if rd, ok := val.(*RequestData); ok {
		return rd
	}
	return nil
}

// RequestData carries the authenticated caller through the request context.
// UserID is the externally issued identity, not a local row id.
type RequestData struct {
	TokenString string
	UserID      string
	Email       string
}
