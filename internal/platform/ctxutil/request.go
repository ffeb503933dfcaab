package ctxutil

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type requestDataKey struct{}

// RequestData is the authenticated caller as decoded from the bearer token.
type RequestData struct {
	UserID         uuid.UUID
	Role           string
	OrganizationID *uuid.UUID
	TokenID        string
	ExpiresAt      time.Time
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey{}, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if ctx == nil {
		return nil
	}
	if rd, ok := ctx.Value(requestDataKey{}).(*RequestData); ok {
		return rd
	}
	return nil
}

// Default returns context.Background() when ctx is nil.
func Default(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
