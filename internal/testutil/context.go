package testutil

import (
	"context"

	"github.com/shama2369/trichygold-campaignsc/internal/types"
)

// SetupContext returns a context pre-populated with default test identity
func SetupContext() context.Context {
	ctx := context.Background()
	ctx = context.WithValue(ctx, types.CtxUserID, types.DefaultUserID)
	ctx = context.WithValue(ctx, types.CtxRequestID, "test-request")
	return ctx
}
