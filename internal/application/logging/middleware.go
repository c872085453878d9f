package logging

import (
	"context"

	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
)

// Middleware attaches logger to every request context that does not carry one yet
func Middleware(logger Logger) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if _, ok := ctx.Value(loggerKey).(Logger); !ok {
			ctx = WithLogger(ctx, logger)
		}
		return next(ctx, request)
	}
}
