package metrics

import (
	"context"
	"reflect"
	"strings"
	"time"

	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
)

// PrometheusMiddleware records the duration, outcome and concurrency of every request.
// A nil collector turns it into a pass-through.
func PrometheusMiddleware(collector *CommandMetricsCollector) mediator.Middleware {
	return func(ctx context.Context, request mediator.Request, next mediator.HandlerFunc) (mediator.Response, error) {
		if collector == nil {
			return next(ctx, request)
		}

		commandName := extractCommandName(request)
		done := collector.Started(requestKind(commandName))
		defer done()

		start := time.Now()
		response, err := next(ctx, request)
		collector.RecordCommandExecution(commandName, time.Since(start).Seconds(), err)

		return response, err
	}
}

// extractCommandName strips pointer and package from the request type,
// "*queries.ResolveGroupQuery" becomes "ResolveGroupQuery"
func extractCommandName(request mediator.Request) string {
	if request == nil {
		return "UnknownCommand"
	}

	fullName := strings.TrimPrefix(reflect.TypeOf(request).String(), "*")

	parts := strings.Split(fullName, ".")
	return parts[len(parts)-1]
}

// requestKind tells commands from queries by the type name suffix
func requestKind(name string) string {
	switch {
	case strings.HasSuffix(name, "Command"):
		return "command"
	case strings.HasSuffix(name, "Query"):
		return "query"
	default:
		return "request"
	}
}
