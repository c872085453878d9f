package grpc

import (
	"context"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/andrescamacho/craftchain-go/internal/application/logging"
)

// RateLimitInterceptor waits for a token before handling each call.
// Calls whose context ends while waiting fail with ResourceExhausted.
func RateLimitInterceptor(limiter *rate.Limiter) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if limiter == nil {
			return handler(ctx, req)
		}
		if err := limiter.Wait(ctx); err != nil {
			return nil, status.Errorf(codes.ResourceExhausted, "rate limit exceeded for %s: %v", info.FullMethod, err)
		}
		return handler(ctx, req)
	}
}

// LoggingInterceptor attaches the logger to the call context and logs each call
func LoggingInterceptor(logger logging.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if logger == nil {
			return handler(ctx, req)
		}

		ctx = logging.WithLogger(ctx, logger)
		start := time.Now()

		resp, err := handler(ctx, req)

		metadata := map[string]interface{}{
			"method":      info.FullMethod,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if err != nil {
			metadata["code"] = status.Code(err).String()
			metadata["error"] = err.Error()
			logger.Log("WARNING", "Planner call failed", metadata)
		} else {
			logger.Log("DEBUG", "Planner call handled", metadata)
		}

		return resp, err
	}
}
