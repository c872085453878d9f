package mediator

import (
	"context"
	"fmt"
	"reflect"
)

// Request is a command or query value; its dynamic type selects the handler
type Request interface{}

// Response is whatever the handler returns for a request
type Response interface{}

// RequestHandler handles one request type
type RequestHandler interface {
	Handle(ctx context.Context, request Request) (Response, error)
}

// HandlerFunc is the next step of a middleware chain
type HandlerFunc func(ctx context.Context, request Request) (Response, error)

// Middleware wraps every Send, for example with logging or command metrics.
// It must call next to reach the handler.
type Middleware func(ctx context.Context, request Request, next HandlerFunc) (Response, error)

// Mediator dispatches commands and queries to their handlers
type Mediator interface {
	Send(ctx context.Context, request Request) (Response, error)
	Register(requestType reflect.Type, handler RequestHandler) error
	RegisterMiddleware(middleware Middleware)
}

// ErrNoHandler is returned by Send for a request type without a registered handler
type ErrNoHandler struct {
	RequestType reflect.Type
}

func (e *ErrNoHandler) Error() string {
	return fmt.Sprintf("no handler registered for type %s", e.RequestType)
}

type mediator struct {
	handlers    map[reflect.Type]RequestHandler
	middlewares []Middleware
}

// NewMediator creates a new mediator instance
func NewMediator() Mediator {
	return &mediator{
		handlers:    make(map[reflect.Type]RequestHandler),
		middlewares: make([]Middleware, 0),
	}
}

// Register registers a handler for a specific request type
func (m *mediator) Register(requestType reflect.Type, handler RequestHandler) error {
	if requestType == nil {
		return fmt.Errorf("request type cannot be nil")
	}

	if handler == nil {
		return fmt.Errorf("handler cannot be nil")
	}

	if _, exists := m.handlers[requestType]; exists {
		return fmt.Errorf("handler already registered for type %s", requestType)
	}

	m.handlers[requestType] = handler
	return nil
}

// RegisterMiddleware appends a middleware. The first registered middleware runs outermost.
func (m *mediator) RegisterMiddleware(middleware Middleware) {
	if middleware == nil {
		return
	}
	m.middlewares = append(m.middlewares, middleware)
}

// Send dispatches a request through the middleware chain to its registered handler
func (m *mediator) Send(ctx context.Context, request Request) (Response, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	requestType := reflect.TypeOf(request)
	handler, ok := m.handlers[requestType]
	if !ok {
		return nil, &ErrNoHandler{RequestType: requestType}
	}

	next := HandlerFunc(handler.Handle)
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		middleware := m.middlewares[i]
		inner := next
		next = func(ctx context.Context, request Request) (Response, error) {
			return middleware(ctx, request, inner)
		}
	}

	return next(ctx, request)
}

// RegisterHandler registers a handler with the request type inferred from T
func RegisterHandler[T Request](m Mediator, handler RequestHandler) error {
	var zero T
	requestType := reflect.TypeOf(zero)
	return m.Register(requestType, handler)
}
