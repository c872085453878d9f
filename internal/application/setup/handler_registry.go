package setup

import (
	"reflect"

	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	planningCommands "github.com/andrescamacho/craftchain-go/internal/application/planning/commands"
	planningQueries "github.com/andrescamacho/craftchain-go/internal/application/planning/queries"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
	"github.com/andrescamacho/craftchain-go/internal/domain/shared"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	groupRepo bookmark.GroupRepository
	history   planning.RunHistory
	recorder  planning.ResolutionRecorder
	clock     shared.Clock
}

type handlerRegistration struct {
	request interface{}
	handler mediator.RequestHandler
}

// NewHandlerRegistry creates a new handler registry with required dependencies.
// history and recorder may be nil when run history and metrics are disabled.
func NewHandlerRegistry(
	groupRepo bookmark.GroupRepository,
	history planning.RunHistory,
	recorder planning.ResolutionRecorder,
	clock shared.Clock,
) *HandlerRegistry {
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		groupRepo: groupRepo,
		history:   history,
		recorder:  recorder,
		clock:     clock,
	}
}

// RegisterPlanningHandlers registers the bookmark group and resolution handlers
//
// This method registers:
//   - ImportGroupCommand → ImportGroupHandler
//   - DeleteGroupCommand → DeleteGroupHandler
//   - ListGroupsQuery → ListGroupsHandler
//   - ResolveGroupQuery → ResolveGroupHandler
//   - ResolveDocumentQuery → ResolveDocumentHandler
//   - ListRunsQuery → ListRunsHandler (only with a run history)
func (r *HandlerRegistry) RegisterPlanningHandlers(m mediator.Mediator) error {
	resolver := planning.NewResolver(r.recorder, r.clock)

	handlers := []handlerRegistration{
		{&planningCommands.ImportGroupCommand{}, planningCommands.NewImportGroupHandler(r.groupRepo, r.clock)},
		{&planningCommands.DeleteGroupCommand{}, planningCommands.NewDeleteGroupHandler(r.groupRepo)},
		{&planningQueries.ListGroupsQuery{}, planningQueries.NewListGroupsHandler(r.groupRepo)},
		{&planningQueries.ResolveGroupQuery{}, planningQueries.NewResolveGroupHandler(r.groupRepo, resolver)},
		{&planningQueries.ResolveDocumentQuery{}, planningQueries.NewResolveDocumentHandler(resolver)},
	}
	if r.history != nil {
		handlers = append(handlers, handlerRegistration{&planningQueries.ListRunsQuery{}, planningQueries.NewListRunsHandler(r.history)})
	}

	for _, h := range handlers {
		if err := m.Register(reflect.TypeOf(h.request), h.handler); err != nil {
			return err
		}
	}

	return nil
}

// CreateConfiguredMediator creates a new mediator with the given middlewares and
// all planning handlers registered
func (r *HandlerRegistry) CreateConfiguredMediator(middlewares ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()

	for _, middleware := range middlewares {
		m.RegisterMiddleware(middleware)
	}

	if err := r.RegisterPlanningHandlers(m); err != nil {
		return nil, err
	}

	return m, nil
}
