package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/andrescamacho/craftchain-go/internal/application/mediator"
	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/commands"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/queries"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// plannerService implements PlannerServer by dispatching to the mediator
type plannerService struct {
	mediator mediator.Mediator
}

// NewPlannerService creates a planner service over a configured mediator
func NewPlannerService(m mediator.Mediator) PlannerServer {
	return &plannerService{mediator: m}
}

func (s *plannerService) Resolve(ctx context.Context, req *ResolveRequest) (*planning.ResolutionReport, error) {
	var request mediator.Request
	switch {
	case req.Document != nil:
		request = &queries.ResolveDocumentQuery{Document: *req.Document, SkipCalculation: req.SkipCalculation}
	case req.Group != "":
		request = &queries.ResolveGroupQuery{Name: req.Group, SkipCalculation: req.SkipCalculation}
	default:
		return nil, status.Error(codes.InvalidArgument, "either group or document is required")
	}

	return send[*planning.ResolutionReport](ctx, s.mediator, request)
}

func (s *plannerService) ImportGroup(ctx context.Context, req *ImportGroupRequest) (*commands.ImportGroupResponse, error) {
	return send[*commands.ImportGroupResponse](ctx, s.mediator, &commands.ImportGroupCommand{Document: req.Document})
}

func (s *plannerService) ListGroups(ctx context.Context, req *ListGroupsRequest) (*queries.ListGroupsResponse, error) {
	return send[*queries.ListGroupsResponse](ctx, s.mediator, &queries.ListGroupsQuery{})
}

func (s *plannerService) DeleteGroup(ctx context.Context, req *DeleteGroupRequest) (*commands.DeleteGroupResponse, error) {
	return send[*commands.DeleteGroupResponse](ctx, s.mediator, &commands.DeleteGroupCommand{Name: req.Name})
}

func (s *plannerService) ListRuns(ctx context.Context, req *ListRunsRequest) (*queries.ListRunsResponse, error) {
	return send[*queries.ListRunsResponse](ctx, s.mediator, &queries.ListRunsQuery{Group: req.Group, Limit: req.Limit})
}

// send dispatches a request and converts the error for transport
func send[T any](ctx context.Context, m mediator.Mediator, request mediator.Request) (T, error) {
	response, err := local[T](ctx, m, request)
	if err != nil {
		return response, toStatus(err)
	}
	return response, nil
}

// toStatus maps domain errors to gRPC status codes
func toStatus(err error) error {
	var notFound *bookmark.ErrGroupNotFound
	var invalid *bookmark.ErrInvalidDocument
	var noHandler *mediator.ErrNoHandler

	switch {
	case errors.As(err, &notFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.As(err, &invalid):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.As(err, &noHandler):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		if _, ok := status.FromError(err); ok {
			return err
		}
		return status.Error(codes.Internal, err.Error())
	}
}
