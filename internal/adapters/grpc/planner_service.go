package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/commands"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/queries"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// ServiceName is the fully qualified planner service name
const ServiceName = "craftchain.Planner"

// Full method names
const (
	MethodResolve     = "/" + ServiceName + "/Resolve"
	MethodImportGroup = "/" + ServiceName + "/ImportGroup"
	MethodListGroups  = "/" + ServiceName + "/ListGroups"
	MethodDeleteGroup = "/" + ServiceName + "/DeleteGroup"
	MethodListRuns    = "/" + ServiceName + "/ListRuns"
)

// ResolveRequest resolves either a stored group or an inline document
type ResolveRequest struct {
	Group           string             `json:"group,omitempty"`
	Document        *bookmark.Document `json:"document,omitempty"`
	SkipCalculation bool               `json:"skip_calculation"`
}

// ImportGroupRequest stores a document as a group
type ImportGroupRequest struct {
	Document bookmark.Document `json:"document"`
}

// ListGroupsRequest lists stored groups
type ListGroupsRequest struct{}

// DeleteGroupRequest removes a stored group
type DeleteGroupRequest struct {
	Name string `json:"name"`
}

// ListRunsRequest lists the latest resolutions of a group
type ListRunsRequest struct {
	Group string `json:"group"`
	Limit int    `json:"limit,omitempty"`
}

// PlannerServer is the server API for the planner service
type PlannerServer interface {
	Resolve(context.Context, *ResolveRequest) (*planning.ResolutionReport, error)
	ImportGroup(context.Context, *ImportGroupRequest) (*commands.ImportGroupResponse, error)
	ListGroups(context.Context, *ListGroupsRequest) (*queries.ListGroupsResponse, error)
	DeleteGroup(context.Context, *DeleteGroupRequest) (*commands.DeleteGroupResponse, error)
	ListRuns(context.Context, *ListRunsRequest) (*queries.ListRunsResponse, error)
}

// unaryHandler adapts one typed server method to a grpc method handler
func unaryHandler[Req any, Resp any](fullMethod string, call func(PlannerServer, context.Context, *Req) (*Resp, error)) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(PlannerServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(PlannerServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// PlannerServiceDesc describes the planner service for grpc.Server.RegisterService
var PlannerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PlannerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Resolve", Handler: unaryHandler(MethodResolve, PlannerServer.Resolve)},
		{MethodName: "ImportGroup", Handler: unaryHandler(MethodImportGroup, PlannerServer.ImportGroup)},
		{MethodName: "ListGroups", Handler: unaryHandler(MethodListGroups, PlannerServer.ListGroups)},
		{MethodName: "DeleteGroup", Handler: unaryHandler(MethodDeleteGroup, PlannerServer.DeleteGroup)},
		{MethodName: "ListRuns", Handler: unaryHandler(MethodListRuns, PlannerServer.ListRuns)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "craftchain/planner",
}
