package grpc

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/andrescamacho/craftchain-go/internal/application/planning"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/commands"
	"github.com/andrescamacho/craftchain-go/internal/application/planning/queries"
	"github.com/andrescamacho/craftchain-go/internal/domain/bookmark"
)

// PlannerClientGRPC calls the planner service of a running daemon
type PlannerClientGRPC struct {
	conn *grpc.ClientConn
}

// NewPlannerClientGRPC creates a new gRPC planner client
// socketPath should be a Unix domain socket path (e.g., "/tmp/craftchain-daemon.sock")
func NewPlannerClientGRPC(socketPath string) (*PlannerClientGRPC, error) {
	conn, err := grpc.NewClient(
		"unix:"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(jsonCodec{})),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon socket: %w", err)
	}

	return &PlannerClientGRPC{conn: conn}, nil
}

// Close closes the gRPC connection
func (c *PlannerClientGRPC) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// ResolveGroup resolves a group stored by the daemon
func (c *PlannerClientGRPC) ResolveGroup(ctx context.Context, name string, skipCalculation bool) (*planning.ResolutionReport, error) {
	resp := new(planning.ResolutionReport)
	req := &ResolveRequest{Group: name, SkipCalculation: skipCalculation}
	if err := c.conn.Invoke(ctx, MethodResolve, req, resp); err != nil {
		return nil, fmt.Errorf("failed to resolve group: %w", err)
	}
	return resp, nil
}

// ResolveDocument resolves an inline document without storing it
func (c *PlannerClientGRPC) ResolveDocument(ctx context.Context, doc bookmark.Document, skipCalculation bool) (*planning.ResolutionReport, error) {
	resp := new(planning.ResolutionReport)
	req := &ResolveRequest{Document: &doc, SkipCalculation: skipCalculation}
	if err := c.conn.Invoke(ctx, MethodResolve, req, resp); err != nil {
		return nil, fmt.Errorf("failed to resolve document: %w", err)
	}
	return resp, nil
}

// ImportGroup stores a document as a group
func (c *PlannerClientGRPC) ImportGroup(ctx context.Context, doc bookmark.Document) (*commands.ImportGroupResponse, error) {
	resp := new(commands.ImportGroupResponse)
	if err := c.conn.Invoke(ctx, MethodImportGroup, &ImportGroupRequest{Document: doc}, resp); err != nil {
		return nil, fmt.Errorf("failed to import group: %w", err)
	}
	return resp, nil
}

// ListGroups lists stored groups
func (c *PlannerClientGRPC) ListGroups(ctx context.Context) (*queries.ListGroupsResponse, error) {
	resp := new(queries.ListGroupsResponse)
	if err := c.conn.Invoke(ctx, MethodListGroups, &ListGroupsRequest{}, resp); err != nil {
		return nil, fmt.Errorf("failed to list groups: %w", err)
	}
	return resp, nil
}

// DeleteGroup removes a stored group
func (c *PlannerClientGRPC) DeleteGroup(ctx context.Context, name string) error {
	resp := new(commands.DeleteGroupResponse)
	if err := c.conn.Invoke(ctx, MethodDeleteGroup, &DeleteGroupRequest{Name: name}, resp); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}
	return nil
}

// ListRuns lists the latest resolutions of a group
func (c *PlannerClientGRPC) ListRuns(ctx context.Context, group string, limit int) (*queries.ListRunsResponse, error) {
	resp := new(queries.ListRunsResponse)
	if err := c.conn.Invoke(ctx, MethodListRuns, &ListRunsRequest{Group: group, Limit: limit}, resp); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return resp, nil
}
