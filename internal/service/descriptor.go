package service

import (
	"context"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Requests and responses are protobuf well-known types, no generated messages.
const rosterServiceName = "visioncoach.roster.v1.RosterService"

const (
	methodHasPermission = "/" + rosterServiceName + "/HasPermission"
	methodGetRoster     = "/" + rosterServiceName + "/GetRoster"
	methodCreateTeam    = "/" + rosterServiceName + "/CreateTeam"
	methodCreatePlayer  = "/" + rosterServiceName + "/CreatePlayer"
	methodRemovePlayer  = "/" + rosterServiceName + "/RemovePlayer"
)

type RosterServiceServer interface {
	HasPermission(ctx context.Context, req *structpb.Struct) (*wrapperspb.BoolValue, error)
	GetRoster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CreateTeam(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	CreatePlayer(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
	RemovePlayer(ctx context.Context, req *structpb.Struct) (*emptypb.Empty, error)
}

func RegisterRosterServiceServer(s grpc.ServiceRegistrar, srv RosterServiceServer) {
	s.RegisterService(&rosterServiceDesc, srv)
}

var rosterServiceDesc = grpc.ServiceDesc{
	ServiceName: rosterServiceName,
	HandlerType: (*RosterServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "HasPermission",
			Handler: unaryHandler(methodHasPermission, func(srv RosterServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
				return srv.HasPermission(ctx, req)
			}),
		},
		{
			MethodName: "GetRoster",
			Handler: unaryHandler(methodGetRoster, func(srv RosterServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
				return srv.GetRoster(ctx, req)
			}),
		},
		{
			MethodName: "CreateTeam",
			Handler: unaryHandler(methodCreateTeam, func(srv RosterServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
				return srv.CreateTeam(ctx, req)
			}),
		},
		{
			MethodName: "CreatePlayer",
			Handler: unaryHandler(methodCreatePlayer, func(srv RosterServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
				return srv.CreatePlayer(ctx, req)
			}),
		},
		{
			MethodName: "RemovePlayer",
			Handler: unaryHandler(methodRemovePlayer, func(srv RosterServiceServer, ctx context.Context, req *structpb.Struct) (any, error) {
				return srv.RemovePlayer(ctx, req)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "visioncoach/roster/v1/roster.proto",
}

type unaryCall func(srv RosterServiceServer, ctx context.Context, req *structpb.Struct) (any, error)

func unaryHandler(fullMethod string, call unaryCall) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(RosterServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(RosterServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

type RosterServiceClient interface {
	HasPermission(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	GetRoster(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreateTeam(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	CreatePlayer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RemovePlayer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error)
}

type rosterServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewRosterServiceClient(cc grpc.ClientConnInterface) RosterServiceClient {
	return &rosterServiceClient{cc}
}

func (c *rosterServiceClient) HasPermission(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, methodHasPermission, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) GetRoster(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodGetRoster, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) CreateTeam(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodCreateTeam, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) CreatePlayer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, methodCreatePlayer, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *rosterServiceClient) RemovePlayer(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*emptypb.Empty, error) {
	out := new(emptypb.Empty)
	if err := c.cc.Invoke(ctx, methodRemovePlayer, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
