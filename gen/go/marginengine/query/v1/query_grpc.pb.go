// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: marginengine/query/v1/query.proto

package queryv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	QueryService_GetAccountUpdate_FullMethodName     = "/marginengine.query.v1.QueryService/GetAccountUpdate"
	QueryService_ListAccountUpdates_FullMethodName   = "/marginengine.query.v1.QueryService/ListAccountUpdates"
	QueryService_ListTrades_FullMethodName           = "/marginengine.query.v1.QueryService/ListTrades"
	QueryService_ListAccountsByStatus_FullMethodName = "/marginengine.query.v1.QueryService/ListAccountsByStatus"
)

// QueryServiceClient is the client API for QueryService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// QueryService serves read-only margin account state from the projection
// tables. HTTP/JSON bindings are exposed through gRPC-Gateway.
type QueryServiceClient interface {
	// GetAccountUpdate returns the newest committed snapshot for an account.
	GetAccountUpdate(ctx context.Context, in *GetAccountUpdateRequest, opts ...grpc.CallOption) (*GetAccountUpdateResponse, error)
	// ListAccountUpdates returns snapshot history, newest first.
	ListAccountUpdates(ctx context.Context, in *ListAccountUpdatesRequest, opts ...grpc.CallOption) (*ListAccountUpdatesResponse, error)
	// ListTrades returns executed fills, newest first.
	ListTrades(ctx context.Context, in *ListTradesRequest, opts ...grpc.CallOption) (*ListTradesResponse, error)
	// ListAccountsByStatus returns accounts carrying the given risk status,
	// worst collateral ratio first.
	ListAccountsByStatus(ctx context.Context, in *ListAccountsByStatusRequest, opts ...grpc.CallOption) (*ListAccountsByStatusResponse, error)
}

type queryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQueryServiceClient(cc grpc.ClientConnInterface) QueryServiceClient {
	return &queryServiceClient{cc}
}

func (c *queryServiceClient) GetAccountUpdate(ctx context.Context, in *GetAccountUpdateRequest, opts ...grpc.CallOption) (*GetAccountUpdateResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAccountUpdateResponse)
	err := c.cc.Invoke(ctx, QueryService_GetAccountUpdate_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListAccountUpdates(ctx context.Context, in *ListAccountUpdatesRequest, opts ...grpc.CallOption) (*ListAccountUpdatesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAccountUpdatesResponse)
	err := c.cc.Invoke(ctx, QueryService_ListAccountUpdates_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListTrades(ctx context.Context, in *ListTradesRequest, opts ...grpc.CallOption) (*ListTradesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTradesResponse)
	err := c.cc.Invoke(ctx, QueryService_ListTrades_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryServiceClient) ListAccountsByStatus(ctx context.Context, in *ListAccountsByStatusRequest, opts ...grpc.CallOption) (*ListAccountsByStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListAccountsByStatusResponse)
	err := c.cc.Invoke(ctx, QueryService_ListAccountsByStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// QueryServiceServer is the server API for QueryService service.
// All implementations must embed UnimplementedQueryServiceServer
// for forward compatibility.
//
// QueryService serves read-only margin account state from the projection
// tables. HTTP/JSON bindings are exposed through gRPC-Gateway.
type QueryServiceServer interface {
	// GetAccountUpdate returns the newest committed snapshot for an account.
	GetAccountUpdate(context.Context, *GetAccountUpdateRequest) (*GetAccountUpdateResponse, error)
	// ListAccountUpdates returns snapshot history, newest first.
	ListAccountUpdates(context.Context, *ListAccountUpdatesRequest) (*ListAccountUpdatesResponse, error)
	// ListTrades returns executed fills, newest first.
	ListTrades(context.Context, *ListTradesRequest) (*ListTradesResponse, error)
	// ListAccountsByStatus returns accounts carrying the given risk status,
	// worst collateral ratio first.
	ListAccountsByStatus(context.Context, *ListAccountsByStatusRequest) (*ListAccountsByStatusResponse, error)
	mustEmbedUnimplementedQueryServiceServer()
}

// UnimplementedQueryServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedQueryServiceServer struct{}

func (UnimplementedQueryServiceServer) GetAccountUpdate(context.Context, *GetAccountUpdateRequest) (*GetAccountUpdateResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAccountUpdate not implemented")
}
func (UnimplementedQueryServiceServer) ListAccountUpdates(context.Context, *ListAccountUpdatesRequest) (*ListAccountUpdatesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAccountUpdates not implemented")
}
func (UnimplementedQueryServiceServer) ListTrades(context.Context, *ListTradesRequest) (*ListTradesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTrades not implemented")
}
func (UnimplementedQueryServiceServer) ListAccountsByStatus(context.Context, *ListAccountsByStatusRequest) (*ListAccountsByStatusResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListAccountsByStatus not implemented")
}
func (UnimplementedQueryServiceServer) mustEmbedUnimplementedQueryServiceServer() {}
func (UnimplementedQueryServiceServer) testEmbeddedByValue()                      {}

// UnsafeQueryServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to QueryServiceServer will
// result in compilation errors.
type UnsafeQueryServiceServer interface {
	mustEmbedUnimplementedQueryServiceServer()
}

func RegisterQueryServiceServer(s grpc.ServiceRegistrar, srv QueryServiceServer) {
	// If the following call panics, it indicates UnimplementedQueryServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&QueryService_ServiceDesc, srv)
}

func _QueryService_GetAccountUpdate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAccountUpdateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).GetAccountUpdate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_GetAccountUpdate_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).GetAccountUpdate(ctx, req.(*GetAccountUpdateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListAccountUpdates_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAccountUpdatesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListAccountUpdates(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListAccountUpdates_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListAccountUpdates(ctx, req.(*ListAccountUpdatesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListTrades_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTradesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListTrades(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListTrades_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListTrades(ctx, req.(*ListTradesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _QueryService_ListAccountsByStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListAccountsByStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServiceServer).ListAccountsByStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: QueryService_ListAccountsByStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServiceServer).ListAccountsByStatus(ctx, req.(*ListAccountsByStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// QueryService_ServiceDesc is the grpc.ServiceDesc for QueryService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var QueryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "marginengine.query.v1.QueryService",
	HandlerType: (*QueryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAccountUpdate",
			Handler:    _QueryService_GetAccountUpdate_Handler,
		},
		{
			MethodName: "ListAccountUpdates",
			Handler:    _QueryService_ListAccountUpdates_Handler,
		},
		{
			MethodName: "ListTrades",
			Handler:    _QueryService_ListTrades_Handler,
		},
		{
			MethodName: "ListAccountsByStatus",
			Handler:    _QueryService_ListAccountsByStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "marginengine/query/v1/query.proto",
}
