// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: ippt/v1/ippt.proto

package ipptv1

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
	ScoresheetService_UploadScoresheet_FullMethodName = "/ippt.v1.ScoresheetService/UploadScoresheet"
	ScoresheetService_UploadDirectory_FullMethodName  = "/ippt.v1.ScoresheetService/UploadDirectory"
	ScoresheetService_ListResults_FullMethodName      = "/ippt.v1.ScoresheetService/ListResults"
	ScoresheetService_ExportResults_FullMethodName    = "/ippt.v1.ScoresheetService/ExportResults"
)

// ScoresheetServiceClient is the client API for ScoresheetService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ScoresheetServiceClient interface {
	// UploadScoresheet ingests one scan and runs OCR + parse on it.
	UploadScoresheet(ctx context.Context, in *UploadScoresheetRequest, opts ...grpc.CallOption) (*UploadScoresheetResponse, error)
	// UploadDirectory ingests every matching scan under a directory.
	UploadDirectory(ctx context.Context, in *UploadDirectoryRequest, opts ...grpc.CallOption) (*UploadDirectoryResponse, error)
	// ListResults returns the reconciled soldier rows for a sheet.
	ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error)
	// ExportResults returns an XLSX workbook of results in a date window.
	ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error)
}

type scoresheetServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewScoresheetServiceClient(cc grpc.ClientConnInterface) ScoresheetServiceClient {
	return &scoresheetServiceClient{cc}
}

func (c *scoresheetServiceClient) UploadScoresheet(ctx context.Context, in *UploadScoresheetRequest, opts ...grpc.CallOption) (*UploadScoresheetResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadScoresheetResponse)
	err := c.cc.Invoke(ctx, ScoresheetService_UploadScoresheet_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scoresheetServiceClient) UploadDirectory(ctx context.Context, in *UploadDirectoryRequest, opts ...grpc.CallOption) (*UploadDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadDirectoryResponse)
	err := c.cc.Invoke(ctx, ScoresheetService_UploadDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scoresheetServiceClient) ListResults(ctx context.Context, in *ListResultsRequest, opts ...grpc.CallOption) (*ListResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListResultsResponse)
	err := c.cc.Invoke(ctx, ScoresheetService_ListResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *scoresheetServiceClient) ExportResults(ctx context.Context, in *ExportResultsRequest, opts ...grpc.CallOption) (*ExportResultsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportResultsResponse)
	err := c.cc.Invoke(ctx, ScoresheetService_ExportResults_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ScoresheetServiceServer is the server API for ScoresheetService service.
// All implementations must embed UnimplementedScoresheetServiceServer
// for forward compatibility.
type ScoresheetServiceServer interface {
	// UploadScoresheet ingests one scan and runs OCR + parse on it.
	UploadScoresheet(context.Context, *UploadScoresheetRequest) (*UploadScoresheetResponse, error)
	// UploadDirectory ingests every matching scan under a directory.
	UploadDirectory(context.Context, *UploadDirectoryRequest) (*UploadDirectoryResponse, error)
	// ListResults returns the reconciled soldier rows for a sheet.
	ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error)
	// ExportResults returns an XLSX workbook of results in a date window.
	ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error)
	mustEmbedUnimplementedScoresheetServiceServer()
}

// UnimplementedScoresheetServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedScoresheetServiceServer struct{}

func (UnimplementedScoresheetServiceServer) UploadScoresheet(context.Context, *UploadScoresheetRequest) (*UploadScoresheetResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadScoresheet not implemented")
}
func (UnimplementedScoresheetServiceServer) UploadDirectory(context.Context, *UploadDirectoryRequest) (*UploadDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UploadDirectory not implemented")
}
func (UnimplementedScoresheetServiceServer) ListResults(context.Context, *ListResultsRequest) (*ListResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListResults not implemented")
}
func (UnimplementedScoresheetServiceServer) ExportResults(context.Context, *ExportResultsRequest) (*ExportResultsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportResults not implemented")
}
func (UnimplementedScoresheetServiceServer) mustEmbedUnimplementedScoresheetServiceServer() {}
func (UnimplementedScoresheetServiceServer) testEmbeddedByValue()                           {}

// UnsafeScoresheetServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ScoresheetServiceServer will
// result in compilation errors.
type UnsafeScoresheetServiceServer interface {
	mustEmbedUnimplementedScoresheetServiceServer()
}

func RegisterScoresheetServiceServer(s grpc.ServiceRegistrar, srv ScoresheetServiceServer) {
	// If the following call pancis, it indicates UnimplementedScoresheetServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ScoresheetService_ServiceDesc, srv)
}

func _ScoresheetService_UploadScoresheet_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadScoresheetRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoresheetServiceServer).UploadScoresheet(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoresheetService_UploadScoresheet_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoresheetServiceServer).UploadScoresheet(ctx, req.(*UploadScoresheetRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScoresheetService_UploadDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoresheetServiceServer).UploadDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoresheetService_UploadDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoresheetServiceServer).UploadDirectory(ctx, req.(*UploadDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScoresheetService_ListResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoresheetServiceServer).ListResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoresheetService_ListResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoresheetServiceServer).ListResults(ctx, req.(*ListResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ScoresheetService_ExportResults_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportResultsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ScoresheetServiceServer).ExportResults(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ScoresheetService_ExportResults_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ScoresheetServiceServer).ExportResults(ctx, req.(*ExportResultsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ScoresheetService_ServiceDesc is the grpc.ServiceDesc for ScoresheetService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ScoresheetService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ippt.v1.ScoresheetService",
	HandlerType: (*ScoresheetServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UploadScoresheet",
			Handler:    _ScoresheetService_UploadScoresheet_Handler,
		},
		{
			MethodName: "UploadDirectory",
			Handler:    _ScoresheetService_UploadDirectory_Handler,
		},
		{
			MethodName: "ListResults",
			Handler:    _ScoresheetService_ListResults_Handler,
		},
		{
			MethodName: "ExportResults",
			Handler:    _ScoresheetService_ExportResults_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ippt/v1/ippt.proto",
}
