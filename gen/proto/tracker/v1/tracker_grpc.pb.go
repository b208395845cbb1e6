// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: tracker/v1/tracker.proto

package trackerpb

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
	ApplicantsService_CreateApplicant_FullMethodName = "/tracker.v1.ApplicantsService/CreateApplicant"
	ApplicantsService_GetApplicant_FullMethodName    = "/tracker.v1.ApplicantsService/GetApplicant"
	ApplicantsService_ListApplicants_FullMethodName  = "/tracker.v1.ApplicantsService/ListApplicants"
)

// ApplicantsServiceClient is the client API for ApplicantsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ApplicantsServiceClient interface {
	CreateApplicant(ctx context.Context, in *CreateApplicantRequest, opts ...grpc.CallOption) (*CreateApplicantResponse, error)
	GetApplicant(ctx context.Context, in *GetApplicantRequest, opts ...grpc.CallOption) (*GetApplicantResponse, error)
	ListApplicants(ctx context.Context, in *ListApplicantsRequest, opts ...grpc.CallOption) (*ListApplicantsResponse, error)
}

type applicantsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewApplicantsServiceClient(cc grpc.ClientConnInterface) ApplicantsServiceClient {
	return &applicantsServiceClient{cc}
}

func (c *applicantsServiceClient) CreateApplicant(ctx context.Context, in *CreateApplicantRequest, opts ...grpc.CallOption) (*CreateApplicantResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreateApplicantResponse)
	err := c.cc.Invoke(ctx, ApplicantsService_CreateApplicant_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *applicantsServiceClient) GetApplicant(ctx context.Context, in *GetApplicantRequest, opts ...grpc.CallOption) (*GetApplicantResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetApplicantResponse)
	err := c.cc.Invoke(ctx, ApplicantsService_GetApplicant_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *applicantsServiceClient) ListApplicants(ctx context.Context, in *ListApplicantsRequest, opts ...grpc.CallOption) (*ListApplicantsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListApplicantsResponse)
	err := c.cc.Invoke(ctx, ApplicantsService_ListApplicants_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplicantsServiceServer is the server API for ApplicantsService service.
// All implementations must embed UnimplementedApplicantsServiceServer
// for forward compatibility.
type ApplicantsServiceServer interface {
	CreateApplicant(context.Context, *CreateApplicantRequest) (*CreateApplicantResponse, error)
	GetApplicant(context.Context, *GetApplicantRequest) (*GetApplicantResponse, error)
	ListApplicants(context.Context, *ListApplicantsRequest) (*ListApplicantsResponse, error)
	mustEmbedUnimplementedApplicantsServiceServer()
}

// UnimplementedApplicantsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedApplicantsServiceServer struct{}

func (UnimplementedApplicantsServiceServer) CreateApplicant(context.Context, *CreateApplicantRequest) (*CreateApplicantResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateApplicant not implemented")
}
func (UnimplementedApplicantsServiceServer) GetApplicant(context.Context, *GetApplicantRequest) (*GetApplicantResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetApplicant not implemented")
}
func (UnimplementedApplicantsServiceServer) ListApplicants(context.Context, *ListApplicantsRequest) (*ListApplicantsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListApplicants not implemented")
}
func (UnimplementedApplicantsServiceServer) mustEmbedUnimplementedApplicantsServiceServer() {}
func (UnimplementedApplicantsServiceServer) testEmbeddedByValue()                           {}

// UnsafeApplicantsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ApplicantsServiceServer will
// result in compilation errors.
type UnsafeApplicantsServiceServer interface {
	mustEmbedUnimplementedApplicantsServiceServer()
}

func RegisterApplicantsServiceServer(s grpc.ServiceRegistrar, srv ApplicantsServiceServer) {
	// If the following call pancis, it indicates UnimplementedApplicantsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ApplicantsService_ServiceDesc, srv)
}

func _ApplicantsService_CreateApplicant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateApplicantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApplicantsServiceServer).CreateApplicant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplicantsService_CreateApplicant_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApplicantsServiceServer).CreateApplicant(ctx, req.(*CreateApplicantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApplicantsService_GetApplicant_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetApplicantRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApplicantsServiceServer).GetApplicant(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplicantsService_GetApplicant_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApplicantsServiceServer).GetApplicant(ctx, req.(*GetApplicantRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ApplicantsService_ListApplicants_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListApplicantsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApplicantsServiceServer).ListApplicants(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ApplicantsService_ListApplicants_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApplicantsServiceServer).ListApplicants(ctx, req.(*ListApplicantsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ApplicantsService_ServiceDesc is the grpc.ServiceDesc for ApplicantsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ApplicantsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tracker.v1.ApplicantsService",
	HandlerType: (*ApplicantsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateApplicant",
			Handler:    _ApplicantsService_CreateApplicant_Handler,
		},
		{
			MethodName: "GetApplicant",
			Handler:    _ApplicantsService_GetApplicant_Handler,
		},
		{
			MethodName: "ListApplicants",
			Handler:    _ApplicantsService_ListApplicants_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tracker/v1/tracker.proto",
}

const (
	EvaluationsService_RunExtraction_FullMethodName      = "/tracker.v1.EvaluationsService/RunExtraction"
	EvaluationsService_GetEvaluation_FullMethodName      = "/tracker.v1.EvaluationsService/GetEvaluation"
	EvaluationsService_ListEvaluations_FullMethodName    = "/tracker.v1.EvaluationsService/ListEvaluations"
	EvaluationsService_SetCourseIncluded_FullMethodName  = "/tracker.v1.EvaluationsService/SetCourseIncluded"
	EvaluationsService_UpdateCourse_FullMethodName       = "/tracker.v1.EvaluationsService/UpdateCourse"
	EvaluationsService_RecomputeGPA_FullMethodName       = "/tracker.v1.EvaluationsService/RecomputeGPA"
	EvaluationsService_ListExtractionJobs_FullMethodName = "/tracker.v1.EvaluationsService/ListExtractionJobs"
)

// EvaluationsServiceClient is the client API for EvaluationsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type EvaluationsServiceClient interface {
	// RunExtraction parses a transcript (pasted text or a file on disk),
	// replaces the evaluation's courses, and recomputes its GPA.
	RunExtraction(ctx context.Context, in *RunExtractionRequest, opts ...grpc.CallOption) (*RunExtractionResponse, error)
	GetEvaluation(ctx context.Context, in *GetEvaluationRequest, opts ...grpc.CallOption) (*GetEvaluationResponse, error)
	ListEvaluations(ctx context.Context, in *ListEvaluationsRequest, opts ...grpc.CallOption) (*ListEvaluationsResponse, error)
	SetCourseIncluded(ctx context.Context, in *SetCourseIncludedRequest, opts ...grpc.CallOption) (*SetCourseIncludedResponse, error)
	UpdateCourse(ctx context.Context, in *UpdateCourseRequest, opts ...grpc.CallOption) (*UpdateCourseResponse, error)
	RecomputeGPA(ctx context.Context, in *RecomputeGPARequest, opts ...grpc.CallOption) (*RecomputeGPAResponse, error)
	ListExtractionJobs(ctx context.Context, in *ListExtractionJobsRequest, opts ...grpc.CallOption) (*ListExtractionJobsResponse, error)
}

type evaluationsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEvaluationsServiceClient(cc grpc.ClientConnInterface) EvaluationsServiceClient {
	return &evaluationsServiceClient{cc}
}

func (c *evaluationsServiceClient) RunExtraction(ctx context.Context, in *RunExtractionRequest, opts ...grpc.CallOption) (*RunExtractionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RunExtractionResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_RunExtraction_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) GetEvaluation(ctx context.Context, in *GetEvaluationRequest, opts ...grpc.CallOption) (*GetEvaluationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetEvaluationResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_GetEvaluation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) ListEvaluations(ctx context.Context, in *ListEvaluationsRequest, opts ...grpc.CallOption) (*ListEvaluationsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListEvaluationsResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_ListEvaluations_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) SetCourseIncluded(ctx context.Context, in *SetCourseIncludedRequest, opts ...grpc.CallOption) (*SetCourseIncludedResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SetCourseIncludedResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_SetCourseIncluded_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) UpdateCourse(ctx context.Context, in *UpdateCourseRequest, opts ...grpc.CallOption) (*UpdateCourseResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateCourseResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_UpdateCourse_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) RecomputeGPA(ctx context.Context, in *RecomputeGPARequest, opts ...grpc.CallOption) (*RecomputeGPAResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RecomputeGPAResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_RecomputeGPA_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *evaluationsServiceClient) ListExtractionJobs(ctx context.Context, in *ListExtractionJobsRequest, opts ...grpc.CallOption) (*ListExtractionJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListExtractionJobsResponse)
	err := c.cc.Invoke(ctx, EvaluationsService_ListExtractionJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// EvaluationsServiceServer is the server API for EvaluationsService service.
// All implementations must embed UnimplementedEvaluationsServiceServer
// for forward compatibility.
type EvaluationsServiceServer interface {
	// RunExtraction parses a transcript (pasted text or a file on disk),
	// replaces the evaluation's courses, and recomputes its GPA.
	RunExtraction(context.Context, *RunExtractionRequest) (*RunExtractionResponse, error)
	GetEvaluation(context.Context, *GetEvaluationRequest) (*GetEvaluationResponse, error)
	ListEvaluations(context.Context, *ListEvaluationsRequest) (*ListEvaluationsResponse, error)
	SetCourseIncluded(context.Context, *SetCourseIncludedRequest) (*SetCourseIncludedResponse, error)
	UpdateCourse(context.Context, *UpdateCourseRequest) (*UpdateCourseResponse, error)
	RecomputeGPA(context.Context, *RecomputeGPARequest) (*RecomputeGPAResponse, error)
	ListExtractionJobs(context.Context, *ListExtractionJobsRequest) (*ListExtractionJobsResponse, error)
	mustEmbedUnimplementedEvaluationsServiceServer()
}

// UnimplementedEvaluationsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedEvaluationsServiceServer struct{}

func (UnimplementedEvaluationsServiceServer) RunExtraction(context.Context, *RunExtractionRequest) (*RunExtractionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RunExtraction not implemented")
}
func (UnimplementedEvaluationsServiceServer) GetEvaluation(context.Context, *GetEvaluationRequest) (*GetEvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEvaluation not implemented")
}
func (UnimplementedEvaluationsServiceServer) ListEvaluations(context.Context, *ListEvaluationsRequest) (*ListEvaluationsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListEvaluations not implemented")
}
func (UnimplementedEvaluationsServiceServer) SetCourseIncluded(context.Context, *SetCourseIncludedRequest) (*SetCourseIncludedResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetCourseIncluded not implemented")
}
func (UnimplementedEvaluationsServiceServer) UpdateCourse(context.Context, *UpdateCourseRequest) (*UpdateCourseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateCourse not implemented")
}
func (UnimplementedEvaluationsServiceServer) RecomputeGPA(context.Context, *RecomputeGPARequest) (*RecomputeGPAResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecomputeGPA not implemented")
}
func (UnimplementedEvaluationsServiceServer) ListExtractionJobs(context.Context, *ListExtractionJobsRequest) (*ListExtractionJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListExtractionJobs not implemented")
}
func (UnimplementedEvaluationsServiceServer) mustEmbedUnimplementedEvaluationsServiceServer() {}
func (UnimplementedEvaluationsServiceServer) testEmbeddedByValue()                            {}

// UnsafeEvaluationsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to EvaluationsServiceServer will
// result in compilation errors.
type UnsafeEvaluationsServiceServer interface {
	mustEmbedUnimplementedEvaluationsServiceServer()
}

func RegisterEvaluationsServiceServer(s grpc.ServiceRegistrar, srv EvaluationsServiceServer) {
	// If the following call pancis, it indicates UnimplementedEvaluationsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&EvaluationsService_ServiceDesc, srv)
}

func _EvaluationsService_RunExtraction_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RunExtractionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).RunExtraction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_RunExtraction_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).RunExtraction(ctx, req.(*RunExtractionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_GetEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).GetEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_GetEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).GetEvaluation(ctx, req.(*GetEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_ListEvaluations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListEvaluationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).ListEvaluations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_ListEvaluations_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).ListEvaluations(ctx, req.(*ListEvaluationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_SetCourseIncluded_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetCourseIncludedRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).SetCourseIncluded(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_SetCourseIncluded_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).SetCourseIncluded(ctx, req.(*SetCourseIncludedRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_UpdateCourse_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateCourseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).UpdateCourse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_UpdateCourse_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).UpdateCourse(ctx, req.(*UpdateCourseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_RecomputeGPA_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecomputeGPARequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).RecomputeGPA(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_RecomputeGPA_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).RecomputeGPA(ctx, req.(*RecomputeGPARequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EvaluationsService_ListExtractionJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListExtractionJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EvaluationsServiceServer).ListExtractionJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: EvaluationsService_ListExtractionJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EvaluationsServiceServer).ListExtractionJobs(ctx, req.(*ListExtractionJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// EvaluationsService_ServiceDesc is the grpc.ServiceDesc for EvaluationsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var EvaluationsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tracker.v1.EvaluationsService",
	HandlerType: (*EvaluationsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "RunExtraction",
			Handler:    _EvaluationsService_RunExtraction_Handler,
		},
		{
			MethodName: "GetEvaluation",
			Handler:    _EvaluationsService_GetEvaluation_Handler,
		},
		{
			MethodName: "ListEvaluations",
			Handler:    _EvaluationsService_ListEvaluations_Handler,
		},
		{
			MethodName: "SetCourseIncluded",
			Handler:    _EvaluationsService_SetCourseIncluded_Handler,
		},
		{
			MethodName: "UpdateCourse",
			Handler:    _EvaluationsService_UpdateCourse_Handler,
		},
		{
			MethodName: "RecomputeGPA",
			Handler:    _EvaluationsService_RecomputeGPA_Handler,
		},
		{
			MethodName: "ListExtractionJobs",
			Handler:    _EvaluationsService_ListExtractionJobs_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tracker/v1/tracker.proto",
}

const (
	DeadlinesService_AddUniversity_FullMethodName           = "/tracker.v1.DeadlinesService/AddUniversity"
	DeadlinesService_ListUniversities_FullMethodName        = "/tracker.v1.DeadlinesService/ListUniversities"
	DeadlinesService_UpcomingDeadlines_FullMethodName       = "/tracker.v1.DeadlinesService/UpcomingDeadlines"
	DeadlinesService_UpdateApplicationStatus_FullMethodName = "/tracker.v1.DeadlinesService/UpdateApplicationStatus"
)

// DeadlinesServiceClient is the client API for DeadlinesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type DeadlinesServiceClient interface {
	AddUniversity(ctx context.Context, in *AddUniversityRequest, opts ...grpc.CallOption) (*AddUniversityResponse, error)
	ListUniversities(ctx context.Context, in *ListUniversitiesRequest, opts ...grpc.CallOption) (*ListUniversitiesResponse, error)
	UpcomingDeadlines(ctx context.Context, in *UpcomingDeadlinesRequest, opts ...grpc.CallOption) (*UpcomingDeadlinesResponse, error)
	UpdateApplicationStatus(ctx context.Context, in *UpdateApplicationStatusRequest, opts ...grpc.CallOption) (*UpdateApplicationStatusResponse, error)
}

type deadlinesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDeadlinesServiceClient(cc grpc.ClientConnInterface) DeadlinesServiceClient {
	return &deadlinesServiceClient{cc}
}

func (c *deadlinesServiceClient) AddUniversity(ctx context.Context, in *AddUniversityRequest, opts ...grpc.CallOption) (*AddUniversityResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AddUniversityResponse)
	err := c.cc.Invoke(ctx, DeadlinesService_AddUniversity_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deadlinesServiceClient) ListUniversities(ctx context.Context, in *ListUniversitiesRequest, opts ...grpc.CallOption) (*ListUniversitiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListUniversitiesResponse)
	err := c.cc.Invoke(ctx, DeadlinesService_ListUniversities_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deadlinesServiceClient) UpcomingDeadlines(ctx context.Context, in *UpcomingDeadlinesRequest, opts ...grpc.CallOption) (*UpcomingDeadlinesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpcomingDeadlinesResponse)
	err := c.cc.Invoke(ctx, DeadlinesService_UpcomingDeadlines_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deadlinesServiceClient) UpdateApplicationStatus(ctx context.Context, in *UpdateApplicationStatusRequest, opts ...grpc.CallOption) (*UpdateApplicationStatusResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UpdateApplicationStatusResponse)
	err := c.cc.Invoke(ctx, DeadlinesService_UpdateApplicationStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeadlinesServiceServer is the server API for DeadlinesService service.
// All implementations must embed UnimplementedDeadlinesServiceServer
// for forward compatibility.
type DeadlinesServiceServer interface {
	AddUniversity(context.Context, *AddUniversityRequest) (*AddUniversityResponse, error)
	ListUniversities(context.Context, *ListUniversitiesRequest) (*ListUniversitiesResponse, error)
	UpcomingDeadlines(context.Context, *UpcomingDeadlinesRequest) (*UpcomingDeadlinesResponse, error)
	UpdateApplicationStatus(context.Context, *UpdateApplicationStatusRequest) (*UpdateApplicationStatusResponse, error)
	mustEmbedUnimplementedDeadlinesServiceServer()
}

// UnimplementedDeadlinesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDeadlinesServiceServer struct{}

func (UnimplementedDeadlinesServiceServer) AddUniversity(context.Context, *AddUniversityRequest) (*AddUniversityResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddUniversity not implemented")
}
func (UnimplementedDeadlinesServiceServer) ListUniversities(context.Context, *ListUniversitiesRequest) (*ListUniversitiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListUniversities not implemented")
}
func (UnimplementedDeadlinesServiceServer) UpcomingDeadlines(context.Context, *UpcomingDeadlinesRequest) (*UpcomingDeadlinesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpcomingDeadlines not implemented")
}
func (UnimplementedDeadlinesServiceServer) UpdateApplicationStatus(context.Context, *UpdateApplicationStatusRequest) (*UpdateApplicationStatusResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateApplicationStatus not implemented")
}
func (UnimplementedDeadlinesServiceServer) mustEmbedUnimplementedDeadlinesServiceServer() {}
func (UnimplementedDeadlinesServiceServer) testEmbeddedByValue()                          {}

// UnsafeDeadlinesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DeadlinesServiceServer will
// result in compilation errors.
type UnsafeDeadlinesServiceServer interface {
	mustEmbedUnimplementedDeadlinesServiceServer()
}

func RegisterDeadlinesServiceServer(s grpc.ServiceRegistrar, srv DeadlinesServiceServer) {
	// If the following call pancis, it indicates UnimplementedDeadlinesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DeadlinesService_ServiceDesc, srv)
}

func _DeadlinesService_AddUniversity_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AddUniversityRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadlinesServiceServer).AddUniversity(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadlinesService_AddUniversity_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadlinesServiceServer).AddUniversity(ctx, req.(*AddUniversityRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeadlinesService_ListUniversities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListUniversitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadlinesServiceServer).ListUniversities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadlinesService_ListUniversities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadlinesServiceServer).ListUniversities(ctx, req.(*ListUniversitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeadlinesService_UpcomingDeadlines_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpcomingDeadlinesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadlinesServiceServer).UpcomingDeadlines(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadlinesService_UpcomingDeadlines_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadlinesServiceServer).UpcomingDeadlines(ctx, req.(*UpcomingDeadlinesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeadlinesService_UpdateApplicationStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateApplicationStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeadlinesServiceServer).UpdateApplicationStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeadlinesService_UpdateApplicationStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeadlinesServiceServer).UpdateApplicationStatus(ctx, req.(*UpdateApplicationStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DeadlinesService_ServiceDesc is the grpc.ServiceDesc for DeadlinesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DeadlinesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tracker.v1.DeadlinesService",
	HandlerType: (*DeadlinesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddUniversity",
			Handler:    _DeadlinesService_AddUniversity_Handler,
		},
		{
			MethodName: "ListUniversities",
			Handler:    _DeadlinesService_ListUniversities_Handler,
		},
		{
			MethodName: "UpcomingDeadlines",
			Handler:    _DeadlinesService_UpcomingDeadlines_Handler,
		},
		{
			MethodName: "UpdateApplicationStatus",
			Handler:    _DeadlinesService_UpdateApplicationStatus_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tracker/v1/tracker.proto",
}

const (
	ExportService_ExportEvaluation_FullMethodName   = "/tracker.v1.ExportService/ExportEvaluation"
	ExportService_ExportUniversities_FullMethodName = "/tracker.v1.ExportService/ExportUniversities"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportEvaluation(ctx context.Context, in *ExportEvaluationRequest, opts ...grpc.CallOption) (*ExportEvaluationResponse, error)
	ExportUniversities(ctx context.Context, in *ExportUniversitiesRequest, opts ...grpc.CallOption) (*ExportUniversitiesResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportEvaluation(ctx context.Context, in *ExportEvaluationRequest, opts ...grpc.CallOption) (*ExportEvaluationResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportEvaluationResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportEvaluation_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *exportServiceClient) ExportUniversities(ctx context.Context, in *ExportUniversitiesRequest, opts ...grpc.CallOption) (*ExportUniversitiesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportUniversitiesResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportUniversities_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportEvaluation(context.Context, *ExportEvaluationRequest) (*ExportEvaluationResponse, error)
	ExportUniversities(context.Context, *ExportUniversitiesRequest) (*ExportUniversitiesResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportEvaluation(context.Context, *ExportEvaluationRequest) (*ExportEvaluationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportEvaluation not implemented")
}
func (UnimplementedExportServiceServer) ExportUniversities(context.Context, *ExportUniversitiesRequest) (*ExportUniversitiesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportUniversities not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportEvaluation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportEvaluationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportEvaluation(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportEvaluation_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportEvaluation(ctx, req.(*ExportEvaluationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ExportService_ExportUniversities_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportUniversitiesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportUniversities(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportUniversities_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportUniversities(ctx, req.(*ExportUniversitiesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "tracker.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportEvaluation",
			Handler:    _ExportService_ExportEvaluation_Handler,
		},
		{
			MethodName: "ExportUniversities",
			Handler:    _ExportService_ExportUniversities_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tracker/v1/tracker.proto",
}
