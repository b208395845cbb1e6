// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: tracker/v1/tracker.proto

package trackerpb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Applicant struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,3,opt,name=email,proto3" json:"email,omitempty"`
	TargetLevel   string                 `protobuf:"bytes,4,opt,name=target_level,json=targetLevel,proto3" json:"target_level,omitempty"`
	ResearchAreas string                 `protobuf:"bytes,5,opt,name=research_areas,json=researchAreas,proto3" json:"research_areas,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Applicant) Reset() {
	*x = Applicant{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Applicant) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Applicant) ProtoMessage() {}

func (x *Applicant) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Applicant.ProtoReflect.Descriptor instead.
func (*Applicant) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{0}
}

func (x *Applicant) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Applicant) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Applicant) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *Applicant) GetTargetLevel() string {
	if x != nil {
		return x.TargetLevel
	}
	return ""
}

func (x *Applicant) GetResearchAreas() string {
	if x != nil {
		return x.ResearchAreas
	}
	return ""
}

func (x *Applicant) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Applicant) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type CreateApplicantRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Email         string                 `protobuf:"bytes,2,opt,name=email,proto3" json:"email,omitempty"`
	TargetLevel   string                 `protobuf:"bytes,3,opt,name=target_level,json=targetLevel,proto3" json:"target_level,omitempty"`
	ResearchAreas string                 `protobuf:"bytes,4,opt,name=research_areas,json=researchAreas,proto3" json:"research_areas,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateApplicantRequest) Reset() {
	*x = CreateApplicantRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateApplicantRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateApplicantRequest) ProtoMessage() {}

func (x *CreateApplicantRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateApplicantRequest.ProtoReflect.Descriptor instead.
func (*CreateApplicantRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{1}
}

func (x *CreateApplicantRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateApplicantRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *CreateApplicantRequest) GetTargetLevel() string {
	if x != nil {
		return x.TargetLevel
	}
	return ""
}

func (x *CreateApplicantRequest) GetResearchAreas() string {
	if x != nil {
		return x.ResearchAreas
	}
	return ""
}

type CreateApplicantResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applicant     *Applicant             `protobuf:"bytes,1,opt,name=applicant,proto3" json:"applicant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CreateApplicantResponse) Reset() {
	*x = CreateApplicantResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CreateApplicantResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CreateApplicantResponse) ProtoMessage() {}

func (x *CreateApplicantResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CreateApplicantResponse.ProtoReflect.Descriptor instead.
func (*CreateApplicantResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{2}
}

func (x *CreateApplicantResponse) GetApplicant() *Applicant {
	if x != nil {
		return x.Applicant
	}
	return nil
}

type GetApplicantRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId   string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetApplicantRequest) Reset() {
	*x = GetApplicantRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetApplicantRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetApplicantRequest) ProtoMessage() {}

func (x *GetApplicantRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetApplicantRequest.ProtoReflect.Descriptor instead.
func (*GetApplicantRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{3}
}

func (x *GetApplicantRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

type GetApplicantResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applicant     *Applicant             `protobuf:"bytes,1,opt,name=applicant,proto3" json:"applicant,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetApplicantResponse) Reset() {
	*x = GetApplicantResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetApplicantResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetApplicantResponse) ProtoMessage() {}

func (x *GetApplicantResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetApplicantResponse.ProtoReflect.Descriptor instead.
func (*GetApplicantResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{4}
}

func (x *GetApplicantResponse) GetApplicant() *Applicant {
	if x != nil {
		return x.Applicant
	}
	return nil
}

type ListApplicantsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicantsRequest) Reset() {
	*x = ListApplicantsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicantsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicantsRequest) ProtoMessage() {}

func (x *ListApplicantsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicantsRequest.ProtoReflect.Descriptor instead.
func (*ListApplicantsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{5}
}

type ListApplicantsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Applicants    []*Applicant           `protobuf:"bytes,1,rep,name=applicants,proto3" json:"applicants,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListApplicantsResponse) Reset() {
	*x = ListApplicantsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListApplicantsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListApplicantsResponse) ProtoMessage() {}

func (x *ListApplicantsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListApplicantsResponse.ProtoReflect.Descriptor instead.
func (*ListApplicantsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{6}
}

func (x *ListApplicantsResponse) GetApplicants() []*Applicant {
	if x != nil {
		return x.Applicants
	}
	return nil
}

type Evaluation struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ApplicantId   string                 `protobuf:"bytes,2,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	Institution   string                 `protobuf:"bytes,3,opt,name=institution,proto3" json:"institution,omitempty"`
	Level         string                 `protobuf:"bytes,4,opt,name=level,proto3" json:"level,omitempty"`
	Gpa           float64                `protobuf:"fixed64,5,opt,name=gpa,proto3" json:"gpa,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,6,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,7,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Evaluation) Reset() {
	*x = Evaluation{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Evaluation) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Evaluation) ProtoMessage() {}

func (x *Evaluation) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Evaluation.ProtoReflect.Descriptor instead.
func (*Evaluation) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{7}
}

func (x *Evaluation) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Evaluation) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

func (x *Evaluation) GetInstitution() string {
	if x != nil {
		return x.Institution
	}
	return ""
}

func (x *Evaluation) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

func (x *Evaluation) GetGpa() float64 {
	if x != nil {
		return x.Gpa
	}
	return 0
}

func (x *Evaluation) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Evaluation) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Course struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Code          string                 `protobuf:"bytes,2,opt,name=code,proto3" json:"code,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Grade         string                 `protobuf:"bytes,4,opt,name=grade,proto3" json:"grade,omitempty"`
	CreditHours   float64                `protobuf:"fixed64,5,opt,name=credit_hours,json=creditHours,proto3" json:"credit_hours,omitempty"`
	Included      bool                   `protobuf:"varint,6,opt,name=included,proto3" json:"included,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Course) Reset() {
	*x = Course{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Course) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Course) ProtoMessage() {}

func (x *Course) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Course.ProtoReflect.Descriptor instead.
func (*Course) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{8}
}

func (x *Course) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Course) GetCode() string {
	if x != nil {
		return x.Code
	}
	return ""
}

func (x *Course) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Course) GetGrade() string {
	if x != nil {
		return x.Grade
	}
	return ""
}

func (x *Course) GetCreditHours() float64 {
	if x != nil {
		return x.CreditHours
	}
	return 0
}

func (x *Course) GetIncluded() bool {
	if x != nil {
		return x.Included
	}
	return false
}

type ExtractionWarning struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Chunk         int32                  `protobuf:"varint,1,opt,name=chunk,proto3" json:"chunk,omitempty"`
	Msg           string                 `protobuf:"bytes,2,opt,name=msg,proto3" json:"msg,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractionWarning) Reset() {
	*x = ExtractionWarning{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractionWarning) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractionWarning) ProtoMessage() {}

func (x *ExtractionWarning) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractionWarning.ProtoReflect.Descriptor instead.
func (*ExtractionWarning) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{9}
}

func (x *ExtractionWarning) GetChunk() int32 {
	if x != nil {
		return x.Chunk
	}
	return 0
}

func (x *ExtractionWarning) GetMsg() string {
	if x != nil {
		return x.Msg
	}
	return ""
}

type RunExtractionRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	Institution string                 `protobuf:"bytes,2,opt,name=institution,proto3" json:"institution,omitempty"`
	Level       string                 `protobuf:"bytes,3,opt,name=level,proto3" json:"level,omitempty"`
	// exactly one of text / file_path
	Text     string `protobuf:"bytes,4,opt,name=text,proto3" json:"text,omitempty"`
	FilePath string `protobuf:"bytes,5,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	// when true the run is queued and the response carries only trace_id;
	// poll GetEvaluation / the job ledger for the outcome
	Async         bool `protobuf:"varint,6,opt,name=async,proto3" json:"async,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunExtractionRequest) Reset() {
	*x = RunExtractionRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunExtractionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunExtractionRequest) ProtoMessage() {}

func (x *RunExtractionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunExtractionRequest.ProtoReflect.Descriptor instead.
func (*RunExtractionRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{10}
}

func (x *RunExtractionRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

func (x *RunExtractionRequest) GetInstitution() string {
	if x != nil {
		return x.Institution
	}
	return ""
}

func (x *RunExtractionRequest) GetLevel() string {
	if x != nil {
		return x.Level
	}
	return ""
}

func (x *RunExtractionRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *RunExtractionRequest) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *RunExtractionRequest) GetAsync() bool {
	if x != nil {
		return x.Async
	}
	return false
}

type RunExtractionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Evaluation    *Evaluation            `protobuf:"bytes,1,opt,name=evaluation,proto3" json:"evaluation,omitempty"`
	Courses       []*Course              `protobuf:"bytes,2,rep,name=courses,proto3" json:"courses,omitempty"`
	JobId         string                 `protobuf:"bytes,3,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Warnings      []*ExtractionWarning   `protobuf:"bytes,4,rep,name=warnings,proto3" json:"warnings,omitempty"`
	Accepted      bool                   `protobuf:"varint,5,opt,name=accepted,proto3" json:"accepted,omitempty"`
	TraceId       string                 `protobuf:"bytes,6,opt,name=trace_id,json=traceId,proto3" json:"trace_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RunExtractionResponse) Reset() {
	*x = RunExtractionResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RunExtractionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunExtractionResponse) ProtoMessage() {}

func (x *RunExtractionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunExtractionResponse.ProtoReflect.Descriptor instead.
func (*RunExtractionResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{11}
}

func (x *RunExtractionResponse) GetEvaluation() *Evaluation {
	if x != nil {
		return x.Evaluation
	}
	return nil
}

func (x *RunExtractionResponse) GetCourses() []*Course {
	if x != nil {
		return x.Courses
	}
	return nil
}

func (x *RunExtractionResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *RunExtractionResponse) GetWarnings() []*ExtractionWarning {
	if x != nil {
		return x.Warnings
	}
	return nil
}

func (x *RunExtractionResponse) GetAccepted() bool {
	if x != nil {
		return x.Accepted
	}
	return false
}

func (x *RunExtractionResponse) GetTraceId() string {
	if x != nil {
		return x.TraceId
	}
	return ""
}

type GetEvaluationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EvaluationId  string                 `protobuf:"bytes,1,opt,name=evaluation_id,json=evaluationId,proto3" json:"evaluation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEvaluationRequest) Reset() {
	*x = GetEvaluationRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEvaluationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEvaluationRequest) ProtoMessage() {}

func (x *GetEvaluationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEvaluationRequest.ProtoReflect.Descriptor instead.
func (*GetEvaluationRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{12}
}

func (x *GetEvaluationRequest) GetEvaluationId() string {
	if x != nil {
		return x.EvaluationId
	}
	return ""
}

type GetEvaluationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Evaluation    *Evaluation            `protobuf:"bytes,1,opt,name=evaluation,proto3" json:"evaluation,omitempty"`
	Courses       []*Course              `protobuf:"bytes,2,rep,name=courses,proto3" json:"courses,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetEvaluationResponse) Reset() {
	*x = GetEvaluationResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetEvaluationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetEvaluationResponse) ProtoMessage() {}

func (x *GetEvaluationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetEvaluationResponse.ProtoReflect.Descriptor instead.
func (*GetEvaluationResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{13}
}

func (x *GetEvaluationResponse) GetEvaluation() *Evaluation {
	if x != nil {
		return x.Evaluation
	}
	return nil
}

func (x *GetEvaluationResponse) GetCourses() []*Course {
	if x != nil {
		return x.Courses
	}
	return nil
}

type ListEvaluationsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId   string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEvaluationsRequest) Reset() {
	*x = ListEvaluationsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEvaluationsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEvaluationsRequest) ProtoMessage() {}

func (x *ListEvaluationsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEvaluationsRequest.ProtoReflect.Descriptor instead.
func (*ListEvaluationsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{14}
}

func (x *ListEvaluationsRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

type ListEvaluationsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Evaluations   []*Evaluation          `protobuf:"bytes,1,rep,name=evaluations,proto3" json:"evaluations,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListEvaluationsResponse) Reset() {
	*x = ListEvaluationsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListEvaluationsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListEvaluationsResponse) ProtoMessage() {}

func (x *ListEvaluationsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListEvaluationsResponse.ProtoReflect.Descriptor instead.
func (*ListEvaluationsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{15}
}

func (x *ListEvaluationsResponse) GetEvaluations() []*Evaluation {
	if x != nil {
		return x.Evaluations
	}
	return nil
}

type SetCourseIncludedRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EvaluationId  string                 `protobuf:"bytes,1,opt,name=evaluation_id,json=evaluationId,proto3" json:"evaluation_id,omitempty"`
	CourseId      string                 `protobuf:"bytes,2,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Included      bool                   `protobuf:"varint,3,opt,name=included,proto3" json:"included,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCourseIncludedRequest) Reset() {
	*x = SetCourseIncludedRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCourseIncludedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCourseIncludedRequest) ProtoMessage() {}

func (x *SetCourseIncludedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCourseIncludedRequest.ProtoReflect.Descriptor instead.
func (*SetCourseIncludedRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{16}
}

func (x *SetCourseIncludedRequest) GetEvaluationId() string {
	if x != nil {
		return x.EvaluationId
	}
	return ""
}

func (x *SetCourseIncludedRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *SetCourseIncludedRequest) GetIncluded() bool {
	if x != nil {
		return x.Included
	}
	return false
}

type SetCourseIncludedResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Evaluation    *Evaluation            `protobuf:"bytes,1,opt,name=evaluation,proto3" json:"evaluation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetCourseIncludedResponse) Reset() {
	*x = SetCourseIncludedResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[17]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetCourseIncludedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetCourseIncludedResponse) ProtoMessage() {}

func (x *SetCourseIncludedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[17]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetCourseIncludedResponse.ProtoReflect.Descriptor instead.
func (*SetCourseIncludedResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{17}
}

func (x *SetCourseIncludedResponse) GetEvaluation() *Evaluation {
	if x != nil {
		return x.Evaluation
	}
	return nil
}

type UpdateCourseRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EvaluationId  string                 `protobuf:"bytes,1,opt,name=evaluation_id,json=evaluationId,proto3" json:"evaluation_id,omitempty"`
	CourseId      string                 `protobuf:"bytes,2,opt,name=course_id,json=courseId,proto3" json:"course_id,omitempty"`
	Grade         string                 `protobuf:"bytes,3,opt,name=grade,proto3" json:"grade,omitempty"`
	CreditHours   float64                `protobuf:"fixed64,4,opt,name=credit_hours,json=creditHours,proto3" json:"credit_hours,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCourseRequest) Reset() {
	*x = UpdateCourseRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[18]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCourseRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCourseRequest) ProtoMessage() {}

func (x *UpdateCourseRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[18]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCourseRequest.ProtoReflect.Descriptor instead.
func (*UpdateCourseRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{18}
}

func (x *UpdateCourseRequest) GetEvaluationId() string {
	if x != nil {
		return x.EvaluationId
	}
	return ""
}

func (x *UpdateCourseRequest) GetCourseId() string {
	if x != nil {
		return x.CourseId
	}
	return ""
}

func (x *UpdateCourseRequest) GetGrade() string {
	if x != nil {
		return x.Grade
	}
	return ""
}

func (x *UpdateCourseRequest) GetCreditHours() float64 {
	if x != nil {
		return x.CreditHours
	}
	return 0
}

type UpdateCourseResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Evaluation    *Evaluation            `protobuf:"bytes,1,opt,name=evaluation,proto3" json:"evaluation,omitempty"`
	Course        *Course                `protobuf:"bytes,2,opt,name=course,proto3" json:"course,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateCourseResponse) Reset() {
	*x = UpdateCourseResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[19]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateCourseResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateCourseResponse) ProtoMessage() {}

func (x *UpdateCourseResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[19]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateCourseResponse.ProtoReflect.Descriptor instead.
func (*UpdateCourseResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{19}
}

func (x *UpdateCourseResponse) GetEvaluation() *Evaluation {
	if x != nil {
		return x.Evaluation
	}
	return nil
}

func (x *UpdateCourseResponse) GetCourse() *Course {
	if x != nil {
		return x.Course
	}
	return nil
}

type RecomputeGPARequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EvaluationId  string                 `protobuf:"bytes,1,opt,name=evaluation_id,json=evaluationId,proto3" json:"evaluation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecomputeGPARequest) Reset() {
	*x = RecomputeGPARequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[20]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecomputeGPARequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecomputeGPARequest) ProtoMessage() {}

func (x *RecomputeGPARequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[20]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecomputeGPARequest.ProtoReflect.Descriptor instead.
func (*RecomputeGPARequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{20}
}

func (x *RecomputeGPARequest) GetEvaluationId() string {
	if x != nil {
		return x.EvaluationId
	}
	return ""
}

type RecomputeGPAResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Evaluation    *Evaluation            `protobuf:"bytes,1,opt,name=evaluation,proto3" json:"evaluation,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RecomputeGPAResponse) Reset() {
	*x = RecomputeGPAResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[21]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RecomputeGPAResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RecomputeGPAResponse) ProtoMessage() {}

func (x *RecomputeGPAResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[21]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RecomputeGPAResponse.ProtoReflect.Descriptor instead.
func (*RecomputeGPAResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{21}
}

func (x *RecomputeGPAResponse) GetEvaluation() *Evaluation {
	if x != nil {
		return x.Evaluation
	}
	return nil
}

type ExtractJob struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ApplicantId   string                 `protobuf:"bytes,2,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	FileId        string                 `protobuf:"bytes,3,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	EvaluationId  string                 `protobuf:"bytes,4,opt,name=evaluation_id,json=evaluationId,proto3" json:"evaluation_id,omitempty"`
	Source        string                 `protobuf:"bytes,5,opt,name=source,proto3" json:"source,omitempty"`
	Status        string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,7,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	ChunkCount    int32                  `protobuf:"varint,8,opt,name=chunk_count,json=chunkCount,proto3" json:"chunk_count,omitempty"`
	WarningCount  int32                  `protobuf:"varint,9,opt,name=warning_count,json=warningCount,proto3" json:"warning_count,omitempty"`
	ModelName     string                 `protobuf:"bytes,10,opt,name=model_name,json=modelName,proto3" json:"model_name,omitempty"`
	StartedAt     string                 `protobuf:"bytes,11,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	FinishedAt    string                 `protobuf:"bytes,12,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractJob) Reset() {
	*x = ExtractJob{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[22]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractJob) ProtoMessage() {}

func (x *ExtractJob) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[22]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractJob.ProtoReflect.Descriptor instead.
func (*ExtractJob) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{22}
}

func (x *ExtractJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ExtractJob) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

func (x *ExtractJob) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *ExtractJob) GetEvaluationId() string {
	if x != nil {
		return x.EvaluationId
	}
	return ""
}

func (x *ExtractJob) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ExtractJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ExtractJob) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ExtractJob) GetChunkCount() int32 {
	if x != nil {
		return x.ChunkCount
	}
	return 0
}

func (x *ExtractJob) GetWarningCount() int32 {
	if x != nil {
		return x.WarningCount
	}
	return 0
}

func (x *ExtractJob) GetModelName() string {
	if x != nil {
		return x.ModelName
	}
	return ""
}

func (x *ExtractJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ExtractJob) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type ListExtractionJobsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId   string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionJobsRequest) Reset() {
	*x = ListExtractionJobsRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[23]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionJobsRequest) ProtoMessage() {}

func (x *ListExtractionJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[23]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionJobsRequest.ProtoReflect.Descriptor instead.
func (*ListExtractionJobsRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{23}
}

func (x *ListExtractionJobsRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

type ListExtractionJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ExtractJob          `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListExtractionJobsResponse) Reset() {
	*x = ListExtractionJobsResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[24]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListExtractionJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListExtractionJobsResponse) ProtoMessage() {}

func (x *ListExtractionJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[24]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListExtractionJobsResponse.ProtoReflect.Descriptor instead.
func (*ListExtractionJobsResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{24}
}

func (x *ListExtractionJobsResponse) GetJobs() []*ExtractJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type University struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ApplicantId   string                 `protobuf:"bytes,2,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	Program       string                 `protobuf:"bytes,4,opt,name=program,proto3" json:"program,omitempty"`
	Semester      string                 `protobuf:"bytes,5,opt,name=semester,proto3" json:"semester,omitempty"`
	Deadline      string                 `protobuf:"bytes,6,opt,name=deadline,proto3" json:"deadline,omitempty"` // RFC 3339, empty when unset
	Timezone      string                 `protobuf:"bytes,7,opt,name=timezone,proto3" json:"timezone,omitempty"` // UTC offset like "-05:00"
	Status        string                 `protobuf:"bytes,8,opt,name=status,proto3" json:"status,omitempty"`
	Notes         string                 `protobuf:"bytes,9,opt,name=notes,proto3" json:"notes,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,10,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,11,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *University) Reset() {
	*x = University{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[25]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *University) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*University) ProtoMessage() {}

func (x *University) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[25]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use University.ProtoReflect.Descriptor instead.
func (*University) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{25}
}

func (x *University) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *University) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

func (x *University) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *University) GetProgram() string {
	if x != nil {
		return x.Program
	}
	return ""
}

func (x *University) GetSemester() string {
	if x != nil {
		return x.Semester
	}
	return ""
}

func (x *University) GetDeadline() string {
	if x != nil {
		return x.Deadline
	}
	return ""
}

func (x *University) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

func (x *University) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *University) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

func (x *University) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *University) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type AddUniversityRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId   string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	Name          string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Program       string                 `protobuf:"bytes,3,opt,name=program,proto3" json:"program,omitempty"`
	Semester      string                 `protobuf:"bytes,4,opt,name=semester,proto3" json:"semester,omitempty"` // e.g. "Fall 2027"
	Deadline      string                 `protobuf:"bytes,5,opt,name=deadline,proto3" json:"deadline,omitempty"` // YYYY-MM-DD, local to timezone
	Timezone      string                 `protobuf:"bytes,6,opt,name=timezone,proto3" json:"timezone,omitempty"` // UTC offset like "-05:00"
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	Notes         string                 `protobuf:"bytes,8,opt,name=notes,proto3" json:"notes,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddUniversityRequest) Reset() {
	*x = AddUniversityRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[26]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddUniversityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddUniversityRequest) ProtoMessage() {}

func (x *AddUniversityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[26]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddUniversityRequest.ProtoReflect.Descriptor instead.
func (*AddUniversityRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{26}
}

func (x *AddUniversityRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

func (x *AddUniversityRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *AddUniversityRequest) GetProgram() string {
	if x != nil {
		return x.Program
	}
	return ""
}

func (x *AddUniversityRequest) GetSemester() string {
	if x != nil {
		return x.Semester
	}
	return ""
}

func (x *AddUniversityRequest) GetDeadline() string {
	if x != nil {
		return x.Deadline
	}
	return ""
}

func (x *AddUniversityRequest) GetTimezone() string {
	if x != nil {
		return x.Timezone
	}
	return ""
}

func (x *AddUniversityRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *AddUniversityRequest) GetNotes() string {
	if x != nil {
		return x.Notes
	}
	return ""
}

type AddUniversityResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	University    *University            `protobuf:"bytes,1,opt,name=university,proto3" json:"university,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AddUniversityResponse) Reset() {
	*x = AddUniversityResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[27]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AddUniversityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AddUniversityResponse) ProtoMessage() {}

func (x *AddUniversityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[27]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AddUniversityResponse.ProtoReflect.Descriptor instead.
func (*AddUniversityResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{27}
}

func (x *AddUniversityResponse) GetUniversity() *University {
	if x != nil {
		return x.University
	}
	return nil
}

type ListUniversitiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId   string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUniversitiesRequest) Reset() {
	*x = ListUniversitiesRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[28]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUniversitiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUniversitiesRequest) ProtoMessage() {}

func (x *ListUniversitiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[28]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUniversitiesRequest.ProtoReflect.Descriptor instead.
func (*ListUniversitiesRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{28}
}

func (x *ListUniversitiesRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

type ListUniversitiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Universities  []*University          `protobuf:"bytes,1,rep,name=universities,proto3" json:"universities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListUniversitiesResponse) Reset() {
	*x = ListUniversitiesResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[29]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListUniversitiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListUniversitiesResponse) ProtoMessage() {}

func (x *ListUniversitiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[29]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListUniversitiesResponse.ProtoReflect.Descriptor instead.
func (*ListUniversitiesResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{29}
}

func (x *ListUniversitiesResponse) GetUniversities() []*University {
	if x != nil {
		return x.Universities
	}
	return nil
}

type UpcomingDeadlinesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId   string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpcomingDeadlinesRequest) Reset() {
	*x = UpcomingDeadlinesRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[30]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpcomingDeadlinesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpcomingDeadlinesRequest) ProtoMessage() {}

func (x *UpcomingDeadlinesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[30]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpcomingDeadlinesRequest.ProtoReflect.Descriptor instead.
func (*UpcomingDeadlinesRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{30}
}

func (x *UpcomingDeadlinesRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

type UpcomingDeadlinesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Universities  []*University          `protobuf:"bytes,1,rep,name=universities,proto3" json:"universities,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpcomingDeadlinesResponse) Reset() {
	*x = UpcomingDeadlinesResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[31]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpcomingDeadlinesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpcomingDeadlinesResponse) ProtoMessage() {}

func (x *UpcomingDeadlinesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[31]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpcomingDeadlinesResponse.ProtoReflect.Descriptor instead.
func (*UpcomingDeadlinesResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{31}
}

func (x *UpcomingDeadlinesResponse) GetUniversities() []*University {
	if x != nil {
		return x.Universities
	}
	return nil
}

type UpdateApplicationStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UniversityId  string                 `protobuf:"bytes,1,opt,name=university_id,json=universityId,proto3" json:"university_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateApplicationStatusRequest) Reset() {
	*x = UpdateApplicationStatusRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[32]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateApplicationStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateApplicationStatusRequest) ProtoMessage() {}

func (x *UpdateApplicationStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[32]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateApplicationStatusRequest.ProtoReflect.Descriptor instead.
func (*UpdateApplicationStatusRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{32}
}

func (x *UpdateApplicationStatusRequest) GetUniversityId() string {
	if x != nil {
		return x.UniversityId
	}
	return ""
}

func (x *UpdateApplicationStatusRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type UpdateApplicationStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	University    *University            `protobuf:"bytes,1,opt,name=university,proto3" json:"university,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UpdateApplicationStatusResponse) Reset() {
	*x = UpdateApplicationStatusResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[33]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UpdateApplicationStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UpdateApplicationStatusResponse) ProtoMessage() {}

func (x *UpdateApplicationStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[33]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UpdateApplicationStatusResponse.ProtoReflect.Descriptor instead.
func (*UpdateApplicationStatusResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{33}
}

func (x *UpdateApplicationStatusResponse) GetUniversity() *University {
	if x != nil {
		return x.University
	}
	return nil
}

type ExportEvaluationRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	EvaluationId  string                 `protobuf:"bytes,1,opt,name=evaluation_id,json=evaluationId,proto3" json:"evaluation_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportEvaluationRequest) Reset() {
	*x = ExportEvaluationRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[34]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportEvaluationRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportEvaluationRequest) ProtoMessage() {}

func (x *ExportEvaluationRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[34]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportEvaluationRequest.ProtoReflect.Descriptor instead.
func (*ExportEvaluationRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{34}
}

func (x *ExportEvaluationRequest) GetEvaluationId() string {
	if x != nil {
		return x.EvaluationId
	}
	return ""
}

type ExportEvaluationResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportEvaluationResponse) Reset() {
	*x = ExportEvaluationResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[35]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportEvaluationResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportEvaluationResponse) ProtoMessage() {}

func (x *ExportEvaluationResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[35]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportEvaluationResponse.ProtoReflect.Descriptor instead.
func (*ExportEvaluationResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{35}
}

func (x *ExportEvaluationResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ExportUniversitiesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ApplicantId   string                 `protobuf:"bytes,1,opt,name=applicant_id,json=applicantId,proto3" json:"applicant_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportUniversitiesRequest) Reset() {
	*x = ExportUniversitiesRequest{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[36]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUniversitiesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUniversitiesRequest) ProtoMessage() {}

func (x *ExportUniversitiesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[36]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUniversitiesRequest.ProtoReflect.Descriptor instead.
func (*ExportUniversitiesRequest) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{36}
}

func (x *ExportUniversitiesRequest) GetApplicantId() string {
	if x != nil {
		return x.ApplicantId
	}
	return ""
}

type ExportUniversitiesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportUniversitiesResponse) Reset() {
	*x = ExportUniversitiesResponse{}
	mi := &file_tracker_v1_tracker_proto_msgTypes[37]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportUniversitiesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportUniversitiesResponse) ProtoMessage() {}

func (x *ExportUniversitiesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_tracker_v1_tracker_proto_msgTypes[37]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportUniversitiesResponse.ProtoReflect.Descriptor instead.
func (*ExportUniversitiesResponse) Descriptor() ([]byte, []int) {
	return file_tracker_v1_tracker_proto_rawDescGZIP(), []int{37}
}

func (x *ExportUniversitiesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_tracker_v1_tracker_proto protoreflect.FileDescriptor

const file_tracker_v1_tracker_proto_rawDesc = "" +
	"\n" +
	"\x18tracker/v1/tracker.proto\x12\n" +
	"tracker.v1\"\xcd\x01\n" +
	"\tApplicant\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x03 \x01(\tR\x05email\x12!\n" +
	"\ftarget_level\x18\x04 \x01(\tR\vtargetLevel\x12%\n" +
	"\x0eresearch_areas\x18\x05 \x01(\tR\rresearchAreas\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"\x8c\x01\n" +
	"\x16CreateApplicantRequest\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12\x14\n" +
	"\x05email\x18\x02 \x01(\tR\x05email\x12!\n" +
	"\ftarget_level\x18\x03 \x01(\tR\vtargetLevel\x12%\n" +
	"\x0eresearch_areas\x18\x04 \x01(\tR\rresearchAreas\"N\n" +
	"\x17CreateApplicantResponse\x123\n" +
	"\tapplicant\x18\x01 \x01(\v2\x15.tracker.v1.ApplicantR\tapplicant\"8\n" +
	"\x13GetApplicantRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\"K\n" +
	"\x14GetApplicantResponse\x123\n" +
	"\tapplicant\x18\x01 \x01(\v2\x15.tracker.v1.ApplicantR\tapplicant\"\x17\n" +
	"\x15ListApplicantsRequest\"O\n" +
	"\x16ListApplicantsResponse\x125\n" +
	"\n" +
	"applicants\x18\x01 \x03(\v2\x15.tracker.v1.ApplicantR\n" +
	"applicants\"\xc7\x01\n" +
	"\n" +
	"Evaluation\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fapplicant_id\x18\x02 \x01(\tR\vapplicantId\x12 \n" +
	"\vinstitution\x18\x03 \x01(\tR\vinstitution\x12\x14\n" +
	"\x05level\x18\x04 \x01(\tR\x05level\x12\x10\n" +
	"\x03gpa\x18\x05 \x01(\x01R\x03gpa\x12\x1d\n" +
	"\n" +
	"created_at\x18\x06 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\a \x01(\tR\tupdatedAt\"\x95\x01\n" +
	"\x06Course\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04code\x18\x02 \x01(\tR\x04code\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x14\n" +
	"\x05grade\x18\x04 \x01(\tR\x05grade\x12!\n" +
	"\fcredit_hours\x18\x05 \x01(\x01R\vcreditHours\x12\x1a\n" +
	"\bincluded\x18\x06 \x01(\bR\bincluded\";\n" +
	"\x11ExtractionWarning\x12\x14\n" +
	"\x05chunk\x18\x01 \x01(\x05R\x05chunk\x12\x10\n" +
	"\x03msg\x18\x02 \x01(\tR\x03msg\"\xb8\x01\n" +
	"\x14RunExtractionRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\x12 \n" +
	"\vinstitution\x18\x02 \x01(\tR\vinstitution\x12\x14\n" +
	"\x05level\x18\x03 \x01(\tR\x05level\x12\x12\n" +
	"\x04text\x18\x04 \x01(\tR\x04text\x12\x1b\n" +
	"\tfile_path\x18\x05 \x01(\tR\bfilePath\x12\x14\n" +
	"\x05async\x18\x06 \x01(\bR\x05async\"\x86\x02\n" +
	"\x15RunExtractionResponse\x126\n" +
	"\n" +
	"evaluation\x18\x01 \x01(\v2\x16.tracker.v1.EvaluationR\n" +
	"evaluation\x12,\n" +
	"\acourses\x18\x02 \x03(\v2\x12.tracker.v1.CourseR\acourses\x12\x15\n" +
	"\x06job_id\x18\x03 \x01(\tR\x05jobId\x129\n" +
	"\bwarnings\x18\x04 \x03(\v2\x1d.tracker.v1.ExtractionWarningR\bwarnings\x12\x1a\n" +
	"\baccepted\x18\x05 \x01(\bR\baccepted\x12\x19\n" +
	"\btrace_id\x18\x06 \x01(\tR\atraceId\";\n" +
	"\x14GetEvaluationRequest\x12#\n" +
	"\revaluation_id\x18\x01 \x01(\tR\fevaluationId\"}\n" +
	"\x15GetEvaluationResponse\x126\n" +
	"\n" +
	"evaluation\x18\x01 \x01(\v2\x16.tracker.v1.EvaluationR\n" +
	"evaluation\x12,\n" +
	"\acourses\x18\x02 \x03(\v2\x12.tracker.v1.CourseR\acourses\";\n" +
	"\x16ListEvaluationsRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\"S\n" +
	"\x17ListEvaluationsResponse\x128\n" +
	"\vevaluations\x18\x01 \x03(\v2\x16.tracker.v1.EvaluationR\vevaluations\"x\n" +
	"\x18SetCourseIncludedRequest\x12#\n" +
	"\revaluation_id\x18\x01 \x01(\tR\fevaluationId\x12\x1b\n" +
	"\tcourse_id\x18\x02 \x01(\tR\bcourseId\x12\x1a\n" +
	"\bincluded\x18\x03 \x01(\bR\bincluded\"S\n" +
	"\x19SetCourseIncludedResponse\x126\n" +
	"\n" +
	"evaluation\x18\x01 \x01(\v2\x16.tracker.v1.EvaluationR\n" +
	"evaluation\"\x90\x01\n" +
	"\x13UpdateCourseRequest\x12#\n" +
	"\revaluation_id\x18\x01 \x01(\tR\fevaluationId\x12\x1b\n" +
	"\tcourse_id\x18\x02 \x01(\tR\bcourseId\x12\x14\n" +
	"\x05grade\x18\x03 \x01(\tR\x05grade\x12!\n" +
	"\fcredit_hours\x18\x04 \x01(\x01R\vcreditHours\"z\n" +
	"\x14UpdateCourseResponse\x126\n" +
	"\n" +
	"evaluation\x18\x01 \x01(\v2\x16.tracker.v1.EvaluationR\n" +
	"evaluation\x12*\n" +
	"\x06course\x18\x02 \x01(\v2\x12.tracker.v1.CourseR\x06course\":\n" +
	"\x13RecomputeGPARequest\x12#\n" +
	"\revaluation_id\x18\x01 \x01(\tR\fevaluationId\"N\n" +
	"\x14RecomputeGPAResponse\x126\n" +
	"\n" +
	"evaluation\x18\x01 \x01(\v2\x16.tracker.v1.EvaluationR\n" +
	"evaluation\"\xf7\x02\n" +
	"\n" +
	"ExtractJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fapplicant_id\x18\x02 \x01(\tR\vapplicantId\x12\x17\n" +
	"\afile_id\x18\x03 \x01(\tR\x06fileId\x12#\n" +
	"\revaluation_id\x18\x04 \x01(\tR\fevaluationId\x12\x16\n" +
	"\x06source\x18\x05 \x01(\tR\x06source\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\a \x01(\tR\ferrorMessage\x12\x1f\n" +
	"\vchunk_count\x18\b \x01(\x05R\n" +
	"chunkCount\x12#\n" +
	"\rwarning_count\x18\t \x01(\x05R\fwarningCount\x12\x1d\n" +
	"\n" +
	"model_name\x18\n" +
	" \x01(\tR\tmodelName\x12\x1d\n" +
	"\n" +
	"started_at\x18\v \x01(\tR\tstartedAt\x12\x1f\n" +
	"\vfinished_at\x18\f \x01(\tR\n" +
	"finishedAt\">\n" +
	"\x19ListExtractionJobsRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\"H\n" +
	"\x1aListExtractionJobsResponse\x12*\n" +
	"\x04jobs\x18\x01 \x03(\v2\x16.tracker.v1.ExtractJobR\x04jobs\"\xad\x02\n" +
	"\n" +
	"University\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12!\n" +
	"\fapplicant_id\x18\x02 \x01(\tR\vapplicantId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x18\n" +
	"\aprogram\x18\x04 \x01(\tR\aprogram\x12\x1a\n" +
	"\bsemester\x18\x05 \x01(\tR\bsemester\x12\x1a\n" +
	"\bdeadline\x18\x06 \x01(\tR\bdeadline\x12\x1a\n" +
	"\btimezone\x18\a \x01(\tR\btimezone\x12\x16\n" +
	"\x06status\x18\b \x01(\tR\x06status\x12\x14\n" +
	"\x05notes\x18\t \x01(\tR\x05notes\x12\x1d\n" +
	"\n" +
	"created_at\x18\n" +
	" \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\v \x01(\tR\tupdatedAt\"\xe9\x01\n" +
	"\x14AddUniversityRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x18\n" +
	"\aprogram\x18\x03 \x01(\tR\aprogram\x12\x1a\n" +
	"\bsemester\x18\x04 \x01(\tR\bsemester\x12\x1a\n" +
	"\bdeadline\x18\x05 \x01(\tR\bdeadline\x12\x1a\n" +
	"\btimezone\x18\x06 \x01(\tR\btimezone\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\x14\n" +
	"\x05notes\x18\b \x01(\tR\x05notes\"O\n" +
	"\x15AddUniversityResponse\x126\n" +
	"\n" +
	"university\x18\x01 \x01(\v2\x16.tracker.v1.UniversityR\n" +
	"university\"<\n" +
	"\x17ListUniversitiesRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\"V\n" +
	"\x18ListUniversitiesResponse\x12:\n" +
	"\funiversities\x18\x01 \x03(\v2\x16.tracker.v1.UniversityR\funiversities\"=\n" +
	"\x18UpcomingDeadlinesRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\"W\n" +
	"\x19UpcomingDeadlinesResponse\x12:\n" +
	"\funiversities\x18\x01 \x03(\v2\x16.tracker.v1.UniversityR\funiversities\"]\n" +
	"\x1eUpdateApplicationStatusRequest\x12#\n" +
	"\runiversity_id\x18\x01 \x01(\tR\funiversityId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\"Y\n" +
	"\x1fUpdateApplicationStatusResponse\x126\n" +
	"\n" +
	"university\x18\x01 \x01(\v2\x16.tracker.v1.UniversityR\n" +
	"university\">\n" +
	"\x17ExportEvaluationRequest\x12#\n" +
	"\revaluation_id\x18\x01 \x01(\tR\fevaluationId\".\n" +
	"\x18ExportEvaluationResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\">\n" +
	"\x19ExportUniversitiesRequest\x12!\n" +
	"\fapplicant_id\x18\x01 \x01(\tR\vapplicantId\"0\n" +
	"\x1aExportUniversitiesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x9b\x02\n" +
	"\x11ApplicantsService\x12Z\n" +
	"\x0fCreateApplicant\x12\".tracker.v1.CreateApplicantRequest\x1a#.tracker.v1.CreateApplicantResponse\x12Q\n" +
	"\fGetApplicant\x12\x1f.tracker.v1.GetApplicantRequest\x1a .tracker.v1.GetApplicantResponse\x12W\n" +
	"\x0eListApplicants\x12!.tracker.v1.ListApplicantsRequest\x1a\".tracker.v1.ListApplicantsResponse2\x89\x05\n" +
	"\x12EvaluationsService\x12T\n" +
	"\rRunExtraction\x12 .tracker.v1.RunExtractionRequest\x1a!.tracker.v1.RunExtractionResponse\x12T\n" +
	"\rGetEvaluation\x12 .tracker.v1.GetEvaluationRequest\x1a!.tracker.v1.GetEvaluationResponse\x12Z\n" +
	"\x0fListEvaluations\x12\".tracker.v1.ListEvaluationsRequest\x1a#.tracker.v1.ListEvaluationsResponse\x12`\n" +
	"\x11SetCourseIncluded\x12$.tracker.v1.SetCourseIncludedRequest\x1a%.tracker.v1.SetCourseIncludedResponse\x12Q\n" +
	"\fUpdateCourse\x12\x1f.tracker.v1.UpdateCourseRequest\x1a .tracker.v1.UpdateCourseResponse\x12Q\n" +
	"\fRecomputeGPA\x12\x1f.tracker.v1.RecomputeGPARequest\x1a .tracker.v1.RecomputeGPAResponse\x12c\n" +
	"\x12ListExtractionJobs\x12%.tracker.v1.ListExtractionJobsRequest\x1a&.tracker.v1.ListExtractionJobsResponse2\x9d\x03\n" +
	"\x10DeadlinesService\x12T\n" +
	"\rAddUniversity\x12 .tracker.v1.AddUniversityRequest\x1a!.tracker.v1.AddUniversityResponse\x12]\n" +
	"\x10ListUniversities\x12#.tracker.v1.ListUniversitiesRequest\x1a$.tracker.v1.ListUniversitiesResponse\x12`\n" +
	"\x11UpcomingDeadlines\x12$.tracker.v1.UpcomingDeadlinesRequest\x1a%.tracker.v1.UpcomingDeadlinesResponse\x12r\n" +
	"\x17UpdateApplicationStatus\x12*.tracker.v1.UpdateApplicationStatusRequest\x1a+.tracker.v1.UpdateApplicationStatusResponse2\xd3\x01\n" +
	"\rExportService\x12]\n" +
	"\x10ExportEvaluation\x12#.tracker.v1.ExportEvaluationRequest\x1a$.tracker.v1.ExportEvaluationResponse\x12c\n" +
	"\x12ExportUniversities\x12%.tracker.v1.ExportUniversitiesRequest\x1a&.tracker.v1.ExportUniversitiesResponseBDZBgithub.com/Salam-35/PhdTrack-sub000/gen/proto/tracker/v1;trackerpbb\x06proto3"

var (
	file_tracker_v1_tracker_proto_rawDescOnce sync.Once
	file_tracker_v1_tracker_proto_rawDescData []byte
)

func file_tracker_v1_tracker_proto_rawDescGZIP() []byte {
	file_tracker_v1_tracker_proto_rawDescOnce.Do(func() {
		file_tracker_v1_tracker_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_tracker_v1_tracker_proto_rawDesc), len(file_tracker_v1_tracker_proto_rawDesc)))
	})
	return file_tracker_v1_tracker_proto_rawDescData
}

var file_tracker_v1_tracker_proto_msgTypes = make([]protoimpl.MessageInfo, 38)
var file_tracker_v1_tracker_proto_goTypes = []any{
	(*Applicant)(nil),                       // 0: tracker.v1.Applicant
	(*CreateApplicantRequest)(nil),          // 1: tracker.v1.CreateApplicantRequest
	(*CreateApplicantResponse)(nil),         // 2: tracker.v1.CreateApplicantResponse
	(*GetApplicantRequest)(nil),             // 3: tracker.v1.GetApplicantRequest
	(*GetApplicantResponse)(nil),            // 4: tracker.v1.GetApplicantResponse
	(*ListApplicantsRequest)(nil),           // 5: tracker.v1.ListApplicantsRequest
	(*ListApplicantsResponse)(nil),          // 6: tracker.v1.ListApplicantsResponse
	(*Evaluation)(nil),                      // 7: tracker.v1.Evaluation
	(*Course)(nil),                          // 8: tracker.v1.Course
	(*ExtractionWarning)(nil),               // 9: tracker.v1.ExtractionWarning
	(*RunExtractionRequest)(nil),            // 10: tracker.v1.RunExtractionRequest
	(*RunExtractionResponse)(nil),           // 11: tracker.v1.RunExtractionResponse
	(*GetEvaluationRequest)(nil),            // 12: tracker.v1.GetEvaluationRequest
	(*GetEvaluationResponse)(nil),           // 13: tracker.v1.GetEvaluationResponse
	(*ListEvaluationsRequest)(nil),          // 14: tracker.v1.ListEvaluationsRequest
	(*ListEvaluationsResponse)(nil),         // 15: tracker.v1.ListEvaluationsResponse
	(*SetCourseIncludedRequest)(nil),        // 16: tracker.v1.SetCourseIncludedRequest
	(*SetCourseIncludedResponse)(nil),       // 17: tracker.v1.SetCourseIncludedResponse
	(*UpdateCourseRequest)(nil),             // 18: tracker.v1.UpdateCourseRequest
	(*UpdateCourseResponse)(nil),            // 19: tracker.v1.UpdateCourseResponse
	(*RecomputeGPARequest)(nil),             // 20: tracker.v1.RecomputeGPARequest
	(*RecomputeGPAResponse)(nil),            // 21: tracker.v1.RecomputeGPAResponse
	(*ExtractJob)(nil),                      // 22: tracker.v1.ExtractJob
	(*ListExtractionJobsRequest)(nil),       // 23: tracker.v1.ListExtractionJobsRequest
	(*ListExtractionJobsResponse)(nil),      // 24: tracker.v1.ListExtractionJobsResponse
	(*University)(nil),                      // 25: tracker.v1.University
	(*AddUniversityRequest)(nil),            // 26: tracker.v1.AddUniversityRequest
	(*AddUniversityResponse)(nil),           // 27: tracker.v1.AddUniversityResponse
	(*ListUniversitiesRequest)(nil),         // 28: tracker.v1.ListUniversitiesRequest
	(*ListUniversitiesResponse)(nil),        // 29: tracker.v1.ListUniversitiesResponse
	(*UpcomingDeadlinesRequest)(nil),        // 30: tracker.v1.UpcomingDeadlinesRequest
	(*UpcomingDeadlinesResponse)(nil),       // 31: tracker.v1.UpcomingDeadlinesResponse
	(*UpdateApplicationStatusRequest)(nil),  // 32: tracker.v1.UpdateApplicationStatusRequest
	(*UpdateApplicationStatusResponse)(nil), // 33: tracker.v1.UpdateApplicationStatusResponse
	(*ExportEvaluationRequest)(nil),         // 34: tracker.v1.ExportEvaluationRequest
	(*ExportEvaluationResponse)(nil),        // 35: tracker.v1.ExportEvaluationResponse
	(*ExportUniversitiesRequest)(nil),       // 36: tracker.v1.ExportUniversitiesRequest
	(*ExportUniversitiesResponse)(nil),      // 37: tracker.v1.ExportUniversitiesResponse
}
var file_tracker_v1_tracker_proto_depIdxs = []int32{
	0,  // 0: tracker.v1.CreateApplicantResponse.applicant:type_name -> tracker.v1.Applicant
	0,  // 1: tracker.v1.GetApplicantResponse.applicant:type_name -> tracker.v1.Applicant
	0,  // 2: tracker.v1.ListApplicantsResponse.applicants:type_name -> tracker.v1.Applicant
	7,  // 3: tracker.v1.RunExtractionResponse.evaluation:type_name -> tracker.v1.Evaluation
	8,  // 4: tracker.v1.RunExtractionResponse.courses:type_name -> tracker.v1.Course
	9,  // 5: tracker.v1.RunExtractionResponse.warnings:type_name -> tracker.v1.ExtractionWarning
	7,  // 6: tracker.v1.GetEvaluationResponse.evaluation:type_name -> tracker.v1.Evaluation
	8,  // 7: tracker.v1.GetEvaluationResponse.courses:type_name -> tracker.v1.Course
	7,  // 8: tracker.v1.ListEvaluationsResponse.evaluations:type_name -> tracker.v1.Evaluation
	7,  // 9: tracker.v1.SetCourseIncludedResponse.evaluation:type_name -> tracker.v1.Evaluation
	7,  // 10: tracker.v1.UpdateCourseResponse.evaluation:type_name -> tracker.v1.Evaluation
	8,  // 11: tracker.v1.UpdateCourseResponse.course:type_name -> tracker.v1.Course
	7,  // 12: tracker.v1.RecomputeGPAResponse.evaluation:type_name -> tracker.v1.Evaluation
	22, // 13: tracker.v1.ListExtractionJobsResponse.jobs:type_name -> tracker.v1.ExtractJob
	25, // 14: tracker.v1.AddUniversityResponse.university:type_name -> tracker.v1.University
	25, // 15: tracker.v1.ListUniversitiesResponse.universities:type_name -> tracker.v1.University
	25, // 16: tracker.v1.UpcomingDeadlinesResponse.universities:type_name -> tracker.v1.University
	25, // 17: tracker.v1.UpdateApplicationStatusResponse.university:type_name -> tracker.v1.University
	1,  // 18: tracker.v1.ApplicantsService.CreateApplicant:input_type -> tracker.v1.CreateApplicantRequest
	3,  // 19: tracker.v1.ApplicantsService.GetApplicant:input_type -> tracker.v1.GetApplicantRequest
	5,  // 20: tracker.v1.ApplicantsService.ListApplicants:input_type -> tracker.v1.ListApplicantsRequest
	10, // 21: tracker.v1.EvaluationsService.RunExtraction:input_type -> tracker.v1.RunExtractionRequest
	12, // 22: tracker.v1.EvaluationsService.GetEvaluation:input_type -> tracker.v1.GetEvaluationRequest
	14, // 23: tracker.v1.EvaluationsService.ListEvaluations:input_type -> tracker.v1.ListEvaluationsRequest
	16, // 24: tracker.v1.EvaluationsService.SetCourseIncluded:input_type -> tracker.v1.SetCourseIncludedRequest
	18, // 25: tracker.v1.EvaluationsService.UpdateCourse:input_type -> tracker.v1.UpdateCourseRequest
	20, // 26: tracker.v1.EvaluationsService.RecomputeGPA:input_type -> tracker.v1.RecomputeGPARequest
	23, // 27: tracker.v1.EvaluationsService.ListExtractionJobs:input_type -> tracker.v1.ListExtractionJobsRequest
	26, // 28: tracker.v1.DeadlinesService.AddUniversity:input_type -> tracker.v1.AddUniversityRequest
	28, // 29: tracker.v1.DeadlinesService.ListUniversities:input_type -> tracker.v1.ListUniversitiesRequest
	30, // 30: tracker.v1.DeadlinesService.UpcomingDeadlines:input_type -> tracker.v1.UpcomingDeadlinesRequest
	32, // 31: tracker.v1.DeadlinesService.UpdateApplicationStatus:input_type -> tracker.v1.UpdateApplicationStatusRequest
	34, // 32: tracker.v1.ExportService.ExportEvaluation:input_type -> tracker.v1.ExportEvaluationRequest
	36, // 33: tracker.v1.ExportService.ExportUniversities:input_type -> tracker.v1.ExportUniversitiesRequest
	2,  // 34: tracker.v1.ApplicantsService.CreateApplicant:output_type -> tracker.v1.CreateApplicantResponse
	4,  // 35: tracker.v1.ApplicantsService.GetApplicant:output_type -> tracker.v1.GetApplicantResponse
	6,  // 36: tracker.v1.ApplicantsService.ListApplicants:output_type -> tracker.v1.ListApplicantsResponse
	11, // 37: tracker.v1.EvaluationsService.RunExtraction:output_type -> tracker.v1.RunExtractionResponse
	13, // 38: tracker.v1.EvaluationsService.GetEvaluation:output_type -> tracker.v1.GetEvaluationResponse
	15, // 39: tracker.v1.EvaluationsService.ListEvaluations:output_type -> tracker.v1.ListEvaluationsResponse
	17, // 40: tracker.v1.EvaluationsService.SetCourseIncluded:output_type -> tracker.v1.SetCourseIncludedResponse
	19, // 41: tracker.v1.EvaluationsService.UpdateCourse:output_type -> tracker.v1.UpdateCourseResponse
	21, // 42: tracker.v1.EvaluationsService.RecomputeGPA:output_type -> tracker.v1.RecomputeGPAResponse
	24, // 43: tracker.v1.EvaluationsService.ListExtractionJobs:output_type -> tracker.v1.ListExtractionJobsResponse
	27, // 44: tracker.v1.DeadlinesService.AddUniversity:output_type -> tracker.v1.AddUniversityResponse
	29, // 45: tracker.v1.DeadlinesService.ListUniversities:output_type -> tracker.v1.ListUniversitiesResponse
	31, // 46: tracker.v1.DeadlinesService.UpcomingDeadlines:output_type -> tracker.v1.UpcomingDeadlinesResponse
	33, // 47: tracker.v1.DeadlinesService.UpdateApplicationStatus:output_type -> tracker.v1.UpdateApplicationStatusResponse
	35, // 48: tracker.v1.ExportService.ExportEvaluation:output_type -> tracker.v1.ExportEvaluationResponse
	37, // 49: tracker.v1.ExportService.ExportUniversities:output_type -> tracker.v1.ExportUniversitiesResponse
	34, // [34:50] is the sub-list for method output_type
	18, // [18:34] is the sub-list for method input_type
	18, // [18:18] is the sub-list for extension type_name
	18, // [18:18] is the sub-list for extension extendee
	0,  // [0:18] is the sub-list for field type_name
}

func init() { file_tracker_v1_tracker_proto_init() }
func file_tracker_v1_tracker_proto_init() {
	if File_tracker_v1_tracker_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_tracker_v1_tracker_proto_rawDesc), len(file_tracker_v1_tracker_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   38,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_tracker_v1_tracker_proto_goTypes,
		DependencyIndexes: file_tracker_v1_tracker_proto_depIdxs,
		MessageInfos:      file_tracker_v1_tracker_proto_msgTypes,
	}.Build()
	File_tracker_v1_tracker_proto = out.File
	file_tracker_v1_tracker_proto_goTypes = nil
	file_tracker_v1_tracker_proto_depIdxs = nil
}
