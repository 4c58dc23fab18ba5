// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: ippt/v1/ippt.proto

package ipptv1

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

// One reconciled soldier row from a scoresheet.
type SoldierRecord struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	ScoresheetId  string                 `protobuf:"bytes,2,opt,name=scoresheet_id,json=scoresheetId,proto3" json:"scoresheet_id,omitempty"`
	Name          string                 `protobuf:"bytes,3,opt,name=name,proto3" json:"name,omitempty"`
	SitUpReps     int32                  `protobuf:"varint,4,opt,name=sit_up_reps,json=sitUpReps,proto3" json:"sit_up_reps,omitempty"`
	PushUpReps    int32                  `protobuf:"varint,5,opt,name=push_up_reps,json=pushUpReps,proto3" json:"push_up_reps,omitempty"`
	RunTime       string                 `protobuf:"bytes,6,opt,name=run_time,json=runTime,proto3" json:"run_time,omitempty"` // "M:SS", empty when absent
	Confidence    float32                `protobuf:"fixed32,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SoldierRecord) Reset() {
	*x = SoldierRecord{}
	mi := &file_ippt_v1_ippt_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SoldierRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SoldierRecord) ProtoMessage() {}

func (x *SoldierRecord) ProtoReflect() protoreflect.Message {
	mi := &file_ippt_v1_ippt_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SoldierRecord.ProtoReflect.Descriptor instead.
func (*SoldierRecord) Descriptor() ([]byte, []int) {
	return file_ippt_v1_ippt_proto_rawDescGZIP(), []int{0}
}

func (x *SoldierRecord) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *SoldierRecord) GetScoresheetId() string {
	if x != nil {
		return x.ScoresheetId
	}
	return ""
}

func (x *SoldierRecord) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *SoldierRecord) GetSitUpReps() int32 {
	if x != nil {
		return x.SitUpReps
	}
	return 0
}

func (x *SoldierRecord) GetPushUpReps() int32 {
	if x != nil {
		return x.PushUpReps
	}
	return 0
}

func (x *SoldierRecord) GetRunTime() string {
	if x != nil {
		return x.RunTime
	}
	return ""
}

func (x *SoldierRecord) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *SoldierRecord) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type UploadScoresheetRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadScoresheetRequest) Reset() {
	*x = UploadScoresheetRequest{}
	mi := &file_ippt_v1_ippt_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadScoresheetRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadScoresheetRequest) ProtoMessage() {}

func (x *UploadScoresheetRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ippt_v1_ippt_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadScoresheetRequest.ProtoReflect.Descriptor instead.
func (*UploadScoresheetRequest) Descriptor() ([]byte, []int) {
	return file_ippt_v1_ippt_proto_rawDescGZIP(), []int{1}
}

func (x *UploadScoresheetRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type UploadScoresheetResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ScoresheetId   string                 `protobuf:"bytes,1,opt,name=scoresheet_id,json=scoresheetId,proto3" json:"scoresheet_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC3339
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	JobId          string                 `protobuf:"bytes,7,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	NeedsReview    bool                   `protobuf:"varint,8,opt,name=needs_review,json=needsReview,proto3" json:"needs_review,omitempty"`
	Records        []*SoldierRecord       `protobuf:"bytes,9,rep,name=records,proto3" json:"records,omitempty"`
	Error          string                 `protobuf:"bytes,10,opt,name=error,proto3" json:"error,omitempty"` // processing error for this sheet, empty on success
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *UploadScoresheetResponse) Reset() {
	*x = UploadScoresheetResponse{}
	mi := &file_ippt_v1_ippt_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadScoresheetResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadScoresheetResponse) ProtoMessage() {}

func (x *UploadScoresheetResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ippt_v1_ippt_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadScoresheetResponse.ProtoReflect.Descriptor instead.
func (*UploadScoresheetResponse) Descriptor() ([]byte, []int) {
	return file_ippt_v1_ippt_proto_rawDescGZIP(), []int{2}
}

func (x *UploadScoresheetResponse) GetScoresheetId() string {
	if x != nil {
		return x.ScoresheetId
	}
	return ""
}

func (x *UploadScoresheetResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *UploadScoresheetResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *UploadScoresheetResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *UploadScoresheetResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *UploadScoresheetResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *UploadScoresheetResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *UploadScoresheetResponse) GetNeedsReview() bool {
	if x != nil {
		return x.NeedsReview
	}
	return false
}

func (x *UploadScoresheetResponse) GetRecords() []*SoldierRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

func (x *UploadScoresheetResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type UploadDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDirectoryRequest) Reset() {
	*x = UploadDirectoryRequest{}
	mi := &file_ippt_v1_ippt_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDirectoryRequest) ProtoMessage() {}

func (x *UploadDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ippt_v1_ippt_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDirectoryRequest.ProtoReflect.Descriptor instead.
func (*UploadDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_ippt_v1_ippt_proto_rawDescGZIP(), []int{3}
}

func (x *UploadDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *UploadDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type UploadDirectoryResponse struct {
	state         protoimpl.MessageState      `protogen:"open.v1"`
	Scanned       uint32                      `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                      `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                      `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                      `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                      `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*UploadScoresheetResponse `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDirectoryResponse) Reset() {
	*x = UploadDirectoryResponse{}
	mi := &file_ippt_v1_ippt_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDirectoryResponse) ProtoMessage() {}

func (x *UploadDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ippt_v1_ippt_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDirectoryResponse.ProtoReflect.Descriptor instead.
func (*UploadDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_ippt_v1_ippt_proto_rawDescGZIP(), []int{4}
}

func (x *UploadDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *UploadDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *UploadDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *UploadDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *UploadDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *UploadDirectoryResponse) GetResults() []*UploadScoresheetResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ListResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ScoresheetId  string                 `protobuf:"bytes,1,opt,name=scoresheet_id,json=scoresheetId,proto3" json:"scoresheet_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsRequest) Reset() {
	*x = ListResultsRequest{}
	mi := &file_ippt_v1_ippt_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsRequest) ProtoMessage() {}

func (x *ListResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ippt_v1_ippt_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsRequest.ProtoReflect.Descriptor instead.
func (*ListResultsRequest) Descriptor() ([]byte, []int) {
	return file_ippt_v1_ippt_proto_rawDescGZIP(), []int{5}
}

func (x *ListResultsRequest) GetScoresheetId() string {
	if x != nil {
		return x.ScoresheetId
	}
	return ""
}

type ListResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Records       []*SoldierRecord       `protobuf:"bytes,1,rep,name=records,proto3" json:"records,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListResultsResponse) Reset() {
	*x = ListResultsResponse{}
	mi := &file_ippt_v1_ippt_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListResultsResponse) ProtoMessage() {}

func (x *ListResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ippt_v1_ippt_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListResultsResponse.ProtoReflect.Descriptor instead.
func (*ListResultsResponse) Descriptor() ([]byte, []int) {
	return file_ippt_v1_ippt_proto_rawDescGZIP(), []int{6}
}

func (x *ListResultsResponse) GetRecords() []*SoldierRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

type ExportResultsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // YYYY-MM-DD, optional
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // YYYY-MM-DD, optional
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsRequest) Reset() {
	*x = ExportResultsRequest{}
	mi := &file_ippt_v1_ippt_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsRequest) ProtoMessage() {}

func (x *ExportResultsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_ippt_v1_ippt_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsRequest.ProtoReflect.Descriptor instead.
func (*ExportResultsRequest) Descriptor() ([]byte, []int) {
	return file_ippt_v1_ippt_proto_rawDescGZIP(), []int{7}
}

func (x *ExportResultsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportResultsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportResultsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportResultsResponse) Reset() {
	*x = ExportResultsResponse{}
	mi := &file_ippt_v1_ippt_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportResultsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportResultsResponse) ProtoMessage() {}

func (x *ExportResultsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_ippt_v1_ippt_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportResultsResponse.ProtoReflect.Descriptor instead.
func (*ExportResultsResponse) Descriptor() ([]byte, []int) {
	return file_ippt_v1_ippt_proto_rawDescGZIP(), []int{8}
}

func (x *ExportResultsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_ippt_v1_ippt_proto protoreflect.FileDescriptor

const file_ippt_v1_ippt_proto_rawDesc = "" +
	"\n" +
	"\x12ippt/v1/ippt.proto\x12\aippt.v1\"\xf4\x01\n" +
	"\rSoldierRecord\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12#\n" +
	"\rscoresheet_id\x18\x02 \x01(\tR\fscoresheetId\x12\x12\n" +
	"\x04name\x18\x03 \x01(\tR\x04name\x12\x1e\n" +
	"\vsit_up_reps\x18\x04 \x01(\x05R\tsitUpReps\x12 \n" +
	"\fpush_up_reps\x18\x05 \x01(\x05R\n" +
	"pushUpReps\x12\x19\n" +
	"\brun_time\x18\x06 \x01(\tR\arunTime\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x02R\n" +
	"confidence\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAt\"-\n" +
	"\x17UploadScoresheetRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xec\x02\n" +
	"\x18UploadScoresheetResponse\x12#\n" +
	"\rscoresheet_id\x18\x01 \x01(\tR\fscoresheetId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x15\n" +
	"\x06job_id\x18\a \x01(\tR\x05jobId\x12!\n" +
	"\fneeds_review\x18\b \x01(\bR\vneedsReview\x120\n" +
	"\arecords\x18\t \x03(\v2\x16.ippt.v1.SoldierRecordR\arecords\x12\x14\n" +
	"\x05error\x18\n" +
	" \x01(\tR\x05error\"V\n" +
	"\x16UploadDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xe4\x01\n" +
	"\x17UploadDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x12;\n" +
	"\aresults\x18\x06 \x03(\v2!.ippt.v1.UploadScoresheetResponseR\aresults\"9\n" +
	"\x12ListResultsRequest\x12#\n" +
	"\rscoresheet_id\x18\x01 \x01(\tR\fscoresheetId\"G\n" +
	"\x13ListResultsResponse\x120\n" +
	"\arecords\x18\x01 \x03(\v2\x16.ippt.v1.SoldierRecordR\arecords\"L\n" +
	"\x14ExportResultsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"+\n" +
	"\x15ExportResultsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xdc\x02\n" +
	"\x11ScoresheetService\x12W\n" +
	"\x10UploadScoresheet\x12 .ippt.v1.UploadScoresheetRequest\x1a!.ippt.v1.UploadScoresheetResponse\x12T\n" +
	"\x0fUploadDirectory\x12\x1f.ippt.v1.UploadDirectoryRequest\x1a .ippt.v1.UploadDirectoryResponse\x12H\n" +
	"\vListResults\x12\x1b.ippt.v1.ListResultsRequest\x1a\x1c.ippt.v1.ListResultsResponse\x12N\n" +
	"\rExportResults\x12\x1d.ippt.v1.ExportResultsRequest\x1a\x1e.ippt.v1.ExportResultsResponseB:Z8github.com/kyletan/ippt-tracker/gen/proto/ippt/v1;ipptv1b\x06proto3"

var (
	file_ippt_v1_ippt_proto_rawDescOnce sync.Once
	file_ippt_v1_ippt_proto_rawDescData []byte
)

func file_ippt_v1_ippt_proto_rawDescGZIP() []byte {
	file_ippt_v1_ippt_proto_rawDescOnce.Do(func() {
		file_ippt_v1_ippt_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_ippt_v1_ippt_proto_rawDesc), len(file_ippt_v1_ippt_proto_rawDesc)))
	})
	return file_ippt_v1_ippt_proto_rawDescData
}

var file_ippt_v1_ippt_proto_msgTypes = make([]protoimpl.MessageInfo, 9)
var file_ippt_v1_ippt_proto_goTypes = []any{
	(*SoldierRecord)(nil),            // 0: ippt.v1.SoldierRecord
	(*UploadScoresheetRequest)(nil),  // 1: ippt.v1.UploadScoresheetRequest
	(*UploadScoresheetResponse)(nil), // 2: ippt.v1.UploadScoresheetResponse
	(*UploadDirectoryRequest)(nil),   // 3: ippt.v1.UploadDirectoryRequest
	(*UploadDirectoryResponse)(nil),  // 4: ippt.v1.UploadDirectoryResponse
	(*ListResultsRequest)(nil),       // 5: ippt.v1.ListResultsRequest
	(*ListResultsResponse)(nil),      // 6: ippt.v1.ListResultsResponse
	(*ExportResultsRequest)(nil),     // 7: ippt.v1.ExportResultsRequest
	(*ExportResultsResponse)(nil),    // 8: ippt.v1.ExportResultsResponse
}
var file_ippt_v1_ippt_proto_depIdxs = []int32{
	0, // 0: ippt.v1.UploadScoresheetResponse.records:type_name -> ippt.v1.SoldierRecord
	2, // 1: ippt.v1.UploadDirectoryResponse.results:type_name -> ippt.v1.UploadScoresheetResponse
	0, // 2: ippt.v1.ListResultsResponse.records:type_name -> ippt.v1.SoldierRecord
	1, // 3: ippt.v1.ScoresheetService.UploadScoresheet:input_type -> ippt.v1.UploadScoresheetRequest
	3, // 4: ippt.v1.ScoresheetService.UploadDirectory:input_type -> ippt.v1.UploadDirectoryRequest
	5, // 5: ippt.v1.ScoresheetService.ListResults:input_type -> ippt.v1.ListResultsRequest
	7, // 6: ippt.v1.ScoresheetService.ExportResults:input_type -> ippt.v1.ExportResultsRequest
	2, // 7: ippt.v1.ScoresheetService.UploadScoresheet:output_type -> ippt.v1.UploadScoresheetResponse
	4, // 8: ippt.v1.ScoresheetService.UploadDirectory:output_type -> ippt.v1.UploadDirectoryResponse
	6, // 9: ippt.v1.ScoresheetService.ListResults:output_type -> ippt.v1.ListResultsResponse
	8, // 10: ippt.v1.ScoresheetService.ExportResults:output_type -> ippt.v1.ExportResultsResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_ippt_v1_ippt_proto_init() }
func file_ippt_v1_ippt_proto_init() {
	if File_ippt_v1_ippt_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_ippt_v1_ippt_proto_rawDesc), len(file_ippt_v1_ippt_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   9,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_ippt_v1_ippt_proto_goTypes,
		DependencyIndexes: file_ippt_v1_ippt_proto_depIdxs,
		MessageInfos:      file_ippt_v1_ippt_proto_msgTypes,
	}.Build()
	File_ippt_v1_ippt_proto = out.File
	file_ippt_v1_ippt_proto_goTypes = nil
	file_ippt_v1_ippt_proto_depIdxs = nil
}
