// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.11
// 	protoc        (unknown)
// source: agent.proto

package proto

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

type TaskType int32

const (
	TaskType_TASK_TYPE_UNSPECIFIED    TaskType = 0
	TaskType_TASK_TYPE_SHELL          TaskType = 1
	TaskType_TASK_TYPE_POWERSHELL     TaskType = 2
	TaskType_TASK_TYPE_READ_FILE      TaskType = 3
	TaskType_TASK_TYPE_WRITE_FILE     TaskType = 4
	TaskType_TASK_TYPE_LIST_DIRECTORY TaskType = 5
	TaskType_TASK_TYPE_DOTNET_CODE    TaskType = 6
)

// Enum value maps for TaskType.
var (
	TaskType_name = map[int32]string{
		0: "TASK_TYPE_UNSPECIFIED",
		1: "TASK_TYPE_SHELL",
		2: "TASK_TYPE_POWERSHELL",
		3: "TASK_TYPE_READ_FILE",
		4: "TASK_TYPE_WRITE_FILE",
		5: "TASK_TYPE_LIST_DIRECTORY",
		6: "TASK_TYPE_DOTNET_CODE",
	}
	TaskType_value = map[string]int32{
		"TASK_TYPE_UNSPECIFIED":    0,
		"TASK_TYPE_SHELL":          1,
		"TASK_TYPE_POWERSHELL":     2,
		"TASK_TYPE_READ_FILE":      3,
		"TASK_TYPE_WRITE_FILE":     4,
		"TASK_TYPE_LIST_DIRECTORY": 5,
		"TASK_TYPE_DOTNET_CODE":    6,
	}
)

func (x TaskType) Enum() *TaskType {
	p := new(TaskType)
	*p = x
	return p
}

func (x TaskType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (TaskType) Descriptor() protoreflect.EnumDescriptor {
	return file_agent_proto_enumTypes[0].Descriptor()
}

func (TaskType) Type() protoreflect.EnumType {
	return &file_agent_proto_enumTypes[0]
}

func (x TaskType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use TaskType.Descriptor instead.
func (TaskType) EnumDescriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{0}
}

type ErrorCode int32

const (
	ErrorCode_ERROR_CODE_NONE               ErrorCode = 0
	ErrorCode_ERROR_CODE_TIMEOUT            ErrorCode = 1
	ErrorCode_ERROR_CODE_ELEVATION_REQUIRED ErrorCode = 2
	ErrorCode_ERROR_CODE_NOT_FOUND          ErrorCode = 3
	ErrorCode_ERROR_CODE_PERMISSION_DENIED  ErrorCode = 4
	ErrorCode_ERROR_CODE_INTERNAL           ErrorCode = 5
	ErrorCode_ERROR_CODE_CANCELLED          ErrorCode = 6
)

// Enum value maps for ErrorCode.
var (
	ErrorCode_name = map[int32]string{
		0: "ERROR_CODE_NONE",
		1: "ERROR_CODE_TIMEOUT",
		2: "ERROR_CODE_ELEVATION_REQUIRED",
		3: "ERROR_CODE_NOT_FOUND",
		4: "ERROR_CODE_PERMISSION_DENIED",
		5: "ERROR_CODE_INTERNAL",
		6: "ERROR_CODE_CANCELLED",
	}
	ErrorCode_value = map[string]int32{
		"ERROR_CODE_NONE":               0,
		"ERROR_CODE_TIMEOUT":            1,
		"ERROR_CODE_ELEVATION_REQUIRED": 2,
		"ERROR_CODE_NOT_FOUND":          3,
		"ERROR_CODE_PERMISSION_DENIED":  4,
		"ERROR_CODE_INTERNAL":           5,
		"ERROR_CODE_CANCELLED":          6,
	}
)

func (x ErrorCode) Enum() *ErrorCode {
	p := new(ErrorCode)
	*p = x
	return p
}

func (x ErrorCode) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (ErrorCode) Descriptor() protoreflect.EnumDescriptor {
	return file_agent_proto_enumTypes[1].Descriptor()
}

func (ErrorCode) Type() protoreflect.EnumType {
	return &file_agent_proto_enumTypes[1]
}

func (x ErrorCode) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use ErrorCode.Descriptor instead.
func (ErrorCode) EnumDescriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{1}
}

type OutputType int32

const (
	OutputType_OUTPUT_TYPE_UNSPECIFIED OutputType = 0
	OutputType_OUTPUT_TYPE_STDOUT      OutputType = 1
	OutputType_OUTPUT_TYPE_STDERR      OutputType = 2
	OutputType_OUTPUT_TYPE_STATUS      OutputType = 3
	OutputType_OUTPUT_TYPE_ERROR       OutputType = 4
)

// Enum value maps for OutputType.
var (
	OutputType_name = map[int32]string{
		0: "OUTPUT_TYPE_UNSPECIFIED",
		1: "OUTPUT_TYPE_STDOUT",
		2: "OUTPUT_TYPE_STDERR",
		3: "OUTPUT_TYPE_STATUS",
		4: "OUTPUT_TYPE_ERROR",
	}
	OutputType_value = map[string]int32{
		"OUTPUT_TYPE_UNSPECIFIED": 0,
		"OUTPUT_TYPE_STDOUT":      1,
		"OUTPUT_TYPE_STDERR":      2,
		"OUTPUT_TYPE_STATUS":      3,
		"OUTPUT_TYPE_ERROR":       4,
	}
)

func (x OutputType) Enum() *OutputType {
	p := new(OutputType)
	*p = x
	return p
}

func (x OutputType) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (OutputType) Descriptor() protoreflect.EnumDescriptor {
	return file_agent_proto_enumTypes[2].Descriptor()
}

func (OutputType) Type() protoreflect.EnumType {
	return &file_agent_proto_enumTypes[2]
}

func (x OutputType) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use OutputType.Descriptor instead.
func (OutputType) EnumDescriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{2}
}

type TaskRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	TaskId           string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"` // uuid assigned by the orchestrator
	Type             TaskType               `protobuf:"varint,2,opt,name=type,proto3,enum=funnel.agent.v1.TaskType" json:"type,omitempty"`
	Command          string                 `protobuf:"bytes,3,opt,name=command,proto3" json:"command,omitempty"`
	TimeoutSeconds   int32                  `protobuf:"varint,4,opt,name=timeout_seconds,json=timeoutSeconds,proto3" json:"timeout_seconds,omitempty"`
	RequireElevation bool                   `protobuf:"varint,5,opt,name=require_elevation,json=requireElevation,proto3" json:"require_elevation,omitempty"`
	WorkingDirectory string                 `protobuf:"bytes,6,opt,name=working_directory,json=workingDirectory,proto3" json:"working_directory,omitempty"`
	Environment      map[string]string      `protobuf:"bytes,7,rep,name=environment,proto3" json:"environment,omitempty" protobuf_key:"bytes,1,opt,name=key" protobuf_val:"bytes,2,opt,name=value"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *TaskRequest) Reset() {
	*x = TaskRequest{}
	mi := &file_agent_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskRequest) ProtoMessage() {}

func (x *TaskRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskRequest.ProtoReflect.Descriptor instead.
func (*TaskRequest) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{0}
}

func (x *TaskRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *TaskRequest) GetType() TaskType {
	if x != nil {
		return x.Type
	}
	return TaskType_TASK_TYPE_UNSPECIFIED
}

func (x *TaskRequest) GetCommand() string {
	if x != nil {
		return x.Command
	}
	return ""
}

func (x *TaskRequest) GetTimeoutSeconds() int32 {
	if x != nil {
		return x.TimeoutSeconds
	}
	return 0
}

func (x *TaskRequest) GetRequireElevation() bool {
	if x != nil {
		return x.RequireElevation
	}
	return false
}

func (x *TaskRequest) GetWorkingDirectory() string {
	if x != nil {
		return x.WorkingDirectory
	}
	return ""
}

func (x *TaskRequest) GetEnvironment() map[string]string {
	if x != nil {
		return x.Environment
	}
	return nil
}

type TaskResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Success       bool                   `protobuf:"varint,2,opt,name=success,proto3" json:"success,omitempty"`
	Stdout        string                 `protobuf:"bytes,3,opt,name=stdout,proto3" json:"stdout,omitempty"`
	Stderr        string                 `protobuf:"bytes,4,opt,name=stderr,proto3" json:"stderr,omitempty"`
	ExitCode      int32                  `protobuf:"varint,5,opt,name=exit_code,json=exitCode,proto3" json:"exit_code,omitempty"`
	ErrorCode     ErrorCode              `protobuf:"varint,6,opt,name=error_code,json=errorCode,proto3,enum=funnel.agent.v1.ErrorCode" json:"error_code,omitempty"`
	DurationMs    int64                  `protobuf:"varint,7,opt,name=duration_ms,json=durationMs,proto3" json:"duration_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskResponse) Reset() {
	*x = TaskResponse{}
	mi := &file_agent_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskResponse) ProtoMessage() {}

func (x *TaskResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskResponse.ProtoReflect.Descriptor instead.
func (*TaskResponse) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{1}
}

func (x *TaskResponse) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *TaskResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *TaskResponse) GetStdout() string {
	if x != nil {
		return x.Stdout
	}
	return ""
}

func (x *TaskResponse) GetStderr() string {
	if x != nil {
		return x.Stderr
	}
	return ""
}

func (x *TaskResponse) GetExitCode() int32 {
	if x != nil {
		return x.ExitCode
	}
	return 0
}

func (x *TaskResponse) GetErrorCode() ErrorCode {
	if x != nil {
		return x.ErrorCode
	}
	return ErrorCode_ERROR_CODE_NONE
}

func (x *TaskResponse) GetDurationMs() int64 {
	if x != nil {
		return x.DurationMs
	}
	return 0
}

type TaskOutput struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	OutputType    OutputType             `protobuf:"varint,2,opt,name=output_type,json=outputType,proto3,enum=funnel.agent.v1.OutputType" json:"output_type,omitempty"`
	Content       string                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	TimestampMs   int64                  `protobuf:"varint,4,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskOutput) Reset() {
	*x = TaskOutput{}
	mi := &file_agent_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskOutput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskOutput) ProtoMessage() {}

func (x *TaskOutput) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskOutput.ProtoReflect.Descriptor instead.
func (*TaskOutput) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{2}
}

func (x *TaskOutput) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *TaskOutput) GetOutputType() OutputType {
	if x != nil {
		return x.OutputType
	}
	return OutputType_OUTPUT_TYPE_UNSPECIFIED
}

func (x *TaskOutput) GetContent() string {
	if x != nil {
		return x.Content
	}
	return ""
}

func (x *TaskOutput) GetTimestampMs() int64 {
	if x != nil {
		return x.TimestampMs
	}
	return 0
}

type PingRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SenderId      string                 `protobuf:"bytes,1,opt,name=sender_id,json=senderId,proto3" json:"sender_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingRequest) Reset() {
	*x = PingRequest{}
	mi := &file_agent_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingRequest) ProtoMessage() {}

func (x *PingRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingRequest.ProtoReflect.Descriptor instead.
func (*PingRequest) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{3}
}

func (x *PingRequest) GetSenderId() string {
	if x != nil {
		return x.SenderId
	}
	return ""
}

type PingResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AgentId       string                 `protobuf:"bytes,1,opt,name=agent_id,json=agentId,proto3" json:"agent_id,omitempty"`
	Hostname      string                 `protobuf:"bytes,2,opt,name=hostname,proto3" json:"hostname,omitempty"`
	TimestampMs   int64                  `protobuf:"varint,3,opt,name=timestamp_ms,json=timestampMs,proto3" json:"timestamp_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PingResponse) Reset() {
	*x = PingResponse{}
	mi := &file_agent_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PingResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PingResponse) ProtoMessage() {}

func (x *PingResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PingResponse.ProtoReflect.Descriptor instead.
func (*PingResponse) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{4}
}

func (x *PingResponse) GetAgentId() string {
	if x != nil {
		return x.AgentId
	}
	return ""
}

func (x *PingResponse) GetHostname() string {
	if x != nil {
		return x.Hostname
	}
	return ""
}

func (x *PingResponse) GetTimestampMs() int64 {
	if x != nil {
		return x.TimestampMs
	}
	return 0
}

type TaskStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskStatusRequest) Reset() {
	*x = TaskStatusRequest{}
	mi := &file_agent_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskStatusRequest) ProtoMessage() {}

func (x *TaskStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskStatusRequest.ProtoReflect.Descriptor instead.
func (*TaskStatusRequest) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{5}
}

func (x *TaskStatusRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type TaskStatusResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	Running       bool                   `protobuf:"varint,2,opt,name=running,proto3" json:"running,omitempty"`
	ElapsedMs     int64                  `protobuf:"varint,3,opt,name=elapsed_ms,json=elapsedMs,proto3" json:"elapsed_ms,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *TaskStatusResponse) Reset() {
	*x = TaskStatusResponse{}
	mi := &file_agent_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *TaskStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*TaskStatusResponse) ProtoMessage() {}

func (x *TaskStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use TaskStatusResponse.ProtoReflect.Descriptor instead.
func (*TaskStatusResponse) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{6}
}

func (x *TaskStatusResponse) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

func (x *TaskStatusResponse) GetRunning() bool {
	if x != nil {
		return x.Running
	}
	return false
}

func (x *TaskStatusResponse) GetElapsedMs() int64 {
	if x != nil {
		return x.ElapsedMs
	}
	return 0
}

type CancelRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	TaskId        string                 `protobuf:"bytes,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelRequest) Reset() {
	*x = CancelRequest{}
	mi := &file_agent_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelRequest) ProtoMessage() {}

func (x *CancelRequest) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelRequest.ProtoReflect.Descriptor instead.
func (*CancelRequest) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{7}
}

func (x *CancelRequest) GetTaskId() string {
	if x != nil {
		return x.TaskId
	}
	return ""
}

type CancelResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Cancelled     bool                   `protobuf:"varint,1,opt,name=cancelled,proto3" json:"cancelled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CancelResponse) Reset() {
	*x = CancelResponse{}
	mi := &file_agent_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CancelResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CancelResponse) ProtoMessage() {}

func (x *CancelResponse) ProtoReflect() protoreflect.Message {
	mi := &file_agent_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CancelResponse.ProtoReflect.Descriptor instead.
func (*CancelResponse) Descriptor() ([]byte, []int) {
	return file_agent_proto_rawDescGZIP(), []int{8}
}

func (x *CancelResponse) GetCancelled() bool {
	if x != nil {
		return x.Cancelled
	}
	return false
}

var File_agent_proto protoreflect.FileDescriptor

const file_agent_proto_rawDesc = "" +
	"\n" +
	"\vagent.proto\x12\x0ffunnel.agent.v1\"\x83\x03\n" +
	"\vTaskRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12-\n" +
	"\x04type\x18\x02 \x01(\x0e2\x19.funnel.agent.v1.TaskTypeR\x04type\x12\x18\n" +
	"\acommand\x18\x03 \x01(\tR\acommand\x12'\n" +
	"\x0ftimeout_seconds\x18\x04 \x01(\x05R\x0etimeoutSeconds\x12+\n" +
	"\x11require_elevation\x18\x05 \x01(\bR\x10requireElevation\x12+\n" +
	"\x11working_directory\x18\x06 \x01(\tR\x10workingDirectory\x12O\n" +
	"\venvironment\x18\a \x03(\v2-.funnel.agent.v1.TaskRequest.EnvironmentEntryR\venvironment\x1a>\n" +
	"\x10EnvironmentEntry\x12\x10\n" +
	"\x03key\x18\x01 \x01(\tR\x03key\x12\x14\n" +
	"\x05value\x18\x02 \x01(\tR\x05value:\x028\x01\"\xea\x01\n" +
	"\fTaskResponse\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x18\n" +
	"\asuccess\x18\x02 \x01(\bR\asuccess\x12\x16\n" +
	"\x06stdout\x18\x03 \x01(\tR\x06stdout\x12\x16\n" +
	"\x06stderr\x18\x04 \x01(\tR\x06stderr\x12\x1b\n" +
	"\texit_code\x18\x05 \x01(\x05R\bexitCode\x129\n" +
	"\n" +
	"error_code\x18\x06 \x01(\x0e2\x1a.funnel.agent.v1.ErrorCodeR\terrorCode\x12\x1f\n" +
	"\vduration_ms\x18\a \x01(\x03R\n" +
	"durationMs\"\xa0\x01\n" +
	"\n" +
	"TaskOutput\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12<\n" +
	"\voutput_type\x18\x02 \x01(\x0e2\x1b.funnel.agent.v1.OutputTypeR\n" +
	"outputType\x12\x18\n" +
	"\acontent\x18\x03 \x01(\tR\acontent\x12!\n" +
	"\ftimestamp_ms\x18\x04 \x01(\x03R\vtimestampMs\"*\n" +
	"\vPingRequest\x12\x1b\n" +
	"\tsender_id\x18\x01 \x01(\tR\bsenderId\"h\n" +
	"\fPingResponse\x12\x19\n" +
	"\bagent_id\x18\x01 \x01(\tR\aagentId\x12\x1a\n" +
	"\bhostname\x18\x02 \x01(\tR\bhostname\x12!\n" +
	"\ftimestamp_ms\x18\x03 \x01(\x03R\vtimestampMs\",\n" +
	"\x11TaskStatusRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\"f\n" +
	"\x12TaskStatusResponse\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\x12\x18\n" +
	"\arunning\x18\x02 \x01(\bR\arunning\x12\x1d\n" +
	"\n" +
	"elapsed_ms\x18\x03 \x01(\x03R\telapsedMs\"(\n" +
	"\rCancelRequest\x12\x17\n" +
	"\atask_id\x18\x01 \x01(\tR\x06taskId\".\n" +
	"\x0eCancelResponse\x12\x1c\n" +
	"\tcancelled\x18\x01 \x01(\bR\tcancelled*\xc0\x01\n" +
	"\bTaskType\x12\x19\n" +
	"\x15TASK_TYPE_UNSPECIFIED\x10\x00\x12\x13\n" +
	"\x0fTASK_TYPE_SHELL\x10\x01\x12\x18\n" +
	"\x14TASK_TYPE_POWERSHELL\x10\x02\x12\x17\n" +
	"\x13TASK_TYPE_READ_FILE\x10\x03\x12\x18\n" +
	"\x14TASK_TYPE_WRITE_FILE\x10\x04\x12\x1c\n" +
	"\x18TASK_TYPE_LIST_DIRECTORY\x10\x05\x12\x19\n" +
	"\x15TASK_TYPE_DOTNET_CODE\x10\x06*\xca\x01\n" +
	"\tErrorCode\x12\x13\n" +
	"\x0fERROR_CODE_NONE\x10\x00\x12\x16\n" +
	"\x12ERROR_CODE_TIMEOUT\x10\x01\x12!\n" +
	"\x1dERROR_CODE_ELEVATION_REQUIRED\x10\x02\x12\x18\n" +
	"\x14ERROR_CODE_NOT_FOUND\x10\x03\x12 \n" +
	"\x1cERROR_CODE_PERMISSION_DENIED\x10\x04\x12\x17\n" +
	"\x13ERROR_CODE_INTERNAL\x10\x05\x12\x18\n" +
	"\x14ERROR_CODE_CANCELLED\x10\x06*\x88\x01\n" +
	"\n" +
	"OutputType\x12\x1b\n" +
	"\x17OUTPUT_TYPE_UNSPECIFIED\x10\x00\x12\x16\n" +
	"\x12OUTPUT_TYPE_STDOUT\x10\x01\x12\x16\n" +
	"\x12OUTPUT_TYPE_STDERR\x10\x02\x12\x16\n" +
	"\x12OUTPUT_TYPE_STATUS\x10\x03\x12\x15\n" +
	"\x11OUTPUT_TYPE_ERROR\x10\x042\x8d\x03\n" +
	"\fAgentService\x12F\n" +
	"\aExecute\x12\x1c.funnel.agent.v1.TaskRequest\x1a\x1d.funnel.agent.v1.TaskResponse\x12O\n" +
	"\x10ExecuteStreaming\x12\x1c.funnel.agent.v1.TaskRequest\x1a\x1b.funnel.agent.v1.TaskOutput0\x01\x12C\n" +
	"\x04Ping\x12\x1c.funnel.agent.v1.PingRequest\x1a\x1d.funnel.agent.v1.PingResponse\x12T\n" +
	"\tGetStatus\x12\".funnel.agent.v1.TaskStatusRequest\x1a#.funnel.agent.v1.TaskStatusResponse\x12I\n" +
	"\x06Cancel\x12\x1e.funnel.agent.v1.CancelRequest\x1a\x1f.funnel.agent.v1.CancelResponseB6Z\"github.com/funnel-ops/funnel/proto\xaa\x02\x0fFunnel.Agent.V1b\x06proto3"

var (
	file_agent_proto_rawDescOnce sync.Once
	file_agent_proto_rawDescData []byte
)

func file_agent_proto_rawDescGZIP() []byte {
	file_agent_proto_rawDescOnce.Do(func() {
		file_agent_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_agent_proto_rawDesc), len(file_agent_proto_rawDesc)))
	})
	return file_agent_proto_rawDescData
}

var file_agent_proto_enumTypes = make([]protoimpl.EnumInfo, 3)
var file_agent_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_agent_proto_goTypes = []any{
	(TaskType)(0),              // 0: funnel.agent.v1.TaskType
	(ErrorCode)(0),             // 1: funnel.agent.v1.ErrorCode
	(OutputType)(0),            // 2: funnel.agent.v1.OutputType
	(*TaskRequest)(nil),        // 3: funnel.agent.v1.TaskRequest
	(*TaskResponse)(nil),       // 4: funnel.agent.v1.TaskResponse
	(*TaskOutput)(nil),         // 5: funnel.agent.v1.TaskOutput
	(*PingRequest)(nil),        // 6: funnel.agent.v1.PingRequest
	(*PingResponse)(nil),       // 7: funnel.agent.v1.PingResponse
	(*TaskStatusRequest)(nil),  // 8: funnel.agent.v1.TaskStatusRequest
	(*TaskStatusResponse)(nil), // 9: funnel.agent.v1.TaskStatusResponse
	(*CancelRequest)(nil),      // 10: funnel.agent.v1.CancelRequest
	(*CancelResponse)(nil),     // 11: funnel.agent.v1.CancelResponse
	nil,                        // 12: funnel.agent.v1.TaskRequest.EnvironmentEntry
}
var file_agent_proto_depIdxs = []int32{
	0,  // 0: funnel.agent.v1.TaskRequest.type:type_name -> funnel.agent.v1.TaskType
	12, // 1: funnel.agent.v1.TaskRequest.environment:type_name -> funnel.agent.v1.TaskRequest.EnvironmentEntry
	1,  // 2: funnel.agent.v1.TaskResponse.error_code:type_name -> funnel.agent.v1.ErrorCode
	2,  // 3: funnel.agent.v1.TaskOutput.output_type:type_name -> funnel.agent.v1.OutputType
	3,  // 4: funnel.agent.v1.AgentService.Execute:input_type -> funnel.agent.v1.TaskRequest
	3,  // 5: funnel.agent.v1.AgentService.ExecuteStreaming:input_type -> funnel.agent.v1.TaskRequest
	6,  // 6: funnel.agent.v1.AgentService.Ping:input_type -> funnel.agent.v1.PingRequest
	8,  // 7: funnel.agent.v1.AgentService.GetStatus:input_type -> funnel.agent.v1.TaskStatusRequest
	10, // 8: funnel.agent.v1.AgentService.Cancel:input_type -> funnel.agent.v1.CancelRequest
	4,  // 9: funnel.agent.v1.AgentService.Execute:output_type -> funnel.agent.v1.TaskResponse
	5,  // 10: funnel.agent.v1.AgentService.ExecuteStreaming:output_type -> funnel.agent.v1.TaskOutput
	7,  // 11: funnel.agent.v1.AgentService.Ping:output_type -> funnel.agent.v1.PingResponse
	9,  // 12: funnel.agent.v1.AgentService.GetStatus:output_type -> funnel.agent.v1.TaskStatusResponse
	11, // 13: funnel.agent.v1.AgentService.Cancel:output_type -> funnel.agent.v1.CancelResponse
	9,  // [9:14] is the sub-list for method output_type
	4,  // [4:9] is the sub-list for method input_type
	4,  // [4:4] is the sub-list for extension type_name
	4,  // [4:4] is the sub-list for extension extendee
	0,  // [0:4] is the sub-list for field type_name
}

func init() { file_agent_proto_init() }
func file_agent_proto_init() {
	if File_agent_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_agent_proto_rawDesc), len(file_agent_proto_rawDesc)),
			NumEnums:      3,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_agent_proto_goTypes,
		DependencyIndexes: file_agent_proto_depIdxs,
		EnumInfos:         file_agent_proto_enumTypes,
		MessageInfos:      file_agent_proto_msgTypes,
	}.Build()
	File_agent_proto = out.File
	file_agent_proto_goTypes = nil
	file_agent_proto_depIdxs = nil
}
