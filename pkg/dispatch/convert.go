package dispatch

import (
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/funnel-ops/funnel/pkg/models"
	pb "github.com/funnel-ops/funnel/proto"
)

func taskTypeToProto(t models.TaskType) pb.TaskType {
	switch t {
	case models.TaskPowerShell:
		return pb.TaskType_TASK_TYPE_POWERSHELL
	case models.TaskReadFile:
		return pb.TaskType_TASK_TYPE_READ_FILE
	case models.TaskWriteFile:
		return pb.TaskType_TASK_TYPE_WRITE_FILE
	case models.TaskListDirectory:
		return pb.TaskType_TASK_TYPE_LIST_DIRECTORY
	case models.TaskDotnetCode:
		return pb.TaskType_TASK_TYPE_DOTNET_CODE
	default:
		return pb.TaskType_TASK_TYPE_SHELL
	}
}

func errorCodeFromProto(c pb.ErrorCode) models.TaskErrorCode {
	switch c {
	case pb.ErrorCode_ERROR_CODE_NONE:
		return models.TaskErrNone
	case pb.ErrorCode_ERROR_CODE_TIMEOUT:
		return models.TaskErrTimeout
	case pb.ErrorCode_ERROR_CODE_ELEVATION_REQUIRED:
		return models.TaskErrElevationRequired
	case pb.ErrorCode_ERROR_CODE_NOT_FOUND:
		return models.TaskErrNotFound
	case pb.ErrorCode_ERROR_CODE_PERMISSION_DENIED:
		return models.TaskErrPermissionDenied
	case pb.ErrorCode_ERROR_CODE_CANCELLED:
		return models.TaskErrCancelled
	default:
		return models.TaskErrInternal
	}
}

func outputTypeFromProto(t pb.OutputType) models.OutputType {
	switch t {
	case pb.OutputType_OUTPUT_TYPE_STDERR:
		return models.OutputStderr
	case pb.OutputType_OUTPUT_TYPE_STATUS:
		return models.OutputStatus
	case pb.OutputType_OUTPUT_TYPE_ERROR:
		return models.OutputError
	default:
		return models.OutputStdout
	}
}

// normalizeResponse converts the wire response, enforcing the invariant that
// ErrorCode is none exactly when Success is true.
func normalizeResponse(resp *pb.TaskResponse) *models.TaskResult {
	result := &models.TaskResult{
		Success:    resp.GetSuccess(),
		Stdout:     resp.GetStdout(),
		Stderr:     resp.GetStderr(),
		ExitCode:   int(resp.GetExitCode()),
		ErrorCode:  errorCodeFromProto(resp.GetErrorCode()),
		DurationMs: resp.GetDurationMs(),
		TaskID:     resp.GetTaskId(),
	}
	if result.Success {
		result.ErrorCode = models.TaskErrNone
	} else if result.ErrorCode == models.TaskErrNone {
		result.ErrorCode = models.TaskErrInternal
	}
	return result
}

// transportFailure renders a gRPC-level failure as a TaskResult so the OODA
// loop sees it like any other failed step.
func transportFailure(taskID string, err error) *models.TaskResult {
	return &models.TaskResult{
		Success:   false,
		Stderr:    err.Error(),
		ExitCode:  -1,
		ErrorCode: grpcErrorCode(err),
		TaskID:    taskID,
	}
}

// grpcErrorCode maps transport status codes onto the task error taxonomy.
func grpcErrorCode(err error) models.TaskErrorCode {
	st, ok := status.FromError(err)
	if !ok {
		return models.TaskErrGRPC
	}
	switch st.Code() {
	case codes.DeadlineExceeded:
		return models.TaskErrTimeout
	case codes.NotFound:
		return models.TaskErrNotFound
	case codes.PermissionDenied, codes.Unauthenticated:
		return models.TaskErrPermissionDenied
	case codes.Canceled:
		return models.TaskErrCancelled
	default:
		return models.TaskErrGRPC
	}
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// isConnectionError reports whether the failure indicates the agent endpoint
// itself is unreachable, as opposed to a command-level failure.
func isConnectionError(err error) bool {
	st, ok := status.FromError(err)
	if !ok {
		return false
	}
	return st.Code() == codes.Unavailable
}
