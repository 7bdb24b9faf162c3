package dispatch

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/funnel-ops/funnel/pkg/models"
	pb "github.com/funnel-ops/funnel/proto"
)

func TestNormalizeResponse_ErrorCodeInvariant(t *testing.T) {
	t.Run("success forces code none", func(t *testing.T) {
		r := normalizeResponse(&pb.TaskResponse{
			TaskId:  "t1",
			Success: true,
			Stdout:  "ok",
			// A buggy agent reporting success plus an error code.
			ErrorCode: pb.ErrorCode_ERROR_CODE_TIMEOUT,
		})
		assert.True(t, r.Success)
		assert.Equal(t, models.TaskErrNone, r.ErrorCode)
	})

	t.Run("failure without code gets internal", func(t *testing.T) {
		r := normalizeResponse(&pb.TaskResponse{
			TaskId:   "t1",
			Success:  false,
			Stderr:   "boom",
			ExitCode: 1,
		})
		assert.False(t, r.Success)
		assert.Equal(t, models.TaskErrInternal, r.ErrorCode)
	})

	t.Run("failure codes pass through", func(t *testing.T) {
		r := normalizeResponse(&pb.TaskResponse{
			Success:   false,
			ErrorCode: pb.ErrorCode_ERROR_CODE_PERMISSION_DENIED,
		})
		assert.Equal(t, models.TaskErrPermissionDenied, r.ErrorCode)
	})
}

func TestGrpcErrorCode(t *testing.T) {
	tests := []struct {
		code codes.Code
		want models.TaskErrorCode
	}{
		{codes.DeadlineExceeded, models.TaskErrTimeout},
		{codes.NotFound, models.TaskErrNotFound},
		{codes.PermissionDenied, models.TaskErrPermissionDenied},
		{codes.Unauthenticated, models.TaskErrPermissionDenied},
		{codes.Canceled, models.TaskErrCancelled},
		{codes.Unavailable, models.TaskErrGRPC},
		{codes.Internal, models.TaskErrGRPC},
	}
	for _, tt := range tests {
		err := status.Error(tt.code, "x")
		assert.Equal(t, tt.want, grpcErrorCode(err), tt.code.String())
	}
}

func TestTransportFailure(t *testing.T) {
	r := transportFailure("t9", status.Error(codes.Unavailable, "connection refused"))
	assert.False(t, r.Success)
	assert.Equal(t, models.TaskErrGRPC, r.ErrorCode)
	assert.Equal(t, -1, r.ExitCode)
	assert.Contains(t, r.Stderr, "connection refused")
	assert.Equal(t, "t9", r.TaskID)
}

func TestIsConnectionError(t *testing.T) {
	assert.True(t, isConnectionError(status.Error(codes.Unavailable, "down")))
	assert.False(t, isConnectionError(status.Error(codes.NotFound, "missing")))
	assert.False(t, isConnectionError(errors.New("plain")))
}

func TestTaskTypeToProto(t *testing.T) {
	assert.Equal(t, pb.TaskType_TASK_TYPE_SHELL, taskTypeToProto(models.TaskShell))
	assert.Equal(t, pb.TaskType_TASK_TYPE_POWERSHELL, taskTypeToProto(models.TaskPowerShell))
	assert.Equal(t, pb.TaskType_TASK_TYPE_SHELL, taskTypeToProto(models.TaskType("weird")), "unknown types default to shell")
}

func TestOutputTypeFromProto(t *testing.T) {
	assert.Equal(t, models.OutputStderr, outputTypeFromProto(pb.OutputType_OUTPUT_TYPE_STDERR))
	assert.Equal(t, models.OutputError, outputTypeFromProto(pb.OutputType_OUTPUT_TYPE_ERROR))
	assert.Equal(t, models.OutputStdout, outputTypeFromProto(pb.OutputType_OUTPUT_TYPE_UNSPECIFIED))
}
