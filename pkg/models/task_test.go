package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskErrorCode_ErrorKind(t *testing.T) {
	tests := []struct {
		code TaskErrorCode
		want ErrorKind
	}{
		{TaskErrNone, ErrKindNone},
		{TaskErrTimeout, ErrKindTimeout},
		{TaskErrElevationRequired, ErrKindPermissionDenied},
		{TaskErrPermissionDenied, ErrKindPermissionDenied},
		{TaskErrNotFound, ErrKindNotFound},
		{TaskErrGRPC, ErrKindConnection},
		{TaskErrCancelled, ErrKindExecution},
		{TaskErrInternal, ErrKindExecution},
		{TaskErrorCode("something_new"), ErrKindExecution},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.code.ErrorKind(), "code %s", tt.code)
	}
}

func TestErrorKind_AdaptationNeverEmpty(t *testing.T) {
	kinds := []ErrorKind{
		ErrKindSyntax, ErrKindTimeout, ErrKindPermissionDenied, ErrKindNotFound,
		ErrKindConnection, ErrKindResource, ErrKindExecution, ErrKindGRPC,
		ErrKindHallucination, ErrKindLoopDetected, ErrKindUnknownAgent,
	}
	for _, k := range kinds {
		assert.NotEmpty(t, k.Adaptation(), "kind %s", k)
	}
}
