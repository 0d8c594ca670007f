package proc

import (
	"errors"
	"fmt"
	"io/fs"
	osexec "os/exec"
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
)

func TestClassifySpawnError(t *testing.T) {
	argv := []string{"some-tool", "--flag"}

	tests := []struct {
		name     string
		err      error
		wantCode platformerrors.ErrorCode
	}{
		{
			name:     "executable not found",
			err:      &osexec.Error{Name: "some-tool", Err: osexec.ErrNotFound},
			wantCode: platformerrors.CodeNotFound,
		},
		{
			name:     "permission denied",
			err:      &fs.PathError{Op: "fork/exec", Path: "some-tool", Err: fs.ErrPermission},
			wantCode: platformerrors.CodeForbidden,
		},
		{
			name:     "anything else",
			err:      fmt.Errorf("fork/exec some-tool: resource temporarily unavailable"),
			wantCode: platformerrors.CodeExecutionFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifySpawnError(argv, tt.err)

			var pe platformerrors.PlatformError
			if !errors.As(result, &pe) {
				t.Fatalf("classifySpawnError() did not return PlatformError, got %T", result)
			}

			if pe.Code() != tt.wantCode {
				t.Errorf("classifySpawnError() code = %v, want %v", pe.Code(), tt.wantCode)
			}

			// The original cause must stay reachable through the chain.
			if !errors.Is(result, tt.err) {
				t.Error("classifySpawnError() lost the original error chain")
			}
		})
	}
}
