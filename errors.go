package proc

import (
	"errors"
	"io/fs"
	osexec "os/exec"

	platformerrors "github.com/jmgilman/go/errors"
)

// classifySpawnError translates an os/exec start failure into a PlatformError.
// It preserves the original error chain for errors.Is/errors.As compatibility.
//
// The mapping:
//   - executable not found -> CodeNotFound
//   - permission denied -> CodeForbidden
//   - anything else (resource exhaustion, bad file descriptors, ...) -> CodeExecutionFailed
func classifySpawnError(argv []string, err error) error {
	switch {
	case errors.Is(err, osexec.ErrNotFound):
		return platformerrors.Wrapf(err, platformerrors.CodeNotFound, "executable not found: %s", argv[0])
	case errors.Is(err, fs.ErrPermission):
		return platformerrors.Wrapf(err, platformerrors.CodeForbidden, "permission denied: %s", argv[0])
	default:
		return platformerrors.Wrapf(err, platformerrors.CodeExecutionFailed, "failed to start command: %s", argv[0])
	}
}
