package proc

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Output represents the result of a finished command.
type Output struct {
	// Status is the exit code returned by the command.
	Status int

	// Stdout is the captured standard output. Empty unless stdout was set to Pipe.
	Stdout string

	// Stderr is the captured standard error. Empty unless stderr was set to Pipe.
	Stderr string

	// Combined interleaves stdout and stderr in arrival order. Populated only when
	// both output streams were set to Pipe.
	Combined string
}

// Success reports whether the command exited with status zero.
func (o *Output) Success() bool {
	return o.Status == 0
}

// String implements fmt.Stringer.
func (o *Output) String() string {
	return fmt.Sprintf("Output(status=%d, stdout=%q, stderr=%q)", o.Status, o.Stdout, o.Stderr)
}

// captureBuffer accumulates one stream's bytes. os/exec writes from its own copying
// goroutine per stream, and the combined buffer receives writes from both, so
// access is serialized behind a mutex. The parent only reads after Wait returns.
type captureBuffer struct {
	buffer bytes.Buffer
	mu     sync.Mutex
}

// Write appends data to the buffer.
func (cb *captureBuffer) Write(p []byte) (n int, err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.buffer.Write(p)
}

// String returns the captured bytes as a string.
func (cb *captureBuffer) String() string {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.buffer.String()
}

// multiWriter tees writes to all underlying writers, failing on the first errored
// or short write. It's similar to io.MultiWriter but keeps the concrete writers
// reachable for capture.
type multiWriter struct {
	writers []io.Writer
}

// newMultiWriter creates a multiWriter over the provided writers.
func newMultiWriter(writers ...io.Writer) *multiWriter {
	return &multiWriter{
		writers: writers,
	}
}

// Write writes data to all underlying writers.
func (mw *multiWriter) Write(p []byte) (n int, err error) {
	for _, w := range mw.writers {
		n, err = w.Write(p)
		if err != nil {
			return
		}
		if n != len(p) {
			err = io.ErrShortWrite
			return
		}
	}
	return len(p), nil
}
