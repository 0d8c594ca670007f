package proc_test

import (
	"testing"

	"github.com/jmgilman/go/proc"
	"github.com/jmgilman/go/proc/mocks"
)

// runQuietly is the kind of helper consumers write against the Builder interface:
// it silences both output streams and reports only the exit code.
func runQuietly(b proc.Builder) (int, error) {
	return b.Stdout(proc.Null).Stderr(proc.Null).Status()
}

func TestRunQuietlyWithMock(t *testing.T) {
	var mockBuilder *mocks.BuilderMock
	mockBuilder = &mocks.BuilderMock{
		StdoutFunc: func(r proc.Redirect) proc.Builder {
			if r != proc.Null {
				t.Errorf("expected stdout policy Null, got: %v", r)
			}
			return mockBuilder // Return self for chaining
		},
		StderrFunc: func(r proc.Redirect) proc.Builder {
			if r != proc.Null {
				t.Errorf("expected stderr policy Null, got: %v", r)
			}
			return mockBuilder // Return self for chaining
		},
		StatusFunc: func() (int, error) {
			return 7, nil
		},
	}

	status, err := runQuietly(mockBuilder)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if status != 7 {
		t.Errorf("expected status 7, got: %d", status)
	}

	if len(mockBuilder.StdoutCalls()) != 1 {
		t.Errorf("expected 1 call to Stdout, got: %d", len(mockBuilder.StdoutCalls()))
	}
	if len(mockBuilder.StderrCalls()) != 1 {
		t.Errorf("expected 1 call to Stderr, got: %d", len(mockBuilder.StderrCalls()))
	}
	if len(mockBuilder.StatusCalls()) != 1 {
		t.Errorf("expected 1 call to Status, got: %d", len(mockBuilder.StatusCalls()))
	}
}

func TestRunQuietlyWithRealBuilder(t *testing.T) {
	cmd, err := proc.NewArgs([]string{"sh", "-c", "echo noise; exit 5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	status, err := runQuietly(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if status != 5 {
		t.Errorf("expected status 5, got: %d", status)
	}
}
