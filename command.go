package proc

import (
	"bytes"
	"errors"
	"io"
	"os"
	osexec "os/exec"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/mattn/go-shellwords"
)

// Command is the concrete implementation of the Builder interface. It holds the
// accumulated argument vector and one redirection policy per standard stream.
// A Command owns no operating-system resources between terminal calls; pipes are
// created at spawn time and released before the terminal call returns.
type Command struct {
	args   []string
	stdin  Redirect
	stdout Redirect
	stderr Redirect
}

// New creates a Command from a full command line. The line is split into an
// argument vector using POSIX-shell-like quoting rules, so quoted arguments
// containing whitespace survive as single tokens:
//
//	cmd, err := proc.New(`grep "two words" -r .`)
//	// argv: ["grep", "two words", "-r", "."]
//
// A line that fails to tokenize (for example an unterminated quote) or that
// tokenizes to zero tokens is a configuration error.
func New(command string, opts ...Option) (*Command, error) {
	args, err := shellwords.Parse(command)
	if err != nil {
		return nil, platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "failed to parse command line")
	}
	if len(args) == 0 {
		return nil, platformerrors.New(platformerrors.CodeInvalidConfig, "command line is empty")
	}
	return newCommand(args, opts), nil
}

// NewArgs creates a Command from an explicit argument vector. No tokenization is
// performed; element 0 names the program. The vector is copied, so later mutation
// of args does not affect the Command.
func NewArgs(args []string, opts ...Option) (*Command, error) {
	if len(args) == 0 {
		return nil, platformerrors.New(platformerrors.CodeInvalidConfig, "argument vector is empty")
	}
	if args[0] == "" {
		return nil, platformerrors.New(platformerrors.CodeInvalidConfig, "program name is empty")
	}
	vec := make([]string, len(args))
	copy(vec, args)
	return newCommand(vec, opts), nil
}

func newCommand(args []string, opts []Option) *Command {
	cmd := &Command{args: args}
	for _, opt := range opts {
		opt(cmd)
	}
	return cmd
}

// Arg appends a single fully formed token to the argument vector.
func (c *Command) Arg(arg string) Builder {
	c.args = append(c.args, arg)
	return c
}

// Args appends several fully formed tokens to the argument vector in order.
func (c *Command) Args(args ...string) Builder {
	c.args = append(c.args, args...)
	return c
}

// Stdin sets the redirection policy for the child's standard input.
func (c *Command) Stdin(r Redirect) Builder {
	c.stdin = r
	return c
}

// Stdout sets the redirection policy for the child's standard output.
func (c *Command) Stdout(r Redirect) Builder {
	c.stdout = r
	return c
}

// Stderr sets the redirection policy for the child's standard error.
func (c *Command) Stderr(r Redirect) Builder {
	c.stderr = r
	return c
}

// PipeOutput sets both stdout and stderr to Pipe.
func (c *Command) PipeOutput() Builder {
	c.stdout = Pipe
	c.stderr = Pipe
	return c
}

// Argv returns a copy of the accumulated argument vector.
func (c *Command) Argv() []string {
	argv := make([]string, len(c.args))
	copy(argv, c.args)
	return argv
}

// Output spawns the process, blocks until it exits, and collects whatever the
// redirection policies captured. Fields of the returned Output corresponding to
// streams not set to Pipe are empty. When both stdout and stderr are piped, the
// Combined field additionally holds their interleaved output in arrival order.
//
// A non-zero exit status is not an error; it is reported on the returned Output.
// Calling Output again spawns a fresh independent process with the same frozen
// configuration.
func (c *Command) Output() (*Output, error) {
	cmd := osexec.Command(c.args[0], c.args[1:]...)
	cmd.Stdin = c.stdinSource()

	var stdoutCap, stderrCap, combined *captureBuffer
	if c.stdout == Pipe && c.stderr == Pipe {
		combined = &captureBuffer{}
	}

	switch c.stdout {
	case Pipe:
		stdoutCap = &captureBuffer{}
		if combined != nil {
			cmd.Stdout = newMultiWriter(stdoutCap, combined)
		} else {
			cmd.Stdout = stdoutCap
		}
	case Inherit:
		cmd.Stdout = os.Stdout
	}

	switch c.stderr {
	case Pipe:
		stderrCap = &captureBuffer{}
		if combined != nil {
			cmd.Stderr = newMultiWriter(stderrCap, combined)
		} else {
			cmd.Stderr = stderrCap
		}
	case Inherit:
		cmd.Stderr = os.Stderr
	}

	// Null streams stay nil: os/exec connects them to the null device.

	if err := cmd.Start(); err != nil {
		return nil, classifySpawnError(c.args, err)
	}

	status, err := wait(cmd)
	if err != nil {
		return nil, err
	}

	out := &Output{Status: status}
	if stdoutCap != nil {
		out.Stdout = stdoutCap.String()
	}
	if stderrCap != nil {
		out.Stderr = stderrCap.String()
	}
	if combined != nil {
		out.Combined = combined.String()
	}

	return out, nil
}

// Status spawns the process with the same resolved policies as Output, blocks until
// it exits, and returns the bare exit status. Streams set to Pipe still get a pipe,
// but Status never drains it; a child that writes more than the pipe buffer holds
// will block until it exits or is killed externally. Prefer Output, or the
// Inherit/Null policies, for commands with substantial output.
//
// A non-zero exit status is not an error. Calling Status again spawns a fresh
// independent process with the same frozen configuration.
func (c *Command) Status() (int, error) {
	cmd := osexec.Command(c.args[0], c.args[1:]...)
	cmd.Stdin = c.stdinSource()

	switch c.stdout {
	case Pipe:
		// Undrained on purpose; Wait closes the parent end after exit.
		if _, err := cmd.StdoutPipe(); err != nil {
			return 0, platformerrors.Wrap(err, platformerrors.CodeExecutionFailed, "failed to open stdout pipe")
		}
	case Inherit:
		cmd.Stdout = os.Stdout
	}

	switch c.stderr {
	case Pipe:
		if _, err := cmd.StderrPipe(); err != nil {
			return 0, platformerrors.Wrap(err, platformerrors.CodeExecutionFailed, "failed to open stderr pipe")
		}
	case Inherit:
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return 0, classifySpawnError(c.args, err)
	}

	return wait(cmd)
}

// stdinSource maps the stdin policy to a reader for os/exec. A nil reader connects
// the null device. A piped stdin is an empty reader: the builder never writes to a
// child's stdin, so the child sees immediate EOF.
func (c *Command) stdinSource() io.Reader {
	switch c.stdin {
	case Inherit:
		return os.Stdin
	case Pipe:
		return bytes.NewReader(nil)
	default:
		return nil
	}
}

// wait blocks until the command exits and extracts its exit status. An ExitError is
// the normal non-zero exit path, not a failure.
func wait(cmd *osexec.Cmd) (int, error) {
	err := cmd.Wait()
	var exitErr *osexec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return 0, platformerrors.Wrap(err, platformerrors.CodeExecutionFailed, "command did not complete")
	}
	return cmd.ProcessState.ExitCode(), nil
}
