package proc

//go:generate go run github.com/matryer/moq@latest -out mocks/builder.go -pkg mocks . Builder

// Redirect selects how one of a child process's standard streams is handled.
// The zero value is Inherit, so a freshly constructed Command redirects nothing.
type Redirect int

const (
	// Inherit connects the child's stream directly to the parent's corresponding
	// stream. Nothing is captured.
	Inherit Redirect = iota

	// Pipe connects the child's stream to a pipe read by the parent. For stdout and
	// stderr the contents become available on the Output result; for stdin the child
	// receives immediate EOF, since the builder never writes input.
	Pipe

	// Null connects the child's stream to the null device. Writes vanish and reads
	// produce no data.
	Null
)

// Builder is the main interface for assembling and running commands.
// It provides a fluent API for accumulating an argument vector and per-stream
// redirection policies before one of the two terminal methods spawns the process.
type Builder interface {
	// Arg appends a single fully formed token to the argument vector.
	// No tokenization is applied; the token is passed to the process as-is.
	Arg(arg string) Builder

	// Args appends several fully formed tokens to the argument vector in order.
	Args(args ...string) Builder

	// Stdin sets the redirection policy for the child's standard input.
	// The latest call for a stream wins; policies do not stack.
	Stdin(r Redirect) Builder

	// Stdout sets the redirection policy for the child's standard output.
	// The latest call for a stream wins; policies do not stack.
	Stdout(r Redirect) Builder

	// Stderr sets the redirection policy for the child's standard error.
	// The latest call for a stream wins; policies do not stack.
	Stderr(r Redirect) Builder

	// PipeOutput sets both stdout and stderr to Pipe, the common case of collecting
	// everything the command writes.
	PipeOutput() Builder

	// Argv returns a copy of the accumulated argument vector. Element 0 names the
	// program.
	Argv() []string

	// Output spawns the process, blocks until it exits, and returns its exit status
	// together with the contents of every stream set to Pipe. A non-zero exit status
	// is not an error.
	Output() (*Output, error)

	// Status spawns the process exactly as Output does, blocks until it exits, and
	// returns the bare exit status without draining any pipes. A non-zero exit
	// status is not an error.
	Status() (int, error)
}

// Option configures a Command at construction time with default redirection
// policies. Fluent Builder calls made afterwards override them.
type Option func(*Command)

// WithStdin returns an Option that sets the default stdin policy.
func WithStdin(r Redirect) Option {
	return func(c *Command) {
		c.stdin = r
	}
}

// WithStdout returns an Option that sets the default stdout policy.
func WithStdout(r Redirect) Option {
	return func(c *Command) {
		c.stdout = r
	}
}

// WithStderr returns an Option that sets the default stderr policy.
func WithStderr(r Redirect) Option {
	return func(c *Command) {
		c.stderr = r
	}
}

// WithPipedOutput returns an Option that sets both stdout and stderr to Pipe.
func WithPipedOutput() Option {
	return func(c *Command) {
		c.stdout = Pipe
		c.stderr = Pipe
	}
}
