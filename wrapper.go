package proc

import (
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
)

// Wrapper mints builders for a single program, making it convenient for tools that
// are invoked frequently with different arguments (e.g., git, docker). Redirection
// options given at construction become the defaults of every minted Command.
type Wrapper struct {
	program string
	opts    []Option
}

// NewWrapper creates a Wrapper for the given program. The program name must be a
// single non-empty token; it is not tokenized.
func NewWrapper(program string, opts ...Option) (*Wrapper, error) {
	if strings.TrimSpace(program) == "" {
		return nil, platformerrors.New(platformerrors.CodeInvalidConfig, "program name is empty")
	}

	return &Wrapper{
		program: program,
		opts:    opts,
	}, nil
}

// Command returns a fresh builder whose argument vector is the wrapper's program
// followed by args. Every returned Command is independent: configuring or running
// one has no effect on the others or on the wrapper.
func (w *Wrapper) Command(args ...string) *Command {
	argv := make([]string, 0, len(args)+1)
	argv = append(argv, w.program)
	argv = append(argv, args...)
	return newCommand(argv, w.opts)
}
