// Package proc provides a fluent builder for constructing and running local commands.
//
// This package wraps the standard library's os/exec, providing the Command struct
// that implements the Builder interface. Following Go best practices, the package
// returns concrete types (Command, Wrapper) while accepting interfaces in function
// parameters, making it easy to mock command execution in tests. A command line is
// assembled incrementally (program, arguments, per-stream redirection policy) and
// then run to completion by one of two terminal methods.
//
// # Basic Usage
//
// Create a builder from a command line and collect its output:
//
//	cmd, err := proc.New("echo hello")
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := cmd.Stdout(proc.Pipe).Output()
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(out.Stdout) // "hello\n"
//
// # Construction
//
// New tokenizes a full command line with POSIX-shell-like quoting rules, so a
// caller can hand over an entire invocation as one string:
//
//	cmd, err := proc.New(`grep "two words" -r .`)
//	// argv: ["grep", "two words", "-r", "."]
//
// NewArgs takes an explicit argument vector and performs no tokenization:
//
//	cmd, err := proc.NewArgs([]string{"grep", "two words", "-r", "."})
//
// Both constructors reject an empty vector before anything is spawned. Further
// tokens are appended with Arg and Args; call order determines argument order:
//
//	cmd.Arg("--count").Args("-e", "pattern")
//
// # Redirection
//
// Each of the three standard streams carries one of three policies: Inherit (the
// default; the child shares the parent's stream), Pipe (captured for the result),
// or Null (connected to the null device). The latest call for a stream wins:
//
//	out, _ := cmd.
//		Stdout(proc.Pipe).
//		Stderr(proc.Null).
//		Output()
//
// PipeOutput sets stdout and stderr to Pipe in one call. Construction-time defaults
// can be set with options, then overridden fluently:
//
//	cmd, err := proc.New("make test", proc.WithPipedOutput())
//
// # Terminal Operations
//
// Output runs the command to completion and returns its exit status together with
// everything the piped streams produced. When both output streams are piped, the
// Combined field preserves their interleaving:
//
//	out, err := cmd.PipeOutput().Output()
//	fmt.Println(out.Status)
//	fmt.Print(out.Stdout)
//	fmt.Print(out.Combined)
//
// Status runs the command the same way but returns only the exit code, without
// draining any pipes. A child that writes more than the pipe buffer holds will
// block; commands with substantial output should use Output or the Inherit/Null
// policies with Status.
//
// Both terminal methods block until the child exits, and a non-zero exit status is
// never an error:
//
//	status, err := cmd.Status()
//	if err != nil {
//		// the process could not be spawned
//	}
//	if status != 0 {
//		// the process ran and failed; interpreting the code is the caller's job
//	}
//
// A builder may be run again after a terminal call: each call spawns a fresh,
// independent process from the same frozen configuration and acquires and releases
// its own pipes.
//
// # Error Handling
//
// Failures surface as structured platform errors from github.com/jmgilman/go/errors:
//
//	out, err := cmd.Output()
//	if errors.GetCode(err) == errors.CodeNotFound {
//		// the executable does not exist
//	}
//
// Construction problems (empty command line, unterminated quote) carry
// CodeInvalidConfig or CodeInvalidInput; spawn failures carry CodeNotFound,
// CodeForbidden, or CodeExecutionFailed with the underlying os/exec error wrapped
// and reachable via errors.Is and errors.As.
//
// # Wrappers
//
// For programs invoked frequently, a Wrapper binds the program name once and mints
// independent builders per invocation:
//
//	git, err := proc.NewWrapper("git", proc.WithPipedOutput())
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, err := git.Command("status", "--short").Output()
//
// # Testing
//
// Production code uses the concrete *Command type, but code under test can accept
// the Builder interface and receive a mock instead. A moq-generated mock lives in
// the mocks package:
//
//	func runQuietly(b proc.Builder) (int, error) {
//		return b.Stdout(proc.Null).Stderr(proc.Null).Status()
//	}
//
//	// in tests:
//	mock := &mocks.BuilderMock{ ... }
//	status, err := runQuietly(mock)
package proc
