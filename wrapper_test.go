package proc

import (
	"testing"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWrapper(t *testing.T) {
	echo, err := NewWrapper("echo")
	require.NoError(t, err)
	require.NotNil(t, echo)
}

func TestNewWrapper_EmptyProgram(t *testing.T) {
	for _, program := range []string{"", "  "} {
		_, err := NewWrapper(program)
		require.Error(t, err)
		assert.Equal(t, platformerrors.CodeInvalidConfig, platformerrors.GetCode(err))
	}
}

func TestWrapperCommand_PrependsProgram(t *testing.T) {
	git, err := NewWrapper("git")
	require.NoError(t, err)

	cmd := git.Command("status", "--short")
	assert.Equal(t, []string{"git", "status", "--short"}, cmd.Argv())
}

func TestWrapperCommand_Execution(t *testing.T) {
	echo, err := NewWrapper("echo")
	require.NoError(t, err)

	out, err := echo.Command("hello", "world").Stdout(Pipe).Output()
	require.NoError(t, err)

	assert.Equal(t, 0, out.Status)
	assert.Equal(t, "hello world\n", out.Stdout)
}

func TestWrapperCommand_AppliesDefaultOptions(t *testing.T) {
	sh, err := NewWrapper("sh", WithPipedOutput())
	require.NoError(t, err)

	out, err := sh.Command("-c", "echo out && echo err >&2").Output()
	require.NoError(t, err)

	assert.Equal(t, "out\n", out.Stdout)
	assert.Equal(t, "err\n", out.Stderr)
}

func TestWrapperCommand_MintsIndependentBuilders(t *testing.T) {
	echo, err := NewWrapper("echo", WithStdout(Pipe))
	require.NoError(t, err)

	first := echo.Command("one")
	second := echo.Command("two")
	first.Arg("extra")

	assert.Equal(t, []string{"echo", "one", "extra"}, first.Argv())
	assert.Equal(t, []string{"echo", "two"}, second.Argv())

	out, err := second.Output()
	require.NoError(t, err)
	assert.Equal(t, "two\n", out.Stdout)
}
