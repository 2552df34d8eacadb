package pydeps

import (
	"fmt"
	"strings"
	"testing"
	commandMock "vtb/mocks/vtb/system/command"
	"vtb/system/command"
	"vtb/system/file"
	"vtb/vtbtest"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	name string
	args []string
}

func recordShellCalls(t *testing.T, calls *[]recordedCall, errOn int, err error) {
	oldNSC := command.NewShellCommand
	t.Cleanup(func() {
		command.NewShellCommand = oldNSC
	})

	command.NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) command.ShellCommandRunner {
		i := len(*calls)
		*calls = append(*calls, recordedCall{name: name, args: args})

		mockShellCommand := commandMock.NewMockShellCommandRunner(t)
		if err != nil && i == errOn {
			mockShellCommand.EXPECT().Run().Return(err)
		} else {
			mockShellCommand.EXPECT().Run().Return(nil)
		}
		return mockShellCommand
	}
}

func TestNewManager(t *testing.T) {
	require := require.New(t)

	_, err := NewManager("")
	require.Error(err)
	require.ErrorContains(err, "python binary path is required")

	m, err := NewManager("python3")
	require.NoError(err)
	require.Equal("python3", m.PythonBin)
}

func TestManager_Install(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	var calls []recordedCall
	recordShellCalls(t, &calls, 0, nil)

	m, err := NewManager("python3")
	require.NoError(err)

	err = m.Install(&PackageList{
		Packages:     []string{"fastapi", "uvicorn[standard]"},
		PackageFiles: []string{"requirements.txt"},
	}, nil)
	require.NoError(err)

	// Two packages, one requirements file, one cache purge.
	require.Len(calls, 4)
	assert.Equal([]string{"-m", "pip", "install", "fastapi"}, calls[0].args)
	assert.Equal([]string{"-m", "pip", "install", "uvicorn[standard]"}, calls[1].args)
	assert.Equal([]string{"-m", "pip", "install", "-r", "requirements.txt"}, calls[2].args)
	assert.Equal([]string{"-m", "pip", "cache", "purge"}, calls[3].args)
	for _, c := range calls {
		assert.Equal("python3", c.name)
	}
}

func TestManager_Install_AbortsOnFirstFailure(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	var calls []recordedCall
	recordShellCalls(t, &calls, 0, fmt.Errorf("no matching distribution"))

	m, err := NewManager("python3")
	require.NoError(err)

	err = m.Install(&PackageList{Packages: []string{"bad-package", "never-reached"}}, nil)
	require.Error(err)
	assert.ErrorContains(err, "failed to install dependency bad-package")

	// The failing install plus the deferred cache purge, nothing else:
	// the second package must never be attempted.
	require.Len(calls, 2)
	assert.Contains(strings.Join(calls[0].args, " "), "bad-package")
	assert.Equal([]string{"-m", "pip", "cache", "purge"}, calls[1].args)
}

func TestManager_Install_Options(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	var calls []recordedCall
	recordShellCalls(t, &calls, 0, nil)

	m, err := NewManager("python3")
	require.NoError(err)

	err = m.Install(&PackageList{Packages: []string{"pip"}}, []string{"--upgrade"})
	require.NoError(err)

	require.Len(calls, 2)
	assert.Equal([]string{"-m", "pip", "install", "pip", "--upgrade"}, calls[0].args)
}

func TestManager_Install_MissingPythonBinary(t *testing.T) {
	require := require.New(t)

	file.AppFs = afero.NewMemMapFs()
	t.Cleanup(vtbtest.ResetAppFs)

	var calls []recordedCall
	recordShellCalls(t, &calls, 0, nil)

	m, err := NewManager("/opt/python/default/bin/python")
	require.NoError(err)

	err = m.Install(&PackageList{Packages: []string{"fastapi"}}, nil)
	require.Error(err)
	require.ErrorContains(err, "does not exist")
	require.Empty(calls)
}

func TestManager_EnsurePip(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	var calls []recordedCall
	recordShellCalls(t, &calls, 0, nil)

	m, err := NewManager("python3")
	require.NoError(err)

	require.NoError(m.EnsurePip())
	require.Len(calls, 1)
	assert.Equal([]string{"-m", "ensurepip", "--upgrade"}, calls[0].args)
}
