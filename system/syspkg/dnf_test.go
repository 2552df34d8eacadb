package syspkg

import (
	"fmt"
	"testing"
	commandMock "vtb/mocks/vtb/system/command"
	"vtb/system/command"
	"vtb/system/file"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDnfManager(t *testing.T) {
	assert := assert.New(t)

	m := NewDnfManager()

	assert.Equal("dnf", m.GetBin())
	assert.Equal(".rpm", m.GetPackageExtension())
	assert.Contains(m.installOpts, "install")
	assert.Contains(m.updateOpts, "makecache")
	assert.Contains(m.upgradeOpts, "upgrade")
	assert.Contains(m.removeOpts, "remove")
	assert.Contains(m.autoRemoveOpts, "autoremove")
	assert.Contains(m.cleanOpts, "clean")
}

func TestDnfManager_Install(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	tests := []struct {
		name                  string
		packageList           *PackageList
		setupFs               func(fs afero.Fs)
		expectedNewShellCalls int
		runErr                error
		wantErr               bool
	}{
		{
			name:                  "Empty package list",
			packageList:           &PackageList{},
			expectedNewShellCalls: 0,
			wantErr:               false,
		},
		{
			name: "String packages",
			packageList: &PackageList{
				Packages: []string{"pkg1", "pkg2"},
			},
			expectedNewShellCalls: 1,
			wantErr:               false,
		},
		{
			name: "Local packages",
			packageList: &PackageList{
				LocalPackages: []string{"/tmp/pkg1.rpm"},
			},
			setupFs: func(fs afero.Fs) {
				afero.WriteFile(fs, "/tmp/pkg1.rpm", []byte("rpm"), 0644)
			},
			expectedNewShellCalls: 1,
			wantErr:               false,
		},
		{
			name: "Runtime error",
			packageList: &PackageList{
				Packages: []string{"pkg1"},
			},
			expectedNewShellCalls: 1,
			runErr:                fmt.Errorf("runtime error"),
			wantErr:               true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldNSC := command.NewShellCommand
			file.AppFs = afero.NewMemMapFs()
			t.Cleanup(func() {
				command.NewShellCommand = oldNSC
				file.AppFs = afero.NewOsFs()
			})

			if tt.setupFs != nil {
				tt.setupFs(file.AppFs)
			}

			iShellCalls := 0
			command.NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) command.ShellCommandRunner {
				assert.Equal("dnf", name)
				assert.Contains(args, "install")
				iShellCalls++

				mockShellCommand := commandMock.NewMockShellCommandRunner(t)
				mockShellCommand.EXPECT().Run().Return(tt.runErr)
				return mockShellCommand
			}

			m := NewDnfManager()
			err := m.Install(tt.packageList)
			if tt.wantErr {
				require.Error(err)
			} else {
				require.NoError(err)
			}
			assert.Equal(tt.expectedNewShellCalls, iShellCalls)
		})
	}
}

func TestDnfManager_Clean(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	oldNSC := command.NewShellCommand
	t.Cleanup(func() {
		command.NewShellCommand = oldNSC
	})

	iShellCalls := 0
	command.NewShellCommand = func(name string, args []string, envVars []string, inheritEnvVars bool) command.ShellCommandRunner {
		assert.Equal("dnf", name)
		iShellCalls++
		mockShellCommand := commandMock.NewMockShellCommandRunner(t)
		mockShellCommand.EXPECT().Run().Return(nil)
		return mockShellCommand
	}

	m := NewDnfManager()
	require.NoError(m.Clean())

	// clean + autoremove
	assert.Equal(2, iShellCalls)
}
