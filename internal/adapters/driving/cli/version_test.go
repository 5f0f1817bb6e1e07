package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	setupTestServices(t)

	originalVersion := version
	SetVersion("test-version-1.0.0")
	defer func() { version = originalVersion }()

	out, err := executeCommand("version")

	require.NoError(t, err)
	assert.Contains(t, out, "fincrew version test-version-1.0.0")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	setupTestServices(t)

	originalVersion := version
	version = "dev"
	SetVersion("")
	defer func() { version = originalVersion }()

	out, err := executeCommand("version")

	require.NoError(t, err)
	assert.Contains(t, out, "fincrew version dev")
}

func TestVersionCmd_SkipsServiceBuild(t *testing.T) {
	setupTestServices(t)

	built := false
	buildServices = func(Options) (*Services, error) {
		built = true
		return &Services{}, nil
	}

	_, err := executeCommand("version")

	require.NoError(t, err)
	assert.False(t, built)
}
