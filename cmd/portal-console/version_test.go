package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVersionClient struct {
	version string
}

func (f fakeVersionClient) Version() string {
	return f.version
}

func TestNewVersionCmdPanicsWhenClientDependencyIsNil(t *testing.T) {
	require.PanicsWithValue(t, "NewVersionCmd: client dependency cannot be nil", func() {
		NewVersionCmd(nil)
	})
}

func TestVersionCmdPrintsVersion(t *testing.T) {
	out, err := execute(t, NewVersionCmd(fakeVersionClient{version: "1.4.0 (abc1234)"}))

	require.NoError(t, err)
	assert.Equal(t, "portal-console version 1.4.0 (abc1234)\n", out)
}

func TestVersionCmdRejectsArguments(t *testing.T) {
	_, err := execute(t, NewVersionCmd(fakeVersionClient{version: "dev"}), "extra")
	assert.Error(t, err)
}
