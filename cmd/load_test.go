package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoadCmd(t *testing.T) {
	cmd := getLoadCmd()
	assert.Equal(t, "load", cmd.Name())
	assert.Contains(t, cmd.Long, "dataset_accession")

	flags := []struct {
		name, short, def string
	}{
		{"yes", "y", "false"},
		{"staging-dir", "s", ""},
		{"jobs", "j", "0"},
	}
	for _, v := range flags {
		flag := cmd.Flags().Lookup(v.name)
		require.NotNil(t, flag, v.name)
		assert.Equal(t, v.short, flag.Shorthand, v.name)
		assert.Equal(t, v.def, flag.DefValue, v.name)
	}
}

func TestLoadNeedsInput(t *testing.T) {
	cmd := getLoadCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}
