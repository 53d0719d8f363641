package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCreateCmd(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd)
	assert.Equal(t, "create", cmd.Use)
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate")
	assert.NotNil(t, cmd.RunE)
}

func TestGetCreateCmd_ForceFlag(t *testing.T) {
	cmd := getCreateCmd()

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag)
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
	assert.Contains(t, forceFlag.Usage, "drop")
}

func TestGetCreateCmd_Examples(t *testing.T) {
	cmd := getCreateCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())
	help := buf.String()
	assert.Contains(t, help, "d2tdb create --force")
	assert.Contains(t, help, "d2tdb create -f")
}

func TestConfirmed(t *testing.T) {
	tests := []struct {
		input string
		res   bool
	}{
		{"yes\n", true},
		{"Y\n", true},
		{"y", true},
		{"no\n", false},
		{"\n", false},
	}

	for _, v := range tests {
		cmd := &cobra.Command{}
		cmd.SetIn(strings.NewReader(v.input))
		res, err := confirmed(cmd)
		require.NoError(t, err, v.input)
		assert.Equal(t, v.res, res, v.input)
	}

	cmd := &cobra.Command{}
	cmd.SetIn(strings.NewReader(""))
	_, err := confirmed(cmd)
	assert.Error(t, err, "empty input")
}
