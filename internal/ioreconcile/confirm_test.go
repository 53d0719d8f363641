package ioreconcile_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/d2tools/d2tdb/internal/ioreconcile"
	"github.com/d2tools/d2tdb/pkg/canned"
	"github.com/d2tools/d2tdb/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   bool
	}{
		{"yes", "yes\n", true},
		{"y", "y\n", true},
		{"upper case", " YES \n", true},
		{"no newline", "y", true},
		{"no", "no\n", false},
		{"empty", "\n", false},
		{"other", "commit\n", false},
	}

	s := canned.Summary{Name: "enrichr", Analyses: 12_345, Metadata: 7}
	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			var out bytes.Buffer
			c := ioreconcile.NewPrompt(strings.NewReader(v.input), &out)
			res, err := c.Confirm(context.Background(), s)
			require.NoError(t, err)
			assert.Equal(t, v.res, res)
			assert.Contains(t, out.String(), "Ready to commit enrichr")
			assert.Contains(t, out.String(), "12,345")
		})
	}
}

func TestPromptSeveralTables(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()
	c := ioreconcile.NewPrompt(strings.NewReader("y\nno\nyes\n"), io.Discard)

	for _, want := range []bool{true, false, true} {
		res, err := c.Confirm(ctx, canned.Summary{Name: "enrichr"})
		require.NoError(t, err)
		assert.Equal(want, res)
	}

	_, err := c.Confirm(ctx, canned.Summary{Name: "paea"})
	require.Error(t, err)
	assert.Equal(errcode.ReconcileConfirmError, errCode(t, err))
}

func TestPromptEOF(t *testing.T) {
	c := ioreconcile.NewPrompt(strings.NewReader(""), io.Discard)
	res, err := c.Confirm(context.Background(), canned.Summary{})
	require.Error(t, err)
	assert.False(t, res)
	assert.Equal(t, errcode.ReconcileConfirmError, errCode(t, err))
}

func TestPromptCancelled(t *testing.T) {
	// the pipe is never written, so only cancellation ends the prompt
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := ioreconcile.NewPrompt(r, io.Discard)
	res, err := c.Confirm(ctx, canned.Summary{})
	require.Error(t, err)
	assert.False(t, res)
	assert.Equal(t, errcode.ReconcileCancelledError, errCode(t, err))
	assert.ErrorIs(t, err.(*gn.Error).Err, context.Canceled)
}

func TestAuto(t *testing.T) {
	res, err := ioreconcile.NewAuto().Confirm(context.Background(), canned.Summary{})
	require.NoError(t, err)
	assert.True(t, res)
}
