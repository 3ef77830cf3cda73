// internal/cli/options_test.go
package cli

import (
	"bytes"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFS() *flag.FlagSet {
	fs := NewFlagSet("test")
	fs.SetOutput(io.Discard)
	return fs
}

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	require.NoError(t, err)
	return opts
}

func TestBareInvocationOK(t *testing.T) {
	o := mustParse(t)
	assert.False(t, o.Version)
}

func TestVersionFlagLongAndShort(t *testing.T) {
	assert.True(t, mustParse(t, "--version").Version)
	assert.True(t, mustParse(t, "-v").Version)
}

func TestVersionDoesNotMaskPositionalArgs(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--version", "stray"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected positional argument")
}

func TestHelpReturnsErrHelp(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = ParseArgs(newFS(), []string{"--help"})
	assert.ErrorIs(t, err, flag.ErrHelp)
}

func TestHelpPrintsNothingDuringParse(t *testing.T) {
	var buf bytes.Buffer
	fs := NewFlagSet("test")
	fs.SetOutput(&buf)
	_, err := ParseArgs(fs, []string{"-h"})
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Zero(t, buf.Len(), "usage text belongs to the app, not the parser")
}

func TestErrorOnPositionalArgument(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"extra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected positional argument")
}

func TestErrorOnUnknownFlag(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{"--nope"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, flag.ErrHelp)
}
