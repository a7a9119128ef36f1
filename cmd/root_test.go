package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_ErrorsPrintedOnce(t *testing.T) {
	stderr := &bytes.Buffer{}
	rootCmd.SetErr(stderr)
	rootCmd.SetArgs([]string{"no-such-command"})
	t.Cleanup(func() {
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	assert.ErrorContains(t, err, "unknown command")
	assert.Empty(t, stderr.String(), "Execute reports the error through cobra.CheckErr")
}
