package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand(t *testing.T) {
	resetFlags()

	output, err := captureOutput(t, runList)
	require.NoError(t, err)
	assertContains(t, output, []string{" 1. Random Data", " 6. DIV", "10. Checkerboard"})
}

func TestListCommand_JSON(t *testing.T) {
	resetFlags()
	jsonOut = true

	output, err := captureOutput(t, runList)
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(output), &names))
	assert.Equal(t, []string{
		"Random Data", "XOR", "ADD", "SUB", "MUL",
		"DIV", "OR", "AND", "Solid Bits", "Checkerboard",
	}, names)
}
