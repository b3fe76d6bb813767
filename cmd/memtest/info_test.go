package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoCommand(t *testing.T) {
	resetFlags()
	fakePlatform(t, false)
	stubMemory(t, 16<<30, 8<<30, nil)

	output, err := captureOutput(t, runInfo)
	require.NoError(t, err)
	assertContains(t, output, []string{
		"System Information:",
		"Privileged:       no",
		"Total memory:     16 GiB",
		"Available memory: 8.0 GiB",
		"Largest region:",
	})
}

func TestInfoCommand_JSON(t *testing.T) {
	resetFlags()
	fakePlatform(t, true)
	stubMemory(t, 4096, 1000, nil)
	jsonOut = true

	output, err := captureOutput(t, runInfo)
	require.NoError(t, err)

	var info systemInfo
	require.NoError(t, json.Unmarshal([]byte(output), &info))
	assert.True(t, info.Privileged)
	assert.Equal(t, uint64(4096), info.TotalMemory)
	assert.Equal(t, uint64(1000), info.AvailMemory)
	assert.Equal(t, uint64(992), info.SuggestedBytes)
	assert.Positive(t, info.PageSize)
}
