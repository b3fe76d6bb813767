package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/joshuapare/memtest/engine"
	"github.com/joshuapare/memtest/internal/testutil"
)

// fakePlatform installs in-memory collaborators for the duration of a test.
func fakePlatform(t *testing.T, privileged bool) (*testutil.RecordingPin, *testutil.HeapAllocator) {
	t.Helper()

	pin := &testutil.RecordingPin{}
	alloc := &testutil.HeapAllocator{}
	platform = engine.Platform{
		Pin:        pin,
		Alloc:      alloc,
		Privileged: testutil.Privileged(privileged),
	}
	t.Cleanup(func() { platform = engine.Platform{} })
	return pin, alloc
}

// resetFlags restores global flags to their defaults
func resetFlags() {
	verbose = false
	quiet = false
	jsonOut = false
	noColor = true
	runSize = "256MiB"
	runPercent = 0
	runSeed = 0
	runReport = ""
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	// Save original stdout
	origStdout := os.Stdout

	// Create a pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}

	// Redirect stdout to pipe
	os.Stdout = w

	// Drain concurrently so large outputs cannot block the writer
	done := make(chan struct{})
	var buf bytes.Buffer
	go func() {
		_, _ = buf.ReadFrom(r)
		close(done)
	}()

	// Run function
	fnErr := fn()

	// Close write end and restore stdout
	w.Close()
	os.Stdout = origStdout
	<-done

	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
