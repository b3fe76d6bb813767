package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memtest/internal/testutil"
)

// mismatchFirstWord makes the first pair of words differ.
func mismatchFirstWord(t *Target) int {
	lo, hi := t.Halves()
	lo[0] = 1
	hi[0] = 2
	return t.Compare()
}

func TestRunner_ExhaustsAfterCatalog(t *testing.T) {
	s, _ := openTestSession(t, 1024, Options{})
	r := s.Tests()

	for i, name := range CatalogNames() {
		next, ok := r.NextName()
		require.True(t, ok, "advance %d", i)
		assert.Equal(t, name, next)

		res, ok := r.Next()
		require.True(t, ok, "advance %d", i)
		assert.Equal(t, name, res.Name)
	}

	_, ok := r.Next()
	assert.False(t, ok, "no result after the tenth test")
	_, ok = r.Next()
	assert.False(t, ok, "still exhausted")

	name, ok := r.NextName()
	assert.False(t, ok)
	assert.Empty(t, name)
	assert.Zero(t, r.Remaining())
	assert.Len(t, s.Results(), 10)
}

func TestRunner_NextNameDoesNotRun(t *testing.T) {
	src := &testutil.SequenceSource{Values: []uint64{3}}
	s, _ := openTestSession(t, 64, Options{Rand: src})
	r := s.Tests()

	for range 5 {
		name, ok := r.NextName()
		require.True(t, ok)
		assert.Equal(t, "Random Data", name)
	}
	assert.Zero(t, src.Draws)
	assert.Empty(t, s.Results())
	assert.Equal(t, 10, r.Remaining())
}

func TestRunner_InjectedCatalog(t *testing.T) {
	calls := 0
	catalog := []Pattern{
		{Name: "one", Run: func(*Target) int { calls++; return 0 }},
		{Name: "two", Run: func(*Target) int { calls++; return 5 }},
	}
	s, _ := openTestSession(t, 64, Options{Catalog: catalog})

	var got []string
	var errs []int
	for res := range s.Tests().All() {
		got = append(got, res.Name)
		errs = append(errs, res.Errors)
	}

	assert.Equal(t, []string{"one", "two"}, got)
	assert.Equal(t, []int{0, 5}, errs)
	assert.Equal(t, 2, calls)
}

func TestRunner_CatalogIsCopiedAtOpen(t *testing.T) {
	catalog := []Pattern{{Name: "first", Run: func(*Target) int { return 0 }}}
	s, _ := openTestSession(t, 64, Options{Catalog: catalog})
	catalog[0].Name = "changed"

	name, ok := s.Tests().NextName()
	require.True(t, ok)
	assert.Equal(t, "first", name)
}

func TestRunner_LedgerAccumulatesAcrossTests(t *testing.T) {
	catalog := []Pattern{
		{Name: "a", Run: mismatchFirstWord},
		{Name: "b", Run: mismatchFirstWord},
	}
	s, _ := openTestSession(t, 64, Options{Catalog: catalog})

	for res := range s.Tests().All() {
		assert.Equal(t, 1, res.Errors, res.Name)
	}

	errs := s.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, uint32(2), errs[s.Base()])
	assert.Equal(t, uint64(2), s.ErrorCount())
}

func TestRunner_AllStopsEarly(t *testing.T) {
	s, _ := openTestSession(t, 256, Options{})
	r := s.Tests()

	n := 0
	for range r.All() {
		n++
		if n == 3 {
			break
		}
	}

	assert.Equal(t, 3, n)
	assert.Equal(t, 7, r.Remaining())
	name, ok := r.NextName()
	require.True(t, ok)
	assert.Equal(t, "SUB", name)
}

func TestRunner_StopsAfterClose(t *testing.T) {
	s, _ := openTestSession(t, 256, Options{})
	r := s.Tests()

	_, ok := r.Next()
	require.True(t, ok)
	require.NoError(t, s.Close())

	_, ok = r.Next()
	assert.False(t, ok)
	_, ok = r.NextName()
	assert.False(t, ok)
	assert.Zero(t, r.Remaining())
}
