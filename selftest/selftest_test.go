package selftest_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/compound-engine/selftest"
)

func TestRun_DefaultChecksPass(t *testing.T) {
	var out bytes.Buffer
	report := selftest.Run(&out, selftest.Checks())

	require.True(t, report.OK(), "self-test output:\n%s", out.String())
	assert.Equal(t, len(selftest.Checks()), report.Passed())
	assert.Zero(t, report.Failed())
	assert.NotContains(t, out.String(), "FAIL")
	assert.True(t, strings.HasSuffix(out.String(), "10 passed, 0 failed\n"), out.String())
}

func TestRun_ReportsFailuresAndPanics(t *testing.T) {
	// GIVEN: A passing, a failing and a panicking check
	// WHEN: Running them
	// THEN: Each outcome is reported and the run keeps going

	checks := []selftest.Check{
		{Name: "passes", Run: func() error { return nil }},
		{Name: "fails", Run: func() error { return errors.New("got 1, want 2") }},
		{Name: "panics", Run: func() error { panic("boom") }},
	}

	var out bytes.Buffer
	report := selftest.Run(&out, checks)

	assert.False(t, report.OK())
	assert.Equal(t, 1, report.Passed())
	assert.Equal(t, 2, report.Failed())
	require.Len(t, report.Results, 3)
	assert.EqualError(t, report.Results[1].Err, "got 1, want 2")
	assert.EqualError(t, report.Results[2].Err, "panic: boom")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{
		"ok    passes",
		"FAIL  fails: got 1, want 2",
		"FAIL  panics: panic: boom",
		"1 passed, 2 failed",
	}, lines)
}

func TestRun_EmptyListIsOK(t *testing.T) {
	var out bytes.Buffer
	report := selftest.Run(&out, nil)
	assert.True(t, report.OK())
	assert.Equal(t, "0 passed, 0 failed\n", out.String())
}
