package cmd

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/compound-engine/config"
	"github.com/warp/compound-engine/generic"
	"github.com/warp/compound-engine/logging"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

// =============================================================================
// QUOTE
// =============================================================================

func TestQuote_OneYear(t *testing.T) {
	// GIVEN: $1000 at "2" (read as 2%) from 2021-02-03
	// WHEN: Asking for one year, by years and by months
	// THEN: Both print the same quote line

	for _, offset := range [][]string{{"-y", "1"}, {"--month", "12"}} {
		args := append([]string{"--start", "2021-02-03"}, offset...)
		out, _, err := execute(t, append(args, "1000", "2")...)
		require.NoError(t, err)
		assert.Equal(t, "$1000.00 @ 2.00% APY = $1019.15 on 2022-02-03 ($19.15 in interest)\n", out)
	}

	out, _, err := execute(t, "--start", "2021-02-03", "-y", "1", "1000", "0.2")
	require.NoError(t, err)
	assert.Equal(t, "$1000.00 @ 20.00% APY = $1199.99 on 2022-02-03 ($199.99 in interest)\n", out)
}

func TestQuote_DefaultsToToday(t *testing.T) {
	out, _, err := execute(t, "-d", "3", "500", "0.03")
	require.NoError(t, err)
	assert.Contains(t, out, " on "+generic.Today().AddDays(3).String()+" ")
}

func TestQuote_Ledger(t *testing.T) {
	out, _, err := execute(t, "--start", "2020-02-27", "-d", "4", "--ledger", "10000", "5")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6, out)
	assert.True(t, strings.HasPrefix(lines[0], "$10000.00 @ 5.00% APY = "), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "date"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "2020-02-28"), lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "2020-02-29"), lines[3])
	assert.True(t, strings.HasPrefix(lines[5], "2020-03-02"), lines[5])
}

func TestQuote_RejectsBadInput(t *testing.T) {
	for _, tc := range []struct {
		name string
		args []string
	}{
		{"zero principal", []string{"0", "2"}},
		{"negative principal", []string{"--", "-5", "2"}},
		{"principal not a number", []string{"lots", "2"}},
		{"apy not a number", []string{"1000", "two"}},
		{"negative day offset", []string{"-d", "-1", "1000", "2"}},
		{"invalid start", []string{"--start", "2021-02-30", "1000", "2"}},
		{"apy below -1", []string{"-d", "1", "--", "1000", "-2"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.True(t, generic.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func TestQuote_SingleArgumentIsUsageError(t *testing.T) {
	_, _, err := execute(t, "1000")
	assert.ErrorContains(t, err, "received 1")

	_, _, err = execute(t, "1000", "2", "3")
	assert.ErrorContains(t, err, "received 3")
}

func TestQuote_ConfigAndLogFlags(t *testing.T) {
	// GIVEN: A config raising the percent threshold to 1.0
	// WHEN: Passing 0.5 with debug logging
	// THEN: 0.5 is read as 50% and the quote is logged to stderr

	path := filepath.Join(t.TempDir(), "compound.toml")
	require.NoError(t, os.WriteFile(path, []byte("[savings]\npercent_threshold = 1.0\n"), 0o600))

	out, logs, err := execute(t, "--config", path, "--log-level", "debug", "--log-format", "json",
		"--start", "2021-02-03", "-y", "1", "1000", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "@ 50.00% APY")
	assert.Contains(t, logs, `"msg":"quote computed"`)
	assert.Contains(t, logs, `"maturity":"2022-02-03"`)

	_, _, err = execute(t, "--log-level", "loud", "1000", "2")
	assert.ErrorContains(t, err, "unknown log level")

	_, _, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"), "1000", "2")
	assert.ErrorContains(t, err, "config file not found")
}

func TestQuote_ZeroThresholdReadsEveryAPYAsPercent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "compound.toml")
	require.NoError(t, os.WriteFile(path, []byte("[savings]\npercent_threshold = 0.0\n"), 0o600))

	out, _, err := execute(t, "--config", path, "--start", "2021-02-03", "-y", "1", "1000", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "@ 0.50% APY")
}

func TestLogFlags_ValidatedOnEveryCommand(t *testing.T) {
	// GIVEN: Log flags that override the config
	// WHEN: Running a quote, the self-test and serve
	// THEN: The same values are accepted or rejected everywhere

	_, _, err := execute(t, "--log-format", "xml", "1000", "2")
	assert.ErrorContains(t, err, "log.format")

	_, _, err = execute(t, "--log-format", "xml", "selftest")
	assert.ErrorContains(t, err, "log.format")

	_, _, err = execute(t, "--log-level", "loud", "serve")
	assert.ErrorContains(t, err, "log.level")

	out, _, err := execute(t, "--log-level", "warning", "--start", "2021-02-03", "-y", "1", "1000", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "= $1019.15 on 2022-02-03")

	_, _, err = execute(t, "--log-level", "WARNING", "serve", "--port", "70000")
	assert.ErrorContains(t, err, "server.port", "the level passes and the port is what fails")
}

// =============================================================================
// SUBCOMMANDS
// =============================================================================

func TestSelfTest_NoArguments(t *testing.T) {
	out, _, err := execute(t)
	require.NoError(t, err)
	assert.Contains(t, out, "10 passed, 0 failed")
	assert.NotContains(t, out, "FAIL")
}

func TestSelfTest_Subcommand(t *testing.T) {
	out, _, err := execute(t, "selftest")
	require.NoError(t, err)
	assert.Contains(t, out, "ok    compound: one year at 2% and 20% APY")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "compound v"+Version+"\n"), out)
}

func TestServe_RejectsBadPort(t *testing.T) {
	_, _, err := execute(t, "serve", "--port", "70000")
	assert.ErrorContains(t, err, "server.port")
}

func TestRunServer_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() { done <- runServer(ctx, server, logging.Discard(), time.Second) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ReportsListenErrors(t *testing.T) {
	server := &http.Server{Addr: "127.0.0.1:99999", Handler: http.NotFoundHandler()}
	err := runServer(context.Background(), server, logging.Discard(), time.Second)
	assert.Error(t, err)
}
