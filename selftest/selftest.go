/*
Package selftest is the built-in self-test harness of the calculator.

PURPOSE:
  The CLI runs these checks when it is started without a principal and APY,
  so an installed binary can prove its arithmetic without the Go toolchain.
  The harness knows nothing about the checks it runs: callers may pass any
  list, and Checks() is only the default one.

OUTPUT:
  One line per check followed by a summary:

    ok    maturity: leap day advanced by whole years
    FAIL  compound: one year at 2% APY: got 1019.14, want 1019.15
    1 passed, 1 failed

SEE ALSO:
  - checks.go: The default check list
  - cmd/compound/cmd/selftest.go: CLI entry point
*/
package selftest

import (
	"fmt"
	"io"
	"time"
)

// Check is a named assertion. Run returns nil on success.
type Check struct {
	Name string
	Run  func() error
}

// Result records the outcome of a single check.
type Result struct {
	Name     string
	Err      error
	Duration time.Duration
}

func (r Result) Passed() bool { return r.Err == nil }

// Report collects the results of one harness run.
type Report struct {
	Results []Result
}

func (r Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.Passed() {
			n++
		}
	}
	return n
}

func (r Report) Failed() int { return len(r.Results) - r.Passed() }

// OK is true when every check passed.
func (r Report) OK() bool { return r.Failed() == 0 }

// Run executes checks in order, writing one line per check and a summary to
// w. A panicking check is recorded as a failure.
func Run(w io.Writer, checks []Check) Report {
	var report Report
	for _, c := range checks {
		res := runOne(c)
		report.Results = append(report.Results, res)
		if res.Passed() {
			fmt.Fprintf(w, "ok    %s\n", res.Name)
		} else {
			fmt.Fprintf(w, "FAIL  %s: %v\n", res.Name, res.Err)
		}
	}
	fmt.Fprintf(w, "%d passed, %d failed\n", report.Passed(), report.Failed())
	return report
}

func runOne(c Check) (res Result) {
	res.Name = c.Name
	start := time.Now()
	defer func() {
		res.Duration = time.Since(start)
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic: %v", r)
		}
	}()
	res.Err = c.Run()
	return res
}
