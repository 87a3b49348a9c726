package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/warp/compound-engine/selftest"
)

func newSelfTestCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Runs the built-in arithmetic checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return o.runSelfTest(cmd.OutOrStdout())
		},
	}
}

func (o *options) runSelfTest(w io.Writer) error {
	report := selftest.Run(w, selftest.Checks())
	o.logger.Debug("self-test finished", "passed", report.Passed(), "failed", report.Failed())
	if !report.OK() {
		return fmt.Errorf("self-test failed: %d of %d checks", report.Failed(), len(report.Results))
	}
	return nil
}
