package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/warp/compound-engine/config"
	"github.com/warp/compound-engine/generic"
	"github.com/warp/compound-engine/logging"
	"github.com/warp/compound-engine/savings"
)

// options is shared by the root command and its subcommands.
type options struct {
	cfgFile   string
	logLevel  string
	logFormat string

	days   int
	months int
	years  int
	start  string
	ledger bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "compound [principal apy]",
		Short: "Daily-compounding savings calculator",
		Long: `compound projects a deposit compounded daily at an APY.

The maturity date is the start date (today unless --start is given) plus
the --year, --month and --day offsets. Each day the interest on the running
balance is rounded to the cent and credited.

APYs above the configured percent threshold (0.25 by default) are read as
whole-number percentages, so "2" and "0.02" both mean 2%.

Without arguments the built-in self-test runs.`,
		Example: `  compound -y 1 1000 2
  compound --start 2021-02-03 -m 18 --ledger 1000 0.02`,
		Args:              quoteArgs,
		PersistentPreRunE: o.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 0 {
				return o.runSelfTest(cmd.OutOrStdout())
			}
			return o.runQuote(cmd.OutOrStdout(), args[0], args[1])
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file, .toml or .yaml (default: $"+config.EnvVar+")")
	pf.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.StringVar(&o.logFormat, "log-format", "", "log format: text or json")

	f := root.Flags()
	f.IntVarP(&o.days, "day", "d", 0, "days to add to the start date")
	f.IntVarP(&o.months, "month", "m", 0, "months to add to the start date")
	f.IntVarP(&o.years, "year", "y", 0, "years to add to the start date")
	f.StringVar(&o.start, "start", "", "start date as YYYY-MM-DD (default: today)")
	f.BoolVar(&o.ledger, "ledger", false, "also print every daily credit")

	root.AddCommand(newServeCmd(o), newSelfTestCmd(o), newVersionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func quoteArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("accepts either no arguments or a principal and an APY, received %d", len(args))
	}
	return nil
}

// setup loads configuration and builds the logger. Flags win over the file.
func (o *options) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		o.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if o.logLevel != "" {
		o.cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		o.cfg.Log.Format = o.logFormat
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}
	o.logger = logging.New(o.cfg.Log.Level, o.cfg.Log.Format, cmd.ErrOrStderr())
	o.logger.Debug("configuration loaded", "file", o.cfgFile, "threshold", o.cfg.Savings.Threshold())
	return nil
}

func (o *options) threshold() generic.Rate {
	return generic.NewRate(o.cfg.Savings.Threshold())
}

func (o *options) runQuote(w io.Writer, rawPrincipal, rawAPY string) error {
	principal, err := generic.ParseAmount(rawPrincipal)
	if err != nil {
		return err
	}
	if err := savings.ValidatePrincipal(principal); err != nil {
		return err
	}
	raw, err := generic.ParseRate(rawAPY)
	if err != nil {
		return err
	}
	apy := savings.NormalizeAPY(raw, o.threshold())

	start := generic.Today()
	if o.start != "" {
		if start, err = generic.ParseDate(o.start); err != nil {
			return err
		}
	}

	off := generic.Offset{Days: o.days, Months: o.months, Years: o.years}
	quote, err := savings.NewQuote(principal, apy, start, off)
	if err != nil {
		return err
	}
	o.logger.Debug("quote computed",
		"principal", principal.String(),
		"apy", apy.String(),
		"offset", off.String(),
		"start", start.String(),
		"maturity", quote.Maturity.String())

	fmt.Fprintln(w, quote)

	if o.ledger {
		stmt, err := savings.NewStatement(principal, apy, quote.Start, quote.Maturity)
		if err != nil {
			return err
		}
		printLedger(w, stmt)
	}
	return nil
}

func printLedger(w io.Writer, stmt *savings.Statement) {
	fmt.Fprintf(w, "%-10s  %10s  %14s\n", "date", "credit", "balance")
	for _, e := range stmt.Entries {
		fmt.Fprintf(w, "%-10s  %10s  %14s\n", e.At, "+"+e.Amount.String(), e.Balance)
	}
}
