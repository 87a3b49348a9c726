/*
main.go - Application entry point

PURPOSE:
  Runs the compound CLI. All behaviour lives in the cmd package so it can be
  executed from tests.

EXAMPLES:
  # $1000 at 2% APY for one year from today
  compound -y 1 1000 2

  # Explicit start date, 18 months, with the daily ledger
  compound --start 2021-02-03 -m 18 --ledger 1000 0.02

  # Run the built-in self-test
  compound

  # Serve the HTTP API
  compound serve --config compound.toml

SEE ALSO:
  - cmd/compound/cmd/root.go: Flags and the quote command
  - cmd/compound/cmd/serve.go: HTTP server with graceful shutdown
*/
package main

import (
	"os"

	"github.com/warp/compound-engine/cmd/compound/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
