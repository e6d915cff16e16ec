// Command vonmises evaluates von Mises distributions from the command line.
//
// Examples:
//
//	vonmises cdf -m 0 -k 4 -- -1 0 1
//	vonmises table -k 2 -n 12 --format csv
//	vonmises eval wind.yaml --domain wrap
//
// VONMISES_TERMS, VONMISES_DOMAIN, VONMISES_FORMAT, VONMISES_LOG_LEVEL and
// VONMISES_CONCURRENCY are read from the environment or from a .env file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		stop()
		os.Exit(1)
	}
}
