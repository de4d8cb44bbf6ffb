// Command ipfilter reads log lines from standard input, each beginning with an
// IPv4 address and a tab, and writes four reports to standard output:
//
//  1. every address
//  2. addresses whose first octet is 1
//  3. addresses beginning 46.70
//  4. addresses with any octet equal to 46
//
// Each report lists addresses in descending order, repeating every address as
// many times as it appeared in the input. A malformed address is fatal, and
// nothing is written to standard output.
package main

import (
	"log/slog"
	"os"

	"github.com/bitfield/ipfilter"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if len(os.Args) > 1 {
		logger.Error("ipfilter takes no arguments; it reads standard input", "args", os.Args[1:])
		return 2
	}
	if _, err := ipfilter.Stdin().Reports(ipfilter.DefaultReports...); err != nil {
		logger.Error("ipfilter failed", "err", err)
		return 1
	}
	return 0
}
