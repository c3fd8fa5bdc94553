// Command keplerjobs generates HTCondor submission files for a batch
// of light-curve processing jobs.
//
// Usage:
//
//	keplerjobs <path_to_infile> <path_to_configfile>
//
// The infile lists one light-curve entry per line; the config is a
// YAML pipeline description. Output is written to the current
// directory: condor_input/, condor_output/ and submit_all.sh.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ivanmladek/cloud-kepler/condor"
	"github.com/ivanmladek/cloud-kepler/flowlog"
)

func run(infile, configfile string) error {
	l := flowlog.Must()
	defer func() { _ = l.Sync() }()

	cfg, err := condor.LoadConfig(configfile)
	if err != nil {
		return err
	}

	if err := condor.Generate(infile, cfg, "."); err != nil {
		return err
	}

	l.Info("submission files written",
		zap.String("infile", infile),
		zap.String("executable", cfg.Executable))
	return nil
}

func main() {
	flag.Parse()

	if len(flag.Args()) != 2 {
		fmt.Fprintf(os.Stderr, "usage: keplerjobs <path_to_infile> <path_to_configfile>\n")
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		fmt.Fprintf(os.Stderr, "keplerjobs: %v\n", err)
		os.Exit(1)
	}
}
