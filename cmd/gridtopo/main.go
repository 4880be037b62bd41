// Command gridtopo evaluates a scenario document and prints the YAML report.
//
//	gridtopo -scenario islands.yaml
//	gridtopo -scenario islands.yaml.zst -out report.yaml.zst
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/gridtopo/scenario"
)

var errUsage = errors.New("missing -scenario")

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridtopo: ")

	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Print(err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridtopo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		scenarioPath = fs.String("scenario", "", "path to scenario .yaml (optionally .zst or .gz)")
		outPath      = fs.String("out", "", "write the report here instead of stdout (.zst compresses)")
		verbose      = fs.Bool("v", false, "log a summary line per query")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenarioPath == "" {
		fs.Usage()
		return errUsage
	}

	s, err := scenario.Load(*scenarioPath)
	if err != nil {
		return fmt.Errorf("load scenario: %w", err)
	}
	rep, err := scenario.Evaluate(s)
	if err != nil {
		return fmt.Errorf("evaluate %s: %w", *scenarioPath, err)
	}

	if *verbose {
		logger := log.New(stderr, "gridtopo: ", 0)
		logger.Printf("%s %dx%d, %d queries", rep.Topology, rep.Width, rep.Height, len(rep.Results))
		for i, res := range rep.Results {
			logger.Printf("query %d: op=%s present=%t points=%d components=%d",
				i, res.Op, res.Present, len(res.Points), len(res.Components))
		}
	}

	if *outPath != "" {
		if err := rep.WriteFile(*outPath); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}
	return rep.WriteYAML(stdout)
}
