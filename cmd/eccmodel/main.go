// Copyright (c) 2017 Temple3x (temple3x@gmail.com)
//
// Use of this source code is governed by the MIT License
// that can be found in the LICENSE file.

// eccmodel simulates Reed-Solomon error correction with random,
// exhaustive and DRAM subarray fault model trials and writes CSV.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/op/go-logging"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	reedsolomon "github.com/templexxx/rsecc"
	"github.com/templexxx/rsecc/faultmodel"
	"github.com/templexxx/rsecc/sim"
)

var log = logging.MustGetLogger("rsecc/eccmodel")

type codeList []string

func (c *codeList) String() string { return strings.Join(*c, " ") }

func (c *codeList) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func setupLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	format := logging.MustStringFormatter(`%{time:15:04:05.000} %{module} %{level:.4s} %{message}`)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(lvl, "")
	logging.SetBackend(leveled)
	return nil
}

func run(s *sim.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := setupLogging(s.LogLevel); err != nil {
		return err
	}
	codes, err := sim.SelectCodes(s.Codes)
	if err != nil {
		return err
	}
	log.Infof("mode: %s, seed: %d, codes: %v, cpu: %s", s.Mode, s.SeedValue(), codes, reedsolomon.CPUFeature())

	if s.Mode == sim.ModeFaultModel {
		dist, err := s.Distribution()
		if err != nil {
			return err
		}
		// Keep stdout for CSV.
		if err = dist.WriteSummary(os.Stderr); err != nil {
			return err
		}
	}

	results := make([][][]string, len(codes))
	var g errgroup.Group
	for i := range codes {
		i := i
		g.Go(func() error {
			start := time.Now()
			rows, err := sim.Run(codes[i], s)
			if err != nil {
				return errors.Wrapf(err, "rs(%s)", codes[i])
			}
			results[i] = rows
			log.Infof("rs(%s) done in %s", codes[i], time.Since(start))
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	var rows [][]string
	for _, r := range results {
		rows = append(rows, r...)
	}
	if s.Mode == sim.ModeFaultModel {
		return sim.WriteFaultModelCSV(rows, s.CSVOut)
	}
	return sim.WriteCSV(rows, s.CSVOut)
}

// parseSettings builds the run settings from args: defaults, then the
// -config file, then the flags given explicitly.
func parseSettings(args []string) (*sim.Settings, error) {
	s := sim.DefaultSettings()
	fs := flag.NewFlagSet("eccmodel", flag.ContinueOnError)

	var codes codeList
	configFile := fs.String("config", "", "YAML configuration file, flags override it")
	mode := fs.String("mode", s.Mode, "random: uniform random faults; exhaustive: all single-symbol patterns; fault-model: DRAM subarray fault distribution")
	trials := fs.Int("trials", s.Trials, "number of trials per code (ignored by exhaustive mode)")
	seed := fs.Int64("seed", 0, "PRNG seed (default: picked from the clock)")
	numErrors := fs.Int("errors", s.Errors, "number of error symbols per trial (random mode only)")
	reuseEvery := fs.Int("reuse-every", s.ReuseEvery, "reuse message for this many trials")
	csvOut := fs.String("csv-out", s.CSVOut, "output CSV path or - for stdout")
	fs.Var(&codes, "rs-codes", "restrict to code n,k; may be repeated (default: 34,32 36,32 68,64 72,64)")
	dist := fs.String("dist", s.Dist, "fault distribution 1BIT,1SYM,2SYM,4SYM,OTHER")
	correlated := fs.Bool("correlated", s.Correlated, "enable correlated data/parity faults")
	contiguous := fs.Bool("contiguous", s.Contiguous, "treat non-contiguous corrected positions as silent corruption")
	verbose := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *configFile != "" {
		if err := sim.LoadSettings(*configFile, s); err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			s.Mode = *mode
		case "trials":
			s.Trials = *trials
		case "seed":
			v := *seed
			s.Seed = &v
		case "errors":
			s.Errors = *numErrors
		case "reuse-every":
			s.ReuseEvery = *reuseEvery
		case "csv-out":
			s.CSVOut = *csvOut
		case "rs-codes":
			s.Codes = codes
		case "dist":
			s.Dist = *dist
		case "correlated":
			s.Correlated = *correlated
		case "contiguous":
			s.Contiguous = *contiguous
		case "v":
			if *verbose {
				s.LogLevel = "DEBUG"
			}
		}
	})
	return s, nil
}

func main() {
	s, err := parseSettings(os.Args[1:])
	if err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(2)
	}

	if err = run(s); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Cause(err) == faultmodel.ErrIllegalDist {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
