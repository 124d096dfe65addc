/*
* Entropy assessment command
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Command entropyassess runs the SP 800-90B §6.3 non-IID min-entropy
// estimator battery over one or more sample files. Flag surface
// translates the reference tool's ea_non_iid options (see
// original_source/cpp/non_iid_main.cpp's print_usage); CLI idiom
// (package-level flag vars, custom flag.Usage, flag.Parse then
// positional args) is grounded on fumin/ctw's compress/main.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/driver"
	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/poolrunner"
	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/report"
	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/sample"
)

var (
	initialFlag    = flag.Bool("i", true, "initial entropy estimate (default)")
	conditionedFlag = flag.Bool("c", false, "conditioned sequential dataset entropy estimate")
	allBitsFlag    = flag.Bool("a", true, "use all read bits for H_bitstring (default)")
	truncateFlag   = flag.Bool("t", false, fmt.Sprintf("truncate the bitstring used for H_bitstring to %d bits", sample.MinSize))
	verboseFlag    = flag.Int("v", 0, "verbosity level (0, 1 or 2)")
	subsetFlag     = flag.String("l", "", "index,samples: read only the index'th slice of the given sample count")
	binChiFlag     = flag.Bool("binary-chisquare", false, "enable the binary-alphabet chi-square conformance extension")
	workersFlag    = flag.Int("workers", 0, "worker pool size (default: number of CPUs)")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file_name> [bits_per_symbol]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := buildConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	path := flag.Arg(0)
	if flag.NArg() >= 2 {
		ws, err := strconv.Atoi(flag.Arg(1))
		if err != nil || ws < 0 || ws > 8 {
			fmt.Fprintln(os.Stderr, "bits_per_symbol must be between 0 and 8")
			os.Exit(1)
		}
		cfg.WordSize = ws
	}

	w := report.New(os.Stdout)

	info, statErr := os.Stat(path)
	if statErr != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(statErr, "stat input"))
		os.Exit(1)
	}

	if info.IsDir() {
		if err := runBatch(path, cfg, w); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := runOne(poolrunner.Unit{Index: 0, Path: path}, cfg, w); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildConfig() (driver.Config, error) {
	cfg := driver.DefaultConfig()
	if *conditionedFlag {
		cfg.Mode = driver.Conditioned
	}
	cfg.AllBits = *allBitsFlag && !*truncateFlag
	cfg.Verbose = *verboseFlag
	cfg.BinaryChiSquare = *binChiFlag
	_ = *initialFlag // -i is the default; -c overrides it above
	return cfg, nil
}

// parseSubset parses the "-l index,samples" flag described in
// non_iid_main.cpp's print_usage.
func parseSubset(s string) (index, size int, err error) {
	if s == "" {
		return -1, 0, nil
	}
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, errors.New("-l expects <index>,<samples>")
	}
	index, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "-l index")
	}
	size, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "-l samples")
	}
	return index, size, nil
}

func runOne(unit poolrunner.Unit, cfg driver.Config, w *report.Writer) error {
	index, size, err := parseSubset(*subsetFlag)
	if err != nil {
		return err
	}

	var buf *sample.Buffer
	if size > 0 {
		buf, err = sample.LoadSubset(unit.Path, cfg.WordSize, index, size)
	} else {
		buf, err = sample.Load(unit.Path, cfg.WordSize)
	}
	if err != nil {
		return errors.Wrapf(err, "unit %s", unit.Path)
	}

	r := driver.Analyze(buf, cfg)
	w.WriteUnit(filepath.Base(unit.Path), r)
	return nil
}

// runBatch iterates every regular file directly under dir through the
// worker pool, matching spec.md §5's "unit of concurrency is the file."
func runBatch(dir string, cfg driver.Config, w *report.Writer) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.Wrap(err, "read batch directory")
	}

	var units []poolrunner.Unit
	for i, e := range entries {
		if e.IsDir() {
			continue
		}
		units = append(units, poolrunner.Unit{Index: i, Path: filepath.Join(dir, e.Name())})
	}

	workers := *workersFlag
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := poolrunner.Run(context.Background(), units, workers, func(u poolrunner.Unit) (driver.Report, error) {
		buf, err := sample.Load(u.Path, cfg.WordSize)
		if err != nil {
			return driver.Report{}, errors.Wrapf(err, "unit %s", u.Path)
		}
		return driver.Analyze(buf, cfg), nil
	})

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintln(os.Stderr, res.Err)
			continue
		}
		w.WriteUnit(filepath.Base(res.Unit.Path), res.Value)
	}
	return nil
}
