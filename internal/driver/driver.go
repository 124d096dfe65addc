/*
* Driver module
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

// Package driver assembles the pure analysis function that the out-of-
// scope batch driver (spec.md §1, §9) calls per input file: no globals,
// one immutable sample.Buffer in, one Report out. Ordering and the
// H_original/H_bitstring bookkeeping are grounded on
// original_source/cpp/non_iid_main.cpp's func() (SPEC_FULL.md §11.2).
package driver

import (
	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/chisquare"
	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/diagnostics"
	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/estimator"
	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/sample"
)

// Analyze runs the full non-IID estimator battery and chi-square health
// tests over buf and folds the results into a Report.
func Analyze(buf *sample.Buffer, cfg Config) Report {
	initial := cfg.Mode == InitialEntropy
	bstr := buf.BSymbols
	if !cfg.AllBits && len(bstr) > sample.MinSize {
		bstr = bstr[:sample.MinSize]
	}

	r := Report{
		WordSize:  buf.WordSize,
		AlphSize:  buf.AlphSize,
		HOriginal: float64(buf.WordSize),
		HBitstring: 1.0,
	}

	runBitstring := buf.AlphSize > 2 || !initial
	runLiteral := initial
	runBinaryLiteral := initial && buf.AlphSize == 2

	log := func(name, domain string, res estimator.Result, fold *float64) {
		bits, ok := res.Get()
		r.Estimators = append(r.Estimators, EstimatorValue{Name: name, Domain: domain, Entropy: bits, Present: ok})
		*fold = estimator.FoldMin(*fold, res)
	}

	// §6.3.1 Most Common Value
	if runBitstring {
		log("MostCommonValue", "Bitstring", estimator.MostCommonValue(bstr, 2), &r.HBitstring)
	}
	if runLiteral {
		log("MostCommonValue", "Literal", estimator.MostCommonValue(buf.Symbols, buf.AlphSize), &r.HOriginal)
	}

	// §6.3.2 Collision (binary only)
	if runBitstring {
		log("Collision", "Bitstring", estimator.Collision(bstr), &r.HBitstring)
	}
	if runBinaryLiteral {
		log("Collision", "Literal", estimator.Collision(buf.Symbols), &r.HOriginal)
	}

	// §6.3.3 Markov (binary only)
	if runBitstring {
		log("Markov", "Bitstring", estimator.Markov(bstr), &r.HBitstring)
	}
	if runBinaryLiteral {
		log("Markov", "Literal", estimator.Markov(buf.Symbols), &r.HOriginal)
	}

	// §6.3.4 Compression (bitstring whenever the bitstring domain runs;
	// literal when the source alphabet is already binary, per §12
	// decision #2)
	if runBitstring {
		log("Compression", "Bitstring", estimator.Compression(bstr), &r.HBitstring)
	}
	if runBinaryLiteral {
		log("Compression", "Literal", estimator.Compression(buf.Symbols), &r.HOriginal)
	}

	// §6.3.5/§6.3.6 t-Tuple and LRS, sharing one suffix array build
	if runBitstring {
		t, lrs := estimator.TTupleAndLRS(bstr, 2)
		log("TTuple", "Bitstring", t, &r.HBitstring)
		log("LRS", "Bitstring", lrs, &r.HBitstring)
	}
	if runLiteral {
		t, lrs := estimator.TTupleAndLRS(buf.Symbols, buf.AlphSize)
		log("TTuple", "Literal", t, &r.HOriginal)
		log("LRS", "Literal", lrs, &r.HOriginal)
	}

	// §6.3.7 MultiMCW
	if runBitstring {
		log("MultiMCW", "Bitstring", estimator.MultiMCW(bstr, 2), &r.HBitstring)
	}
	if runLiteral {
		log("MultiMCW", "Literal", estimator.MultiMCW(buf.Symbols, buf.AlphSize), &r.HOriginal)
	}

	// §6.3.8 Lag
	if runBitstring {
		log("Lag", "Bitstring", estimator.Lag(bstr, 2), &r.HBitstring)
	}
	if runLiteral {
		log("Lag", "Literal", estimator.Lag(buf.Symbols, buf.AlphSize), &r.HOriginal)
	}

	// §6.3.9 MultiMMC
	if runBitstring {
		log("MultiMMC", "Bitstring", estimator.MultiMMC(bstr, 2), &r.HBitstring)
	}
	if runLiteral {
		log("MultiMMC", "Literal", estimator.MultiMMC(buf.Symbols, buf.AlphSize), &r.HOriginal)
	}

	// §6.3.10 LZ78Y
	if runBitstring {
		log("LZ78Y", "Bitstring", estimator.LZ78Y(bstr, 2), &r.HBitstring)
	}
	if runLiteral {
		log("LZ78Y", "Literal", estimator.LZ78Y(buf.Symbols, buf.AlphSize), &r.HOriginal)
	}

	// §5.2 Chi-square health tests (literal domain; binary conformance
	// extension behind cfg.BinaryChiSquare per SPEC_FULL.md §11.4).
	if buf.AlphSize > 2 {
		if ind, ok := chisquare.Independence(buf.Symbols, buf.AlphSize); ok {
			r.Independence = &ind
		}
		if gof, ok := chisquare.GoodnessOfFit(buf.Symbols, buf.AlphSize); ok {
			r.GoodnessOfFit = &gof
		}
	} else if cfg.BinaryChiSquare {
		if ind, ok := chisquare.IndependenceBinary(buf.Symbols); ok {
			r.Independence = &ind
		}
		if gof, ok := chisquare.GoodnessOfFitBinary(buf.Symbols); ok {
			r.GoodnessOfFit = &gof
		}
	}

	// Diagnostics (SPEC_FULL.md §11.5): verbose-only, never folded into
	// HAssessed.
	if cfg.Verbose >= 2 {
		ks := diagnostics.KolmogorovSmirnov(buf.Symbols, buf.AlphSize)
		autocorr, _ := diagnostics.Autocorrelation(bstr, 1<<16)
		r.Diagnostics = &Diagnostics{
			ShannonEntropy:    diagnostics.ShannonEntropy(buf.Symbols, buf.AlphSize),
			KSStatistic:       ks.Statistic,
			KSMaxDiffPosition: ks.MaxDiffPosition,
			Autocorrelation:   autocorr,
		}
	}

	r.HAssessed = assess(r, buf.WordSize, buf.AlphSize, initial)
	return r
}

// assess folds H_original/H_bitstring into the final value, mirroring
// non_iid_main.cpp's final block.
func assess(r Report, wordSize, alphSize int, initial bool) float64 {
	assessed := float64(wordSize)
	if alphSize > 2 || !initial {
		v := r.HBitstring * float64(wordSize)
		if v < assessed {
			assessed = v
		}
	}
	if initial {
		if r.HOriginal < assessed {
			assessed = r.HOriginal
		}
	} else {
		assessed = r.HBitstring * float64(wordSize)
	}
	return assessed
}
