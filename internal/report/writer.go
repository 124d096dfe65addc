/*
* Report writer module
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

// Package report implements the per-unit log writer: one shared sink,
// serialized per file, producing the canonical-order value lines plus a
// terminator record described in spec.md §6 and resolved concretely in
// SPEC_FULL.md §11.6. Grounded on the teacher's main.go
// (fileNormalLogger/fileErrorLogger built via log.New) and
// non_iid_main.cpp's log_to_file.
package report

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/ajit1433/SP800-90B-EntropyAssessment/internal/driver"
)

const terminator = "---"

// Writer serializes per-unit log appends across concurrent analysis
// units (spec.md §5: "the log writer is the only shared sink and must
// serialise appends per file").
type Writer struct {
	mu     sync.Mutex
	logger *log.Logger
}

// New builds a Writer around handle, matching the teacher's
// log.New(handle, "", log.LstdFlags) construction.
func New(handle io.Writer) *Writer {
	return &Writer{logger: log.New(handle, "", log.LstdFlags)}
}

// WriteUnit appends one unit's results: one %.17g value per estimator in
// canonical order, the assessed value, then a terminator line.
func (w *Writer) WriteUnit(unitName string, r driver.Report) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.logger.Printf("unit=%s word_size=%d alph_size=%d", unitName, r.WordSize, r.AlphSize)
	for _, e := range r.Estimators {
		if !e.Present {
			w.logger.Printf("%s[%s] = absent", e.Name, e.Domain)
			continue
		}
		w.logger.Printf("%s[%s] = %s", e.Name, e.Domain, formatFloat(e.Entropy))
	}
	if r.Independence != nil {
		w.logger.Printf("ChiSquareIndependence T=%s df=%d cutoff=%s pass=%t",
			formatFloat(r.Independence.Statistic), r.Independence.DF, formatFloat(r.Independence.Cutoff), r.Independence.Pass)
	}
	if r.GoodnessOfFit != nil {
		w.logger.Printf("ChiSquareGoodnessOfFit T=%s df=%d cutoff=%s pass=%t",
			formatFloat(r.GoodnessOfFit.Statistic), r.GoodnessOfFit.DF, formatFloat(r.GoodnessOfFit.Cutoff), r.GoodnessOfFit.Pass)
	}
	if r.Diagnostics != nil {
		w.logger.Printf("Diagnostics shannon=%s ks=%s ks_pos=%d autocorr=%s",
			formatFloat(r.Diagnostics.ShannonEntropy), formatFloat(r.Diagnostics.KSStatistic),
			r.Diagnostics.KSMaxDiffPosition, formatFloat(r.Diagnostics.Autocorrelation))
	}
	w.logger.Printf("h_assessed = %s", formatFloat(r.HAssessed))
	w.logger.Println(terminator)
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.17g", f)
}
