/*
* Driver configuration module
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

package driver

// Mode selects between the two assessment modes of spec.md §6.
type Mode int

const (
	// InitialEntropy computes H_I per SP 800-90B §3.1.3 (the default).
	InitialEntropy Mode = iota
	// Conditioned computes h' per §3.1.5.2, using only the bitstring
	// domain.
	Conditioned
)

// Config is the driver's configuration surface, spec.md §6.
type Config struct {
	Mode Mode
	// AllBits, if false, truncates the bitstring used for H_bitstring
	// to sample.MinSize bits.
	AllBits bool
	// WordSize, if 0, is inferred from the data.
	WordSize int
	// Verbose >= 2 runs internal/diagnostics and adds the results to the
	// Report. Per-estimator values are logged at every level.
	Verbose int
	// BinaryChiSquare enables the §11.4 conformance extension (4-cell
	// contingency table) when the alphabet is binary. Default false
	// matches the reference implementation's stubbed-out binary
	// branch.
	BinaryChiSquare bool
}

// DefaultConfig mirrors the reference tool's defaults: initial entropy
// mode, all bits used, word size inferred.
func DefaultConfig() Config {
	return Config{Mode: InitialEntropy, AllBits: true}
}
