/*
 * params.go, part of gochem.
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package gbsa

import (
	"fmt"

	chem "github.com/rmera/gbchem"
	"go.uber.org/zap"
)

const (
	MinSoluteDielectric      = 1.0
	MinSolventDielectric     = 50.0
	DefaultSolventDielectric = 78.3
)

// Options are the settings for the one-time setup of the implicit-solvent engine.
type Options struct {
	RadiusFile        string  //radius parameter file, maybe compressed
	RadiusScale       float64 //all radii read are multiplied by this
	SoluteDielectric  float64
	SolventDielectric float64
	IncludeACE        bool //include the non-polar (ACE) surface term
}

// DefaultOptions returns the options with the usual dielectrics, a radius scale of
// 1 and no radius file.
func DefaultOptions() Options {
	return Options{
		RadiusScale:       1.0,
		SoluteDielectric:  1.0,
		SolventDielectric: DefaultSolventDielectric,
	}
}

// ClampDielectrics returns the solute and solvent dielectrics after the sanity checks:
// a solute dielectric under 1 is taken as 1, and a solvent dielectric under 50
// is replaced by that of water (78.3).
func ClampDielectrics(solute, solvent float64) (float64, float64) {
	if solute < MinSoluteDielectric {
		solute = MinSoluteDielectric
	}
	if solvent < MinSolventDielectric {
		solvent = DefaultSolventDielectric
	}
	return solute, solvent
}

// Parameters are the per-atom and global parameters given to the engine.
type Parameters struct {
	Radii             []float64 //Angstrom
	ScaleFactors      []float64
	SoluteDielectric  float64
	SolventDielectric float64
	IncludeACE        bool
}

// Len returns the number of atoms the parameters are for.
func (P *Parameters) Len() int {
	return len(P.Radii)
}

// Transfer returns a Parameters with the content of P, and leaves P without its per-atom
// buffers. The buffers are not copied: after the call, the returned value is their only owner.
func (P *Parameters) Transfer() *Parameters {
	N := *P
	P.Radii = nil
	P.ScaleFactors = nil
	return &N
}

func (P *Parameters) String() string {
	return fmt.Sprintf("atoms: %d solute dielectric: %.2f solvent dielectric: %.2f ACE: %t", P.Len(), P.SoluteDielectric, P.SolventDielectric, P.IncludeACE)
}

// BuildParameters derives the engine parameters for mol: scale factors from the
// atom masses, radii from radii and the atom types, and the dielectrics from opts,
// after clamping them. Unknown masses and atom types are reported to lg.
func BuildParameters(mol chem.Atomer, radii RadiusTable, opts Options, lg *zap.Logger) *Parameters {
	lg = chem.LoggerOrNop(lg)
	P := new(Parameters)
	P.SoluteDielectric, P.SolventDielectric = ClampDielectrics(opts.SoluteDielectric, opts.SolventDielectric)
	if P.SoluteDielectric != opts.SoluteDielectric || P.SolventDielectric != opts.SolventDielectric {
		lg.Info("dielectrics adjusted", zap.Float64("solute", P.SoluteDielectric), zap.Float64("solvent", P.SolventDielectric))
	}
	P.IncludeACE = opts.IncludeACE
	P.ScaleFactors = chem.ScaleFactors(mol, lg)
	scale := opts.RadiusScale
	if scale == 0 {
		scale = 1
	}
	P.Radii = radii.Radii(mol, scale, lg)
	return P
}
