/*
 * bridge.go, part of gochem.
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
	chem "github.com/rmera/gbchem"
	v3 "github.com/rmera/gbchem/v3"
	"go.uber.org/zap"
)

const (
	ErrNilEngine      = chem.PanicMsg("gbsa: No engine given")
	ErrNotInitialized = chem.PanicMsg("gbsa: Engine not initialized")
	ErrNoSetup        = chem.PanicMsg("gbsa: Compute called before Setup")
	ErrAtomCount      = chem.PanicMsg("gbsa: Number of atoms changed or doesn't match the engine")
)

// Bridge connects a host simulation, working in nm, kJ/mol and single precision,
// with an implicit-solvent Engine. Setup is called once, then Compute once per step.
// A Bridge is not safe for concurrent use.
type Bridge struct {
	engine  Engine
	log     *zap.Logger
	mol     Source
	setup   bool
	natoms  int //-1 until the first Compute
	coords  *v3.Matrix
	forces  *v3.Matrix
	charges []float64
}

// NewBridge returns a bridge to the engine e. It panics if e is nil.
func NewBridge(e Engine, lg *zap.Logger) *Bridge {
	if e == nil {
		panic(ErrNilEngine)
	}
	return &Bridge{engine: e, log: chem.LoggerOrNop(lg)}
}

// Setup reads the radius file in opts, builds the parameters for mol
// and gives them to the engine. A radius file that can't be read is fatal:
// the error is logged and Setup panics with it.
func (B *Bridge) Setup(mol Source, opts Options) error {
	radii, err := ReadRadiusFile(opts.RadiusFile, B.log)
	if err != nil {
		B.log.Error("can't read radius file", zap.String("file", opts.RadiusFile), zap.Error(err))
		panic(err)
	}
	return B.SetupWithRadii(mol, radii, opts)
}

// SetupWithRadii is like Setup, but takes the radius table already read.
func (B *Bridge) SetupWithRadii(mol Source, radii RadiusTable, opts Options) error {
	P := BuildParameters(mol, radii, opts, B.log)
	B.log.Info("implicit solvent parameters", zap.Stringer("parameters", P))
	if err := B.engine.SetParameters(P.Transfer()); err != nil {
		return chem.NewError("Engine rejected the parameters", true, err, "Bridge.SetupWithRadii")
	}
	B.mol = mol
	B.setup = true
	//a new setup means new step buffers.
	B.natoms = -1
	B.coords, B.forces, B.charges = nil, nil, nil
	return nil
}

// lazy allocation of the step buffers. The atom count is fixed from here on.
// With no atoms there is nothing to allocate.
func (B *Bridge) allocate() {
	n := B.engine.NumberOfAtoms()
	q := B.mol.Charges()
	if len(q) != n {
		B.log.Error("atom count mismatch", zap.Int("engine", n), zap.Int("topology", len(q)))
		panic(ErrAtomCount)
	}
	B.natoms = n
	if n == 0 {
		B.log.Warn("engine reports no atoms")
		return
	}
	B.coords = v3.Zeros(n)
	B.forces = v3.Zeros(n)
	B.charges = make([]float64, n)
	copy(B.charges, q)
}

// Compute converts coords (nm) to A, obtains the implicit-solvent forces from the
// engine, and adds them to forces, in host units. Forces are accumulated:
// callers must zero forces if they want only this contribution. The energy is
// returned as the engine reports it. Compute panics if the engine is not initialized,
// if Setup has not been called, if the engine fails, or if the number of atoms is not
// the one seen on the first call. With no atoms, Compute does nothing and returns 0.
func (B *Bridge) Compute(coords [][3]float32, forces [][3]float32) float64 {
	if !B.engine.Initialized() {
		B.log.Error("compute called with an uninitialized engine")
		panic(ErrNotInitialized)
	}
	if !B.setup {
		B.log.Error("compute called before setup")
		panic(ErrNoSetup)
	}
	if B.natoms < 0 {
		B.allocate()
	}
	n := B.natoms
	if len(coords) != n || len(forces) != n {
		B.log.Error("atom count mismatch", zap.Int("expected", n), zap.Int("coords", len(coords)), zap.Int("forces", len(forces)))
		panic(ErrAtomCount)
	}
	if n == 0 {
		return 0
	}
	B.coords.SetFromFloat32(coords, ToEngineLength)
	B.forces.Zero()
	energy, err := B.engine.ComputeForces(B.coords, B.charges, B.forces, false)
	if err != nil {
		B.log.Error("engine failed", zap.Error(err))
		panic(err)
	}
	B.forces.AddToFloat32(forces, ToHostForce)
	return energy
}
