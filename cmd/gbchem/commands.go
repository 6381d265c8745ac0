/*
 * commands.go, part of gochem.
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

package main

import (
	"fmt"
	"strings"

	chem "github.com/rmera/gbchem"
	"github.com/rmera/gbchem/atomid"
	"github.com/rmera/gbchem/biotype"
	"github.com/rmera/gbchem/chemplot"
	"github.com/rmera/gbchem/gbsa"
	"github.com/rmera/gbchem/top"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// app holds what the subcommands share, once the configuration is loaded.
type app struct {
	configFile string
	cfg        *Config
	log        *zap.Logger
}

func newRootCmd() *cobra.Command {
	A := &app{}
	root := &cobra.Command{
		Use:           "gbchem",
		Short:         "biotypes, bonds and implicit-solvent parameters for Gromacs topologies",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(A.configFile, cmd)
			if err != nil {
				return err
			}
			lg, err := NewLogger(cfg.Log)
			if err != nil {
				return err
			}
			A.cfg, A.log = cfg, lg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if A.log != nil {
				A.log.Sync()
			}
		},
	}
	d := DefaultConfig()
	pf := root.PersistentFlags()
	pf.StringVar(&A.configFile, "config", "", "config file (yaml)")
	pf.String("force-field", d.ForceField, "biotype table: amber or amoeba")
	pf.String("biotype-file", "", "biotype table file, replaces the built-in one")
	pf.String("radius-file", "", "atomic radius parameter file")
	pf.Float64("radius-scale", d.RadiusScale, "factor for all radii")
	pf.Float64("solute-dielectric", d.SoluteDielectric, "solute dielectric constant")
	pf.Float64("solvent-dielectric", d.SolventDielectric, "solvent dielectric constant")
	pf.Bool("ace", d.IncludeACE, "include the non-polar (ACE) term")
	pf.StringSlice("define", nil, "defines for #ifdef blocks in topologies")
	pf.Bool("follow-includes", false, "read #include'd topology files")
	pf.String("log-level", d.Log.Level, "log level")
	pf.String("log-format", d.Log.Format, "log format: console or json")

	root.AddCommand(A.biotypesCmd(), A.bondsCmd(), A.xyzCmd(), A.distancesCmd(), A.radiiCmd(), A.residuesCmd())
	return root
}

func (A *app) readTop(name string) (*chem.Topology, error) {
	T, err := top.ReadFile(name, A.cfg.TopOptions(A.log))
	if err != nil {
		return nil, err
	}
	A.log.Debug("topology read", zap.String("file", name), zap.Stringer("topology", T))
	return T, nil
}

func (A *app) resolver() (*biotype.Resolver, error) {
	if A.cfg.BiotypeFile != "" {
		t, err := biotype.ReadTableFile(A.cfg.BiotypeFile)
		if err != nil {
			return nil, err
		}
		return biotype.NewResolverWith(biotype.NewResidueNames(biotype.DefaultResidueEntries()), t, A.log), nil
	}
	ff, err := biotype.ParseForceField(A.cfg.ForceField)
	if err != nil {
		return nil, err
	}
	return biotype.NewResolver(ff, A.log)
}

type biotypeRow struct {
	Index         int    `yaml:"index"`
	Residue       string `yaml:"residue"`
	TinkerResidue string `yaml:"tinker_residue"`
	Atom          string `yaml:"atom"`
	TinkerAtom    string `yaml:"tinker_atom"`
	Biotype       int    `yaml:"biotype"`
}

func (A *app) biotypesCmd() *cobra.Command {
	var asYAML bool
	c := &cobra.Command{
		Use:   "biotypes <topology>",
		Short: "print the biotype of each atom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			T, err := A.readTop(args[0])
			if err != nil {
				return err
			}
			R, err := A.resolver()
			if err != nil {
				return err
			}
			as := R.Biotypes(T)
			rows := make([]biotypeRow, as.Len())
			for i := range rows {
				rows[i] = biotypeRow{i + 1, as.Residues[i], as.TinkerResidue[i], T.AtomName(i), as.AtomNames[i], as.Biotypes[i]}
			}
			w := cmd.OutOrStdout()
			if asYAML {
				e := yaml.NewEncoder(w)
				defer e.Close()
				return e.Encode(rows)
			}
			for _, r := range rows {
				fmt.Fprintf(w, "%6d %-6s %-20s %-5s %-5s %6d\n", r.Index, r.Residue, r.TinkerResidue, r.Atom, r.TinkerAtom, r.Biotype)
			}
			if u := as.Unresolved(); len(u) > 0 {
				A.log.Warn("atoms without biotype", zap.Int("count", len(u)))
			}
			return nil
		},
	}
	c.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of a table")
	return c
}

func (A *app) bondsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bonds <topology>",
		Short: "print the covalent bonds of each atom",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			T, err := A.readTop(args[0])
			if err != nil {
				return err
			}
			B, nerr := chem.CovalentBonds(T.Len(), T, A.log)
			ids := atomid.New(T)
			ids.EnsureCapacity(T.Len())
			w := cmd.OutOrStdout()
			for i := 0; i < T.Len(); i++ {
				n := B.Neighbors(i)
				s := make([]string, len(n))
				for j, v := range n {
					s[j] = fmt.Sprint(v + 1)
				}
				fmt.Fprintf(w, "%6d %s: %s\n", i+1, ids.Label(i, 14), strings.Join(s, " "))
			}
			fmt.Fprintf(w, "bonds: %d molecules: %d errors: %d\n", B.NBonds(), len(B.Molecules()), nerr)
			return nil
		},
	}
}

func (A *app) xyzCmd() *cobra.Command {
	var out, label string
	c := &cobra.Command{
		Use:   "xyz <topology> <coords.xyz>",
		Short: "write a Tinker XYZ file with biotypes and connectivity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			T, err := A.readTop(args[0])
			if err != nil {
				return err
			}
			coords, err := chem.ReadTinkerXYZFile(args[1], T.Len())
			if err != nil {
				return err
			}
			R, err := A.resolver()
			if err != nil {
				return err
			}
			as := R.Biotypes(T)
			B, _ := chem.CovalentBonds(T.Len(), T, A.log)
			if out == "" {
				return chem.WriteTinkerXYZ(cmd.OutOrStdout(), coords, label, as.AtomNames, as.Biotypes, B)
			}
			f, err := chem.CreateFile(out)
			if err != nil {
				return err
			}
			if err = chem.WriteTinkerXYZ(f, coords, label, as.AtomNames, as.Biotypes, B); err != nil {
				f.Close()
				return err
			}
			//compressed files are only complete once closed.
			return f.Close()
		},
	}
	c.Flags().StringVarP(&out, "output", "o", "", "output file, stdout if not given")
	c.Flags().StringVar(&label, "label", "gbchem", "title for the XYZ header")
	return c
}

func (A *app) distancesCmd() *cobra.Command {
	var atom int
	c := &cobra.Command{
		Use:   "distances <topology> <coords.xyz>",
		Short: "print the squared distance (nm^2) from one atom to every atom",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			T, err := A.readTop(args[0])
			if err != nil {
				return err
			}
			if atom < 1 || atom > T.Len() {
				return fmt.Errorf("atom %d out of range, the topology has %d atoms", atom, T.Len())
			}
			coords, err := chem.ReadTinkerXYZFile(args[1], T.Len())
			if err != nil {
				return err
			}
			d := coords.DistancesSquaredFrom(atom - 1)
			ids := atomid.New(T)
			ids.EnsureCapacity(T.Len())
			w := cmd.OutOrStdout()
			for i, v := range d {
				fmt.Fprintf(w, "%6d %s %12.6f\n", i+1, ids.Label(i, 14), v)
			}
			return nil
		},
	}
	c.Flags().IntVar(&atom, "atom", 1, "1-based index of the reference atom")
	return c
}

func (A *app) radiiCmd() *cobra.Command {
	var plotname string
	var bins int
	var types bool
	c := &cobra.Command{
		Use:   "radii <topology>",
		Short: "print the implicit-solvent parameters of a topology",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if A.cfg.RadiusFile == "" {
				return fmt.Errorf("a radius file is needed (--radius-file or radius_file)")
			}
			T, err := A.readTop(args[0])
			if err != nil {
				return err
			}
			radii, err := gbsa.ReadRadiusFile(A.cfg.RadiusFile, A.log)
			if err != nil {
				return err
			}
			P := gbsa.BuildParameters(T, radii, A.cfg.GBOptions(), A.log)
			w := cmd.OutOrStdout()
			if types {
				fmt.Fprint(w, gbsa.AtomTypesString(T))
			}
			fmt.Fprintln(w, P)
			fmt.Fprintln(w, "radii:", gbsa.Summarize(P.Radii))
			fmt.Fprintln(w, "scale factors:", gbsa.Summarize(P.ScaleFactors))
			if plotname != "" {
				err = chemplot.Histograms(chemplot.ByElement(T, P.Radii), bins, "Implicit solvent radii", "Radius (A)", plotname)
				if err != nil {
					return err
				}
			}
			return nil
		},
	}
	c.Flags().StringVar(&plotname, "plot", "", "save a histogram of the radii in this file (png, svg, pdf)")
	c.Flags().IntVar(&bins, "bins", 20, "bins for the histogram")
	c.Flags().BoolVar(&types, "types", false, "list the atom types")
	return c
}

func (A *app) residuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "residues",
		Short: "print the residue name dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			R, err := A.resolver()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), R.ResidueNames())
			return nil
		},
	}
}
