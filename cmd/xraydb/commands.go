package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/RoanBrand/xraydb"
	"github.com/RoanBrand/xraydb/config"
	"github.com/RoanBrand/xraydb/materials"
	"github.com/RoanBrand/xraydb/sample"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type options struct {
	json       bool
	configPath string
	energies   []float64
	kind       string
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:           "xraydb",
		Short:         "Query X-ray properties of elements and materials",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&o.json, "json", false, "print results as JSON")
	root.PersistentFlags().StringVar(&o.configPath, "config", "", "config.json with external material catalog sources")

	root.AddCommand(
		o.versionCmd(),
		o.elementCmd(),
		o.muCmd(),
		o.materialCmd(),
		o.materialsCmd(),
		o.f1f2Cmd(),
		o.f0Cmd(),
		o.edgesCmd(),
		o.linesCmd(),
		o.guessCmd(),
		o.comptonCmd(),
		o.ionChamberCmd(),
	)
	return root
}

func (o *options) energyFlags(fs *pflag.FlagSet) {
	fs.Float64SliceVarP(&o.energies, "energy", "e", []float64{10000}, "photon energies in eV")
}

func (o *options) kindFlag(fs *pflag.FlagSet) {
	fs.StringVarP(&o.kind, "kind", "k", "total", "cross-section: photo, coh, incoh or total")
}

// print writes v as JSON, or calls text with a tab aligned writer.
func (o *options) print(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if o.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	text(tw)
	return tw.Flush()
}

func (o *options) catalog() (*materials.Catalog, error) {
	if o.configPath == "" {
		return materials.Default(), nil
	}
	conf, err := config.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	return materials.FromConfig(conf)
}

func openDB() (*xraydb.DB, error) {
	return xraydb.Open()
}

func (o *options) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the dataset version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			v := db.Version()
			return o.print(cmd, struct {
				Tag    string `json:"tag"`
				Date   string `json:"date"`
				Digest string `json:"digest"`
			}{v.Tag, v.Date, db.Digest()}, func(w io.Writer) {
				fmt.Fprintf(w, "dataset\t%s\ndate\t%s\ndigest\t%s\n", v.Tag, v.Date, db.Digest())
			})
		},
	}
}

func (o *options) elementCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "element <symbol|name|Z>",
		Short: "Show an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			el, err := db.Element(args[0])
			if err != nil {
				return err
			}
			return o.print(cmd, el, func(w io.Writer) {
				fmt.Fprintf(w, "Z\t%d\nsymbol\t%s\nname\t%s\nmolar mass\t%g g/mol\n", el.Z, el.Symbol, el.Name, el.MolarMass)
				if el.Density > 0 {
					fmt.Fprintf(w, "density\t%g g/cm^3\n", el.Density)
				}
			})
		},
	}
}

func (o *options) muCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mu <element>",
		Short: "Mass attenuation coefficient of an element (cm^2/g)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			k, err := xraydb.ParseKind(o.kind)
			if err != nil {
				return err
			}
			sym, err := db.Symbol(args[0])
			if err != nil {
				return err
			}
			mu, err := db.CrossSection(sym, o.energies, k)
			if err != nil {
				return err
			}
			rec := &sample.Record{Query: args[0], Formula: sym, Kind: k.String(), Energies: o.energies, Mu: mu}
			return o.print(cmd, rec, func(w io.Writer) { printMu(w, rec, "cm^2/g", nil) })
		},
	}
	o.energyFlags(cmd.Flags())
	o.kindFlag(cmd.Flags())
	return cmd
}

func printMu(w io.Writer, rec *sample.Record, unit string, trans []float64) {
	for _, r := range rec.Results {
		fmt.Fprintf(w, "%s\t%.6f\n", r.Element, r.Value)
	}
	if trans != nil {
		fmt.Fprintf(w, "energy (eV)\tmu %s (%s)\ttransmission\n", rec.Kind, unit)
	} else {
		fmt.Fprintf(w, "energy (eV)\tmu %s (%s)\n", rec.Kind, unit)
	}
	for i, e := range rec.Energies {
		if trans != nil {
			fmt.Fprintf(w, "%g\t%.6g\t%.6g\n", e, rec.Mu[i], trans[i])
		} else {
			fmt.Fprintf(w, "%g\t%.6g\n", e, rec.Mu[i])
		}
	}
}

func (o *options) materialCmd() *cobra.Command {
	var density, thickness float64
	cmd := &cobra.Command{
		Use:   "material <formula|name>",
		Short: "Linear attenuation coefficient of a compound or named material (1/cm)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			k, err := xraydb.ParseKind(o.kind)
			if err != nil {
				return err
			}
			cat, err := o.catalog()
			if err != nil {
				return err
			}
			m, err := xraydb.FindMaterial(cmd.Context(), cat, args[0], density)
			if err != nil {
				return err
			}
			fractions, err := db.MassFractions(m.Formula)
			if err != nil {
				return err
			}
			mu, err := db.MaterialCrossSection(m.Formula, o.energies, m.Density, k)
			if err != nil {
				return err
			}
			rec := &sample.Record{
				Query:    args[0],
				Formula:  m.Formula,
				Density:  m.Density,
				Kind:     k.String(),
				Energies: o.energies,
				Mu:       mu,
				Results:  sample.Results(fractions),
			}
			var trans []float64
			if thickness > 0 {
				trans = rec.Transmission(thickness)
			}
			return o.print(cmd, rec, func(w io.Writer) {
				fmt.Fprintf(w, "formula\t%s\ndensity\t%g g/cm^3\n", rec.Formula, rec.Density)
				printMu(w, rec, "1/cm", trans)
			})
		},
	}
	cmd.Flags().Float64VarP(&density, "density", "d", 0, "density in g/cm^3, overrides the catalog value")
	cmd.Flags().Float64VarP(&thickness, "thickness", "t", 0, "sample thickness in cm, prints the transmission")
	o.energyFlags(cmd.Flags())
	o.kindFlag(cmd.Flags())
	return cmd
}

func (o *options) materialsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "materials",
		Short: "List the material catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := o.catalog()
			if err != nil {
				return err
			}
			all := cat.All(cmd.Context())
			return o.print(cmd, all, func(w io.Writer) {
				fmt.Fprintln(w, "name\tformula\tdensity\tsource")
				for _, m := range all {
					fmt.Fprintf(w, "%s\t%s\t%g\t%s\n", m.Name, m.Formula, m.Density, m.Source)
				}
			})
		},
	}
}

func (o *options) f1f2Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "f1f2 <element>",
		Short: "Anomalous scattering factors f' and f''",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			f1, f2, err := db.AnomalousFactors(args[0], o.energies)
			if err != nil {
				return err
			}
			return o.print(cmd, struct {
				Energies []float64 `json:"energies"`
				F1       []float64 `json:"f1"`
				F2       []float64 `json:"f2"`
			}{o.energies, f1, f2}, func(w io.Writer) {
				fmt.Fprintln(w, "energy (eV)\tf'\tf''")
				for i, e := range o.energies {
					fmt.Fprintf(w, "%g\t%.6g\t%.6g\n", e, f1[i], f2[i])
				}
			})
		},
	}
	o.energyFlags(cmd.Flags())
	return cmd
}

func (o *options) f0Cmd() *cobra.Command {
	var qs []float64
	cmd := &cobra.Command{
		Use:   "f0 <ion>",
		Short: "Elastic form factor f0 of an atom or ion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			f0, err := db.F0(args[0], qs)
			if err != nil {
				return err
			}
			return o.print(cmd, struct {
				Q  []float64 `json:"q"`
				F0 []float64 `json:"f0"`
			}{qs, f0}, func(w io.Writer) {
				fmt.Fprintln(w, "q (1/A)\tf0")
				for i, q := range qs {
					fmt.Fprintf(w, "%g\t%.6g\n", q, f0[i])
				}
			})
		},
	}
	cmd.Flags().Float64SliceVarP(&qs, "q", "q", []float64{0}, "sin(theta)/lambda in 1/Angstrom")
	return cmd
}

func (o *options) edgesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edges <element>",
		Short: "Absorption edges of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			edges, err := db.Edges(args[0])
			if err != nil {
				return err
			}
			labels := make([]string, 0, len(edges))
			for l := range edges {
				labels = append(labels, l)
			}
			sort.Slice(labels, func(i, j int) bool { return edges[labels[i]].Energy > edges[labels[j]].Energy })
			return o.print(cmd, edges, func(w io.Writer) {
				fmt.Fprintln(w, "edge\tenergy (eV)\tyield\tjump ratio")
				for _, l := range labels {
					e := edges[l]
					fmt.Fprintf(w, "%s\t%g\t%.4g\t%.4g\n", l, e.Energy, e.FluorescenceYield, e.JumpRatio)
				}
			})
		},
	}
}

func (o *options) linesCmd() *cobra.Command {
	var initial string
	var excitation float64
	cmd := &cobra.Command{
		Use:   "lines <element>",
		Short: "Emission lines of an element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDB()
			if err != nil {
				return err
			}
			lines, err := db.Lines(args[0], initial, excitation)
			if err != nil {
				return err
			}
			names := make([]string, 0, len(lines))
			for n := range lines {
				names = append(names, n)
			}
			sort.Strings(names)
			return o.print(cmd, lines, func(w io.Writer) {
				fmt.Fprintln(w, "line\tenergy (eV)\tintensity\tlevels")
				for _, n := range names {
					l := lines[n]
					fmt.Fprintf(w, "%s\t%g\t%.4g\t%s-%s\n", n, l.Energy, l.Intensity, l.Initial, l.Final)
				}
			})
		},
	}
	cmd.Flags().StringVar(&initial, "initial", "", "only lines from this initial level")
	cmd.Flags().Float64Var(&excitation, "excitation", 0, "excitation energy in eV, drops lines that cannot be excited")
	return cmd
}

func (o *options) guessCmd() *cobra.Command {
	var labels []string
	cmd := &cobra.Command{
		Use:   "guess <energy>",
		Short: "Find the absorption edge closest to an energy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			energy, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid energy %q: %w", args[0], err)
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			sym, label, ok := db.GuessEdge(energy, labels...)
			if !ok {
				return fmt.Errorf("no %s edge found", strings.Join(labels, "/"))
			}
			return o.print(cmd, map[string]string{"element": sym, "edge": label}, func(w io.Writer) {
				fmt.Fprintf(w, "%s %s\n", sym, label)
			})
		},
	}
	cmd.Flags().StringSliceVar(&labels, "edges", nil, "edge labels to consider (default K,L3,L2,L1,M5)")
	return cmd
}

func (o *options) comptonCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compton <energy>",
		Short: "Mean energies after Compton scattering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			energy, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid energy %q: %w", args[0], err)
			}
			db, err := openDB()
			if err != nil {
				return err
			}
			c := db.ComptonEnergies(energy)
			return o.print(cmd, c, func(w io.Writer) {
				fmt.Fprintf(w, "incident\t%g\nxray 90 deg\t%.6g\nxray mean\t%.6g\nelectron mean\t%.6g\n",
					c.Incident, c.XRay90Deg, c.XRayMean, c.ElectronMean)
			})
		},
	}
}

// parseGases reads "N2=0.8,He=0.2" style gas fills.
func parseGases(specs []string) ([]xraydb.GasFraction, error) {
	gases := make([]xraydb.GasFraction, 0, len(specs))
	for _, s := range specs {
		name, frac, found := strings.Cut(s, "=")
		g := xraydb.GasFraction{Gas: strings.TrimSpace(name), Fraction: 1}
		if found {
			f, err := strconv.ParseFloat(strings.TrimSpace(frac), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid gas fraction %q: %w", s, err)
			}
			g.Fraction = f
		}
		gases = append(gases, g)
	}
	return gases, nil
}

func (o *options) ionChamberCmd() *cobra.Command {
	var gasSpecs []string
	var volts, energy float64
	ch := xraydb.IonChamber{}
	cmd := &cobra.Command{
		Use:   "ionchamber",
		Short: "Photon flux from an ion chamber voltage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gases, err := parseGases(gasSpecs)
			if err != nil {
				return err
			}
			ch.Gases = gases
			db, err := openDB()
			if err != nil {
				return err
			}
			f, err := db.IonChamberFluxes(ch, volts, energy)
			if err != nil {
				return err
			}
			return o.print(cmd, f, func(w io.Writer) {
				fmt.Fprintf(w, "incident\t%.6g\ntransmitted\t%.6g\nphoto\t%.6g\nincoherent\t%.6g\ncoherent\t%.6g\n",
					f.Incident, f.Transmitted, f.Photo, f.Incoherent, f.Coherent)
			})
		},
	}
	fs := cmd.Flags()
	fs.StringSliceVarP(&gasSpecs, "gas", "g", []string{"nitrogen"}, "gas fill as name=fraction")
	fs.Float64Var(&ch.Length, "length", 10, "active length in cm")
	fs.Float64Var(&ch.Sensitivity, "sensitivity", 1e-6, "amplifier sensitivity in A/V")
	fs.BoolVar(&ch.WithCompton, "with-compton", true, "count Compton recoil electrons")
	fs.BoolVar(&ch.BothCarriers, "both-carriers", true, "collect both electrons and ions")
	fs.Float64Var(&volts, "volts", 1, "measured voltage")
	fs.Float64VarP(&energy, "energy", "e", 10000, "photon energy in eV")
	return cmd
}
