package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/comalice/circstatx"
	"github.com/comalice/circstatx/internal/primitives"
	"github.com/comalice/circstatx/internal/production"
)

// app carries the state shared by subcommands once PersistentPreRunE ran.
type app struct {
	cfg    Config
	log    *logrus.Logger
	format production.Format

	envFile  string
	terms    int
	domain   string
	fmtFlag  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "vonmises",
		Short: "Evaluate von Mises distributions",
		Long: `vonmises evaluates the CDF and PDF of the von Mises distribution,
the circular analogue of the normal distribution, from flags or from
parameter-set files (JSON or YAML).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.envFile, "env-file", ".env", "dotenv file loaded before reading VONMISES_* variables")
	pf.IntVar(&a.terms, "terms", circstatx.DefaultTerms, "series truncation order")
	pf.StringVar(&a.domain, "domain", "reject", "handling of |x-μ| > π: reject, wrap or unbounded")
	pf.StringVar(&a.fmtFlag, "format", "text", "table output format: text, csv or json")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level")

	root.AddCommand(a.pointCmd("cdf"), a.pointCmd("pdf"), a.tableCmd(), a.evalCmd())
	return root
}

// setup merges env config and explicitly set flags.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.envFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("terms") {
		cfg.Terms = a.terms
	}
	if flags.Changed("domain") {
		cfg.Domain = a.domain
	}
	if flags.Changed("format") {
		cfg.Format = a.fmtFlag
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	a.format, err = production.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	a.log.WithFields(logrus.Fields{
		"terms":  cfg.Terms,
		"domain": cfg.Domain,
		"format": a.format,
	}).Debug("configuration loaded")
	return nil
}

func (a *app) evaluator(extra ...circstatx.Option) (*circstatx.Evaluator, error) {
	opts, err := a.cfg.Options()
	if err != nil {
		return nil, err
	}
	return circstatx.NewEvaluator(append(opts, extra...)...), nil
}

func distributionFlags(cmd *cobra.Command, location, concentration *float64) {
	cmd.Flags().Float64VarP(location, "location", "m", 0, "location μ")
	cmd.Flags().Float64VarP(concentration, "concentration", "k", 1, "concentration κ (> 0)")
}

// pointCmd builds the cdf and pdf subcommands, which print one value per argument.
func (a *app) pointCmd(kind string) *cobra.Command {
	var location, concentration float64
	cmd := &cobra.Command{
		Use:   kind + " X...",
		Short: fmt.Sprintf("Print the %s at each X", kind),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vm, err := circstatx.New(location, concentration)
			if err != nil {
				return err
			}
			ev, err := a.evaluator()
			if err != nil {
				return err
			}

			xs := make([]float64, len(args))
			for i, arg := range args {
				if xs[i], err = strconv.ParseFloat(arg, 64); err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
			}

			batch := ev.CDFBatch
			if kind == "pdf" {
				batch = ev.PDFBatch
			}
			a.log.WithFields(logrus.Fields{"dist": vm.String(), "points": len(xs)}).Debugf("evaluating %s", kind)
			values, err := batch(cmd.Context(), vm, xs)
			if err != nil {
				a.log.WithError(err).Errorf("%s evaluation failed", kind)
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range values {
				fmt.Fprintln(out, strconv.FormatFloat(v, 'g', -1, 64))
			}
			return nil
		},
	}
	distributionFlags(cmd, &location, &concentration)
	return cmd
}

func (a *app) tableCmd() *cobra.Command {
	var (
		location, concentration float64
		points                  int
	)
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Tabulate CDF and PDF over one period around the location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if points < 1 {
				return fmt.Errorf("--points must be >= 1, got %d", points)
			}
			vm, err := circstatx.New(location, concentration)
			if err != nil {
				return err
			}
			ev, err := a.evaluator()
			if err != nil {
				return err
			}
			rows, err := production.Tabulate(cmd.Context(), ev, "vonmises", vm, production.Grid(location, points))
			if err != nil {
				return err
			}
			return production.TableRenderer{Format: a.format}.Render(cmd.OutOrStdout(), rows)
		},
	}
	distributionFlags(cmd, &location, &concentration)
	cmd.Flags().IntVarP(&points, "points", "n", 16, "number of grid points")
	return cmd
}

func (a *app) evalCmd() *cobra.Command {
	var points int
	cmd := &cobra.Command{
		Use:   "eval FILE",
		Short: "Tabulate every distribution of a parameter-set file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if points < 1 {
				return fmt.Errorf("--points must be >= 1, got %d", points)
			}
			set, err := production.LoadFile(args[0])
			if err != nil {
				return err
			}
			a.log.WithFields(logrus.Fields{
				"set":     set.Name,
				"version": primitives.ComputeVersion(&set),
				"count":   len(set.Distributions),
			}).Info("parameter set loaded")

			setOpts, err := set.Options()
			if err != nil {
				return err
			}
			// Explicit flags beat the file.
			if cmd.Flags().Changed("terms") {
				setOpts = append(setOpts, circstatx.WithTerms(a.cfg.Terms))
			}
			if cmd.Flags().Changed("domain") {
				policy, err := circstatx.ParseDomainPolicy(a.cfg.Domain)
				if err != nil {
					return err
				}
				setOpts = append(setOpts, circstatx.WithDomainPolicy(policy))
			}
			ev, err := a.evaluator(setOpts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.format == production.FormatText {
				fmt.Fprintf(out, "# %s (version %s)\n", set.Name, primitives.ComputeVersion(&set))
			}
			rows, err := tabulateSet(cmd.Context(), ev, set, points)
			if err != nil {
				return err
			}
			return production.TableRenderer{Format: a.format}.Render(out, rows)
		},
	}
	cmd.Flags().IntVarP(&points, "points", "n", 8, "number of grid points per distribution")
	return cmd
}

func tabulateSet(ctx context.Context, ev *circstatx.Evaluator, set primitives.ParamSet, points int) ([]production.Row, error) {
	var rows []production.Row
	for _, p := range set.Distributions {
		vm, err := p.Distribution()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p.Name, err)
		}
		r, err := production.Tabulate(ctx, ev, p.Name, vm, production.Grid(p.Location, points))
		if err != nil {
			return nil, err
		}
		rows = append(rows, r...)
	}
	return rows, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}
