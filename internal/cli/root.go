package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/govalues/measure"
	"github.com/govalues/measure/internal/config"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// app carries the state shared by subcommands once flags are parsed.
type app struct {
	configFile string

	cfg  *config.Config
	log  *slog.Logger
	conv *measure.Converter
}

// newRootCmd builds the command tree.
// Every call returns independent commands and flags.
func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "unitconv",
		Short: "unitconv - convert values between units of measurement",
		Long: `unitconv converts values between units of the same physical quantity
using exact decimal arithmetic.

Units may be given by identifier, symbol or alias, such as "ft", "feet" or
"°F". Values accept thousands separators and exponents. Negative values must
follow "--" so that they are not read as flags:

    unitconv convert -- -40 degC degF`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	// Global flags
	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "conf", "", "configuration file path")
	pf.Int("decimals", 6, "number of fraction digits (0-12)")
	pf.String("rounding", measure.HalfUp.String(), "rounding mode: halfUp, floor, ceil or bankers")
	pf.Bool("grouping", true, "insert group separators")
	pf.String("locale", "", "BCP 47 locale tag, such as de or en-IN")
	pf.Float64("sci-threshold", 1e12, "magnitude at which exponential notation is used")
	pf.String("backend", measure.BigBackend.Name(), "arithmetic backend: big, compact or float")
	pf.StringP("output", "o", config.OutputText, "output format: text or json")
	pf.Bool("debug", false, "enable normally suppressed debug logging")
	pf.String("log-format", config.OutputText, "log format: text or json")

	cmd.AddCommand(
		newConvertCmd(a),
		newMultiCmd(a),
		newSearchCmd(a),
		newLookupCmd(a),
		newUnitsCmd(a),
		newBatchCmd(a),
		newVersionCmd(),
	)
	return cmd
}

// Execute runs the command tree with the process arguments.
// This is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the converter for the command
// being executed.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.Log)

	conv, err := measure.NewConverter(nil, cfg.DecimalBackend())
	if err != nil {
		return err
	}
	a.conv = conv

	a.log.Debug("configuration loaded",
		"file", cfg.Path(),
		"backend", conv.Backend().Name(),
		"output", cfg.Output,
		"locale", cfg.Format.Locale)
	return nil
}

// options returns the configured format options.
func (a *app) options() measure.Option {
	return measure.WithFormatOptions(a.cfg.FormatOptions())
}

// unit resolves a unit by identifier first and by token second.
func (a *app) unit(token string) (measure.UnitDef, error) {
	reg := a.conv.Registry()
	if u, ok := reg.UnitByID(token); ok {
		return u, nil
	}
	if u, ok := reg.FindUnitByToken(token); ok {
		a.log.Debug("unit resolved by token", "token", token, "unit", u.ID)
		return u, nil
	}
	return measure.UnitDef{}, fmt.Errorf("%w: %q", measure.ErrUnknownUnit, token)
}
