package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app carries the state shared by the commands of one root command.
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *Config
	logger     *zap.Logger
}

// NewRootCmd builds the destiny command tree. Every call returns an
// independent tree with its own configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: newViper(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "destiny",
		Short: "Destiny Matrix node calculator",
		Long: `destiny derives the Destiny Matrix node map of a birth date.

Two variants are available:
  modulo    day and year digit-summed once, values reduced mod 22
  digitsum  raw day, values reduced by repeated digit sums (default)

Configuration is read from flags, DESTINY_* environment variables and an
optional destiny.yaml in the working directory (or --config).

Examples:
  destiny compute 1993-05-19
  destiny compute 1993-05-19 2005-05-31 --variant modulo --format table
  destiny nodes --formulas --variant digitsum
  destiny variants
  destiny trace 'Y(-3)' --variant modulo`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./destiny.yaml if present)")
	flags.String("variant", "digitsum", "algorithm variant: modulo or digitsum")
	flags.StringP("format", "o", FormatJSON, "output format: json, yaml or table")
	flags.Int("cache-size", 0, "memoize up to N evaluations (0 disables)")
	flags.Bool("json-log", false, "write logs as JSON")
	flags.CountP("verbose", "v", "increase log verbosity (-v info, -vv debug)")

	mustBind(a.v, "variant", flags.Lookup("variant"))
	mustBind(a.v, "format", flags.Lookup("format"))
	mustBind(a.v, "cache_size", flags.Lookup("cache-size"))
	mustBind(a.v, "log.json", flags.Lookup("json-log"))
	mustBind(a.v, "log.verbose", flags.Lookup("verbose"))

	root.AddCommand(
		newComputeCmd(a),
		newNodesCmd(a),
		newVariantsCmd(a),
		newDimensionsCmd(a),
		newTraceCmd(a),
	)

	return root
}

// setup resolves configuration and the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := readConfigFile(a.v, a.configPath); err != nil {
		return err
	}
	cfg, err := Load(a.v)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger.Named("destiny")
	a.logger.Debug("configuration loaded",
		zap.String("command", cmd.Name()),
		zap.String("config", a.v.ConfigFileUsed()),
		zap.String("variant", cfg.Variant),
		zap.String("format", cfg.Format),
		zap.Int("cache_size", cfg.CacheSize),
	)

	return nil
}
