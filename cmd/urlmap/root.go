package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gidocs/urlmap/internal/config"
	"github.com/gidocs/urlmap/internal/logging"
	"github.com/gidocs/urlmap/internal/ui"
	"github.com/gidocs/urlmap/internal/urlmap"
	"github.com/gidocs/urlmap/internal/version"
)

// builtinSource names the embedded table in logs and merge conflicts
const builtinSource = "builtin"

// rootOptions holds persistent flags and the state derived from them.
type rootOptions struct {
	configPath string
	maps       []string
	noBuiltin  bool
	logLevel   string
	output     string

	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "urlmap",
		Short: "Documentation namespace URL map",
		Long: `Resolve documentation namespaces (GLib, Gio, GObject, ...) to the base URLs
where their API reference is published.

The built-in table can be extended with map files: lists of
[namespace, base_url] pairs in YAML or JSON. Map files are named with --map
or in the configuration file. A namespace defined twice is an error.`,
		Version:           version.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to config file (default: platform config directory)")
	flags.StringArrayVar(&opts.maps, "map", nil, "Extra map file to merge after the built-in table (repeatable)")
	flags.BoolVar(&opts.noBuiltin, "no-builtin", false, "Do not include the built-in table")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error); silent if unset")
	flags.StringVar(&opts.output, "output", "", "Output style (auto, color, plain)")

	cmd.AddCommand(
		newLookupCmd(opts),
		newListCmd(opts),
		newCheckCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
	)

	return cmd
}

// setup loads the config file and initializes logging.
// Flags take precedence over the environment, which takes precedence over
// the config file.
func (o *rootOptions) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := o.apply(cfg); err != nil {
		return err
	}

	logging.Debug("Configuration loaded",
		zap.String("path", cfg.Path()),
		zap.Strings("maps", cfg.Maps),
		zap.String("output", o.output),
	)
	return nil
}

// setupWithoutConfig initializes logging and output from flags and the
// environment only. The config subcommands use it so that a broken config
// file can still be located and overwritten.
func (o *rootOptions) setupWithoutConfig(cmd *cobra.Command, args []string) error {
	return o.apply(config.NewConfig())
}

// apply initializes logging and resolves the output style against cfg.
func (o *rootOptions) apply(cfg *config.Config) error {
	o.cfg = cfg

	level := o.logLevel
	if level == "" && os.Getenv(logging.LogLevelEnvVar) == "" {
		level = cfg.LogLevel
	}
	if err := logging.Initialize(level); err != nil {
		return err
	}

	if o.output == "" {
		o.output = cfg.Output
	}
	switch o.output {
	case config.OutputAuto, config.OutputColor, config.OutputPlain:
	default:
		return fmt.Errorf("invalid --output %q (expected auto, color or plain)", o.output)
	}
	return nil
}

// printer returns a Printer for the command's stdout.
func (o *rootOptions) printer(cmd *cobra.Command) *ui.Printer {
	return ui.NewPrinter(cmd.OutOrStdout(), ui.Mode(o.output))
}

// mapPaths returns config-file maps followed by --map flags.
func (o *rootOptions) mapPaths() []string {
	paths := o.cfg.MapPaths()
	return append(paths, o.maps...)
}

// skipBuiltin reports whether the embedded table is excluded.
func (o *rootOptions) skipBuiltin() bool {
	return o.noBuiltin || o.cfg.NoBuiltin
}

// baseTable returns the embedded table, or an empty one with --no-builtin.
func (o *rootOptions) baseTable() (*urlmap.Table, error) {
	if o.skipBuiltin() {
		return urlmap.New(nil)
	}
	logging.LogMapSource(builtinSource, urlmap.Default().Len())
	return urlmap.Default(), nil
}

// table builds the effective table from the built-in map and map files.
func (o *rootOptions) table() (*urlmap.Table, error) {
	base, err := o.baseTable()
	if err != nil {
		return nil, err
	}

	paths := o.mapPaths()
	if len(paths) == 0 {
		return base, nil
	}

	sources := []urlmap.Source{{Name: builtinSource, Table: base}}
	for _, path := range paths {
		t, err := urlmap.LoadFile(path)
		if err != nil {
			return nil, err
		}
		logging.LogMapSource(path, t.Len())
		sources = append(sources, urlmap.Source{Name: path, Table: t})
	}

	merged, err := urlmap.MergeSources(sources...)
	if err != nil {
		return nil, fmt.Errorf("failed to merge map files: %w", err)
	}
	return merged, nil
}
